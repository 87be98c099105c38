package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/codeclimb/internal/validation"
)

// RunSignup регистрирует нового пользователя и сохраняет сессию
func (c *Cli) RunSignup(ctx context.Context) error {
	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	if err := validation.ValidateEmail(email); err != nil {
		return fmt.Errorf("invalid email: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}

	confirm, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read password confirmation: %w", err)
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	// Timezone нужна серверу для расчета streak по локальным суткам
	timezone, err := c.io.ReadInput("Timezone (IANA, empty for local): ")
	if err != nil {
		return fmt.Errorf("failed to read timezone: %w", err)
	}
	if timezone == "" {
		timezone = time.Now().Location().String()
	}
	if err := validation.ValidateTimezone(timezone); err != nil {
		return err
	}

	session, err := c.authService.Signup(ctx, c.serverURL, email, password, timezone)
	if err != nil {
		return err
	}

	c.io.Printf("Registered and logged in as %s\n", session.Email)
	return nil
}
