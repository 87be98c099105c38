package cli

import (
	"context"
	"fmt"
)

// RunLogin аутентифицирует пользователя и сохраняет сессию локально
func (c *Cli) RunLogin(ctx context.Context) error {
	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	session, err := c.authService.Login(ctx, c.serverURL, email, password)
	if err != nil {
		return err
	}

	c.io.Printf("Logged in as %s\n", session.Email)
	return nil
}
