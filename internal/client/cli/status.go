package cli

import (
	"context"

	"github.com/iudanet/codeclimb/internal/client/auth"
)

// RunStatus показывает состояние локальной сессии
func (c *Cli) RunStatus(ctx context.Context) error {
	session, err := c.authService.Session(ctx)
	if err != nil {
		if auth.IsNotAuthenticated(err) {
			c.io.Println("Not authenticated")
			return nil
		}
		return err
	}

	c.io.Printf("Logged in as:  %s\n", session.Email)
	c.io.Printf("Server:        %s\n", session.ServerURL)
	c.io.Printf("Token expires: %s\n", session.ExpiresAt.Format("2006-01-02 15:04:05"))
	return nil
}
