package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/codeclimb/pkg/api"
)

// TemplateVersion каталога задач, который сидируется сервером
const defaultTemplateVersion = "neet250.v1"

// RunLists показывает списки пользователя
func (c *Cli) RunLists(ctx context.Context) error {
	session, err := c.requireSession(ctx)
	if err != nil {
		return err
	}

	lists, err := c.apiClient.Lists(ctx, session.AccessToken)
	if err != nil {
		return fmt.Errorf("failed to load lists: %w", err)
	}

	if len(lists) == 0 {
		c.io.Println("No lists yet. Create one with 'codeclimb create-list <name>'")
		return nil
	}

	c.io.Printf("%-36s  %-12s  %s\n", "ID", "TEMPLATE", "NAME")
	for _, list := range lists {
		name := list.Name
		if list.Deprecated {
			name += " (deprecated)"
		}
		c.io.Printf("%-36s  %-12s  %s\n", list.ID, list.TemplateVersion, name)
	}
	return nil
}

// RunCreateList создает новый список задач
func (c *Cli) RunCreateList(ctx context.Context, args []string) error {
	if len(args) < 1 || args[0] == "" {
		return fmt.Errorf("usage: codeclimb create-list <name>")
	}

	session, err := c.requireSession(ctx)
	if err != nil {
		return err
	}

	created, err := c.apiClient.CreateList(ctx, session.AccessToken, api.CreateListRequest{
		Name:            args[0],
		TemplateVersion: defaultTemplateVersion,
	})
	if err != nil {
		return fmt.Errorf("failed to create list: %w", err)
	}

	c.io.Printf("Created list %s (%s)\n", created.Name, created.ID)
	return nil
}
