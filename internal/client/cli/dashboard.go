package cli

import (
	"context"
	"fmt"
)

// RunDashboard показывает сводную статистику пользователя
func (c *Cli) RunDashboard(ctx context.Context) error {
	session, err := c.requireSession(ctx)
	if err != nil {
		return err
	}

	dashboard, err := c.apiClient.Dashboard(ctx, session.AccessToken)
	if err != nil {
		return fmt.Errorf("failed to load dashboard: %w", err)
	}

	c.io.Printf("Current streak:    %d days\n", dashboard.StreakCurrent)
	if dashboard.FarthestCategory != nil {
		c.io.Printf("Farthest category: %s", *dashboard.FarthestCategory)
		if dashboard.FarthestOrderIndex != nil {
			c.io.Printf(" (#%d)", *dashboard.FarthestOrderIndex)
		}
		c.io.Println("")
	}
	if dashboard.LastActivityAt != nil {
		c.io.Printf("Last activity:     %s\n", *dashboard.LastActivityAt)
	}

	if len(dashboard.PerCategory) > 0 {
		c.io.Println("")
		c.io.Printf("%-28s  %-8s  %s\n", "CATEGORY", "SOLVED", "AVG TIME")
		for _, stat := range dashboard.PerCategory {
			avg := "-"
			if stat.AvgTimeMinutes != nil {
				avg = fmt.Sprintf("%.0fm", *stat.AvgTimeMinutes)
			}
			c.io.Printf("%-28s  %-8d  %s\n", stat.Category, stat.SolvedCount, avg)
		}
	}
	return nil
}
