package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/codeclimb/pkg/api"
)

// RunProblems показывает каталог списка с последними попытками
func (c *Cli) RunProblems(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: codeclimb problems <listID>")
	}

	session, err := c.requireSession(ctx)
	if err != nil {
		return err
	}

	problems, err := c.apiClient.Problems(ctx, session.AccessToken, args[0])
	if err != nil {
		return fmt.Errorf("failed to load problems: %w", err)
	}

	c.io.Printf("%5s  %-8s  %-24s  %-8s  %s\n", "ID", "SOLVED", "CATEGORY", "DIFF", "TITLE")
	for _, problem := range problems {
		c.io.Printf("%5d  %-8s  %-24s  %-8s  %s\n",
			problem.ProblemID,
			solvedMark(problem.LatestAttempt),
			problem.Category,
			problem.Difficulty,
			problem.Title,
		)
	}
	return nil
}

func solvedMark(latest *api.LatestAttempt) string {
	if latest == nil || latest.Solved == nil {
		return "-"
	}
	if *latest.Solved {
		return "yes"
	}
	return "no"
}
