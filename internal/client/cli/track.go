package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/iudanet/codeclimb/internal/client/tracker"
	"github.com/iudanet/codeclimb/internal/models"
)

// RunTrack запускает интерактивный редактор попыток с автосохранением.
// Правки применяются к локальному draft мгновенно и сохраняются
// в фоне после паузы набора.
func (c *Cli) RunTrack(ctx context.Context, args []string, logger *slog.Logger) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: codeclimb track <listID>")
	}
	listID := args[0]

	session, err := c.requireSession(ctx)
	if err != nil {
		return err
	}

	problems, err := c.apiClient.Problems(ctx, session.AccessToken, listID)
	if err != nil {
		return fmt.Errorf("failed to load problems: %w", err)
	}

	// Колбек дергается из таймерных горутин трекера, читаем флаг в REPL-цикле
	var authExpired atomic.Bool
	track := tracker.New(c.apiClient, listID, session.AccessToken, logger, tracker.Options{
		Drafts: c.drafts,
		OnAuthError: func(err error) {
			authExpired.Store(true)
		},
	})
	defer track.Close()

	track.Hydrate(ctx, problems)

	c.io.Printf("Tracking %d problems. Type 'help' for commands, 'quit' to exit.\n", len(problems))

	for {
		if authExpired.Load() {
			c.io.Println("Session expired. Run 'codeclimb login' and start again.")
			return nil
		}

		line, err := c.io.ReadInput("> ")
		if err != nil {
			break
		}
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		switch parts[0] {
		case "quit", "exit":
			// Дожимаем хвост правок перед выходом
			track.Flush()
			return nil

		case "help":
			PrintUsage()

		case "rows":
			c.printRows(track)

		case "history":
			if len(parts) < 2 {
				c.io.Println("usage: history <problemID>")
				continue
			}
			c.runHistory(ctx, track, parts[1])

		case "delete":
			if len(parts) < 3 {
				c.io.Println("usage: delete <problemID> <attemptID>")
				continue
			}
			c.runDelete(ctx, track, parts[1], parts[2])

		case "retry":
			if len(parts) < 2 {
				c.io.Println("usage: retry <problemID>")
				continue
			}
			problemID, err := strconv.Atoi(parts[1])
			if err != nil {
				c.io.Println("problemID must be a number")
				continue
			}
			track.Retry(problemID)

		default:
			c.runEdit(track, line)
		}
	}

	track.Flush()
	return nil
}

// runEdit разбирает строку "<problemID> field=value" и применяет правку
func (c *Cli) runEdit(track *tracker.Tracker, line string) {
	idPart, rest, found := strings.Cut(line, " ")
	if !found {
		c.io.Println("expected: <problemID> field=value (see 'help')")
		return
	}

	problemID, err := strconv.Atoi(idPart)
	if err != nil {
		c.io.Printf("unknown command %q\n", idPart)
		return
	}

	edit, err := parseFieldEdit(strings.TrimSpace(rest))
	if err != nil {
		c.io.Printf("bad edit: %v\n", err)
		return
	}

	if edit.immediate {
		track.EditImmediate(problemID, edit.apply)
	} else {
		track.Edit(problemID, edit.apply)
	}
}

func (c *Cli) runHistory(ctx context.Context, track *tracker.Tracker, idPart string) {
	problemID, err := strconv.Atoi(idPart)
	if err != nil {
		c.io.Println("problemID must be a number")
		return
	}

	entries, err := track.LoadHistory(ctx, problemID)
	if err != nil {
		c.io.Printf("failed to load history: %v\n", err)
		return
	}

	if len(entries) == 0 {
		c.io.Println("no saved attempts")
		return
	}
	for _, entry := range entries {
		c.io.Printf("%s  %s  solved=%s  %s\n",
			entry.ID,
			entry.UpdatedAt.Format("2006-01-02 15:04"),
			boolMark(entry.Solved),
			stringOr(entry.Notes, ""),
		)
	}
}

func (c *Cli) runDelete(ctx context.Context, track *tracker.Tracker, idPart, attemptID string) {
	problemID, err := strconv.Atoi(idPart)
	if err != nil {
		c.io.Println("problemID must be a number")
		return
	}

	if err := track.DeleteAttempt(ctx, problemID, attemptID); err != nil {
		c.io.Printf("failed to delete attempt: %v\n", err)
		return
	}
	c.io.Println("deleted")
}

// printRows показывает строки с несохраненными правками или ошибками
func (c *Cli) printRows(track *tracker.Tracker) {
	rows := track.Rows()
	printed := 0
	for id, row := range rows {
		if row.Status == tracker.StatusIdle && row.Draft.IsEmpty() {
			continue
		}
		c.io.Printf("%5d  %-7s  %s\n", id, row.Status, describeDraft(row.Draft))
		if row.Status == tracker.StatusError {
			c.io.Printf("       error: %s (use 'retry %d')\n", row.ErrMessage, id)
		}
		printed++
	}
	if printed == 0 {
		c.io.Println("nothing in progress")
	}
}

// describeDraft строит однострочную сводку заполненных полей draft
func describeDraft(draft *models.AttemptDraft) string {
	var parts []string
	if draft.Solved != nil {
		parts = append(parts, "solved="+strconv.FormatBool(*draft.Solved))
	}
	if draft.DateSolved != nil {
		parts = append(parts, "date="+*draft.DateSolved)
	}
	if draft.TimeMinutes != nil {
		parts = append(parts, fmt.Sprintf("time=%dm", *draft.TimeMinutes))
	}
	if draft.Attempts != nil {
		parts = append(parts, fmt.Sprintf("attempts=%d", *draft.Attempts))
	}
	if draft.Confidence != nil {
		parts = append(parts, "confidence="+*draft.Confidence)
	}
	if draft.TimeComplexity != nil {
		parts = append(parts, "tc="+*draft.TimeComplexity)
	}
	if draft.SpaceComplexity != nil {
		parts = append(parts, "sc="+*draft.SpaceComplexity)
	}
	if draft.Notes != nil {
		parts = append(parts, "notes="+*draft.Notes)
	}
	if draft.ProblemURL != nil {
		parts = append(parts, "url="+*draft.ProblemURL)
	}
	if len(parts) == 0 {
		return "(empty)"
	}
	return strings.Join(parts, " ")
}

func boolMark(v *bool) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatBool(*v)
}

func stringOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}
