package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/balkashynov/moodlog/internal/db"
	"github.com/balkashynov/moodlog/internal/parser"
)

func newAddCmd(a *app) *cobra.Command {
	var (
		date     string
		duration string
		reason   string
	)

	cmd := &cobra.Command{
		Use:   "add <emotion>",
		Short: "Record an emotion",
		Long: `Record one occurrence of an emotion.

The date defaults to today and must be YYYY-MM-DD. A duration that isn't a
whole number of minutes is stored as 0, and an empty reason is stored as
"not specified".

Inline syntax:
  +N            Duration in minutes
  @YYYY-MM-DD   Date (also @today, @yesterday)
  : text        Everything after the first colon is the reason

Examples:
  moodlog add Joy
  moodlog add "Joy +20 @yesterday: walk in the park"
  moodlog add Anxiety --date 2024-05-01 --duration 15 --reason "deadline"`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.withStore(func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			parsed := parser.ParseEntry(strings.Join(args, " "), time.Now())
			if len(parsed.Errors) > 0 {
				fmt.Fprintf(out, "Error: %s\n", strings.Join(parsed.Errors, ", "))
				return nil
			}

			// Flags take precedence over inline syntax
			if cmd.Flags().Changed("date") {
				parsed.Date = date
			}
			if cmd.Flags().Changed("duration") {
				parsed.Duration = duration
			}
			if cmd.Flags().Changed("reason") {
				parsed.Reason = reason
			}
			if parsed.Date == "" {
				parsed.Date = parser.Today()
			}

			event, err := a.store.RecordEvent(parsed.Name, parsed.Date, parsed.Duration, parsed.Reason)
			if err != nil {
				var verr *db.ValidationError
				switch {
				case errors.Is(err, db.ErrInvalidDate):
					fmt.Fprintf(out, "Error: invalid date '%s'. Use YYYY-MM-DD.\n", parsed.Date)
				case errors.As(err, &verr):
					fmt.Fprintf(out, "Error: %v\n", verr)
				default:
					a.log.Error("failed to record emotion", zap.String("emotion", parsed.Name), zap.Error(err))
					fmt.Fprintf(out, "Error: failed to add emotion: %v\n", err)
				}
				return nil
			}

			a.log.Info("emotion recorded",
				zap.Uint("id", event.ID),
				zap.String("emotion", event.Name),
				zap.String("date", event.Date))

			fmt.Fprintf(out, "Added %s for %s\n", event.Name, event.Date)
			fmt.Fprintf(out, "  Duration: %d min\n", event.DurationMinutes)
			fmt.Fprintf(out, "  Reason: %s\n", event.Reason)
			return nil
		}),
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Date as YYYY-MM-DD (default today)")
	cmd.Flags().StringVarP(&duration, "duration", "m", "", "Duration in minutes")
	cmd.Flags().StringVarP(&reason, "reason", "r", "", "Why you felt it")
	return cmd
}
