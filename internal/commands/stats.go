package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/moodlog/internal/models"
)

func newStatsCmd(a *app) *cobra.Command {
	var details bool

	cmd := &cobra.Command{
		Use:     "stats",
		Aliases: []string{"statistics"},
		Short:   "Show statistics grouped by date and emotion",
		Args:    cobra.NoArgs,
		RunE: a.withStore(func(cmd *cobra.Command, args []string) error {
			groups, err := a.store.Statistics()
			if err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Error: failed to show statistics: %v\n", err)
				return nil
			}
			printStats(cmd.OutOrStdout(), groups, details)
			return nil
		}),
	}

	cmd.Flags().BoolVar(&details, "details", false, "Print the reasons under each row")
	return cmd
}

// printStats writes the statistics table followed by the grand total
func printStats(w io.Writer, groups []models.StatGroup, details bool) {
	if len(groups) == 0 {
		fmt.Fprintln(w, "No data to display.")
		return
	}

	nameWidth := 7
	for _, g := range groups {
		nameWidth = max(nameWidth, len([]rune(g.EmotionName)))
	}
	nameWidth = min(nameWidth, 30)

	fmt.Fprintf(w, "%-10s  %-*s  %5s  %8s\n", "DATE", nameWidth, "EMOTION", "COUNT", "MINUTES")
	fmt.Fprintln(w, strings.Repeat("-", 10+2+nameWidth+2+5+2+8))

	for _, g := range groups {
		name := g.EmotionName
		if len([]rune(name)) > nameWidth {
			name = string([]rune(name)[:nameWidth-3]) + "..."
		}
		fmt.Fprintf(w, "%-10s  %-*s  %5d  %8d\n", g.Date, nameWidth, name, g.OccurrenceCount, g.TotalDurationMinutes)
		if details {
			fmt.Fprintf(w, "    Reasons: %s\n", g.Reasons)
		}
	}

	fmt.Fprintf(w, "\nTotal time spent in emotions: %d minutes\n", models.TotalDuration(groups))
}
