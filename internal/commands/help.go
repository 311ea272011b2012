package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "moodlog %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}

func newHelpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "help",
		Short: "Show help for moodlog",
		Args:  cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), helpText)
		},
	}
}

const helpText = `
moodlog - emotion diary

COMMANDS:

  (no command)            Open the interactive interface

    Keys:
      ↑/↓           Choose an emotion
      enter         Add the selected emotion (duration + reason)
      d             Type a date (YYYY-MM-DD)
      p             Pick a date by year, month and day
      t             Back to today
      s             Statistics (enter shows reasons)
      c             Clear all statistics
      q/esc         Quit

  add <emotion>           Record an emotion
    -d, --date            Date as YYYY-MM-DD (default today)
    -m, --duration        Duration in minutes
    -r, --reason          Reason

    Example:
      moodlog add Joy --duration 20 --reason "walk in the park"

  stats                   Statistics grouped by date and emotion
    --details             Include reasons

  clear                   Delete everything recorded
    -y, --yes             Don't ask for confirmation

  emotions                List selectable emotions
  version                 Print version information
  help                    Show this help

GLOBAL FLAGS:
  --config <file>         YAML config (default ./moodlog.yaml if present)

`
