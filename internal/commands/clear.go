package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newClearCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded emotions",
		Long:  "Delete every recorded emotion. This cannot be undone.",
		Args:  cobra.NoArgs,
		RunE: a.withStore(func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if !yes {
				fmt.Fprint(out, "Are you sure you want to clear all statistics? This cannot be undone. [y/N]: ")
				answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				answer = strings.ToLower(strings.TrimSpace(answer))
				if answer != "y" && answer != "yes" {
					fmt.Fprintln(out, "Cancelled.")
					return nil
				}
			}

			if err := a.store.ClearAll(); err != nil {
				a.log.Error("failed to clear statistics", zap.Error(err))
				fmt.Fprintf(out, "Error: failed to clear statistics: %v\n", err)
				return nil
			}

			a.log.Info("statistics cleared")
			fmt.Fprintln(out, "All statistics cleared.")
			return nil
		}),
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
