package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newEmotionsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "emotions",
		Short: "List the emotions you can choose from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(); err != nil {
				return err
			}
			defer a.log.Sync()

			out := cmd.OutOrStdout()
			emotions, warning := a.loadEmotions()
			if warning != "" {
				fmt.Fprintf(out, "Warning: %s\n", warning)
			}
			for _, name := range emotions {
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}
}
