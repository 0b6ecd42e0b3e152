package cli

import (
	"github.com/spf13/cobra"

	"todolist/tui"
)

func newTUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Interactive list: a to add, space to toggle, d to remove",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.client()
			if err != nil {
				return err
			}
			return tui.Run(cmd.Context(), c)
		},
	}
}
