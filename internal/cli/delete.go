package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDeleteCmd(app *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <model>",
		Short: "Delete a downloaded model from the local store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.newStore()
			if err != nil {
				return err
			}

			if err := s.Delete(args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Model %s deleted\n", args[0])
			return nil
		},
	}
}
