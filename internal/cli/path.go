package cli

import (
	"fmt"

	"github.com/fmueller/whisperctl/internal/store"
	"github.com/spf13/cobra"
)

func newPathCmd(app *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "path <model>",
		Short: "Print the local path of a downloaded model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.newStore()
			if err != nil {
				return err
			}

			if !s.IsDownloaded(args[0]) {
				return fmt.Errorf("%w: %q; run `whisperctl download %s` first", store.ErrNotDownloaded, args[0], args[0])
			}

			fmt.Fprintln(cmd.OutOrStdout(), s.Path(args[0]))
			return nil
		},
	}
}
