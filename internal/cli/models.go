package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newModelsCmd(app *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List available models and their download state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := app.newStore()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSIZE\tSTATE\tDESCRIPTION")
			for _, status := range s.Status() {
				state := "-"
				if status.Downloaded {
					state = "downloaded"
				}
				fmt.Fprintf(w, "%s\t%d MB\t%s\t%s\n", status.Name, status.SizeMB, state, status.Description)
			}
			return w.Flush()
		},
	}
}
