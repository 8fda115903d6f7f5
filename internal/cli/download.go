package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newDownloadCmd(app *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "download <model>",
		Short: "Download a model into the local store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			s, err := app.newStore()
			if err != nil {
				return err
			}

			if s.IsDownloaded(name) {
				app.log().Info("model already present", zap.String("model", name), zap.String("path", s.Path(name)))
				fmt.Fprintf(cmd.OutOrStdout(), "Model %s already present at %s\n", name, s.Path(name))
				return nil
			}

			onProgress, stop := downloadProgress(app.progressEnabled())
			path, err := s.Download(cmd.Context(), name, onProgress)
			stop()
			if err != nil {
				return fmt.Errorf("download model %q: %w", name, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Model %s installed at %s\n", name, path)
			return nil
		},
	}
}
