package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fmueller/whisperctl/internal/store"
	"github.com/fmueller/whisperctl/internal/transcribe"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var outputFormats = []string{"txt", "srt", "vtt", "json"}

func newTranscribeCmd(app *appState) *cobra.Command {
	var (
		model        string
		language     string
		outputFormat string
		autoDownload bool
	)

	cmd := &cobra.Command{
		Use:   "transcribe <audio-file>",
		Short: "Transcribe an audio file, streaming engine output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			audioPath := filepath.Clean(args[0])
			if _, err := os.Stat(audioPath); err != nil {
				return fmt.Errorf("audio file not found: %w", err)
			}

			if !isKnownOutputFormat(outputFormat) {
				return fmt.Errorf("unknown output format %q (supported: %s)", outputFormat, strings.Join(outputFormats, ", "))
			}

			s, err := app.newStore()
			if err != nil {
				return err
			}

			modelPath, err := ensureModel(cmd, app, s, model, autoDownload)
			if err != nil {
				return err
			}

			runner, err := app.newRunner()
			if err != nil {
				return err
			}

			app.log().Info("transcribing...",
				zap.String("audio", audioPath),
				zap.String("model", modelPath),
				zap.String("language", language),
			)
			started := time.Now()

			events, err := runner.Run(transcribe.Request{
				AudioPath:    audioPath,
				ModelPath:    modelPath,
				OutputFormat: outputFormat,
				Language:     sanitizeLanguage(language),
			})
			if err != nil {
				return err
			}

			for event := range events {
				switch event.Type {
				case transcribe.EventTypeOutput:
					if event.Stderr {
						app.log().Debug("whisper", zap.String("line", event.Line))
						continue
					}
					fmt.Fprintln(cmd.OutOrStdout(), event.Line)
				case transcribe.EventTypeCompleted:
					app.log().Info("transcription finished", zap.Duration("elapsed", time.Since(started)))
				case transcribe.EventTypeFailed:
					app.log().Warn("transcription failed", zap.Duration("elapsed", time.Since(started)), zap.String("reason", event.Message))
					err = fmt.Errorf("transcription failed: %s", event.Message)
				}
			}
			return err
		},
	}

	cmd.Flags().StringVar(&model, "model", "small", "Model name to transcribe with")
	cmd.Flags().StringVar(&language, "language", "auto", "Language code (auto|en|de|...) for transcription")
	cmd.Flags().StringVar(&outputFormat, "output-format", "txt", "Output format: txt|srt|vtt|json")
	cmd.Flags().BoolVar(&autoDownload, "auto-download", true, "Automatically download missing models")

	return cmd
}

// ensureModel resolves the model artifact path, downloading it when absent
// and auto-download is enabled.
func ensureModel(cmd *cobra.Command, app *appState, s *store.Store, model string, autoDownload bool) (string, error) {
	if s.IsDownloaded(model) {
		return s.Path(model), nil
	}

	if !autoDownload {
		return "", fmt.Errorf("%w: %q; run `whisperctl download %s` or use --auto-download=true", store.ErrNotDownloaded, model, model)
	}

	app.log().Info("model not found, downloading", zap.String("model", model), zap.String("destination", s.Path(model)))
	onProgress, stop := downloadProgress(app.progressEnabled())
	path, err := s.Download(cmd.Context(), model, onProgress)
	stop()
	if err != nil {
		return "", fmt.Errorf("download model %q: %w", model, err)
	}
	return path, nil
}

func isKnownOutputFormat(format string) bool {
	for _, known := range outputFormats {
		if format == known {
			return true
		}
	}
	return false
}

func sanitizeLanguage(input string) string {
	trimmed := strings.TrimSpace(strings.ToLower(input))
	if trimmed == "" {
		return "auto"
	}
	return trimmed
}
