package cli

import (
	"fmt"
	"os"

	"github.com/fmueller/whisperctl/internal/catalog"
	"github.com/fmueller/whisperctl/internal/logging"
	"github.com/fmueller/whisperctl/internal/platform"
	"github.com/fmueller/whisperctl/internal/store"
	"github.com/fmueller/whisperctl/internal/transcribe"
	"github.com/fmueller/whisperctl/internal/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

type appState struct {
	verbose    bool
	jsonLogs   bool
	noProgress bool
	modelDir   string

	logger *zap.Logger

	newStore  func() (*store.Store, error)
	newRunner func() (*transcribe.Runner, error)
}

func NewRootCmd() *cobra.Command {
	app := &appState{}
	app.newStore = app.openStore
	app.newRunner = func() (*transcribe.Runner, error) {
		return transcribe.NewRunner(app.log())
	}

	cmd := &cobra.Command{
		Use:           "whisperctl",
		Short:         "Manage whisper.cpp models and transcribe audio files",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Resolve(),
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			logger, err := logging.New(logging.Options{Verbose: app.verbose, JSON: app.jsonLogs})
			if err != nil {
				return fmt.Errorf("initialize logger: %w", err)
			}
			app.logger = logger
			return nil
		},
	}

	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	cmd.PersistentFlags().BoolVar(&app.verbose, "verbose", app.verbose, "Enable verbose logs")
	cmd.PersistentFlags().BoolVar(&app.jsonLogs, "json", app.jsonLogs, "Enable JSON logging")
	cmd.PersistentFlags().BoolVar(&app.noProgress, "no-progress", app.noProgress, "Disable progress indicators")
	cmd.PersistentFlags().StringVar(&app.modelDir, "model-dir", app.modelDir, "Directory where models are stored")

	cmd.AddCommand(newModelsCmd(app))
	cmd.AddCommand(newDownloadCmd(app))
	cmd.AddCommand(newDeleteCmd(app))
	cmd.AddCommand(newPathCmd(app))
	cmd.AddCommand(newTranscribeCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (a *appState) openStore() (*store.Store, error) {
	dir, err := platform.ResolveModelDir(a.modelDir)
	if err != nil {
		return nil, err
	}
	return store.New(catalog.Default(), dir, nil, a.log()), nil
}

func (a *appState) log() *zap.Logger {
	if a.logger == nil {
		return zap.NewNop()
	}
	return a.logger
}

func (a *appState) progressEnabled() bool {
	if a.noProgress {
		return false
	}
	return term.IsTerminal(int(os.Stderr.Fd()))
}
