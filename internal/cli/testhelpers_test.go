package cli

import (
	"bytes"
	"testing"

	"github.com/fmueller/whisperctl/internal/catalog"
	"github.com/fmueller/whisperctl/internal/store"
	"github.com/fmueller/whisperctl/internal/transcribe"
	"github.com/spf13/cobra"
)

func runCommand(t *testing.T, args []string) (stdout string, stderr string, err error) {
	t.Helper()

	cmd := NewRootCmd()
	outBuf := new(bytes.Buffer)
	errBuf := new(bytes.Buffer)

	cmd.SetOut(outBuf)
	cmd.SetErr(errBuf)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

// newTestApp wires an appState against a fixture store so command tests
// never touch the network or the real data directory.
func newTestApp(s *store.Store) *appState {
	app := &appState{noProgress: true}
	app.newStore = func() (*store.Store, error) {
		return s, nil
	}
	return app
}

func fixtureStore(dir, url string) *store.Store {
	cat := catalog.New(catalog.Model{
		Name:        "tiny",
		DisplayName: "Tiny",
		SizeMB:      1,
		Description: "test fixture",
		URL:         url,
	})
	return store.New(cat, dir, nil, nil)
}

func withRunner(app *appState, executable string) *appState {
	app.newRunner = func() (*transcribe.Runner, error) {
		return &transcribe.Runner{Executable: executable}, nil
	}
	return app
}

func executeCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}
