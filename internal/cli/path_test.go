package cli

import (
	"os"
	"strings"
	"testing"

	"github.com/fmueller/whisperctl/internal/store"
	"github.com/stretchr/testify/require"
)

func TestPathCommandPrintsDownloadedModelPath(t *testing.T) {
	t.Parallel()

	s := fixtureStore(t.TempDir(), "http://unused.invalid/model.bin")
	require.NoError(t, os.WriteFile(s.Path("tiny"), []byte("bytes"), 0o644))

	stdout, err := executeCommand(t, newPathCmd(newTestApp(s)), "tiny")
	require.NoError(t, err)
	require.Equal(t, s.Path("tiny"), strings.TrimSpace(stdout))
}

func TestPathCommandMissingModel(t *testing.T) {
	t.Parallel()

	s := fixtureStore(t.TempDir(), "http://unused.invalid/model.bin")

	_, err := executeCommand(t, newPathCmd(newTestApp(s)), "tiny")
	require.ErrorIs(t, err, store.ErrNotDownloaded)
}
