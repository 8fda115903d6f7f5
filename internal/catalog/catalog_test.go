package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogOrderIsStable(t *testing.T) {
	t.Parallel()

	models := Default().Models()
	require.Len(t, models, 6)

	order := make([]string, 0, len(models))
	for _, model := range models {
		order = append(order, model.Name)
	}
	require.Equal(t, []string{"tiny", "base", "small", "medium", "large-v3", "large-v3-turbo"}, order)
}

func TestLookupKnownModel(t *testing.T) {
	t.Parallel()

	model, ok := Default().Lookup("tiny")
	require.True(t, ok)
	require.Equal(t, "Tiny", model.DisplayName)
	require.Equal(t, int64(75), model.SizeMB)
	require.Contains(t, model.URL, "ggml-tiny.bin")
}

func TestLookupUnknownModel(t *testing.T) {
	t.Parallel()

	_, ok := Default().Lookup("ghost")
	require.False(t, ok)
}

func TestModelsReturnsCopy(t *testing.T) {
	t.Parallel()

	cat := Default()
	models := cat.Models()
	models[0].Name = "mutated"

	fresh, ok := cat.Lookup("tiny")
	require.True(t, ok)
	require.Equal(t, "tiny", fresh.Name)
}

func TestAllModelsHaveDownloadURLs(t *testing.T) {
	t.Parallel()

	for _, model := range Default().Models() {
		require.NotEmptyf(t, model.URL, "model %s should have a download URL", model.Name)
		require.Positivef(t, model.SizeMB, "model %s should have a size estimate", model.Name)
	}
}
