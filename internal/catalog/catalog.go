package catalog

import "sort"

// Model describes one downloadable whisper.cpp model artifact.
type Model struct {
	Name        string
	DisplayName string
	SizeMB      int64
	Description string
	URL         string
}

// Catalog is an immutable, ordered list of known models. Construct it once
// via Default and pass it to whichever component needs it.
type Catalog struct {
	models []Model
}

// New builds a catalog from the given models, preserving their order.
func New(models ...Model) Catalog {
	owned := make([]Model, len(models))
	copy(owned, models)
	return Catalog{models: owned}
}

func Default() Catalog {
	return Catalog{models: []Model{
		{
			Name:        "tiny",
			DisplayName: "Tiny",
			SizeMB:      75,
			Description: "Fastest, lowest accuracy",
			URL:         "https://huggingface.co/ggerganov/whisper.cpp/resolve/main/ggml-tiny.bin",
		},
		{
			Name:        "base",
			DisplayName: "Base",
			SizeMB:      148,
			Description: "Fast, good for simple audio",
			URL:         "https://huggingface.co/ggerganov/whisper.cpp/resolve/main/ggml-base.bin",
		},
		{
			Name:        "small",
			DisplayName: "Small",
			SizeMB:      488,
			Description: "Balanced speed and accuracy",
			URL:         "https://huggingface.co/ggerganov/whisper.cpp/resolve/main/ggml-small.bin",
		},
		{
			Name:        "medium",
			DisplayName: "Medium",
			SizeMB:      1500,
			Description: "High accuracy, slower",
			URL:         "https://huggingface.co/ggerganov/whisper.cpp/resolve/main/ggml-medium.bin",
		},
		{
			Name:        "large-v3",
			DisplayName: "Large v3",
			SizeMB:      3000,
			Description: "Best accuracy, slowest",
			URL:         "https://huggingface.co/ggerganov/whisper.cpp/resolve/main/ggml-large-v3.bin",
		},
		{
			Name:        "large-v3-turbo",
			DisplayName: "Large v3 Turbo",
			SizeMB:      1600,
			Description: "Fast and accurate",
			URL:         "https://huggingface.co/ggerganov/whisper.cpp/resolve/main/ggml-large-v3-turbo.bin",
		},
	}}
}

// Models returns the catalog entries in declaration order.
func (c Catalog) Models() []Model {
	out := make([]Model, len(c.models))
	copy(out, c.models)
	return out
}

func (c Catalog) Lookup(name string) (Model, bool) {
	for _, model := range c.models {
		if model.Name == name {
			return model, true
		}
	}
	return Model{}, false
}

func (c Catalog) Names() []string {
	names := make([]string, 0, len(c.models))
	for _, model := range c.models {
		names = append(names, model.Name)
	}
	sort.Strings(names)
	return names
}
