package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fmueller/whisperctl/internal/catalog"
	"go.uber.org/zap"
)

// tempSuffix marks the only path that may ever hold partial data. The
// final artifact path is touched exclusively by the commit rename.
const tempSuffix = ".part"

var (
	ErrUnknownModel  = errors.New("unknown model")
	ErrNotDownloaded = errors.New("model not downloaded")
)

// StatusError reports a non-success HTTP response from the model host.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.Code)
}

// ModelStatus pairs a catalog entry with its on-disk state.
type ModelStatus struct {
	catalog.Model
	Downloaded bool
}

// Store downloads, locates, and deletes model artifacts in a single
// directory, one file per catalog entry.
type Store struct {
	catalog catalog.Catalog
	dir     string
	client  *http.Client
	logger  *zap.Logger
}

func New(cat catalog.Catalog, dir string, client *http.Client, logger *zap.Logger) *Store {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Minute}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{catalog: cat, dir: dir, client: client, logger: logger}
}

func (s *Store) Models() []catalog.Model {
	return s.catalog.Models()
}

// Status returns every catalog entry with its downloaded flag, in catalog
// order.
func (s *Store) Status() []ModelStatus {
	models := s.catalog.Models()
	out := make([]ModelStatus, 0, len(models))
	for _, model := range models {
		out = append(out, ModelStatus{Model: model, Downloaded: s.IsDownloaded(model.Name)})
	}
	return out
}

// Path maps a model name to its deterministic artifact path. It does not
// consult the catalog; callers validate the name where that matters.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, fmt.Sprintf("ggml-%s.bin", name))
}

func (s *Store) IsDownloaded(name string) bool {
	_, err := os.Stat(s.Path(name))
	return err == nil
}

// Download fetches the named model into the store. The artifact streams to
// a temp file and is committed with a single rename, so the final path
// never holds a partial download. Progress samples are forwarded to
// onProgress from a dedicated observer goroutine, keeping the callback off
// the transfer's write path; samples arrive in order with monotonically
// non-decreasing byte counts.
func (s *Store) Download(ctx context.Context, name string, onProgress ProgressFunc) (string, error) {
	model, ok := s.catalog.Lookup(name)
	if !ok {
		return "", fmt.Errorf("%w: %q (known models: %s)", ErrUnknownModel, name, strings.Join(s.catalog.Names(), ", "))
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create models directory: %w", err)
	}

	target := s.Path(name)
	tempPath := target + tempSuffix
	// A failed earlier attempt may have left a stale temp file behind.
	_ = os.Remove(tempPath)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, model.URL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "whisperctl/1")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("download request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{Code: resp.StatusCode}
	}

	total := resp.ContentLength
	if total < 0 {
		// Unknown length is a legitimate, permanent state for the
		// rest of the transfer.
		total = 0
	}

	outFile, err := os.Create(tempPath)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	s.logger.Info("downloading model",
		zap.String("model", name),
		zap.String("url", model.URL),
		zap.Int64("total_bytes", total),
	)

	var writer io.Writer = outFile
	if onProgress != nil {
		observer := newProgressObserver(name, total, onProgress)
		defer observer.stop()
		// MultiWriter writes the file before the observer, so every
		// sample reflects durably written bytes.
		writer = io.MultiWriter(outFile, observer)
	}

	written, err := io.Copy(writer, resp.Body)
	if err != nil {
		_ = outFile.Close()
		return "", fmt.Errorf("download body: %w", err)
	}

	if err := outFile.Sync(); err != nil {
		_ = outFile.Close()
		return "", fmt.Errorf("sync temp file: %w", err)
	}
	if err := outFile.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tempPath, target); err != nil {
		return "", fmt.Errorf("move temp file into place: %w", err)
	}

	s.logger.Info("model downloaded",
		zap.String("model", name),
		zap.String("path", target),
		zap.Int64("bytes", written),
	)
	return target, nil
}

// Delete removes the named model's artifact. Deleting a model that is not
// on disk is not an error.
func (s *Store) Delete(name string) error {
	if err := os.Remove(s.Path(name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete model %s: %w", name, err)
	}
	return nil
}
