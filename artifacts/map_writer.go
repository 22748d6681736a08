package artifacts

import (
	"errors"
	"io"
	"sync"
)

var ErrFileAlreadyExists = errors.New("file already exists")

// MapWriter implements an ArtifactWriter storing contents in a map.
type MapWriter struct {
	mu    sync.Mutex
	files map[string][]byte
}

// NewMapWriter creates an artifact writer in memory using a map.
func NewMapWriter() (*MapWriter, error) {
	return &MapWriter{
		files: map[string][]byte{},
	}, nil
}

// WriteFile places contents into files at filename.
func (w *MapWriter) WriteFile(filename string, contents io.Reader) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, exists := w.files[filename]; exists {
		return "", ErrFileAlreadyExists
	}

	b, err := io.ReadAll(contents)
	if err != nil {
		return "", err
	}
	w.files[filename] = b
	return filename, nil
}

// Files returns everything written so far, keyed by filename.
func (w *MapWriter) Files() map[string][]byte {
	w.mu.Lock()
	defer w.mu.Unlock()
	files := make(map[string][]byte, len(w.files))
	for k, v := range w.files {
		files[k] = v
	}
	return files
}
