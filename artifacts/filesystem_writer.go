package artifacts

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"
)

// FilesystemWriter is an ArtifactWriter that targets a particular directory on
// the underlying filesystem. Absolute filenames are written as-is.
type FilesystemWriter struct {
	dir string
	fs  afero.Fs
}

// NewFilesystemWriter creates an artifact writer which writes to the filesystem,
// relative to the current working directory unless WithDirectory is given.
func NewFilesystemWriter(opts ...FilesystemWriterOption) (*FilesystemWriter, error) {
	w := FilesystemWriter{
		dir: resolveFullPath("."),
		fs:  afero.NewOsFs(),
	}

	for _, opt := range opts {
		opt(&w)
	}

	return &w, nil
}

// WithDirectory sets the artifacts directory to dir unless it's empty, in which case
// this option is ignored.
func WithDirectory(dir string) FilesystemWriterOption {
	return func(w *FilesystemWriter) {
		if dir == "" {
			return
		}
		w.dir = resolveFullPath(dir)
	}
}

// WithFs swaps the backing filesystem, e.g. for afero.NewMemMapFs in tests.
func WithFs(fs afero.Fs) FilesystemWriterOption {
	return func(w *FilesystemWriter) {
		if fs == nil {
			return
		}
		w.fs = fs
	}
}

type FilesystemWriterOption = func(*FilesystemWriter)

// WriteFile places contents into dir at filename, creating parent directories
// as needed and replacing any existing file.
func (w *FilesystemWriter) WriteFile(filename string, contents io.Reader) (string, error) {
	fullFilePath := filename
	if !filepath.IsAbs(filename) {
		fullFilePath = filepath.Join(w.Path(), filename)
	}

	if err := afero.WriteReader(w.fs, fullFilePath, contents); err != nil {
		return fullFilePath, fmt.Errorf("could not write file %s: %w", fullFilePath, err)
	}
	return fullFilePath, nil
}

// Path is the full artifacts path.
func (w *FilesystemWriter) Path() string {
	return w.dir
}
