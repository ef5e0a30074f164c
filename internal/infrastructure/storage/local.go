// Package storage implements local-disk file storage for the upload and
// download endpoints.
package storage

import (
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"

	"github.com/starcode/library-api/internal/core/domain"
	"github.com/starcode/library-api/internal/core/ports"
)

// Local stores files under a single base directory. File names are
// flattened to their base component, so a name can never address a
// path outside the directory.
type Local struct {
	baseDir string
}

// NewLocal creates the base directory if needed and returns the store.
func NewLocal(baseDir string) (*Local, error) {
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFileStorage, err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFileStorage, err)
	}
	return &Local{baseDir: abs}, nil
}

// Store writes r to disk under name, replacing any previous content.
// Returns the number of bytes written.
func (l *Local) Store(name string, _ string, r io.Reader) (int64, error) {
	path, err := l.resolve(name)
	if err != nil {
		return 0, err
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrFileStorage, err)
	}
	defer f.Close()

	n, err := io.Copy(f, r)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrFileStorage, err)
	}
	return n, nil
}

// Load opens a stored file. The content type is derived from the file
// extension, defaulting to application/octet-stream.
func (l *Local) Load(name string) (*ports.StoredFile, error) {
	path, err := l.resolve(name)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, domain.ErrFileNotFound
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, domain.ErrFileNotFound
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &ports.StoredFile{
		Name:        filepath.Base(path),
		ContentType: contentType,
		Size:        info.Size(),
		Reader:      f,
	}, nil
}

// resolve normalizes name and guarantees the result stays inside the
// base directory.
func (l *Local) resolve(name string) (string, error) {
	clean := filepath.Base(filepath.Clean(name))
	if clean == "" || clean == "." || clean == ".." || clean == string(filepath.Separator) {
		return "", fmt.Errorf("%w: invalid file name %q", domain.ErrFileStorage, name)
	}
	return filepath.Join(l.baseDir, clean), nil
}
