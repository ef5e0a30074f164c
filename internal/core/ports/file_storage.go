package ports

import "io"

// StoredFile describes a file returned by a FileStorage lookup.
type StoredFile struct {
	Name        string
	ContentType string
	Size        int64
	Reader      io.ReadCloser
}

// FileStorage stores and retrieves uploaded files by name.
type FileStorage interface {
	Store(name string, contentType string, r io.Reader) (int64, error)
	Load(name string) (*StoredFile, error)
}
