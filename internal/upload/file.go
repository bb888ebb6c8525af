package upload

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
)

// File is a document queued for ingestion. Open is called only when the
// file's turn comes, so a batch never holds more than one file open.
type File struct {
	Name string
	Open func() (io.ReadCloser, error)
}

// FromPath returns a File backed by a path on disk.
func FromPath(path string) File {
	return File{
		Name: filepath.Base(path),
		Open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}
}

// FromBytes returns a File backed by an in-memory buffer.
func FromBytes(name string, data []byte) File {
	return File{
		Name: name,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}
