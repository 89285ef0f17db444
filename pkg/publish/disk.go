package publish

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Disk publishes to a local directory, creating parent directories as
// needed. Files are written 0644, directories 0755.
type Disk struct {
	// Root is the output directory. Keys are joined under it.
	Root string
}

// NewDisk creates a disk target rooted at dir, creating it if needed.
func NewDisk(dir string) (*Disk, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &Disk{Root: dir}, nil
}

// Put writes body to Root/key and returns the written path.
// The content type is ignored; on disk the extension carries it.
func (d *Disk) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := filepath.Join(d.Root, filepath.FromSlash(strings.TrimPrefix(key, "/")))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}
