// Package publish writes rendered pages and static assets to a
// storage target: a local directory for static hosting, or an S3
// bucket for CDN-backed deployment.
package publish

import (
	"context"
	"errors"
	"io"
)

// ErrEmptyKey is returned when a page or asset key is empty.
var ErrEmptyKey = errors.New("publish: empty key")

// ErrNilDocument is returned when a nil document is published.
var ErrNilDocument = errors.New("publish: nil document")

// Target is a storage backend for published output.
// Implement this interface to publish to GCS, FTP, or anything else.
type Target interface {
	// Put stores body under key with the given content type and
	// returns the stored location (a path or URL).
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}
