package storage

import (
	"context"
	"io"
)

// UploadResult describes a stored object: the bucket key, the public URL it
// will be served from, and the backend's ETag when it reports one.
type UploadResult struct {
	Key      string
	Location string
	ETag     string
}

// FileUploader abstracts the object store holding game logos. Handlers and
// services depend on this interface so tests can swap the real bucket out.
type FileUploader interface {
	Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error)

	Delete(ctx context.Context, key string) error

	// GetPublicURL builds the client-facing URL for a key. It does not check
	// that the object exists.
	GetPublicURL(key string) string
}
