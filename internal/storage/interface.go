package storage

import (
	"context"
	"io"
	"time"
)

// DocumentStorage defines the interface for document blob storage backends.
// The local implementation serves demo deployments; the same contract fits a
// cloud object store.
type DocumentStorage interface {
	// GenerateUploadURL generates a URL a client can PUT a document to.
	// key: storage path/key for the file
	// contentType: MIME type (e.g., "application/pdf")
	// expiresIn: how long the URL should be valid
	GenerateUploadURL(ctx context.Context, key string, contentType string, expiresIn time.Duration) (string, error)

	// GenerateDownloadURL generates a URL a client can GET a document from.
	GenerateDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error)

	// FileExists checks if a file exists and returns its size
	FileExists(ctx context.Context, key string) (exists bool, size int64, err error)

	// SaveFile saves a file (used by the local storage HTTP handler)
	SaveFile(key string, reader io.Reader) error

	// ReadFile opens a file for reading (used by the local storage HTTP handler)
	ReadFile(key string) (io.ReadCloser, error)
}
