package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// LocalStorageService implements document storage on the local filesystem.
// This is for demo deployments without a cloud object store.
type LocalStorageService struct {
	baseURL      string // Server URL (e.g., "http://localhost:8080")
	uploadsDir   string // Local directory for uploads (e.g., "./uploads")
	documentsDir string // Subdirectory for documents
}

// NewLocalStorageService creates a new local storage service
func NewLocalStorageService(baseURL, uploadsDir string) (*LocalStorageService, error) {
	documentsDir := filepath.Join(uploadsDir, "documents")

	if err := os.MkdirAll(documentsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create documents directory: %w", err)
	}

	return &LocalStorageService{
		baseURL:      baseURL,
		uploadsDir:   uploadsDir,
		documentsDir: documentsDir,
	}, nil
}

var _ DocumentStorage = (*LocalStorageService)(nil)

// GenerateUploadURL generates an upload URL pointing back at this server.
// The key rides in the query parameter so the upload handler knows where to
// save the body.
func (s *LocalStorageService) GenerateUploadURL(ctx context.Context, key string, contentType string, expiresIn time.Duration) (string, error) {
	uploadToken := uuid.New().String()
	uploadURL := fmt.Sprintf("%s/api/v1/upload/%s?key=%s", s.baseURL, uploadToken, url.QueryEscape(key))
	return uploadURL, nil
}

// GenerateDownloadURL generates a download URL pointing back at this server.
func (s *LocalStorageService) GenerateDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error) {
	downloadURL := fmt.Sprintf("%s/api/v1/download/%s?key=%s", s.baseURL, encodeKey(key), url.QueryEscape(key))
	return downloadURL, nil
}

// FileExists checks if file exists in the local filesystem
func (s *LocalStorageService) FileExists(ctx context.Context, key string) (bool, int64, error) {
	info, err := os.Stat(s.pathFor(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, 0, nil
		}
		return false, 0, err
	}
	return true, info.Size(), nil
}

// SaveFile writes the reader's contents under the given key
func (s *LocalStorageService) SaveFile(key string, reader io.Reader) error {
	fullPath := s.pathFor(key)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// ReadFile opens the file stored under the given key
func (s *LocalStorageService) ReadFile(key string) (io.ReadCloser, error) {
	return os.Open(s.pathFor(key))
}

// pathFor resolves a key inside the documents directory, rejecting any path
// escape via cleaned relative joins.
func (s *LocalStorageService) pathFor(key string) string {
	cleaned := filepath.Clean("/" + key)
	return filepath.Join(s.documentsDir, cleaned)
}

func encodeKey(key string) string {
	return strings.ReplaceAll(key, "/", "_")
}
