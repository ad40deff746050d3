package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"
)

// LocalStore implements Uploader on the local filesystem. Files land under
// baseDir and are served from baseURL by the static file route.
type LocalStore struct {
	baseDir string
	baseURL string
}

// NewLocalStore creates a LocalStore rooted at baseDir.
func NewLocalStore(baseDir, baseURL string) *LocalStore {
	return &LocalStore{baseDir: baseDir, baseURL: baseURL}
}

// Upload copies the multipart file into the store and returns its descriptor.
func (s *LocalStore) Upload(ctx context.Context, fileHeader *multipart.FileHeader) (*Asset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir := filepath.Join(s.baseDir, "resumes")
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	// Prefix with a timestamp so two applicants can upload files with the
	// same name.
	fileName := fmt.Sprintf("%d_%s", time.Now().UnixNano(), filepath.Base(fileHeader.Filename))
	filePath := filepath.Join(dir, fileName)

	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file on server: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(filePath) // Attempt to clean up
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	key := filepath.ToSlash(filepath.Join("resumes", fileName)) // Store with forward slashes for consistency
	return &Asset{
		StorageKey: key,
		URL:        s.baseURL + "/" + key,
	}, nil
}
