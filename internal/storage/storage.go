package storage

import (
	"context"
	"mime/multipart"
)

// Asset describes a stored file: the key the store knows it by and the URL
// it is served from.
type Asset struct {
	StorageKey string
	URL        string
}

// Uploader is the narrow port to the blob store that hosts resume files.
// One-shot: callers treat any error as a failed upload, no retry.
type Uploader interface {
	Upload(ctx context.Context, file *multipart.FileHeader) (*Asset, error)
}
