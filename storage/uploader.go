package storage

import (
	"context"
	"io"
)

type UploadResult struct {
	Key      string
	Location string
}

// BackupUploader pushes exported tournament documents to off-box storage.
// A nil uploader is legal configuration: exports then stay local-only.
type BackupUploader interface {
	Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error)

	GetPublicURL(key string) string
}
