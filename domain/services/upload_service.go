package services

import (
	"context"
	"mime/multipart"
)

type UploadService interface {
	// Upload stores each file under a timestamp-based key and returns the
	// public URLs in the same order the files were submitted.
	Upload(ctx context.Context, files []*multipart.FileHeader) ([]string, error)
}
