package serviceimpl

import (
	"context"
	"fmt"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosimple/slug"

	"shopadmin/domain/ports"
	"shopadmin/domain/services"
	"shopadmin/pkg/logger"
)

type UploadServiceImpl struct {
	storage ports.StoragePort
}

func NewUploadService(storage ports.StoragePort) services.UploadService {
	return &UploadServiceImpl{
		storage: storage,
	}
}

func (s *UploadServiceImpl) Upload(ctx context.Context, files []*multipart.FileHeader) ([]string, error) {
	links := make([]string, 0, len(files))

	for _, fileHeader := range files {
		link, err := s.uploadOne(ctx, fileHeader)
		if err != nil {
			return nil, err
		}
		links = append(links, link)
	}

	return links, nil
}

func (s *UploadServiceImpl) uploadOne(ctx context.Context, fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	key := objectKey(fileHeader.Filename)
	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(fileHeader.Filename))
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	link, err := s.storage.UploadFile(src, key, contentType)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to store file",
			"filename", fileHeader.Filename,
			"key", key,
			"error", err,
		)
		return "", err
	}

	logger.InfoContext(ctx, "File uploaded",
		"filename", fileHeader.Filename,
		"key", key,
		"size", fileHeader.Size,
		"provider", s.storage.GetProviderName(),
	)
	return link, nil
}

// objectKey builds a timestamp-based storage key from the original filename,
// e.g. "1709205731000-red-shirt.jpg". The slugged base keeps keys readable;
// the millisecond prefix keeps them from colliding across uploads.
func objectKey(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))

	name := slug.Make(base)
	if name == "" {
		name = "file"
	}

	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), name, ext)
}
