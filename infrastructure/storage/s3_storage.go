package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"shopadmin/domain/ports"
	"shopadmin/pkg/logger"
)

// S3Storage implements StoragePort for S3-compatible storage (AWS S3, MinIO, R2).
type S3Storage struct {
	client    *minio.Client
	bucket    string
	publicURL string
	endpoint  string
	useSSL    bool
}

type S3StorageConfig struct {
	Endpoint  string // s3.amazonaws.com or minio:9000
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	Region    string
	PublicURL string // optional public base URL, e.g. https://bucket.s3.amazonaws.com
}

func NewS3Storage(config S3StorageConfig) (ports.StoragePort, error) {
	client, err := minio.New(config.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.AccessKey, config.SecretKey, ""),
		Secure: config.UseSSL,
		Region: config.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, config.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}

	if !exists {
		err = client.MakeBucket(ctx, config.Bucket, minio.MakeBucketOptions{
			Region: config.Region,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		logger.Info("S3 bucket created", "bucket", config.Bucket)
	}

	logger.Info("S3 storage initialized",
		"endpoint", config.Endpoint,
		"bucket", config.Bucket,
		"ssl", config.UseSSL,
	)

	return &S3Storage{
		client:    client,
		bucket:    config.Bucket,
		publicURL: strings.TrimSuffix(config.PublicURL, "/"),
		endpoint:  config.Endpoint,
		useSSL:    config.UseSSL,
	}, nil
}

func (s *S3Storage) UploadFile(file io.Reader, path string, contentType string) (string, error) {
	ctx := context.Background()

	path = normalizeKey(path)

	// Size -1 streams the reader to completion without buffering it.
	_, err := s.client.PutObject(ctx, s.bucket, path, file, -1, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	logger.Debug("File uploaded to S3", "path", path, "content_type", contentType)

	return s.GetFileURL(path), nil
}

func (s *S3Storage) DeleteFile(path string) error {
	ctx := context.Background()

	path = normalizeKey(path)

	err := s.client.RemoveObject(ctx, s.bucket, path, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Debug("File deleted from S3", "path", path)
	return nil
}

func (s *S3Storage) GetFileURL(path string) string {
	path = normalizeKey(path)

	if s.publicURL != "" {
		return s.publicURL + "/" + path
	}

	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}

	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, s.bucket, path)
}

func (s *S3Storage) GetProviderName() string {
	return "s3"
}

func normalizeKey(path string) string {
	path = strings.TrimPrefix(path, "/")
	return strings.ReplaceAll(path, "\\", "/")
}
