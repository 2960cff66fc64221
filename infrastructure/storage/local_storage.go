package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"shopadmin/domain/ports"
)

// LocalStorage implements StoragePort on the local filesystem. Default for
// development; the served URL assumes something fronts the base path.
type LocalStorage struct {
	basePath string
	baseURL  string
}

type LocalStorageConfig struct {
	BasePath string // ./uploads
	BaseURL  string // http://localhost:8080/files
}

func NewLocalStorage(config LocalStorageConfig) (ports.StoragePort, error) {
	if err := os.MkdirAll(config.BasePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &LocalStorage{
		basePath: config.BasePath,
		baseURL:  strings.TrimSuffix(config.BaseURL, "/"),
	}, nil
}

func (l *LocalStorage) UploadFile(file io.Reader, path string, contentType string) (string, error) {
	path = normalizeKey(path)
	fullPath := filepath.Join(l.basePath, path)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return l.GetFileURL(path), nil
}

func (l *LocalStorage) DeleteFile(path string) error {
	path = normalizeKey(path)
	fullPath := filepath.Join(l.basePath, path)

	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		// Already gone.
		return nil
	}

	if err := os.Remove(fullPath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

func (l *LocalStorage) GetFileURL(path string) string {
	path = normalizeKey(path)
	return l.baseURL + "/" + path
}

func (l *LocalStorage) GetProviderName() string {
	return "local"
}
