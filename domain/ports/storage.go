package ports

import "io"

// StoragePort abstracts the object storage provider so the upload flow does
// not care whether bytes land on S3-compatible storage or the local disk.
type StoragePort interface {
	// UploadFile stores the content under the given key and returns the
	// public URL of the stored object.
	UploadFile(file io.Reader, path string, contentType string) (string, error)

	// DeleteFile removes a stored object. Deleting a missing object is not
	// an error.
	DeleteFile(path string) error

	// GetFileURL returns the public URL for a stored key.
	GetFileURL(path string) string

	// GetProviderName names the backing provider (local, s3).
	GetProviderName() string
}
