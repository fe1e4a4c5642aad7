package filestorage

import (
	"mime/multipart"
	"time"
)

// FileStorage defines the interface for certificate storage operations
type FileStorage interface {
	// SaveCertificate stores an uploaded certificate and returns its relative path
	SaveCertificate(fileHeader *multipart.FileHeader, at time.Time) (string, error)

	// DeleteFile removes a file previously returned by SaveCertificate
	DeleteFile(filePath string) error

	// GetFullPath returns the filesystem path for a stored relative path
	GetFullPath(filePath string) string
}
