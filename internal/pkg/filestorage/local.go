package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/pkg/logger"
)

// LocalStorage handles saving certificates to the local filesystem.
type LocalStorage struct {
	basePath  string // directory the files are written to, e.g. static/uploads
	urlPrefix string // prefix of the stored relative path, e.g. uploads
}

// NewLocalStorage creates a new LocalStorage instance and ensures basePath exists.
func NewLocalStorage(basePath, urlPrefix string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath:  basePath,
		urlPrefix: strings.Trim(urlPrefix, "/"),
	}, nil
}

// SaveCertificate writes the upload as <timestamp>_<secure name> and returns
// the relative path recorded on the achievement (uploads/<name>).
func (ls *LocalStorage) SaveCertificate(fileHeader *multipart.FileHeader, at time.Time) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	storedName := at.Format(TimestampLayout) + "_" + SecureFilename(fileHeader.Filename)
	dstPath := filepath.Join(ls.basePath, storedName)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}

	if _, err = io.Copy(dst, file); err != nil {
		_ = dst.Close()
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}
	if err = dst.Close(); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to flush uploaded file")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to close destination file: %w", err)
	}

	relPath := path.Join(ls.urlPrefix, storedName)
	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", relPath).Msg("Certificate saved")
	return relPath, nil
}

// DeleteFile removes a stored file given its relative path (uploads/<name>).
// A missing file is not an error.
func (ls *LocalStorage) DeleteFile(filePath string) error {
	if filePath == "" {
		return nil
	}

	physicalPath := ls.GetFullPath(filePath)
	if physicalPath == "" {
		return fmt.Errorf("invalid file path: %s", filePath)
	}

	if err := os.Remove(physicalPath); err != nil {
		if os.IsNotExist(err) {
			logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
			return nil
		}
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", physicalPath).Msg("File deleted")
	return nil
}

// GetFullPath maps a stored relative path to its location on disk.
// Only the base name is used, so stored paths cannot escape basePath.
func (ls *LocalStorage) GetFullPath(filePath string) string {
	filename := path.Base(filepath.ToSlash(filePath))
	if filename == "" || filename == "." || filename == "/" || filename == ls.urlPrefix {
		return ""
	}
	return filepath.Join(ls.basePath, filename)
}
