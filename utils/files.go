package utils

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// StoragePath returns the configured upload directory, creating it when
// absent. UPLOAD_PATH defaults to ./uploads.
func StoragePath() (string, error) {
	uploadPath := os.Getenv("UPLOAD_PATH")
	if uploadPath == "" {
		uploadPath = "./uploads"
	}
	if err := os.MkdirAll(uploadPath, os.ModePerm); err != nil {
		return "", err
	}
	return uploadPath, nil
}

// StoredFilename generates a random on-disk name that keeps the original
// extension, so uploads never collide or clobber each other.
func StoredFilename(originalName string) string {
	return uuid.New().String() + filepath.Ext(originalName)
}

// RemoveStoredFile deletes an uploaded file, best effort. A path that is
// empty or already gone is not an error.
func RemoveStoredFile(path string) {
	if path == "" {
		return
	}
	_ = os.Remove(path)
}
