// Package storage persists uploaded avatar files on local disk.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalStore writes uploaded files into a single directory.
// Files are renamed to a UUID so client-supplied names never reach the filesystem.
type LocalStore struct {
	dir string
}

// NewLocalStore creates the upload directory if needed and returns a store over it.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Dir returns the directory the store writes into.
func (s *LocalStore) Dir() string {
	return s.dir
}

// Save stores the uploaded file under a generated name, keeping the original
// extension, and returns the path relative to the upload directory root.
func (s *LocalStore) Save(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	name := uuid.NewString() + filepath.Ext(file.Filename)
	path := filepath.Join(s.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		// Remove the partial file so a failed upload leaves nothing behind
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return name, nil
}
