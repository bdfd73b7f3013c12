package services

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrNoExtension = errors.New("filename has no extension")

// AssetService stores uploaded cover files under a local directory served at
// /uploads/. Old assets are never reclaimed when a cover is replaced.
type AssetService struct {
	dir string
}

// NewAssetService creates an AssetService, ensuring the uploads directory exists.
func NewAssetService(dir string) (*AssetService, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create uploads dir: %v", err)
	}
	return &AssetService{dir: dir}, nil
}

// Store writes the uploaded stream to a stable name qualified by the
// original filename's extension and returns the asset reference. An original
// name without an extension is a validation error.
func (s *AssetService) Store(src io.Reader, originalName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" || ext == "." {
		return "", ErrNoExtension
	}

	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create asset file: %v", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write asset file: %v", err)
	}

	return path.Join("uploads", name), nil
}

// Path resolves an asset reference back to its location on disk.
func (s *AssetService) Path(ref string) string {
	return filepath.Join(s.dir, path.Base(ref))
}
