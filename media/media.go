// Package media keeps uploaded food images on local disk.
package media

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrUnsupportedType is returned for uploads that are not a known image format.
var ErrUnsupportedType = errors.New("unsupported image type")

var imageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

// Storage writes uploads below Dir. References it returns are slash separated
// and relative to Dir, so they can be served under /media/.
type Storage struct {
	Dir    string
	Prefix string // sub-directory for food images
}

func NewStorage(dir string) *Storage {
	return &Storage{Dir: dir, Prefix: "food_images"}
}

// SaveImage stores fh under a fresh uuid name and returns its reference.
func (s *Storage) SaveImage(fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !imageExts[ext] {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, ext)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	if err := os.MkdirAll(filepath.Join(s.Dir, s.Prefix), 0o755); err != nil {
		return "", fmt.Errorf("create media dir: %w", err)
	}

	ref := path.Join(s.Prefix, uuid.NewString()+ext)
	dst, err := os.Create(filepath.Join(s.Dir, filepath.FromSlash(ref)))
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", fmt.Errorf("write image: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("close image: %w", err)
	}
	return ref, nil
}

// Remove deletes a stored image. Missing files are ignored.
func (s *Storage) Remove(ref string) error {
	if ref == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.Dir, filepath.FromSlash(ref)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove image: %w", err)
	}
	return nil
}
