package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/yanqian/outfitter/internal/domain/wardrobe"
)

// LocalStorage writes blobs under a directory on the local filesystem.
type LocalStorage struct {
	root string
}

// NewLocalStorage creates root if needed.
func NewLocalStorage(root string) (*LocalStorage, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve storage dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &LocalStorage{root: abs}, nil
}

func (s *LocalStorage) Put(_ context.Context, key string, data []byte, mimeType string) (wardrobe.StoredObject, error) {
	path, err := s.resolve(key)
	if err != nil {
		return wardrobe.StoredObject{}, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return wardrobe.StoredObject{}, fmt.Errorf("create blob dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return wardrobe.StoredObject{}, fmt.Errorf("write blob: %w", err)
	}
	return wardrobe.StoredObject{
		Key:      key,
		Size:     int64(len(data)),
		MimeType: mimeType,
		ETag:     etag(data),
	}, nil
}

func (s *LocalStorage) Get(_ context.Context, key string) (io.ReadCloser, error) {
	path, err := s.resolve(key)
	if err != nil {
		// an unusable key names no stored object.
		return nil, fmt.Errorf("%w: %v", os.ErrNotExist, err)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (s *LocalStorage) Delete(_ context.Context, key string) error {
	path, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// resolve maps key below root and refuses anything that escapes it.
func (s *LocalStorage) resolve(key string) (string, error) {
	clean := filepath.Clean("/" + strings.TrimSpace(key))
	if clean == "/" {
		return "", fmt.Errorf("empty blob key")
	}
	path := filepath.Join(s.root, clean)
	if !strings.HasPrefix(path, s.root+string(filepath.Separator)) {
		return "", fmt.Errorf("blob key %q escapes storage root", key)
	}
	return path, nil
}

var _ wardrobe.ObjectStorage = (*LocalStorage)(nil)
