package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Document is a single JSON value persisted in one file. All access goes through a
// process-wide mutex so read-modify-write cycles never lose updates.
type Document[T any] struct {
	mu   sync.Mutex
	path string
}

// NewDocument binds a document to path. The file is created lazily on first write.
func NewDocument[T any](path string) *Document[T] {
	return &Document[T]{path: path}
}

// Path returns the backing file location.
func (d *Document[T]) Path() string {
	return d.path
}

// Read loads the current value. A missing or empty file yields the zero value.
func (d *Document[T]) Read() (T, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.load()
}

// Write replaces the stored value.
func (d *Document[T]) Write(value T) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.store(value)
}

// Update loads the value, applies fn and persists the result while holding the lock.
// Returning an error from fn aborts the write.
func (d *Document[T]) Update(fn func(*T) error) (T, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	value, err := d.load()
	if err != nil {
		return value, err
	}
	if err := fn(&value); err != nil {
		return value, err
	}
	if err := d.store(value); err != nil {
		return value, err
	}
	return value, nil
}

func (d *Document[T]) load() (T, error) {
	var value T
	data, err := os.ReadFile(d.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return value, nil
		}
		return value, fmt.Errorf("read %s: %w", d.path, err)
	}
	if len(data) == 0 {
		return value, nil
	}
	if err := json.Unmarshal(data, &value); err != nil {
		return value, fmt.Errorf("decode %s: %w", d.path, err)
	}
	return value, nil
}

// store writes to a sibling temp file and renames it over the target so readers
// never observe a partially written document.
func (d *Document[T]) store(value T) error {
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", d.path, err)
	}

	dir := filepath.Dir(d.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dir %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(d.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(append(payload, '\n')); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), d.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("replace %s: %w", d.path, err)
	}
	return nil
}
