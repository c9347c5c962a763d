// Package media validates uploaded images and keeps them on disk under the media root.
package media

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
)

// Storage writes files below root/subdir. References handed out are
// slash-separated paths relative to root, e.g. "uploads/product/<id>.png".
type Storage struct {
	root   string
	subdir string
	mu     sync.RWMutex
}

// NewStorage creates root/subdir if needed.
func NewStorage(root, subdir string) (*Storage, error) {
	if root == "" {
		return nil, fmt.Errorf("media root cannot be empty")
	}
	if subdir == "" {
		return nil, fmt.Errorf("subdirectory cannot be empty")
	}

	if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(subdir)), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s directory: %w", subdir, err)
	}

	return &Storage{
		root:   root,
		subdir: subdir,
	}, nil
}

// Root returns the directory served as /media.
func (s *Storage) Root() string {
	return s.root
}

// Save stores data as name and returns its reference.
func (s *Storage) Save(name string, data []byte) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("invalid file name %q", name)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("file data cannot be empty")
	}

	ref := path.Join(s.subdir, name)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.WriteFile(s.Path(ref), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return ref, nil
}

// Exists reports whether ref points at a stored file.
func (s *Storage) Exists(ref string) bool {
	if ref == "" {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	_, err := os.Stat(s.Path(ref))
	return err == nil
}

// Delete removes the file behind ref. Missing files are not an error.
func (s *Storage) Delete(ref string) error {
	if ref == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.Path(ref)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// Path returns the filesystem path for ref.
func (s *Storage) Path(ref string) string {
	return filepath.Join(s.root, filepath.FromSlash(path.Clean("/"+ref)))
}
