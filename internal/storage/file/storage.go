package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Storage persists each key as a file under a data directory, created lazily
// with owner-only permissions.
type Storage struct {
	dir string
}

// New creates a file storage rooted at dir
func New(dir string) *Storage {
	return &Storage{dir: dir}
}

// DefaultDir returns the default data directory, ~/.crown
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".crown"
	}
	return filepath.Join(home, ".crown")
}

// Load reads the value for key; a missing key is not an error
func (s *Storage) Load(key string) ([]byte, bool, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, false, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

// Save writes the value for key, creating the data directory if needed
func (s *Storage) Save(key string, value []byte) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return err
	}
	return os.WriteFile(path, value, 0600)
}

// Delete removes the value for key; deleting a missing key is a no-op
func (s *Storage) Delete(key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *Storage) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(s.dir, key), nil
}
