package store

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"fjacquet/orcamento/internal/fileutils"
	"fjacquet/orcamento/internal/models"
)

// FileStore keeps one file per key in a directory. Writes go through a
// temporary file and a rename so readers never see a partial value.
type FileStore struct {
	Dir string
}

// NewFileStore creates the directory if needed and returns a store rooted there.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("settings directory must not be empty")
	}
	if err := fileutils.EnsureDirectoryExists(dir); err != nil {
		return nil, fmt.Errorf("error creating settings directory: %w", err)
	}
	return &FileStore{Dir: dir}, nil
}

func (s *FileStore) pathFor(key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("settings key must not be empty")
	}
	return filepath.Join(s.Dir, url.PathEscape(key)+".json"), nil
}

// Get reads the file for key.
func (s *FileStore) Get(key string) (string, bool, error) {
	path, err := s.pathFor(key)
	if err != nil {
		return "", false, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("error reading setting %s: %w", key, err)
	}
	return string(data), true, nil
}

// Set writes value to the file for key.
func (s *FileStore) Set(key, value string) error {
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.Dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("error creating temporary file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(value); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("error writing setting %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("error writing setting %s: %w", key, err)
	}
	if err := os.Chmod(tmpName, models.PermissionSettingsFile); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("error setting permissions on %s: %w", key, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("error writing setting %s: %w", key, err)
	}
	return nil
}

// Delete removes the file for key.
func (s *FileStore) Delete(key string) error {
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error deleting setting %s: %w", key, err)
	}
	return nil
}
