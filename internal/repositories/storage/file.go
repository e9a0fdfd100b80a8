package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// FileConfig holds configuration for the file storage
type FileConfig struct {
	// Dir holds one YAML document per profile
	Dir string

	Profile string
}

// fileStorage keeps a profile's values in a YAML map on disk
type fileStorage struct {
	mu   sync.Mutex
	path string
}

// NewFile creates a storage backed by <dir>/<profile>.yaml. The file is
// created on the first Set.
func NewFile(cfg *FileConfig) (*fileStorage, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Dir == "" {
		return nil, ErrEmptyDir
	}

	profile := cfg.Profile
	if profile == "" {
		profile = defaultProfile
	}

	return &fileStorage{
		path: filepath.Join(cfg.Dir, profile+".yaml"),
	}, nil
}

// Get reads a value from the profile file
func (f *fileStorage) Get(_ context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.read()
	if err != nil {
		return "", err
	}

	value, ok := values[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

// Set rewrites the profile file with key updated
func (f *fileStorage) Set(_ context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.read()
	if err != nil {
		return err
	}
	values[key] = value

	return f.write(values)
}

func (f *fileStorage) read() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", f.path, err)
	}

	values := make(map[string]string)
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", f.path, err)
	}
	return values, nil
}

// write replaces the file through a rename so readers never see half of it
func (f *fileStorage) write(values map[string]string) error {
	data, err := yaml.Marshal(values)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(f.path), err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".tikkle-*")
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", f.path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", f.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", f.path, err)
	}

	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("failed to write %s: %w", f.path, err)
	}
	return nil
}
