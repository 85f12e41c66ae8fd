package internal

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	appDirName     = "playtime"
	configFileName = "config.yaml"
)

// Store reads and writes the config file inside a single directory
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. The directory is created on first Read.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultStore returns a store in the platform's per-user config directory,
// e.g. ~/.config/playtime on Linux.
func DefaultStore() (*Store, error) {
	base, err := os.UserConfigDir()
	if err != nil || base == "" {
		return nil, ErrNoConfigDir
	}
	return NewStore(filepath.Join(base, appDirName)), nil
}

// Dir returns the config directory
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the path to the config file
func (s *Store) Path() string {
	return filepath.Join(s.dir, configFileName)
}

// EnsureDir creates the config directory if it is missing and verifies that
// the path is a directory.
func (s *Store) EnsureDir() error {
	info, err := os.Stat(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		LogDebug("Creating config directory %s", s.dir)
		if err := os.MkdirAll(s.dir, 0755); err != nil {
			return &StorageError{Path: s.dir, Op: "mkdir", Err: err}
		}
		return nil
	}
	if err != nil {
		return &StorageError{Path: s.dir, Op: "stat", Err: err}
	}
	if !info.IsDir() {
		return ErrInvalidConfigDir
	}
	return nil
}

// Exists reports whether the config file is present
func (s *Store) Exists() bool {
	_, err := os.Stat(s.Path())
	return err == nil
}

// Read loads the config. A missing file yields an empty config.
func (s *Store) Read() (*Config, error) {
	if err := s.EnsureDir(); err != nil {
		return nil, err
	}

	path := s.Path()
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		LogDebug("No config file at %s, starting empty", path)
		return &Config{Apps: []App{}}, nil
	}
	if err != nil {
		return nil, &StorageError{Path: path, Op: "stat", Err: err}
	}
	if !info.Mode().IsRegular() {
		return nil, ErrInvalidConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &StorageError{Path: path, Op: "read", Err: err}
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	if config.Apps == nil {
		config.Apps = []App{}
	}

	LogDebug("Loaded %d app(s) from %s", len(config.Apps), path)
	return &config, nil
}

// Save rewrites the whole config file. The new content is written to a
// temporary file in the same directory and renamed over the old one.
func (s *Store) Save(config *Config) error {
	if err := s.EnsureDir(); err != nil {
		return err
	}

	data, err := Encode(config)
	if err != nil {
		return err
	}

	path := s.Path()
	tmp, err := os.CreateTemp(s.dir, configFileName+".*.tmp")
	if err != nil {
		return &StorageError{Path: s.dir, Op: "create", Err: err}
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return &StorageError{Path: tmpPath, Op: "write", Err: err}
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return &StorageError{Path: tmpPath, Op: "sync", Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &StorageError{Path: tmpPath, Op: "close", Err: err}
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return &StorageError{Path: tmpPath, Op: "chmod", Err: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return &StorageError{Path: path, Op: "rename", Err: err}
	}

	LogDebug("Saved %d app(s) to %s", len(config.Apps), path)
	return nil
}

// Encode serializes a config to the on-disk YAML form
func Encode(config *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(config); err != nil {
		return nil, &EncodeError{Err: err}
	}
	if err := enc.Close(); err != nil {
		return nil, &EncodeError{Err: err}
	}
	return buf.Bytes(), nil
}
