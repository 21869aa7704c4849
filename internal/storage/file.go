package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists the key-value map as a single JSON file. Every Set
// rewrites the file atomically: temp file, fsync, rename.
type FileStore struct {
	path   string
	values map[string]string
}

// OpenFile loads (or initializes) a file-backed store at path. A missing
// file yields an empty store; a malformed file is treated as empty and
// overwritten on the next Set.
func OpenFile(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}
	fs := &FileStore{path: path, values: make(map[string]string)}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return fs, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &fs.values); err != nil {
		fs.values = make(map[string]string)
	}
	return fs, nil
}

// Get returns the value for key, with ok=false when absent.
func (f *FileStore) Get(key string) (string, bool, error) {
	v, ok := f.values[key]
	return v, ok, nil
}

// Set stores the value under key and rewrites the backing file.
func (f *FileStore) Set(key, value string) error {
	f.values[key] = value
	return f.flush()
}

func (f *FileStore) flush() error {
	data, err := json.MarshalIndent(f.values, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := writeFileAtomic(f.path, data); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// writeFileAtomic writes data to path via the temp-file, fsync, rename
// pattern so a crash never leaves a half-written store behind.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".store-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
