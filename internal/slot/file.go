package slot

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// File stores each key as <dir>/<key>.json. Writes go through a temporary
// file and a rename so a crash never leaves a half-written value.
type File struct {
	dir string
}

// NewFile creates a file slot rooted at dir. The directory is created on
// first write.
func NewFile(dir string) (*File, error) {
	if dir == "" {
		return nil, fmt.Errorf("file backend requires storage.path")
	}
	return &File{dir: dir}, nil
}

// Dir returns the data directory.
func (f *File) Dir() string { return f.dir }

func (f *File) path(key string) (string, error) {
	if err := CheckKey(key); err != nil {
		return "", err
	}
	return filepath.Join(f.dir, key+".json"), nil
}

// Get implements Slot.
func (f *File) Get(ctx context.Context, key string) (string, bool, error) {
	p, err := f.path(key)
	if err != nil {
		return "", false, err
	}
	data, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read %s: %w", key, err)
	}
	return string(data), true, nil
}

// Set implements Slot.
func (f *File) Set(ctx context.Context, key, value string) error {
	p, err := f.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(f.dir, 0700); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(f.dir, "."+key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := os.Chmod(tmpName, 0600); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := os.Rename(tmpName, p); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// Close implements Slot.
func (f *File) Close() error { return nil }
