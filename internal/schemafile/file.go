package schemafile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrResourceUnavailable wraps every failure to read or replace a schema.
var ErrResourceUnavailable = errors.New("schema file unavailable")

const filePerm = 0o644

// Read returns the whole file as text.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: reading %s: %w", ErrResourceUnavailable, path, err)
	}

	return string(data), nil
}

// Write replaces the file at path with content. An existing file keeps its
// permission bits; a new file gets 0644.
func Write(path, content string) (err error) {
	mode := fs.FileMode(filePerm)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrResourceUnavailable, path, err)
	}

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.WriteString(content); err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrResourceUnavailable, path, err)
	}

	if err = tmp.Chmod(mode); err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrResourceUnavailable, path, err)
	}

	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("%w: syncing %s: %w", ErrResourceUnavailable, path, err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrResourceUnavailable, path, err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: replacing %s: %w", ErrResourceUnavailable, path, err)
	}

	return nil
}
