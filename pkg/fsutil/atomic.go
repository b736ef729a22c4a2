package fsutil

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFileMode is the permission mode of written files when none is given.
const DefaultFileMode os.FileMode = 0o644

// WriteAtomic replaces the file at path with content.
//
// A sibling temporary file receives the content and is renamed over path once it
// is flushed to disk, so path holds either the previous or the complete new
// content. A zero mode means DefaultFileMode.
func WriteAtomic(ctx context.Context, path string, content []byte, mode os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if mode == 0 {
		mode = DefaultFileMode
	}

	staged, err := stage(path, content, mode)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	if err := os.Rename(staged, path); err != nil {
		return fmt.Errorf("write %s: %w", path, errors.Join(err, os.Remove(staged)))
	}
	return nil
}

// stage writes content to a new temporary file next to path and returns its name.
// The file is gone again when stage fails.
func stage(path string, content []byte, mode os.FileMode) (string, error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return "", err
	}

	_, err = f.Write(content)
	if err == nil {
		err = f.Chmod(mode)
	}
	if err == nil {
		err = f.Sync()
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}

	if err != nil {
		return "", errors.Join(err, os.Remove(f.Name()))
	}
	return f.Name(), nil
}
