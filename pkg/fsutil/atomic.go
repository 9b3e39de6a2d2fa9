package fsutil

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFileMode is used for newly created output files when no mode is
// given.
const DefaultFileMode os.FileMode = 0644

// WriteAtomic writes content to path via a temp file in the same directory:
// write, fsync, chmod, rename. The rename is atomic on POSIX systems, so a
// reader never observes a partially written file and a failure at any step
// leaves the original untouched. A mode of 0 means DefaultFileMode.
func WriteAtomic(ctx context.Context, path string, content []byte, mode os.FileMode) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("write atomic: %w", ctx.Err())
	default:
	}

	if mode == 0 {
		mode = DefaultFileMode
	}

	dir := filepath.Dir(path)
	base := filepath.Base(path)

	tmp, err := os.CreateTemp(dir, base+".tmp.*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	discard := func(err error) error {
		return errors.Join(err, tmp.Close(), os.Remove(tmpPath))
	}

	if _, err := tmp.Write(content); err != nil {
		return discard(fmt.Errorf("write temp file: %w", err))
	}

	if err := tmp.Sync(); err != nil {
		return discard(fmt.Errorf("sync temp file: %w", err))
	}

	if err := tmp.Close(); err != nil {
		return errors.Join(fmt.Errorf("close temp file: %w", err), os.Remove(tmpPath))
	}

	if err := os.Chmod(tmpPath, mode); err != nil {
		return errors.Join(fmt.Errorf("chmod temp file: %w", err), os.Remove(tmpPath))
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return errors.Join(fmt.Errorf("rename temp file: %w", err), os.Remove(tmpPath))
	}

	return nil
}
