package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
)

// ErrTargetExists is returned by MoveFile when dst is already present.
var ErrTargetExists = errors.New("target already exists")

// MoveFile renames src to dst within one filesystem. An existing dst is
// never replaced; that case returns an error wrapping ErrTargetExists.
func MoveFile(src, dst string) error {
	if src == dst {
		return nil
	}
	if err := renameNoReplace(src, dst); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("move %s: %w", dst, ErrTargetExists)
		}
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}

// renameExclusive is the portable fallback: a target check followed by a
// plain rename. A target created between the two steps can be replaced.
func renameExclusive(src, dst string) error {
	if _, err := os.Lstat(dst); err == nil {
		return &os.LinkError{Op: "rename", Old: src, New: dst, Err: fs.ErrExist}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.Rename(src, dst)
}

// PreserveModTime sets both the access and modification time of path to mtime.
func PreserveModTime(path string, mtime time.Time) error {
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		return fmt.Errorf("set times on %s: %w", path, err)
	}
	return nil
}
