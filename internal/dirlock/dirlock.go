// Package dirlock serializes runs against the same directory with an advisory
// lock file kept outside the directory being renamed.
package dirlock

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrLocked reports that another run holds the directory.
var ErrLocked = errors.New("another samerename run holds this directory")

// Lock is a held directory lock.
type Lock struct {
	path string
	lock *flock.Flock
}

// PathFor returns the lock file used for dir under lockDir. An empty lockDir
// means the system temporary directory.
func PathFor(lockDir, dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve directory: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}
	if lockDir == "" {
		lockDir = os.TempDir()
	}
	sum := sha256.Sum256([]byte(abs))
	return filepath.Join(lockDir, "samerename-"+hex.EncodeToString(sum[:8])+".lock"), nil
}

// Acquire takes the lock for dir without blocking.
func Acquire(lockDir, dir string) (*Lock, error) {
	path, err := PathFor(lockDir, dir)
	if err != nil {
		return nil, err
	}
	l := flock.New(path)
	ok, err := l.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%s: %w", dir, ErrLocked)
	}
	return &Lock{path: path, lock: l}, nil
}

// Path returns the lock file path.
func (l *Lock) Path() string {
	return l.path
}

// Release unlocks the directory. The lock file stays in place so every run
// contends on the same inode.
func (l *Lock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	if err := l.lock.Unlock(); err != nil {
		return fmt.Errorf("release lock: %w", err)
	}
	return nil
}
