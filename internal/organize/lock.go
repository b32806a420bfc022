// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package organize

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// lockPath returns the lock file for absBase inside lockDir. The name is
// derived from the directory path so every target gets its own lock.
func lockPath(lockDir, absBase string) string {
	sum := sha256.Sum256([]byte(absBase))
	return filepath.Join(lockDir, "file-organizer-"+hex.EncodeToString(sum[:8])+".lock")
}

// acquireLock takes the run lock for absBase. The returned function releases it.
func acquireLock(lockDir, absBase string) (func(), error) {
	if lockDir == "" {
		lockDir = os.TempDir()
	}
	absLock, err := filepath.Abs(lockDir)
	if err != nil {
		return nil, fmt.Errorf("resolving lock directory: %w", err)
	}
	if absLock == absBase {
		return nil, fmt.Errorf("lock directory %s is the directory being organized", absLock)
	}
	if err := os.MkdirAll(absLock, 0o755); err != nil {
		return nil, fmt.Errorf("creating lock directory: %w", err)
	}

	lock := flock.New(lockPath(absLock, absBase))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%s: %w", absBase, ErrLocked)
	}
	return func() { _ = lock.Unlock() }, nil
}
