package storage

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
)

// The durability contract for every full-file mutation: write the complete
// new content to a scratch file in the same directory, flush it, then swap
// it over the target with a rename. An interrupted operation leaves either
// the old or the new complete file, never a partial one. Readers ignore
// stale scratch files from a crashed run.

func scratchPath(path string) string {
	return fmt.Sprintf("%s.%s.tmp", path, uuid.New().String())
}

// writeScratch writes the full new content next to path and returns the
// scratch file name. The content is flushed and synced before return.
func writeScratch(path string, write func(w *csv.Writer) error) (string, error) {
	scratch := scratchPath(path)

	f, err := os.OpenFile(scratch, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create scratch file: %w", err)
	}

	w := csv.NewWriter(f)
	if err := write(w); err != nil {
		f.Close()
		os.Remove(scratch)
		return "", err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		os.Remove(scratch)
		return "", fmt.Errorf("write scratch file: %w", err)
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(scratch)
		return "", fmt.Errorf("sync scratch file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(scratch)
		return "", fmt.Errorf("close scratch file: %w", err)
	}
	return scratch, nil
}

// commitScratch swaps the fully written scratch file into place.
func commitScratch(scratch, path string) error {
	if err := os.Rename(scratch, path); err != nil {
		os.Remove(scratch)
		return fmt.Errorf("swap scratch file into place: %w", err)
	}
	return nil
}

// atomicRewrite replaces path with the content produced by write.
func atomicRewrite(path string, write func(w *csv.Writer) error) error {
	scratch, err := writeScratch(path, write)
	if err != nil {
		return err
	}
	return commitScratch(scratch, path)
}

// withFileLock runs fn while holding an advisory lock. Single-session use is
// the supported model; the lock only narrows the multi-process lost-update
// window, it is not a concurrency guarantee.
func withFileLock(lk *flock.Flock, fn func() error) error {
	if err := lk.Lock(); err != nil {
		return fmt.Errorf("acquire file lock: %w", err)
	}
	defer lk.Unlock()
	return fn()
}
