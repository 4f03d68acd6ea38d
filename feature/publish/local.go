package publish

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// LocalTarget writes the index document to a file on disk.
type LocalTarget struct {
	path string
}

// NewLocalTarget creates a local file target.
func NewLocalTarget(path string) *LocalTarget {
	return &LocalTarget{path: path}
}

func (t *LocalTarget) Name() string {
	return "local:" + t.path
}

// Publish replaces the file atomically (temp file + rename) so a crashed run
// never leaves a truncated index behind.
func (t *LocalTarget) Publish(_ context.Context, data []byte) error {
	dir := filepath.Dir(t.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(t.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), t.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("replace %s: %w", t.path, err)
	}
	return nil
}
