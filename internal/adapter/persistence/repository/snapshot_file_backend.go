package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// NullSnapshotBackend keeps everything in memory only. Used for tests and for
// deployments that explicitly opt out of persistence.

type NullSnapshotBackend struct{}

func (NullSnapshotBackend) Load(ctx context.Context) ([]byte, error)       { return nil, nil }
func (NullSnapshotBackend) Save(ctx context.Context, payload []byte) error { return nil }

// FileSnapshotBackend stores the snapshot in a single JSON file, the direct
// analogue of a browser localStorage slot. Saves go through a temp file plus
// rename so a crash mid-write never leaves a truncated snapshot.

type FileSnapshotBackend struct {
	path string
}

func NewFileSnapshotBackend(path string) *FileSnapshotBackend {
	return &FileSnapshotBackend{path: path}
}

func (b *FileSnapshotBackend) Load(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read snapshot file: %w", err)
	}
	return data, nil
}

func (b *FileSnapshotBackend) Save(ctx context.Context, payload []byte) error {
	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}
	tmp := b.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return fmt.Errorf("write snapshot file: %w", err)
	}
	if err := os.Rename(tmp, b.path); err != nil {
		return fmt.Errorf("replace snapshot file: %w", err)
	}
	return nil
}
