package repository

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
)

func TestFileSnapshotBackend(t *testing.T) {
	t.Run("never-written slot loads nil", func(t *testing.T) {
		backend := NewFileSnapshotBackend(filepath.Join(t.TempDir(), "orders.json"))
		data, err := backend.Load(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if data != nil {
			t.Fatalf("expected nil payload, got %q", data)
		}
	})

	t.Run("save then load round trip", func(t *testing.T) {
		backend := NewFileSnapshotBackend(filepath.Join(t.TempDir(), "orders.json"))
		payload := []byte(`[{"id":"wo-1"}]`)
		if err := backend.Save(context.Background(), payload); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, err := backend.Load(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.Equal(got, payload) {
			t.Fatalf("round trip mismatch: %q", got)
		}
	})

	t.Run("save creates missing directories", func(t *testing.T) {
		backend := NewFileSnapshotBackend(filepath.Join(t.TempDir(), "nested", "deep", "orders.json"))
		if err := backend.Save(context.Background(), []byte("[]")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("save overwrites atomically", func(t *testing.T) {
		backend := NewFileSnapshotBackend(filepath.Join(t.TempDir(), "orders.json"))
		if err := backend.Save(context.Background(), []byte("first")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := backend.Save(context.Background(), []byte("second")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, _ := backend.Load(context.Background())
		if string(got) != "second" {
			t.Fatalf("expected latest payload, got %q", got)
		}
	})
}
