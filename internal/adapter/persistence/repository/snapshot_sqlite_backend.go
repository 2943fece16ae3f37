package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const defaultSnapshotSlot = "fieldflow-work-orders"

// SQLiteSnapshotBackend keeps the snapshot in a single-row slot table. One
// slot per deployment; multiple deployments may share the file by using
// distinct slot names.

type SQLiteSnapshotBackend struct {
	db   *sql.DB
	slot string
}

func NewSQLiteSnapshotBackend(path, slot string) (*SQLiteSnapshotBackend, error) {
	if slot == "" {
		slot = defaultSnapshotSlot
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite snapshot db: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		slot       TEXT PRIMARY KEY,
		payload    BLOB NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create snapshot schema: %w", err)
	}
	return &SQLiteSnapshotBackend{db: db, slot: slot}, nil
}

func (b *SQLiteSnapshotBackend) Load(ctx context.Context) ([]byte, error) {
	var payload []byte
	err := b.db.QueryRowContext(ctx, `SELECT payload FROM snapshots WHERE slot = ?`, b.slot).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load sqlite snapshot: %w", err)
	}
	return payload, nil
}

func (b *SQLiteSnapshotBackend) Save(ctx context.Context, payload []byte) error {
	_, err := b.db.ExecContext(ctx, `
		INSERT INTO snapshots (slot, payload, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(slot) DO UPDATE SET payload = excluded.payload, updated_at = CURRENT_TIMESTAMP
	`, b.slot, payload)
	if err != nil {
		return fmt.Errorf("save sqlite snapshot: %w", err)
	}
	return nil
}

func (b *SQLiteSnapshotBackend) Close() error {
	return b.db.Close()
}
