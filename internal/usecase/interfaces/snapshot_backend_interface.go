package interfaces

import "context"

// ISnapshotBackend persists the whole work order collection as one opaque
// payload in a single storage slot. Every mutation rewrites the full snapshot;
// collections are expected to stay small (tens to low hundreds of orders), so
// there is no incremental persistence.
//
// Load returns (nil, nil) when the slot has never been written.

type ISnapshotBackend interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, payload []byte) error
}
