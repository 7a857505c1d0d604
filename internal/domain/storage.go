package domain

import (
	"context"
	"time"
)

// SnapshotStore is a string-keyed blob store. Get returns ErrNotFound
// for a key that was never written or was deleted.
type SnapshotStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Snapshot is one stored key. The postgres driver maps it to the
// snapshots table.
type Snapshot struct {
	Key       string    `gorm:"primaryKey;size:120"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"index"`
}
