package store

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Change is one committed write observed by a subscriber.
type Change struct {
	// Seq is the store-global sequence number of the write. It grows
	// monotonically across all processes sharing the database.
	Seq int64
	// Key is the written key.
	Key string
	// Value is the JSON-encoded new value; nil when Removed.
	Value json.RawMessage
	// Removed is set when the key was deleted.
	Removed bool
}

// KeyValueStore is the persistent key-value store shared by every context.
//
// Writes replace whole values. Every committed write is assigned a sequence
// number and is observable through Subscribe, in this process and in every
// other process opening the same database file.
type KeyValueStore interface {
	// Get returns the raw values of the requested keys. Absent and removed
	// keys are omitted from the result.
	Get(ctx context.Context, keys ...string) (map[string]json.RawMessage, error)

	// Set JSON-encodes and stores every item in one transaction.
	Set(ctx context.Context, items map[string]any) error

	// Remove deletes the keys in one transaction. Removing an absent key is
	// not an error and produces no change.
	Remove(ctx context.Context, keys ...string) error

	// Snapshot reads the requested keys together with the sequence number
	// the read reflects, in one transaction.
	Snapshot(ctx context.Context, keys ...string) (map[string]json.RawMessage, int64, error)

	// ChangesSince returns the latest change of every key written after seq,
	// ordered by sequence number.
	ChangesSince(ctx context.Context, seq int64) ([]Change, error)

	// Subscribe delivers every change committed after the call, in sequence
	// order, until ctx is done. The channel is closed afterwards.
	Subscribe(ctx context.Context) (<-chan Change, error)
}
