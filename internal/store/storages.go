package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pin-keeper/internal/config"
	"github.com/MKhiriev/go-pin-keeper/internal/logger"
)

// Storages groups the persistence layer of one context.
type Storages struct {
	// KV is the shared key-value store holding the persisted state.
	KV KeyValueStore

	kv *SQLiteStore
	db *DB
}

// NewStorages opens the SQLite database at cfg.DSN, applies migrations and
// starts watching the file for writes made by other contexts.
func NewStorages(ctx context.Context, cfg config.StorageConfig, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	kv := NewKVStore(db, cfg.PollInterval, log)
	if err := kv.Watch(); err != nil {
		// polling still delivers changes, only later
		log.Warn().Err(err).Msg("file watcher unavailable, falling back to polling")
	}

	return &Storages{KV: kv, kv: kv, db: db}, nil
}

// Close stops the watcher and closes the database.
func (s *Storages) Close() error {
	return errors.Join(s.kv.Close(), s.db.Close())
}
