package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pin-keeper/internal/logger"
)

// SQLiteStore implements [KeyValueStore] on the kv table.
type SQLiteStore struct {
	db           *DB
	hub          *hub
	watcher      *fileWatcher
	pollInterval time.Duration
	logger       *logger.Logger
}

// NewKVStore returns a [KeyValueStore] over db. Subscribers re-read the
// change log on every local write, on every file event reported by Watch and
// at least once per pollInterval.
func NewKVStore(db *DB, pollInterval time.Duration, log *logger.Logger) *SQLiteStore {
	return &SQLiteStore{
		db:           db,
		hub:          newHub(),
		pollInterval: pollInterval,
		logger:       log,
	}
}

func (s *SQLiteStore) Get(ctx context.Context, keys ...string) (map[string]json.RawMessage, error) {
	if len(keys) == 0 {
		return map[string]json.RawMessage{}, nil
	}

	return s.readValues(ctx, s.db, keys)
}

func (s *SQLiteStore) Set(ctx context.Context, items map[string]any) error {
	log := logger.FromContext(ctx)
	if len(items) == 0 {
		return nil
	}

	keys := make([]string, 0, len(items))
	encoded := make(map[string][]byte, len(items))
	for key, value := range items {
		if key == "" {
			return ErrEmptyKey
		}
		raw, err := json.Marshal(value)
		if err != nil {
			log.Err(err).Str("func", "SQLiteStore.Set").Str("key", key).Msg("failed to encode value")
			return fmt.Errorf("%w (key=%s): %w", ErrEncodingValue, key, err)
		}
		keys = append(keys, key)
		encoded[key] = raw
	}
	slices.Sort(keys)

	err := s.withTx(ctx, "SQLiteStore.Set", func(tx *sql.Tx) error {
		seq, err := s.maxSeq(ctx, tx)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		for i, key := range keys {
			if err := s.exec(ctx, tx, upsertValue(key, encoded[key], seq+int64(i)+1, now)); err != nil {
				log.Err(err).Str("func", "SQLiteStore.Set").Str("key", key).Msg("failed to upsert value")
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.hub.broadcast()
	return nil
}

func (s *SQLiteStore) Remove(ctx context.Context, keys ...string) error {
	log := logger.FromContext(ctx)
	if len(keys) == 0 {
		return nil
	}

	keys = slices.Clone(keys)
	slices.Sort(keys)
	keys = slices.Compact(keys)

	err := s.withTx(ctx, "SQLiteStore.Remove", func(tx *sql.Tx) error {
		seq, err := s.maxSeq(ctx, tx)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		for _, key := range keys {
			if key == "" {
				return ErrEmptyKey
			}
			seq++
			if err := s.exec(ctx, tx, markRemoved(key, seq, now)); err != nil {
				log.Err(err).Str("func", "SQLiteStore.Remove").Str("key", key).Msg("failed to remove value")
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.hub.broadcast()
	return nil
}

func (s *SQLiteStore) Snapshot(ctx context.Context, keys ...string) (map[string]json.RawMessage, int64, error) {
	var (
		values map[string]json.RawMessage
		seq    int64
	)

	err := s.withTx(ctx, "SQLiteStore.Snapshot", func(tx *sql.Tx) error {
		var err error
		if seq, err = s.maxSeq(ctx, tx); err != nil {
			return err
		}

		if len(keys) == 0 {
			values = map[string]json.RawMessage{}
			return nil
		}
		values, err = s.readValues(ctx, tx, keys)
		return err
	})
	if err != nil {
		return nil, 0, err
	}

	return values, seq, nil
}

func (s *SQLiteStore) ChangesSince(ctx context.Context, seq int64) ([]Change, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectChangesSince(seq).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "SQLiteStore.ChangesSince").Int64("seq", seq).Msg("failed to query changes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var changes []Change
	for rows.Next() {
		var (
			c     Change
			value []byte
		)
		if err := rows.Scan(&c.Key, &value, &c.Removed, &c.Seq); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if !c.Removed {
			c.Value = value
		}
		changes = append(changes, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return changes, nil
}

func (s *SQLiteStore) Subscribe(ctx context.Context) (<-chan Change, error) {
	start, err := s.maxSeq(ctx, s.db)
	if err != nil {
		return nil, err
	}

	wake := s.hub.add()
	out := make(chan Change, 16)
	go s.deliver(ctx, start, wake, out)

	return out, nil
}

func (s *SQLiteStore) deliver(ctx context.Context, last int64, wake chan struct{}, out chan<- Change) {
	log := logger.FromContext(ctx)
	defer close(out)
	defer s.hub.remove(wake)

	poll := time.NewTicker(s.pollInterval)
	defer poll.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-wake:
		case <-poll.C:
		}

		changes, err := s.ChangesSince(ctx, last)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Warn().Err(err).Str("func", "SQLiteStore.deliver").Int64("seq", last).Msg("failed to read changes, retrying on next wake-up")
			continue
		}

		for _, c := range changes {
			select {
			case out <- c:
				last = c.Seq
			case <-ctx.Done():
				return
			}
		}
	}
}

// Close stops the file watcher, if any. The database is owned by the caller.
func (s *SQLiteStore) Close() error {
	if s.watcher == nil {
		return nil
	}
	return s.watcher.Stop()
}

type queryRower interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *SQLiteStore) readValues(ctx context.Context, q queryRower, keys []string) (map[string]json.RawMessage, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectLiveValues(keys).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "SQLiteStore.readValues").Strs("keys", keys).Msg("failed to query values")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	values := make(map[string]json.RawMessage, len(keys))
	for rows.Next() {
		var (
			key   string
			value []byte
		)
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		values[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return values, nil
}

func (s *SQLiteStore) maxSeq(ctx context.Context, q queryRower) (int64, error) {
	query, args, err := selectMaxSeq().ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var seq int64
	if err := q.QueryRowContext(ctx, query, args...).Scan(&seq); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return seq, nil
}

func (s *SQLiteStore) exec(ctx context.Context, tx *sql.Tx, stmt squirrel.Sqlizer) error {
	query, args, err := stmt.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *SQLiteStore) withTx(ctx context.Context, funcName string, fn func(tx *sql.Tx) error) error {
	log := logger.FromContext(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Err(rbErr).Str("func", funcName).Msg("failed to rollback transaction")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
