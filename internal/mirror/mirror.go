// Package mirror keeps an in-memory read model of the persisted state and
// follows every write made to it by any context.
//
// A [Mirror] hydrates once: it subscribes to the store, reads a snapshot,
// applies it and resolves readiness. From then on each committed change
// newer than the snapshot overwrites the affected key. Readers use the typed
// getters or [Mirror.State], and [Mirror.Changes] to know when to re-render.
package mirror

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-pin-keeper/internal/logger"
	"github.com/MKhiriev/go-pin-keeper/internal/store"
	"github.com/MKhiriev/go-pin-keeper/models"
)

// ErrAlreadyStarted is returned by a second call to Start.
var ErrAlreadyStarted = errors.New("mirror already started")

const changesBuffer = 16

type Mirror struct {
	kv     store.KeyValueStore
	logger *logger.Logger

	mu    sync.RWMutex
	state models.State

	started   atomic.Bool
	ready     chan struct{}
	readyOnce sync.Once
	done      chan struct{}
	changes   chan string
}

func New(kv store.KeyValueStore, log *logger.Logger) *Mirror {
	return &Mirror{
		kv:      kv,
		logger:  log,
		ready:   make(chan struct{}),
		done:    make(chan struct{}),
		changes: make(chan string, changesBuffer),
	}
}

// Start hydrates the mirror and follows the store until ctx is done.
// Readiness is resolved before Start returns successfully.
func (m *Mirror) Start(ctx context.Context) error {
	if !m.started.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}

	// subscribe before the snapshot so no write can fall between the two
	changes, err := m.kv.Subscribe(ctx)
	if err != nil {
		return fmt.Errorf("subscribe to store: %w", err)
	}

	values, seq, err := m.kv.Snapshot(ctx, models.StateKeys...)
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}

	m.mu.Lock()
	for _, key := range models.StateKeys {
		raw, ok := values[key]
		m.applyLocked(ctx, key, raw, !ok)
	}
	m.mu.Unlock()

	m.readyOnce.Do(func() { close(m.ready) })
	logger.FromContext(ctx).Debug().Str("func", "Mirror.Start").Int64("seq", seq).Msg("mirror hydrated")

	go m.follow(ctx, changes, seq)
	return nil
}

func (m *Mirror) follow(ctx context.Context, changes <-chan store.Change, snapshotSeq int64) {
	defer close(m.done)
	defer close(m.changes)

	for change := range changes {
		// already reflected in the snapshot
		if change.Seq <= snapshotSeq {
			continue
		}

		m.mu.Lock()
		applied := m.applyLocked(ctx, change.Key, change.Value, change.Removed)
		m.mu.Unlock()

		if applied {
			m.notify(change.Key)
		}
	}
}

// applyLocked decodes one key into the read model. Unknown keys are ignored;
// undecodable values leave the key at its zero value.
func (m *Mirror) applyLocked(ctx context.Context, key string, raw json.RawMessage, removed bool) bool {
	if removed {
		raw = nil
	}

	var err error
	switch key {
	case models.KeyToken:
		m.state.Token, err = decode[models.Credential](raw)
	case models.KeyBookmarks:
		m.state.Bookmarks, err = decode[[]models.Bookmark](raw)
	case models.KeyUpdateTime:
		m.state.UpdateTime, err = decode[models.SyncMarker](raw)
	case models.KeyDefaultPrivate:
		m.state.DefaultPrivate, err = decode[bool](raw)
	case models.KeyPinboardError:
		m.state.PinboardError, err = decode[string](raw)
	default:
		return false
	}

	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "Mirror.apply").Str("key", key).Msg("undecodable value, using zero value")
	}
	return true
}

func decode[T any](raw json.RawMessage) (T, error) {
	var value T
	if len(raw) == 0 {
		return value, nil
	}

	if err := json.Unmarshal(raw, &value); err != nil {
		var zero T
		return zero, err
	}
	return value, nil
}

// notify never blocks; a full buffer already holds a pending signal.
func (m *Mirror) notify(key string) {
	select {
	case m.changes <- key:
	default:
	}
}

// Ready is closed once hydration has completed.
func (m *Mirror) Ready() <-chan struct{} {
	return m.ready
}

// Wait blocks until hydration has completed or ctx is done.
func (m *Mirror) Wait(ctx context.Context) error {
	select {
	case <-m.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done is closed when the mirror stops following the store.
func (m *Mirror) Done() <-chan struct{} {
	return m.done
}

// Changes delivers the key of every applied change. Signals may be
// coalesced when the reader falls behind. The channel is closed when the
// mirror stops.
func (m *Mirror) Changes() <-chan string {
	return m.changes
}

// State returns a copy of the read model.
func (m *Mirror) State() models.State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.Clone()
}

func (m *Mirror) Token() models.Credential {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.Token
}

// Username returns the user part of the token, empty when none is held.
func (m *Mirror) Username() string {
	return m.Token().Username()
}

func (m *Mirror) Bookmarks() []models.Bookmark {
	return m.State().Bookmarks
}

func (m *Mirror) UpdateTime() models.SyncMarker {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.UpdateTime
}

func (m *Mirror) DefaultPrivate() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.DefaultPrivate
}

func (m *Mirror) PinboardError() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.PinboardError
}

// MostCommonTags returns every tag of the mirrored bookmarks, most used
// first. Equally used tags keep the order they were first seen in.
func (m *Mirror) MostCommonTags() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	counts := make(map[string]int)
	var order []string
	for _, b := range m.state.Bookmarks {
		for _, tag := range b.Tags {
			if counts[tag] == 0 {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}

	slices.SortStableFunc(order, func(a, b string) int {
		return cmp.Compare(counts[b], counts[a])
	})
	return order
}
