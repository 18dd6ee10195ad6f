package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/MKhiriev/go-pin-keeper/internal/adapter"
	"github.com/MKhiriev/go-pin-keeper/internal/logger"
	"github.com/MKhiriev/go-pin-keeper/internal/store"
	"github.com/MKhiriev/go-pin-keeper/models"
)

type syncService struct {
	kv     store.KeyValueStore
	remote adapter.RemoteClient

	inFlight atomic.Bool
	state    atomic.Int32

	logger *logger.Logger
}

func NewSyncService(kv store.KeyValueStore, remote adapter.RemoteClient, log *logger.Logger) SyncService {
	return &syncService{kv: kv, remote: remote, logger: log}
}

func (s *syncService) State() SyncState {
	return SyncState(s.state.Load())
}

// Sync implements SyncService. At most one cycle runs per process; the
// failure of a cycle is persisted as the user-facing last error.
func (s *syncService) Sync(ctx context.Context) (models.SyncResult, error) {
	log := logger.FromContext(ctx)

	if !s.inFlight.CompareAndSwap(false, true) {
		log.Debug().Str("func", "syncService.Sync").Msg("sync already in flight, trigger dropped")
		return models.SyncResult{Skipped: true}, nil
	}
	defer func() {
		s.state.Store(int32(SyncIdle))
		s.inFlight.Store(false)
	}()

	result, err := s.cycle(ctx)
	if err != nil {
		log.Err(err).Str("func", "syncService.Sync").Msg("sync failed")
		s.recordError(ctx, err)
		return result, err
	}

	log.Info().
		Str("func", "syncService.Sync").
		Bool("changed", result.Changed).
		Str("marker", string(result.Marker)).
		Int("count", result.Count).
		Msg("sync finished")
	return result, nil
}

func (s *syncService) cycle(ctx context.Context) (models.SyncResult, error) {
	s.state.Store(int32(SyncProbing))

	stored, hasStored, err := readKey[models.SyncMarker](ctx, s.kv, models.KeyUpdateTime)
	if err != nil {
		return models.SyncResult{}, err
	}

	marker, err := s.remote.ProbeUpdateMarker(ctx)
	if err != nil {
		return models.SyncResult{}, fmt.Errorf("probe update marker: %w", err)
	}

	if hasStored && marker == stored {
		return models.SyncResult{Marker: marker}, nil
	}

	s.state.Store(int32(SyncFetching))
	bookmarks, err := s.remote.FetchAllBookmarks(ctx)
	if err != nil {
		return models.SyncResult{Marker: marker}, fmt.Errorf("fetch bookmarks: %w", err)
	}
	if bookmarks == nil {
		bookmarks = []models.Bookmark{}
	}

	// the marker is only written once the data it describes is durable
	s.state.Store(int32(SyncPersisting))
	if err = s.kv.Set(ctx, map[string]any{models.KeyBookmarks: bookmarks}); err != nil {
		return models.SyncResult{Marker: marker}, fmt.Errorf("persist bookmarks: %w", err)
	}
	if err = s.kv.Set(ctx, map[string]any{models.KeyUpdateTime: marker}); err != nil {
		return models.SyncResult{Marker: marker}, fmt.Errorf("persist update marker: %w", err)
	}

	return models.SyncResult{Changed: true, Marker: marker, Count: len(bookmarks)}, nil
}

func (s *syncService) recordError(ctx context.Context, err error) {
	if errors.Is(err, context.Canceled) {
		return
	}

	msg := SyncErrorMessage(err)
	if setErr := s.kv.Set(context.WithoutCancel(ctx), map[string]any{models.KeyPinboardError: msg}); setErr != nil {
		logger.FromContext(ctx).Err(setErr).Str("func", "syncService.recordError").Msg("failed to persist sync error")
	}
}
