package workers

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-pin-keeper/internal/adapter"
	"github.com/MKhiriev/go-pin-keeper/internal/logger"
	"github.com/MKhiriev/go-pin-keeper/internal/service"
)

// startupSync runs one sync cycle when the background starts.
type startupSync struct {
	sync   service.SyncService
	logger *logger.Logger
}

func (s *startupSync) Run(ctx context.Context) {
	result, err := s.sync.Sync(ctx)
	switch {
	case errors.Is(err, adapter.ErrMissingCredential):
		s.logger.Info().Str("func", "startupSync.Run").Msg("no token held, startup sync skipped")
	case err != nil:
		s.logger.Warn().Err(err).Str("func", "startupSync.Run").Msg("startup sync failed")
	default:
		s.logger.Info().Str("func", "startupSync.Run").
			Bool("changed", result.Changed).
			Int("count", result.Count).
			Msg("startup sync done")
	}
}

// scheduledSync starts the periodic sync job.
type scheduledSync struct {
	job      service.SyncJob
	interval time.Duration
	logger   *logger.Logger
}

func (s *scheduledSync) Run(ctx context.Context) {
	if s.interval <= 0 {
		s.logger.Info().Str("func", "scheduledSync.Run").Msg("periodic sync disabled")
		return
	}

	s.job.Start(s.logger.WithContext(ctx), s.interval)
	s.logger.Info().Str("func", "scheduledSync.Run").Dur("interval", s.interval).Msg("periodic sync started")
}
