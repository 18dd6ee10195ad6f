package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pin-keeper/internal/logger"
	"github.com/MKhiriev/go-pin-keeper/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers returns the startup sync followed by the periodic sync, which
// stays idle when syncInterval is not positive.
func NewWorkers(services *service.Services, syncInterval time.Duration, log *logger.Logger) *Workers {
	return &Workers{workers: []Worker{
		&startupSync{sync: services.Sync, logger: log},
		&scheduledSync{job: services.SyncJob, interval: syncInterval, logger: log},
	}}
}

// Run starts the workers in order.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}
