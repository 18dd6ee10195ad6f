package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-pin-keeper/internal/logger"
)

type syncJob struct {
	syncService SyncService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob creates a syncJob that calls syncService.Sync on a ticker. The
// job is idle until Start is called.
func NewSyncJob(syncService SyncService) SyncJob {
	return &syncJob{syncService: syncService}
}

// Start implements SyncJob. It stops any previously running job, then
// launches a goroutine that calls Sync every interval until ctx is cancelled
// or Stop is called. A non-positive interval only stops the previous job.
func (j *syncJob) Start(ctx context.Context, interval time.Duration) {
	j.Stop()
	if interval <= 0 {
		return
	}

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if _, err := j.syncService.Sync(jobCtx); err != nil {
					logger.FromContext(jobCtx).Warn().Err(err).Str("func", "syncJob.Start").Msg("scheduled sync failed")
				}
			}
		}
	}()
}

// Stop implements SyncJob. Safe to call when the job is not running.
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
