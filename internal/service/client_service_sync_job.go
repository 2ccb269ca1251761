package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/models"
)

const defaultSyncInterval = 5 * time.Minute

type clientSyncJob struct {
	syncService ClientSyncService
	userID      int64
	interval    time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewClientSyncJob creates a clientSyncJob that calls syncService.Sync with
// the background trigger on a ticker. A non-positive interval defaults to
// 5 minutes. The job is idle until Start is called.
func NewClientSyncJob(syncService ClientSyncService, userID int64, interval time.Duration, logger *logger.Logger) ClientSyncJob {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	return &clientSyncJob{
		syncService: syncService,
		userID:      userID,
		interval:    interval,
		logger:      logger,
	}
}

// Start implements ClientSyncJob. It stops any previously running loop, then
// launches a goroutine that syncs every interval until ctx is cancelled or
// Stop is called.
func (j *clientSyncJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				result := j.syncService.Sync(jobCtx, j.userID, models.TriggerBackgroundPeriodic)
				j.logger.Debug().Stringer("result", result).Msg("background sync")
			}
		}
	}()
}

// Stop implements ClientSyncJob. It cancels the loop and blocks until the
// goroutine has exited.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
