package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/reco-chat/models"
)

const defaultHealthInterval = 30 * time.Second

type healthJob struct {
	health  HealthService
	updates chan models.HealthStatus

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewHealthJob creates a healthJob that calls health.Check on a ticker. The
// job is idle until Start is called.
func NewHealthJob(health HealthService) HealthJob {
	return &healthJob{
		health:  health,
		updates: make(chan models.HealthStatus, 1),
	}
}

// Start implements HealthJob. It stops any previously running job, then
// launches a background goroutine that probes immediately and every interval.
// If interval is zero or negative it defaults to 30 seconds. The goroutine
// exits when ctx is cancelled or Stop is called.
func (j *healthJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultHealthInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		j.publish(j.health.Check(jobCtx))

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.publish(j.health.Check(jobCtx))
			}
		}
	}()
}

// Stop implements HealthJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is not
// running (no-op in that case).
func (j *healthJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *healthJob) Updates() <-chan models.HealthStatus {
	return j.updates
}

// publish replaces an unread status with status.
func (j *healthJob) publish(status models.HealthStatus) {
	for {
		select {
		case j.updates <- status:
			return
		default:
		}

		select {
		case <-j.updates:
		default:
		}
	}
}
