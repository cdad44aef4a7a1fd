package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/reco-chat/internal/config"
	"github.com/MKhiriev/reco-chat/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers creates the client's background workers.
func NewWorkers(services *service.ClientServices, cfg config.ClientWorkers) *Workers {
	return &Workers{workers: []Worker{
		NewHealthWorker(services.HealthJob, cfg.HealthInterval),
	}}
}

// Start starts every worker in registration order.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops every worker in reverse registration order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

// healthWorker runs the backend health probe on a fixed interval.
type healthWorker struct {
	job      service.HealthJob
	interval time.Duration
}

func NewHealthWorker(job service.HealthJob, interval time.Duration) Worker {
	return &healthWorker{job: job, interval: interval}
}

func (h *healthWorker) Start(ctx context.Context) {
	h.job.Start(ctx, h.interval)
}

func (h *healthWorker) Stop() {
	h.job.Stop()
}
