package service

import (
	"context"
	"time"

	"github.com/MKhiriev/reco-chat/internal/adapter"
	"github.com/MKhiriev/reco-chat/internal/logger"
	"github.com/MKhiriev/reco-chat/models"
)

// maxHealthTimeout caps a single probe.
const maxHealthTimeout = 5 * time.Second

type healthService struct {
	adapter adapter.RecommendationAdapter
	timeout time.Duration
	logger  *logger.Logger
}

// NewHealthService creates a HealthService. timeout is capped at five
// seconds.
func NewHealthService(recoAdapter adapter.RecommendationAdapter, timeout time.Duration, logger *logger.Logger) HealthService {
	if timeout <= 0 || timeout > maxHealthTimeout {
		timeout = maxHealthTimeout
	}
	return &healthService{adapter: recoAdapter, timeout: timeout, logger: logger}
}

func (h *healthService) Check(ctx context.Context) models.HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	if err := h.adapter.Health(ctx); err != nil {
		h.logger.Debug().Err(err).Msg("health check failed")
		return models.HealthStatus{Healthy: false, Err: err}
	}
	return models.HealthStatus{Healthy: true}
}
