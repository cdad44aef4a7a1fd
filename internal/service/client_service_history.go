package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/reco-chat/internal/adapter"
	"github.com/MKhiriev/reco-chat/internal/logger"
	"github.com/MKhiriev/reco-chat/models"
)

const historyTimeout = 15 * time.Second

type historyService struct {
	adapter adapter.RecommendationAdapter
	enabled bool
	logger  *logger.Logger
}

// NewHistoryService creates a HistoryService. Record only talks to the
// backend when enabled is true.
func NewHistoryService(recoAdapter adapter.RecommendationAdapter, enabled bool, logger *logger.Logger) HistoryService {
	return &historyService{adapter: recoAdapter, enabled: enabled, logger: logger}
}

func (h *historyService) Record(ctx context.Context, prefs models.Preferences, rec models.Recommendation) error {
	if !h.enabled {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, historyTimeout)
	defer cancel()

	results := rec.Items
	if results == nil {
		results = []models.RankedItem{}
	}

	req := models.HistoryRequest{
		UserInput:   models.NewRecommendRequest(rec.Query, prefs, rec.SessionID),
		SearchQuery: rec.Query,
		PersonaType: rec.PersonaType,
		Results:     results,
	}
	if err := h.adapter.SaveHistory(ctx, req); err != nil {
		h.logger.Warn().Err(err).Str("query", rec.Query).Msg("failed to save remote history")
		return fmt.Errorf("save remote history: %w", err)
	}

	return nil
}

func (h *historyService) List(ctx context.Context, page models.HistoryPage) ([]models.HistoryEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, historyTimeout)
	defer cancel()

	entries, err := h.adapter.GetHistory(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("load remote history: %w", err)
	}

	return entries, nil
}
