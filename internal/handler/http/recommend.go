package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/reco-chat/internal/logger"
	"github.com/MKhiriev/reco-chat/internal/utils"
	"github.com/MKhiriev/reco-chat/models"
)

func (h *Handler) recommendStream(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	req, err := h.decodeRecommendRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	frames := h.backend.Script(req)
	log.Debug().Str("query", req.SearchQuery).Int("frames", len(frames)).Msg("streaming scripted recommendation")

	utils.PrepareEventStream(w)
	for i, frame := range frames {
		if i > 0 && !pause(r.Context(), h.frameDelay) {
			log.Info().Int("sent", i).Msg("client left the stream")
			return
		}
		if err = utils.WriteEventData(w, frame); err != nil {
			log.Err(err).Str("func", "*Handler.recommendStream").Msg("error writing stream frame")
			return
		}
	}
}

func (h *Handler) recommend(w http.ResponseWriter, r *http.Request) {
	req, err := h.decodeRecommendRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, h.backend.Recommend(req), http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.recommend").Msg("error writing response")
	}
}

func (h *Handler) decodeRecommendRequest(r *http.Request) (models.RecommendRequest, error) {
	var req models.RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	if strings.TrimSpace(req.SearchQuery) == "" {
		return req, ErrEmptySearchQuery
	}
	if h.backend.Busy(req.SearchQuery) {
		return req, ErrServiceBusy
	}
	return req, nil
}

// pause waits d and reports whether ctx is still alive afterwards.
func pause(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
