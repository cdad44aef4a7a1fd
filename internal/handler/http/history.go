package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/reco-chat/internal/logger"
	"github.com/MKhiriev/reco-chat/internal/utils"
	"github.com/MKhiriev/reco-chat/models"
)

func (h *Handler) listHistory(w http.ResponseWriter, r *http.Request) {
	skip, err := queryInt(r, "skip")
	if err != nil {
		writeError(w, r, err)
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, h.backend.History(skip, limit), http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listHistory").Msg("error writing response")
	}
}

func (h *Handler) saveHistory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.HistoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	entry, err := h.backend.SaveHistory(req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	log.Debug().Int64("id", entry.ID).Str("query", entry.SearchQuery).Msg("history entry saved")

	if _, err = utils.WriteJSON(w, entry, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.saveHistory").Msg("error writing response")
	}
}

// queryInt reads a non-negative integer query parameter; absent means 0.
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidPaging, name, raw)
	}
	return v, nil
}
