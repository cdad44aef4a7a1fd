package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/reco-chat/internal/logger"
	"github.com/MKhiriev/reco-chat/internal/utils"
	"github.com/MKhiriev/reco-chat/models"
)

func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	if _, err := utils.WriteJSON(w, h.backend.Chat(req), http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.chat").Msg("error writing response")
	}
}
