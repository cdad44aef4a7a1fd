package http

import (
	"net/http"

	"github.com/MKhiriev/reco-chat/internal/utils"
)

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, healthResponse{Status: "healthy", Service: "ReCo"}, http.StatusOK)
}
