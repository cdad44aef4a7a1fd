package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/reco-chat/internal/app"
	"github.com/MKhiriev/reco-chat/internal/logger"
	"github.com/MKhiriev/reco-chat/internal/utils"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:      http.StatusUnprocessableEntity,
	ErrEmptySearchQuery: http.StatusUnprocessableEntity,
	ErrInvalidPaging:    http.StatusUnprocessableEntity,
	ErrServiceBusy:      http.StatusServiceUnavailable,
}

var errorMessageMap = map[error]string{
	ErrInvalidJSON:      app.MsgInvalidJSON,
	ErrEmptySearchQuery: app.MsgEmptySearchQuery,
	ErrInvalidPaging:    app.MsgInvalidPaging,
	ErrServiceBusy:      app.MsgServiceBusy,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}
	return app.MsgInternalServerError
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// writeError logs err and answers with its status and a detail body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status == http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	writeDetail(w, messageFromError(err), status)
}

func writeDetail(w http.ResponseWriter, detail string, status int) {
	_, _ = utils.WriteJSON(w, errorResponse{Detail: detail}, status)
}
