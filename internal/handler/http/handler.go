package http

import (
	"time"

	"github.com/MKhiriev/reco-chat/internal/logger"
	"github.com/MKhiriev/reco-chat/internal/stub"
)

type Handler struct {
	backend *stub.Backend

	// frameDelay is the pause between two frames of the event stream.
	frameDelay time.Duration

	logger *logger.Logger
}

func NewHandler(backend *stub.Backend, frameDelay time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Dur("frame_delay", frameDelay).Msg("http handler created")
	return &Handler{
		backend:    backend,
		frameDelay: frameDelay,
		logger:     logger,
	}
}
