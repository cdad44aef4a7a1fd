// Package handler assembles the transport handlers of the stub backend.
package handler

import (
	"github.com/MKhiriev/reco-chat/internal/config"
	"github.com/MKhiriev/reco-chat/internal/handler/http"
	"github.com/MKhiriev/reco-chat/internal/logger"
	"github.com/MKhiriev/reco-chat/internal/stub"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(backend *stub.Backend, cfg config.StubConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if backend == nil {
		return nil, errNoBackend
	}
	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(backend, cfg.FrameDelay, logger),
	}, nil
}
