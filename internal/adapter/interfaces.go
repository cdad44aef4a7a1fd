// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the recommendation backend.
//
// The primary abstraction is [RecommendationAdapter], which decouples the
// service layer from the underlying protocol. The package ships an HTTP
// implementation built on resty ([NewHTTPRecommendationAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError and from network failures by classifyRequestError, so callers
// can use [errors.Is] for transport-agnostic error handling (e.g.
// [ErrTimeout] for an expired deadline, [ErrTransport] for an unreachable
// server, [ErrUnexpectedStatus] for any non-2xx answer).
package adapter

import (
	"context"

	"github.com/MKhiriev/reco-chat/internal/stream"
	"github.com/MKhiriev/reco-chat/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/recommendation_adapter_mock.go -package=mock

// RecommendationAdapter defines communication with the recommendation
// backend. Implementations are responsible for serialisation, trace header
// propagation and mapping transport-level errors to the sentinel values
// defined in this package.
//
// Deadlines are owned by the caller: every method is bounded only by ctx.
type RecommendationAdapter interface {
	// OpenStream posts req to the streaming endpoint and returns the open
	// event stream. A non-2xx answer is returned as an error wrapping
	// [ErrUnexpectedStatus] and no stream is opened.
	OpenStream(ctx context.Context, req models.RecommendRequest) (*stream.Stream, error)

	// Recommend posts req to the non-streaming endpoint. A body reporting
	// status "error" yields [*BackendError]; an undecodable body yields
	// [ErrMalformedPayload].
	Recommend(ctx context.Context, req models.RecommendRequest) (models.BulkRecommendation, error)

	// Chat sends a free-form message and returns the short reply.
	Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error)

	// Health probes the liveness endpoint; nil means the backend answered 2xx.
	Health(ctx context.Context) error

	// GetHistory returns one page of stored recommendations.
	GetHistory(ctx context.Context, page models.HistoryPage) ([]models.HistoryEntry, error)

	// SaveHistory stores a finished recommendation on the backend.
	SaveHistory(ctx context.Context, req models.HistoryRequest) error
}
