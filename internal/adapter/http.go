package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/reco-chat/internal/config"
	"github.com/MKhiriev/reco-chat/internal/logger"
	"github.com/MKhiriev/reco-chat/internal/stream"
	"github.com/MKhiriev/reco-chat/internal/utils"
	"github.com/MKhiriev/reco-chat/models"
	"github.com/go-resty/resty/v2"
)

const (
	streamPath    = "/api/v1/recommend/stream"
	recommendPath = "/api/v1/recommend"
	chatPath      = "/api/v1/chat"
	healthPath    = "/api/v1/health"
	historyPath   = "/api/v1/history/"

	// maxErrorBody caps how much of a failed streaming response is read.
	maxErrorBody = 64 << 10
)

type httpRecommendationAdapter struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPRecommendationAdapter constructs the HTTP implementation of
// [RecommendationAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures a resty client without a global
// timeout: the streaming call may legitimately run for minutes, so every
// method is bounded by its context instead.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPRecommendationAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (RecommendationAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpRecommendationAdapter{
		client: utils.NewHTTPClient(baseURL, 0),
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// OpenStream implements [RecommendationAdapter]. The response body is handed
// to [stream.New] unread; read failures surface from Recv classified as
// [ErrTransport] or [ErrTimeout].
func (h *httpRecommendationAdapter) OpenStream(ctx context.Context, req models.RecommendRequest) (*stream.Stream, error) {
	resp, err := h.request(ctx, streamPath).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "text/event-stream").
		SetBody(req).
		SetDoNotParseResponse(true).
		Post(streamPath)
	if err != nil {
		return nil, classifyRequestError(ctx, err)
	}

	body := resp.RawBody()
	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		defer body.Close()
		raw, _ := io.ReadAll(io.LimitReader(body, maxErrorBody))
		return nil, statusError(resp.StatusCode(), raw)
	}

	return stream.New(ctx, body, h.logger, stream.WithErrorMapper(func(err error) error {
		return classifyRequestError(ctx, err)
	})), nil
}

// Recommend implements [RecommendationAdapter].
func (h *httpRecommendationAdapter) Recommend(ctx context.Context, req models.RecommendRequest) (models.BulkRecommendation, error) {
	resp, err := h.request(ctx, recommendPath).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(recommendPath)
	if err != nil {
		return models.BulkRecommendation{}, classifyRequestError(ctx, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BulkRecommendation{}, err
	}

	var result models.BulkRecommendation
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.BulkRecommendation{}, fmt.Errorf("%w: decode recommend response: %w", ErrMalformedPayload, err)
	}

	if result.Status == models.StatusError {
		msg := result.ErrorMessage
		if msg == "" {
			msg = result.Message
		}
		return result, NewBackendError(msg)
	}

	return result, nil
}

// Chat implements [RecommendationAdapter].
func (h *httpRecommendationAdapter) Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error) {
	resp, err := h.request(ctx, chatPath).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(chatPath)
	if err != nil {
		return models.ChatResponse{}, classifyRequestError(ctx, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ChatResponse{}, err
	}

	var reply models.ChatResponse
	if err = json.Unmarshal(resp.Body(), &reply); err != nil {
		return models.ChatResponse{}, fmt.Errorf("%w: decode chat response: %w", ErrMalformedPayload, err)
	}

	return reply, nil
}

// Health implements [RecommendationAdapter].
func (h *httpRecommendationAdapter) Health(ctx context.Context) error {
	resp, err := h.request(ctx, healthPath).Get(healthPath)
	if err != nil {
		return classifyRequestError(ctx, err)
	}

	return mapHTTPError(resp)
}

// GetHistory implements [RecommendationAdapter]. A zero page limit lets the
// backend apply its default.
func (h *httpRecommendationAdapter) GetHistory(ctx context.Context, page models.HistoryPage) ([]models.HistoryEntry, error) {
	req := h.request(ctx, historyPath).
		SetQueryParam("skip", strconv.Itoa(page.Skip))
	if page.Limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(page.Limit))
	}

	resp, err := req.Get(historyPath)
	if err != nil {
		return nil, classifyRequestError(ctx, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var entries []models.HistoryEntry
	if err = json.Unmarshal(resp.Body(), &entries); err != nil {
		return nil, fmt.Errorf("%w: decode history response: %w", ErrMalformedPayload, err)
	}

	return entries, nil
}

// SaveHistory implements [RecommendationAdapter].
func (h *httpRecommendationAdapter) SaveHistory(ctx context.Context, req models.HistoryRequest) error {
	resp, err := h.request(ctx, historyPath).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(historyPath)
	if err != nil {
		return classifyRequestError(ctx, err)
	}

	return mapHTTPError(resp)
}

// request starts a resty request bound to ctx and tagged with the trace id
// found in ctx, generating one when absent.
func (h *httpRecommendationAdapter) request(ctx context.Context, path string) *resty.Request {
	traceID, ok := utils.GetTraceIDFromContext(ctx)
	if !ok {
		traceID = h.ids.Generate()
	}

	h.logger.Debug().
		Str("trace_id", traceID).
		Str("path", path).
		Msg("sending request to recommendation server")

	return h.client.R().
		SetContext(ctx).
		SetHeader(utils.TraceIDHeader, traceID)
}
