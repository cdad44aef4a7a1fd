package service

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/reco-chat/internal/adapter"
	"github.com/MKhiriev/reco-chat/internal/logger"
	"github.com/MKhiriev/reco-chat/internal/mapper"
	"github.com/MKhiriev/reco-chat/internal/utils"
	"github.com/MKhiriev/reco-chat/models"
)

const defaultBulkTimeout = 5 * time.Minute

type recommendationService struct {
	adapter     adapter.RecommendationAdapter
	sessions    SessionService
	bulkTimeout time.Duration
	ids         *utils.UUIDGenerator

	logger *logger.Logger
}

// NewRecommendationService creates a RecommendationService. A non-positive
// bulkTimeout falls back to five minutes.
func NewRecommendationService(recoAdapter adapter.RecommendationAdapter, sessions SessionService, bulkTimeout time.Duration, logger *logger.Logger) RecommendationService {
	if bulkTimeout <= 0 {
		bulkTimeout = defaultBulkTimeout
	}

	return &recommendationService{
		adapter:     recoAdapter,
		sessions:    sessions,
		bulkTimeout: bulkTimeout,
		ids:         utils.NewUUIDGenerator(),
		logger:      logger,
	}
}

func (r *recommendationService) Stream(ctx context.Context, query string, prefs models.Preferences) (EventStream, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	ctx, log := r.traced(ctx)
	sessionID, _ := r.sessions.Load(ctx)

	log.Info().
		Str("query", query).
		Bool("has_session", sessionID != "").
		Msg("opening recommendation stream")

	s, err := r.adapter.OpenStream(ctx, models.NewRecommendRequest(query, prefs, sessionID))
	if err != nil {
		log.Err(err).Msg("failed to open recommendation stream")
		return nil, err
	}

	return &sessionStream{
		EventStream: s,
		ctx:         context.WithoutCancel(ctx),
		sessions:    r.sessions,
		logger:      log,
	}, nil
}

func (r *recommendationService) Recommend(ctx context.Context, query string, prefs models.Preferences) (models.Recommendation, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return models.Recommendation{}, ErrEmptyQuery
	}

	ctx, log := r.traced(ctx)
	ctx, cancel := context.WithTimeout(ctx, r.bulkTimeout)
	defer cancel()

	sessionID, _ := r.sessions.Load(ctx)

	started := time.Now()
	resp, err := r.adapter.Recommend(ctx, models.NewRecommendRequest(query, prefs, sessionID))
	if err != nil {
		log.Err(err).Dur("elapsed", time.Since(started)).Msg("recommendation request failed")
		return models.Recommendation{}, err
	}

	if err = r.sessions.Save(ctx, resp.SessionID); err != nil {
		log.Warn().Err(err).Msg("failed to persist session id")
	}

	rec := mapper.FromBulk(query, resp)
	log.Info().
		Int("items", len(rec.Items)).
		Dur("elapsed", time.Since(started)).
		Msg("recommendation received")

	return rec, nil
}

// traced attaches a fresh trace id to ctx unless one is present and returns a
// child logger carrying it.
func (r *recommendationService) traced(ctx context.Context) (context.Context, *logger.Logger) {
	traceID, ok := utils.GetTraceIDFromContext(ctx)
	if !ok {
		traceID = r.ids.Generate()
		ctx = utils.WithTraceID(ctx, traceID)
	}

	return ctx, r.logger.WithTraceID(traceID)
}

// sessionStream persists the session id of a complete event before handing
// the event to the caller.
type sessionStream struct {
	EventStream

	ctx      context.Context
	sessions SessionService
	logger   *logger.Logger
}

func (s *sessionStream) Recv() (models.StreamEvent, error) {
	event, err := s.EventStream.Recv()
	if err != nil {
		return event, err
	}

	switch event.Type {
	case models.StreamEventComplete:
		if saveErr := s.sessions.Save(s.ctx, event.SessionID); saveErr != nil {
			s.logger.Warn().Err(saveErr).Msg("failed to persist session id")
		}
		s.logger.Info().Int("items", len(event.Results)).Msg("recommendation stream completed")
	case models.StreamEventError:
		s.logger.Warn().Str("error_message", event.ErrorMessage).Msg("recommendation stream reported an error")
	}

	return event, nil
}
