package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/reco-chat/internal/logger"
	"github.com/MKhiriev/reco-chat/internal/store"
)

type sessionService struct {
	repo   store.SessionRepository
	logger *logger.Logger

	mu     sync.Mutex
	cached string
	loaded bool
}

// NewSessionService creates a SessionService that caches the id held by repo.
func NewSessionService(repo store.SessionRepository, logger *logger.Logger) SessionService {
	return &sessionService{repo: repo, logger: logger}
}

func (s *sessionService) Load(ctx context.Context) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return s.cached, s.cached != ""
	}

	id, err := s.repo.GetSessionID(ctx)
	switch {
	case errors.Is(err, store.ErrSessionNotFound):
		s.loaded = true
		return "", false
	case err != nil:
		// not cached: the next call retries the store
		s.logger.Warn().Err(err).Msg("failed to load session id, continuing without one")
		return "", false
	}

	s.cached, s.loaded = id, true
	return id, id != ""
}

func (s *sessionService) Save(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded && s.cached == id {
		return nil
	}

	if err := s.repo.SaveSessionID(ctx, id); err != nil {
		return fmt.Errorf("save session id: %w", err)
	}

	s.cached, s.loaded = id, true
	s.logger.Debug().Str("session_id", id).Msg("session id stored")
	return nil
}

func (s *sessionService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.ClearSessionID(ctx); err != nil {
		return fmt.Errorf("clear session id: %w", err)
	}

	s.cached, s.loaded = "", true
	return nil
}
