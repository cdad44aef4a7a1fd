package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/reco-chat/internal/logger"
	"github.com/MKhiriev/reco-chat/internal/store"
	"github.com/MKhiriev/reco-chat/internal/utils"
	"github.com/MKhiriev/reco-chat/models"
)

const (
	// RecentSearchLimit is how many distinct searches are remembered.
	RecentSearchLimit = 5

	defaultHistoryLimit = 50
)

type conversationService struct {
	messages store.ConversationRepository
	searches store.RecentSearchRepository
	sessions SessionService
	limit    int
	ids      *utils.UUIDGenerator
	now      func() time.Time

	logger *logger.Logger
}

// NewConversationService creates a ConversationService that restores the
// newest historyLimit messages. Zero keeps nothing on screen after restart.
func NewConversationService(messages store.ConversationRepository, searches store.RecentSearchRepository, sessions SessionService, historyLimit int, logger *logger.Logger) ConversationService {
	if historyLimit < 0 {
		historyLimit = defaultHistoryLimit
	}

	return &conversationService{
		messages: messages,
		searches: searches,
		sessions: sessions,
		limit:    historyLimit,
		ids:      utils.NewUUIDGenerator(),
		now:      time.Now,
		logger:   logger,
	}
}

func (c *conversationService) Append(ctx context.Context, role models.Role, text string, products []models.ProductCard) (models.ConversationMessage, error) {
	msg := models.ConversationMessage{
		ID:        c.ids.Generate(),
		Role:      role,
		Text:      text,
		Products:  products,
		CreatedAt: c.now().UTC(),
	}

	if err := c.messages.SaveMessage(ctx, msg); err != nil {
		c.logger.Warn().Err(err).Str("role", string(role)).Msg("failed to store conversation message")
		return msg, fmt.Errorf("store conversation message: %w", err)
	}

	return msg, nil
}

func (c *conversationService) Messages(ctx context.Context) ([]models.ConversationMessage, error) {
	msgs, err := c.messages.ListMessages(ctx, c.limit)
	if err != nil {
		return nil, fmt.Errorf("load conversation: %w", err)
	}
	return msgs, nil
}

func (c *conversationService) RecordSearch(ctx context.Context, query string) error {
	if err := c.searches.AddSearch(ctx, query, c.now(), RecentSearchLimit); err != nil {
		c.logger.Warn().Err(err).Msg("failed to record recent search")
		return fmt.Errorf("record recent search: %w", err)
	}
	return nil
}

func (c *conversationService) RecentSearches(ctx context.Context) ([]string, error) {
	searches, err := c.searches.ListSearches(ctx, RecentSearchLimit)
	if err != nil {
		return nil, fmt.Errorf("load recent searches: %w", err)
	}
	return searches, nil
}

func (c *conversationService) Reset(ctx context.Context) error {
	if err := c.messages.ClearMessages(ctx); err != nil {
		return fmt.Errorf("clear conversation: %w", err)
	}
	if err := c.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("reset session: %w", err)
	}

	c.logger.Info().Msg("conversation reset")
	return nil
}
