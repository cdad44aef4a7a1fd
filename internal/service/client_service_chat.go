package service

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/reco-chat/internal/adapter"
	"github.com/MKhiriev/reco-chat/internal/logger"
	"github.com/MKhiriev/reco-chat/models"
)

const defaultChatTimeout = 35 * time.Second

type chatService struct {
	adapter adapter.RecommendationAdapter
	timeout time.Duration
	logger  *logger.Logger
}

// NewChatService creates a ChatService whose calls are bounded by timeout
// (35s when non-positive).
func NewChatService(recoAdapter adapter.RecommendationAdapter, timeout time.Duration, logger *logger.Logger) ChatService {
	if timeout <= 0 {
		timeout = defaultChatTimeout
	}
	return &chatService{adapter: recoAdapter, timeout: timeout, logger: logger}
}

func (c *chatService) Chat(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", ErrEmptyMessage
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	reply, err := c.adapter.Chat(ctx, models.ChatRequest{Message: message})
	if err != nil {
		c.logger.Err(err).Msg("chat request failed")
		return "", err
	}

	return reply.Response, nil
}
