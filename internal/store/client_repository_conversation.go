package store

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/MKhiriev/reco-chat/internal/logger"
	"github.com/MKhiriev/reco-chat/models"
)

type conversationRepository struct {
	*DB
	logger *logger.Logger
}

// NewConversationRepository returns the SQLite-backed [ConversationRepository].
func NewConversationRepository(db *DB, logger *logger.Logger) ConversationRepository {
	return &conversationRepository{
		DB:     db,
		logger: logger,
	}
}

func (c *conversationRepository) SaveMessage(ctx context.Context, msg models.ConversationMessage) error {
	log := c.logger

	products := msg.Products
	if products == nil {
		products = []models.ProductCard{}
	}
	encoded, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("failed to encode message products: %w", err)
	}

	query, args, err := buildInsertMessageQuery(msg.ID, string(msg.Role), msg.Text, string(encoded), msg.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := c.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "conversationRepository.SaveMessage").
			Str("id", msg.ID).
			Msg("failed to insert conversation message")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrMessageNotSaved
	}

	return nil
}

func (c *conversationRepository) ListMessages(ctx context.Context, limit int) ([]models.ConversationMessage, error) {
	log := c.logger

	if limit <= 0 {
		return []models.ConversationMessage{}, nil
	}

	query, args, err := buildSelectRecentMessagesQuery(limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "conversationRepository.ListMessages").
			Msg("failed to query conversation messages")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	messages := make([]models.ConversationMessage, 0, limit)
	for rows.Next() {
		var (
			msg      models.ConversationMessage
			role     string
			products string
		)
		if err = rows.Scan(&msg.ID, &role, &msg.Text, &products, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		msg.Role = models.Role(role)

		if err = json.Unmarshal([]byte(products), &msg.Products); err != nil {
			log.Warn().Err(err).Str("id", msg.ID).Msg("dropping undecodable products of stored message")
			msg.Products = nil
		}
		if len(msg.Products) == 0 {
			msg.Products = nil
		}

		messages = append(messages, msg)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	slices.Reverse(messages)
	return messages, nil
}

func (c *conversationRepository) ClearMessages(ctx context.Context) error {
	query, args, err := buildDeleteMessagesQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = c.DB.ExecContext(ctx, query, args...); err != nil {
		c.logger.Err(err).
			Str("func", "conversationRepository.ClearMessages").
			Msg("failed to clear conversation")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
