package store

import (
	"context"
	"time"

	"github.com/MKhiriev/reco-chat/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionRepository persists the backend-issued session identifier.
type SessionRepository interface {
	// GetSessionID returns the stored id or [ErrSessionNotFound].
	GetSessionID(ctx context.Context) (string, error)
	// SaveSessionID stores id, replacing any previous value.
	SaveSessionID(ctx context.Context, id string) error
	// ClearSessionID removes the stored id. Clearing an absent id is not an
	// error.
	ClearSessionID(ctx context.Context) error
}

// PreferencesRepository persists the last used recommendation preferences.
type PreferencesRepository interface {
	// GetPreferences returns the stored preferences or [ErrPreferencesNotFound].
	GetPreferences(ctx context.Context) (models.Preferences, error)
	SavePreferences(ctx context.Context, prefs models.Preferences) error
}

// ConversationRepository stores the local chat log.
type ConversationRepository interface {
	SaveMessage(ctx context.Context, msg models.ConversationMessage) error
	// ListMessages returns the newest limit messages in chronological order.
	ListMessages(ctx context.Context, limit int) ([]models.ConversationMessage, error)
	ClearMessages(ctx context.Context) error
}

// RecentSearchRepository keeps the most recent distinct search queries.
type RecentSearchRepository interface {
	// AddSearch records query at the given time and trims the table to keep
	// entries.
	AddSearch(ctx context.Context, query string, at time.Time, keep int) error
	// ListSearches returns up to limit queries, newest first.
	ListSearches(ctx context.Context, limit int) ([]string, error)
}
