package service

import (
	"context"
	"time"

	"github.com/MKhiriev/reco-chat/models"
)

// EventStream is an open recommendation stream. *stream.Stream implements it.
type EventStream interface {
	// Recv returns the next event, io.EOF after the terminal event, or the
	// error that ended the stream.
	Recv() (models.StreamEvent, error)
	// Close releases the stream. It is safe to call more than once.
	Close() error
}

// SessionService owns the backend-issued session identifier that links
// consecutive recommendations into one conversation.
type SessionService interface {
	// Load returns the stored session id. It never fails: storage errors are
	// logged and reported as "no session".
	Load(ctx context.Context) (string, bool)

	// Save persists id. Empty ids and ids equal to the current one are not
	// written.
	Save(ctx context.Context, id string) error

	// Clear forgets the session so the next request starts a new one.
	Clear(ctx context.Context) error
}

// RecommendationService runs recommendation requests against the backend.
type RecommendationService interface {
	// Stream opens the streaming recommendation for query. The stored session
	// id is attached to the request, and a session id carried by the complete
	// event is persisted before that event is returned from Recv.
	Stream(ctx context.Context, query string, prefs models.Preferences) (EventStream, error)

	// Recommend is the non-streaming fallback. It is bounded by the bulk
	// timeout and maps the response into the same cards as the stream.
	Recommend(ctx context.Context, query string, prefs models.Preferences) (models.Recommendation, error)
}

// ChatService answers free-form messages.
type ChatService interface {
	Chat(ctx context.Context, message string) (string, error)
}

// HistoryService manages the recommendation history kept by the backend.
type HistoryService interface {
	// Record stores rec remotely when remote history is enabled. Otherwise it
	// is a no-op.
	Record(ctx context.Context, prefs models.Preferences, rec models.Recommendation) error

	// List returns one page of the remote history.
	List(ctx context.Context, page models.HistoryPage) ([]models.HistoryEntry, error)
}

// ConversationService keeps the local chat log and the recent searches.
type ConversationService interface {
	// Append stores a new message and returns it with its id and timestamp.
	Append(ctx context.Context, role models.Role, text string, products []models.ProductCard) (models.ConversationMessage, error)

	// Messages returns the newest messages in chronological order.
	Messages(ctx context.Context) ([]models.ConversationMessage, error)

	// RecordSearch remembers query as the most recent search.
	RecordSearch(ctx context.Context, query string) error

	// RecentSearches returns the last distinct searches, newest first.
	RecentSearches(ctx context.Context) ([]string, error)

	// Reset clears the local conversation and forgets the session.
	Reset(ctx context.Context) error
}

// PreferencesService loads and stores the user's recommendation preferences.
type PreferencesService interface {
	// Load returns the stored preferences, or the defaults when none were
	// saved or they cannot be read.
	Load(ctx context.Context) models.Preferences
	Save(ctx context.Context, prefs models.Preferences) error
}

// HealthService probes the backend.
type HealthService interface {
	Check(ctx context.Context) models.HealthStatus
}

// HealthJob defines the contract for a background worker that periodically
// probes the backend and publishes the result.
type HealthJob interface {
	// Start launches the background goroutine. It probes immediately and then
	// every interval. Any previously running job is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()

	// Updates delivers the latest status. Stale values are replaced rather
	// than queued.
	Updates() <-chan models.HealthStatus
}
