package tui

import (
	"context"
	"io"
	"sync"

	"github.com/MKhiriev/reco-chat/internal/service"
	"github.com/MKhiriev/reco-chat/models"
)

// fakeStream replays events, then io.EOF.
type fakeStream struct {
	events []models.StreamEvent
	closed bool
}

func (f *fakeStream) Recv() (models.StreamEvent, error) {
	if len(f.events) == 0 {
		return models.StreamEvent{}, io.EOF
	}
	ev := f.events[0]
	f.events = f.events[1:]
	return ev, nil
}

func (f *fakeStream) Close() error {
	f.closed = true
	return nil
}

type fakeRecommendation struct {
	stream  service.EventStream
	rec     models.Recommendation
	err     error
	queries []string
}

func (f *fakeRecommendation) Stream(_ context.Context, query string, _ models.Preferences) (service.EventStream, error) {
	f.queries = append(f.queries, query)
	if f.err != nil {
		return nil, f.err
	}
	return f.stream, nil
}

func (f *fakeRecommendation) Recommend(_ context.Context, query string, _ models.Preferences) (models.Recommendation, error) {
	f.queries = append(f.queries, query)
	return f.rec, f.err
}

type fakeConversation struct {
	mu       sync.Mutex
	appended []models.ConversationMessage
	messages []models.ConversationMessage
	recent   []string
	resets   int
}

func (f *fakeConversation) Append(_ context.Context, role models.Role, text string, products []models.ProductCard) (models.ConversationMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	msg := models.ConversationMessage{Role: role, Text: text, Products: products}
	f.appended = append(f.appended, msg)
	return msg, nil
}

func (f *fakeConversation) Messages(context.Context) ([]models.ConversationMessage, error) {
	return f.messages, nil
}

func (f *fakeConversation) RecordSearch(context.Context, string) error { return nil }

func (f *fakeConversation) RecentSearches(context.Context) ([]string, error) {
	return f.recent, nil
}

func (f *fakeConversation) Reset(context.Context) error {
	f.resets++
	return nil
}

type fakePreferences struct {
	prefs models.Preferences
	saved []models.Preferences
	err   error
}

func (f *fakePreferences) Load(context.Context) models.Preferences { return f.prefs }

func (f *fakePreferences) Save(_ context.Context, prefs models.Preferences) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, prefs)
	return nil
}

type fakeChat struct {
	reply string
	err   error
}

func (f fakeChat) Chat(context.Context, string) (string, error) { return f.reply, f.err }

type fakeHistory struct {
	entries  []models.HistoryEntry
	recorded []models.Recommendation
}

func (f *fakeHistory) Record(_ context.Context, _ models.Preferences, rec models.Recommendation) error {
	f.recorded = append(f.recorded, rec)
	return nil
}

func (f *fakeHistory) List(context.Context, models.HistoryPage) ([]models.HistoryEntry, error) {
	return f.entries, nil
}

type testServices struct {
	*service.ClientServices
	reco         *fakeRecommendation
	conversation *fakeConversation
	preferences  *fakePreferences
	history      *fakeHistory
}

func newTestServices(streaming bool) testServices {
	ts := testServices{
		reco:         &fakeRecommendation{},
		conversation: &fakeConversation{},
		preferences:  &fakePreferences{prefs: models.DefaultPreferences()},
		history:      &fakeHistory{},
	}
	ts.ClientServices = &service.ClientServices{
		RecommendationService: ts.reco,
		ChatService:           fakeChat{reply: "hello!"},
		HistoryService:        ts.history,
		ConversationService:   ts.conversation,
		PreferencesService:    ts.preferences,
		Streaming:             streaming,
		StreamGuard:           service.NewStreamGuard(),
	}
	return ts
}
