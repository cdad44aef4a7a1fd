package stub

import (
	"cmp"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/reco-chat/internal/utils"
	"github.com/MKhiriev/reco-chat/models"
)

// Query keywords that switch the script into a failure mode.
const (
	KeywordFail    = "fail"
	KeywordNothing = "nothing"
	KeywordGarbled = "garbled"
	KeywordCutoff  = "cutoff"
	KeywordBusy    = "busy"
)

// DefaultHistoryLimit is applied when a history listing has no limit.
const DefaultHistoryLimit = 100

// ScriptedError is the message reported by the "fail" scenario.
const ScriptedError = "recommendation pipeline failed"

// MalformedFrame is the payload emitted by the "garbled" scenario.
var MalformedFrame = []byte(`{"type":"progress","progress":`)

var progressScript = []struct {
	percent int
	message string
}{
	{10, "Analyzing your request"},
	{30, "Classifying buyer persona"},
	{55, "Searching listings"},
	{80, "Scoring sellers"},
	{95, "Ranking results"},
}

// Backend answers recommendation, chat and history calls from canned data.
// It is safe for concurrent use.
type Backend struct {
	mu      sync.Mutex
	history []models.HistoryEntry
	nextID  int64

	ids *utils.UUIDGenerator
	now func() time.Time
}

func NewBackend() *Backend {
	return &Backend{
		ids: utils.NewUUIDGenerator(),
		now: time.Now,
	}
}

// Script returns the payloads of every frame the stream endpoint emits for
// req, in order.
func (b *Backend) Script(req models.RecommendRequest) [][]byte {
	query := strings.ToLower(req.SearchQuery)
	sessionID := b.sessionID(req)

	frames := make([][]byte, 0, len(progressScript)+2)
	for i, step := range progressScript {
		if strings.Contains(query, KeywordGarbled) && i == 2 {
			frames = append(frames, MalformedFrame)
		}
		if strings.Contains(query, KeywordFail) && i == 3 {
			return append(frames, mustJSON(models.StreamEvent{
				Type:         models.StreamEventError,
				ErrorMessage: ScriptedError,
			}))
		}
		frames = append(frames, mustJSON(models.StreamEvent{
			Type:    models.StreamEventProgress,
			Percent: step.percent,
			Message: step.message,
		}))
	}

	if strings.Contains(query, KeywordCutoff) {
		return frames
	}

	return append(frames, mustJSON(completeEvent{
		Type:      models.StreamEventComplete,
		Results:   b.rank(req),
		SessionID: sessionID,
	}))
}

// completeEvent keeps final_item_scores present even when it is empty.
type completeEvent struct {
	Type      models.StreamEventType `json:"type"`
	Results   []models.RankedItem    `json:"final_item_scores"`
	SessionID string                 `json:"session_id"`
}

// Recommend answers the non-streaming endpoint.
func (b *Backend) Recommend(req models.RecommendRequest) models.BulkRecommendation {
	started := b.now()
	sessionID := b.sessionID(req)

	if strings.Contains(strings.ToLower(req.SearchQuery), KeywordFail) {
		return models.BulkRecommendation{
			Status:       models.StatusError,
			ErrorMessage: ScriptedError,
			SessionID:    sessionID,
		}
	}

	elapsed := b.now().Sub(started).Seconds()
	return models.BulkRecommendation{
		Status:                models.StatusSuccess,
		Message:               "recommendation completed",
		PersonaClassification: &models.PersonaClassification{PersonaType: persona(req.Preferences)},
		FinalItemScores:       b.rank(req),
		ExecutionTime:         &elapsed,
		SessionID:             sessionID,
	}
}

// Chat answers the free-form chat endpoint.
func (b *Backend) Chat(req models.ChatRequest) models.ChatResponse {
	msg := strings.TrimSpace(req.Message)
	if msg == "" {
		return models.ChatResponse{Response: "Tell me what you are looking for."}
	}

	return models.ChatResponse{
		Response: fmt.Sprintf("You said %q. Describe an item and I will look for listings.", msg),
	}
}

// SaveHistory stores req and returns the stored entry.
func (b *Backend) SaveHistory(req models.HistoryRequest) (models.HistoryEntry, error) {
	raw, err := json.Marshal(req.UserInput)
	if err != nil {
		return models.HistoryEntry{}, fmt.Errorf("encode user input: %w", err)
	}
	var userInput map[string]json.RawMessage
	if err = json.Unmarshal(raw, &userInput); err != nil {
		return models.HistoryEntry{}, fmt.Errorf("decode user input: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	entry := models.HistoryEntry{
		ID:          b.nextID,
		UserInput:   userInput,
		SearchQuery: req.SearchQuery,
		Results:     req.Results,
		CreatedAt:   b.now().UTC(),
	}
	if req.PersonaType != "" {
		persona := req.PersonaType
		entry.PersonaType = &persona
	}
	if entry.Results == nil {
		entry.Results = []models.RankedItem{}
	}
	b.history = append(b.history, entry)

	return entry, nil
}

// History returns stored entries in insertion order, skipping skip entries
// and returning at most limit. A non-positive limit means
// [DefaultHistoryLimit].
func (b *Backend) History(skip, limit int) []models.HistoryEntry {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if skip >= len(b.history) {
		return []models.HistoryEntry{}
	}
	end := min(skip+limit, len(b.history))

	return slices.Clone(b.history[skip:end])
}

// Busy reports whether the request should be refused as overloaded.
func (b *Backend) Busy(query string) bool {
	return strings.Contains(strings.ToLower(query), KeywordBusy)
}

func (b *Backend) sessionID(req models.RecommendRequest) string {
	if req.SessionID != nil && strings.TrimSpace(*req.SessionID) != "" {
		return *req.SessionID
	}
	return b.ids.Generate()
}

// rank filters the catalogue by the request and orders it by final score.
// When no listing mentions a query word, every listing passing the filters
// is returned.
func (b *Backend) rank(req models.RecommendRequest) []models.RankedItem {
	query := strings.ToLower(req.SearchQuery)
	if strings.Contains(query, KeywordNothing) {
		return []models.RankedItem{}
	}

	var candidates, matched []listing
	for _, l := range catalog {
		if !passesFilters(l, req.Preferences) {
			continue
		}
		candidates = append(candidates, l)
		if mentions(l, query) {
			matched = append(matched, l)
		}
	}
	if len(matched) == 0 {
		matched = candidates
	}

	slices.SortStableFunc(matched, func(a, b listing) int {
		return cmp.Compare(b.finalScore, a.finalScore)
	})

	items := make([]models.RankedItem, 0, len(matched))
	for _, l := range matched {
		items = append(items, l.rankedItem())
	}
	return items
}

func passesFilters(l listing, prefs models.Preferences) bool {
	if prefs.Category != nil && !strings.EqualFold(*prefs.Category, l.category) {
		return false
	}
	if prefs.Location != nil && !strings.Contains(strings.ToLower(l.location), strings.ToLower(*prefs.Location)) {
		return false
	}
	if prefs.PriceMin != nil && l.price < *prefs.PriceMin {
		return false
	}
	if prefs.PriceMax != nil && l.price > *prefs.PriceMax {
		return false
	}
	return true
}

func mentions(l listing, query string) bool {
	title := strings.ToLower(l.title)
	for _, word := range strings.Fields(query) {
		if strings.Contains(title, word) || slices.Contains(l.keywords, word) {
			return true
		}
	}
	return false
}

// persona names the strongest preference weight, or "balanced" on a tie.
func persona(prefs models.Preferences) string {
	weights := []struct {
		name  string
		value int
	}{
		{"safety_first", prefs.TrustSafety},
		{"quality_seeker", prefs.QualityCondition},
		{"remote_buyer", prefs.RemoteTransaction},
		{"fast_dealer", prefs.ActivityResponsiveness},
		{"bargain_hunter", prefs.PriceFlexibility},
	}

	best, tie := weights[0], false
	for _, w := range weights[1:] {
		switch {
		case w.value > best.value:
			best, tie = w, false
		case w.value == best.value:
			tie = true
		}
	}
	if tie {
		return "balanced"
	}
	return best.name
}
