package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/reco-chat/internal/adapter"
	"github.com/MKhiriev/reco-chat/internal/service"
	"github.com/MKhiriev/reco-chat/internal/stream"
	"github.com/MKhiriev/reco-chat/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(v float64) *float64 { return &v }

func enter() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter} }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func submitText(m *chatModel, text string) tea.Cmd {
	m.input.SetValue(text)
	_, cmd := m.Update(enter())
	return cmd
}

func lastEntry(t *testing.T, m *chatModel) entry {
	t.Helper()
	require.NotEmpty(t, m.entries)
	return m.entries[len(m.entries)-1]
}

// ── streaming ────────────────────────────────────────────────────────────────

func TestChat_Stream_ProgressThenComplete(t *testing.T) {
	ts := newTestServices(true)
	s := &fakeStream{events: []models.StreamEvent{
		{Type: models.StreamEventProgress, Percent: 40, Message: "ranking sellers"},
		{Type: models.StreamEventComplete, SessionID: "s-1", Results: []models.RankedItem{
			{Title: "Sony A7", Price: price(1200000)},
			{Title: "Fuji X-T4", Price: price(900000)},
		}},
	}}
	ts.reco.stream = s
	m := newChatModel(context.Background(), ts.ClientServices)

	cmd := submitText(m, "mirrorless camera")
	require.NotNil(t, cmd)
	assert.True(t, m.busy())
	assert.Equal(t, requestRecommendation, m.request)
	assert.Equal(t, models.RoleUser, lastEntry(t, m).role)

	// open
	opened := m.cmdOpenStream(context.Background(), m.seq, "mirrorless camera")()
	_, cmd = m.Update(opened)
	require.NotNil(t, cmd)

	// progress
	_, cmd = m.Update(cmd())
	assert.Equal(t, 40, m.percent)
	assert.Equal(t, "ranking sellers", m.stage)
	require.NotNil(t, cmd)

	// complete
	_, _ = m.Update(cmd())
	assert.False(t, m.busy())
	assert.True(t, s.closed)

	last := lastEntry(t, m)
	assert.Equal(t, models.RoleAssistant, last.role)
	assert.Equal(t, entryMessage, last.kind)
	require.Len(t, last.cards, 2)
	assert.Equal(t, "Sony A7", last.cards[0].Name)
	assert.Equal(t, "₩1,200,000", last.cards[0].Price)
	assert.Equal(t, last.cards, m.lastCards)
	assert.Contains(t, last.text, "2 items")
}

func TestChat_Stream_ErrorEventShownVerbatim(t *testing.T) {
	ts := newTestServices(true)
	ts.reco.stream = &fakeStream{events: []models.StreamEvent{
		{Type: models.StreamEventProgress, Percent: 10},
		{Type: models.StreamEventError, ErrorMessage: "no products matched"},
	}}
	m := newChatModel(context.Background(), ts.ClientServices)
	submitText(m, "camera")

	_, cmd := m.Update(m.cmdOpenStream(context.Background(), m.seq, "camera")())
	_, cmd = m.Update(cmd())
	_, cmd = m.Update(cmd())

	assert.Nil(t, cmd)
	assert.False(t, m.busy())
	last := lastEntry(t, m)
	assert.Equal(t, entryError, last.kind)
	assert.Equal(t, "no products matched", last.text)
	assert.Empty(t, last.cards)
}

func TestChat_Stream_OpenFailure(t *testing.T) {
	ts := newTestServices(true)
	ts.reco.err = adapter.ErrTransport
	m := newChatModel(context.Background(), ts.ClientServices)
	submitText(m, "camera")

	_, _ = m.Update(m.cmdOpenStream(context.Background(), m.seq, "camera")())

	assert.False(t, m.busy())
	last := lastEntry(t, m)
	assert.Equal(t, entryError, last.kind)
	assert.Equal(t, service.MsgTransport, last.text)
}

func TestChat_Stream_StaleEventsIgnored(t *testing.T) {
	ts := newTestServices(true)
	m := newChatModel(context.Background(), ts.ClientServices)

	submitText(m, "first")
	firstSeq := m.seq
	submitText(m, "second")
	require.NotEqual(t, firstSeq, m.seq)

	stale := &fakeStream{}
	_, cmd := m.Update(streamOpenedMsg{seq: firstSeq, stream: stale})
	assert.Nil(t, cmd)
	assert.True(t, stale.closed, "a stream opened for a superseded request is closed")

	before := len(m.entries)
	_, cmd = m.Update(streamEventMsg{seq: firstSeq, event: models.StreamEvent{Type: models.StreamEventComplete}})
	assert.Nil(t, cmd)
	assert.Len(t, m.entries, before)
	assert.True(t, m.busy())
}

func TestChat_Cancel(t *testing.T) {
	ts := newTestServices(true)
	m := newChatModel(context.Background(), ts.ClientServices)
	submitText(m, "camera")
	seq := m.seq

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, ts.StreamGuard.Current(seq), "esc cancels the in-flight request")

	// the pending Recv observes the closed stream
	_, _ = m.Update(streamEventMsg{seq: seq, err: stream.ErrClosed})
	assert.False(t, m.busy())
	assert.Equal(t, service.MsgCancelled, lastEntry(t, m).text)
}

func TestChat_EscWhenIdleClearsInput(t *testing.T) {
	m := newChatModel(context.Background(), newTestServices(true).ClientServices)
	m.input.SetValue("half typed")

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, m.input.Value())
}

// ── bulk ─────────────────────────────────────────────────────────────────────

func TestChat_Bulk_Success(t *testing.T) {
	ts := newTestServices(false)
	m := newChatModel(context.Background(), ts.ClientServices)
	submitText(m, "camera")

	rec := models.Recommendation{
		Query: "camera",
		Items: []models.RankedItem{{Title: "Sony A7"}},
		Cards: []models.ProductCard{{Name: "Sony A7", Price: "price unavailable", Site: "Joonggonara"}},
	}
	_, cmd := m.Update(recommendationDoneMsg{seq: m.seq, rec: rec})
	require.NotNil(t, cmd)
	assert.False(t, m.busy())
	assert.Len(t, lastEntry(t, m).cards, 1)
}

func TestChat_Bulk_Timeout(t *testing.T) {
	ts := newTestServices(false)
	m := newChatModel(context.Background(), ts.ClientServices)
	submitText(m, "camera")

	_, _ = m.Update(recommendationDoneMsg{seq: m.seq, err: adapter.ErrTimeout})
	assert.Equal(t, service.MsgTimeout, lastEntry(t, m).text)
}

func TestChat_Bulk_CommandCallsService(t *testing.T) {
	ts := newTestServices(false)
	ts.reco.rec = models.Recommendation{Query: "camera"}
	m := newChatModel(context.Background(), ts.ClientServices)

	msg := m.cmdRecommend(context.Background(), 7, "camera")()
	done, ok := msg.(recommendationDoneMsg)
	require.True(t, ok)
	assert.Equal(t, uint64(7), done.seq)
	assert.Equal(t, []string{"camera"}, ts.reco.queries)
}

// ── commands ─────────────────────────────────────────────────────────────────

func TestParseCommand(t *testing.T) {
	tests := []struct {
		in      string
		want    command
		command bool
	}{
		{in: "used camera", command: false},
		{in: "/new", want: command{name: "new"}, command: true},
		{in: "/CHAT  hi there ", want: command{name: "chat", arg: "hi there"}, command: true},
		{in: "/copy 2", want: command{name: "copy", arg: "2"}, command: true},
	}
	for _, tt := range tests {
		got, ok := parseCommand(tt.in)
		assert.Equal(t, tt.command, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestChat_ChatCommand(t *testing.T) {
	ts := newTestServices(true)
	m := newChatModel(context.Background(), ts.ClientServices)

	require.NotNil(t, submitText(m, "/chat hi"))
	assert.Equal(t, requestChat, m.request)
	assert.Equal(t, "hi", lastEntry(t, m).text)

	_, _ = m.Update(m.cmdChat(context.Background(), m.seq, "hi")())
	assert.False(t, m.busy())
	assert.Equal(t, "hello!", lastEntry(t, m).text)
}

func TestChat_ChatCommand_Usage(t *testing.T) {
	m := newChatModel(context.Background(), newTestServices(true).ClientServices)

	assert.Nil(t, submitText(m, "/chat"))
	assert.Contains(t, m.status, "Usage")
	assert.False(t, m.busy())
}

func TestChat_NewConversation(t *testing.T) {
	ts := newTestServices(true)
	m := newChatModel(context.Background(), ts.ClientServices)
	m.appendEntry(entry{role: models.RoleUser, text: "camera"})

	submitText(m, "/new")
	require.True(t, m.confirmReset)

	_, cmd := m.Update(runes("y"))
	require.NotNil(t, cmd)
	assert.False(t, m.confirmReset)

	_, _ = m.Update(cmd())
	assert.Equal(t, 1, ts.conversation.resets)
	require.Len(t, m.entries, 1)
	assert.Equal(t, entryInfo, m.entries[0].kind)
}

func TestChat_NewConversation_Declined(t *testing.T) {
	ts := newTestServices(true)
	m := newChatModel(context.Background(), ts.ClientServices)

	submitText(m, "/new")
	_, cmd := m.Update(runes("n"))
	assert.Nil(t, cmd)
	assert.False(t, m.confirmReset)
	assert.Equal(t, 0, ts.conversation.resets)
}

func TestChat_Copy(t *testing.T) {
	m := newChatModel(context.Background(), newTestServices(true).ClientServices)
	var copied string
	m.copyText = func(s string) error { copied = s; return nil }
	m.lastCards = []models.ProductCard{
		{Name: "Sony A7", Price: "₩1,200,000", Site: "Joonggonara"},
		{Name: "Fuji X-T4", Price: "₩900,000", Site: "Joonggonara"},
	}

	submitText(m, "/copy 2")
	assert.Contains(t, copied, "Fuji X-T4")
	assert.Contains(t, copied, "Price: ₩900,000")
	assert.Equal(t, "Copied card 2", m.status)

	submitText(m, "/copy 3")
	assert.Equal(t, "No card 3 to copy", m.status)

	m.copyText = func(string) error { return errors.New("no clipboard") }
	submitText(m, "/copy")
	assert.Equal(t, "Clipboard is not available", m.status)
}

func TestChat_History(t *testing.T) {
	ts := newTestServices(true)
	persona := "safety_first"
	ts.history.entries = []models.HistoryEntry{{SearchQuery: "camera", PersonaType: &persona}}
	m := newChatModel(context.Background(), ts.ClientServices)

	cmd := submitText(m, "/history")
	require.NotNil(t, cmd)
	_, _ = m.Update(cmd())

	last := lastEntry(t, m)
	assert.Equal(t, entryInfo, last.kind)
	assert.Contains(t, last.text, "1. camera · 0 results · safety_first")
}

func TestChat_UnknownCommand(t *testing.T) {
	m := newChatModel(context.Background(), newTestServices(true).ClientServices)

	submitText(m, "/dance")
	assert.Contains(t, m.status, "Unknown command /dance")
}

// ── recent searches / restore ────────────────────────────────────────────────

func TestChat_RecentSearchCycling(t *testing.T) {
	m := newChatModel(context.Background(), newTestServices(true).ClientServices)
	m.recent = []string{"lens", "tripod"}

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "lens", m.input.Value())
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "tripod", m.input.Value())
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "tripod", m.input.Value())
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "lens", m.input.Value())
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Empty(t, m.input.Value())
}

func TestChat_RememberSearch(t *testing.T) {
	m := newChatModel(context.Background(), newTestServices(true).ClientServices)
	m.recent = []string{"a", "b", "c", "d", "e"}

	m.rememberSearch("c")
	assert.Equal(t, []string{"c", "a", "b", "d", "e"}, m.recent)

	m.rememberSearch("f")
	assert.Equal(t, []string{"f", "c", "a", "b", "d"}, m.recent)
}

func TestChat_Load(t *testing.T) {
	ts := newTestServices(true)
	ts.conversation.messages = []models.ConversationMessage{
		{Role: models.RoleUser, Text: "camera"},
		{Role: models.RoleAssistant, Text: "found", Products: []models.ProductCard{{Name: "Sony A7"}}},
	}
	ts.conversation.recent = []string{"camera"}
	ts.preferences.prefs.TrustSafety = 80
	m := newChatModel(context.Background(), ts.ClientServices)

	_, _ = m.Update(m.cmdLoad()())

	assert.Len(t, m.entries, 2)
	assert.Equal(t, []string{"camera"}, m.recent)
	assert.Equal(t, 80, m.prefs.TrustSafety)
	require.Len(t, m.lastCards, 1)
}

func TestChat_Health(t *testing.T) {
	m := newChatModel(context.Background(), newTestServices(true).ClientServices)
	assert.Contains(t, m.healthView(), "checking")

	_, _ = m.Update(healthMsg{status: models.HealthStatus{Healthy: true}})
	assert.Contains(t, m.healthView(), "online")

	_, _ = m.Update(healthMsg{status: models.HealthStatus{Err: adapter.ErrTransport}})
	assert.Contains(t, m.healthView(), "unreachable")
}

// ── rendering ────────────────────────────────────────────────────────────────

func TestRenderCard(t *testing.T) {
	score := 87
	reason := "trusted seller"
	avg := "₩1,100,000"
	out := renderCard(0, models.ProductCard{
		Name: "Sony A7", Price: "₩1,200,000", Score: &score, Reason: &reason, AvgPrice: &avg, Site: "Joonggonara",
	}, 80)

	for _, want := range []string{"1. ", "Sony A7", "₩1,200,000", "score 87", "Joonggonara", "avg ₩1,100,000", "trusted seller"} {
		assert.Contains(t, out, want)
	}
}

func TestRenderCard_NoScoreNoReason(t *testing.T) {
	out := renderCard(1, models.ProductCard{Name: "Lens", Price: "price unavailable", Site: "Joonggonara"}, 80)

	assert.Contains(t, out, "2. ")
	assert.NotContains(t, out, "score")
	assert.False(t, strings.Contains(out, "avg"))
}

func TestFitText_Runes(t *testing.T) {
	assert.Equal(t, "소니 카...", fitText("소니 카메라 풀프레임", 7))
	assert.Equal(t, "short", fitText("short", 10))
}
