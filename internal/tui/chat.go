package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MKhiriev/reco-chat/internal/mapper"
	"github.com/MKhiriev/reco-chat/internal/service"
	"github.com/MKhiriev/reco-chat/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type entryKind int

const (
	entryMessage entryKind = iota
	entryError
	entryInfo
)

// entry is one block of the conversation as shown on screen.
type entry struct {
	role  models.Role
	kind  entryKind
	text  string
	cards []models.ProductCard
}

type requestKind int

const (
	requestNone requestKind = iota
	requestRecommendation
	requestChat
)

const historyPageSize = 10

type chatModel struct {
	ctx      context.Context
	services *service.ClientServices
	copyText func(string) error

	width  int
	height int

	input    textinput.Model
	viewport viewport.Model
	progress progress.Model
	spinner  spinner.Model

	entries   []entry
	lastCards []models.ProductCard
	recent    []string
	recentIdx int
	prefs     models.Preferences
	health    *models.HealthStatus

	// in-flight request
	request requestKind
	seq     uint64
	done    func()
	stream  service.EventStream
	query   string
	percent int
	stage   string

	confirmReset bool
	status       string
}

func newChatModel(ctx context.Context, services *service.ClientServices) *chatModel {
	input := textinput.New()
	input.Placeholder = "What are you looking for? (/help for commands)"
	input.CharLimit = 500
	input.Width = 60
	input.Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &chatModel{
		ctx:       ctx,
		services:  services,
		copyText:  clipboard.WriteAll,
		input:     input,
		viewport:  viewport.New(80, 20),
		progress:  progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		spinner:   s,
		recentIdx: -1,
		prefs:     models.DefaultPreferences(),
	}
}

func (m *chatModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.cmdLoad(), m.cmdWaitHealth())
}

func (m *chatModel) busy() bool {
	return m.request != requestNone
}

func (m *chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case conversationLoadedMsg:
		m.prefs = msg.prefs
		m.recent = msg.recent
		if msg.err != nil {
			m.status = "Could not restore the previous conversation"
		}
		for _, cm := range msg.messages {
			m.entries = append(m.entries, entry{role: cm.Role, text: cm.Text, cards: cm.Products})
			if cm.Role == models.RoleAssistant && len(cm.Products) > 0 {
				m.lastCards = cm.Products
			}
		}
		m.refresh()
		return m, nil

	case healthMsg:
		status := msg.status
		m.health = &status
		return m, m.cmdWaitHealth()

	case streamOpenedMsg:
		if msg.seq != m.seq || m.request != requestRecommendation {
			if msg.stream != nil {
				_ = msg.stream.Close()
			}
			return m, nil
		}
		if msg.err != nil {
			return m, m.fail(msg.err)
		}
		m.stream = msg.stream
		return m, cmdRecv(msg.seq, msg.stream)

	case streamEventMsg:
		if msg.seq != m.seq || m.request != requestRecommendation {
			return m, nil
		}
		return m, m.handleEvent(msg)

	case recommendationDoneMsg:
		if msg.seq != m.seq || m.request != requestRecommendation {
			return m, nil
		}
		if msg.err != nil {
			return m, m.fail(msg.err)
		}
		return m, m.complete(msg.rec)

	case chatDoneMsg:
		if msg.seq != m.seq || m.request != requestChat {
			return m, nil
		}
		if msg.err != nil {
			return m, m.fail(msg.err)
		}
		m.finish()
		m.appendEntry(entry{role: models.RoleAssistant, text: msg.reply})
		return m, m.cmdPersist(models.RoleAssistant, msg.reply, nil)

	case historyLoadedMsg:
		if msg.err != nil {
			m.appendEntry(entry{role: models.RoleAssistant, kind: entryError, text: service.UserMessage(msg.err)})
			return m, nil
		}
		m.appendEntry(entry{role: models.RoleAssistant, kind: entryInfo, text: renderHistory(msg.entries)})
		return m, nil

	case resetDoneMsg:
		if msg.err != nil {
			m.status = "Could not start a new conversation"
			return m, nil
		}
		m.entries = nil
		m.lastCards = nil
		m.appendEntry(entry{role: models.RoleAssistant, kind: entryInfo, text: "Started a new conversation."})
		return m, nil

	case prefsChangedMsg:
		m.prefs = msg.prefs
		m.status = "Preferences saved"
		return m, nil

	case statusMsg:
		m.status = msg.text
		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *chatModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmReset {
		switch {
		case key.Matches(msg, keys.yes):
			m.confirmReset = false
			if m.busy() {
				m.services.StreamGuard.Cancel()
				m.finish()
			}
			return m, m.cmdReset()
		case key.Matches(msg, keys.no):
			m.confirmReset = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.cancel):
		if m.busy() {
			// the pending Recv or request fails with a cancellation error
			m.services.StreamGuard.Cancel()
			m.status = "Cancelling..."
			return m, nil
		}
		m.input.SetValue("")
		m.recentIdx = -1
		return m, nil

	case key.Matches(msg, keys.send):
		return m.submit()

	case key.Matches(msg, keys.prevSearch):
		m.cycleRecent(1)
		return m, nil

	case key.Matches(msg, keys.nextSearch):
		m.cycleRecent(-1)
		return m, nil

	case key.Matches(msg, keys.pageUp), key.Matches(msg, keys.pageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case key.Matches(msg, keys.preferences):
		return m, m.openPreferences()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *chatModel) submit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}
	m.input.SetValue("")
	m.recentIdx = -1
	m.status = ""

	cmd, isCommand := parseCommand(text)
	if !isCommand {
		return m, m.startRecommendation(text)
	}

	switch cmd.name {
	case "chat":
		if cmd.arg == "" {
			m.status = "Usage: /chat <message>"
			return m, nil
		}
		return m, m.startChat(cmd.arg)
	case "new":
		m.confirmReset = true
		return m, nil
	case "history":
		return m, m.cmdHistory()
	case "prefs", "preferences":
		return m, m.openPreferences()
	case "copy":
		m.copyCard(cmd.arg)
		return m, nil
	case "about":
		return m, func() tea.Msg { return showBuildInfoMsg{} }
	case "help":
		m.appendEntry(entry{role: models.RoleAssistant, kind: entryInfo, text: helpText})
		return m, nil
	case "quit", "exit":
		return m, tea.Quit
	default:
		m.status = fmt.Sprintf("Unknown command /%s. Type /help for the list.", cmd.name)
		return m, nil
	}
}

// begin registers a new request with the guard, cancelling the previous one.
func (m *chatModel) begin(kind requestKind) context.Context {
	if m.stream != nil {
		_ = m.stream.Close()
		m.stream = nil
	}

	ctx, seq, done := m.services.StreamGuard.Begin(m.ctx)
	m.request = kind
	m.seq = seq
	m.done = done
	m.percent = 0
	m.stage = ""
	return ctx
}

func (m *chatModel) startRecommendation(query string) tea.Cmd {
	m.appendEntry(entry{role: models.RoleUser, text: query})
	m.rememberSearch(query)

	ctx := m.begin(requestRecommendation)
	m.query = query
	m.stage = "Sending request..."

	request := m.cmdRecommend(ctx, m.seq, query)
	if m.services.Streaming {
		request = m.cmdOpenStream(ctx, m.seq, query)
	}

	return tea.Batch(
		m.cmdPersist(models.RoleUser, query, nil),
		m.cmdRecordSearch(query),
		m.spinner.Tick,
		request,
	)
}

func (m *chatModel) startChat(message string) tea.Cmd {
	m.appendEntry(entry{role: models.RoleUser, text: message})

	ctx := m.begin(requestChat)
	m.stage = "Waiting for a reply..."

	return tea.Batch(
		m.cmdPersist(models.RoleUser, message, nil),
		m.spinner.Tick,
		m.cmdChat(ctx, m.seq, message),
	)
}

func (m *chatModel) handleEvent(msg streamEventMsg) tea.Cmd {
	if msg.err != nil {
		if errors.Is(msg.err, io.EOF) {
			m.finish()
			return nil
		}
		return m.fail(msg.err)
	}

	switch msg.event.Type {
	case models.StreamEventProgress:
		m.percent = msg.event.Percent
		if msg.event.Message != "" {
			m.stage = msg.event.Message
		}
		return cmdRecv(msg.seq, m.stream)
	case models.StreamEventComplete:
		return m.complete(mapper.FromStreamEvent(m.query, msg.event))
	case models.StreamEventError:
		return m.fail(service.EventError(msg.event.ErrorMessage))
	default:
		return cmdRecv(msg.seq, m.stream)
	}
}

func (m *chatModel) complete(rec models.Recommendation) tea.Cmd {
	m.finish()

	text := mapper.ResultSummary(rec.Query, len(rec.Cards))
	if len(rec.Cards) > 0 {
		m.lastCards = rec.Cards
	}
	m.appendEntry(entry{role: models.RoleAssistant, text: text, cards: rec.Cards})

	return tea.Batch(
		m.cmdPersist(models.RoleAssistant, text, rec.Cards),
		m.cmdRecordHistory(rec),
	)
}

func (m *chatModel) fail(err error) tea.Cmd {
	m.finish()
	m.appendEntry(entry{role: models.RoleAssistant, kind: entryError, text: service.UserMessage(err)})
	return nil
}

// finish releases the in-flight request.
func (m *chatModel) finish() {
	if m.stream != nil {
		_ = m.stream.Close()
		m.stream = nil
	}
	if m.done != nil {
		m.done()
		m.done = nil
	}
	m.request = requestNone
	m.percent = 0
	m.stage = ""
	m.status = ""
}

func (m *chatModel) copyCard(arg string) {
	n := 1
	if arg != "" {
		v, err := strconv.Atoi(arg)
		if err != nil {
			m.status = "Usage: /copy <card number>"
			return
		}
		n = v
	}
	if n < 1 || n > len(m.lastCards) {
		m.status = fmt.Sprintf("No card %d to copy", n)
		return
	}

	if err := m.copyText(cardPlainText(m.lastCards[n-1])); err != nil {
		m.status = "Clipboard is not available"
		return
	}
	m.status = fmt.Sprintf("Copied card %d", n)
}

func (m *chatModel) openPreferences() tea.Cmd {
	prefs := m.prefs
	return func() tea.Msg {
		return NavigateTo{Page: pagePreferences, Payload: openPreferencesMsg{prefs: prefs}}
	}
}

// rememberSearch mirrors the stored recent-search list so arrow keys see the
// new query right away.
func (m *chatModel) rememberSearch(query string) {
	recent := []string{query}
	for _, q := range m.recent {
		if q != query && len(recent) < service.RecentSearchLimit {
			recent = append(recent, q)
		}
	}
	m.recent = recent
}

// cycleRecent moves through recent searches; step 1 goes to older entries.
func (m *chatModel) cycleRecent(step int) {
	if len(m.recent) == 0 {
		return
	}

	next := m.recentIdx + step
	switch {
	case next < 0:
		m.recentIdx = -1
		m.input.SetValue("")
		return
	case next >= len(m.recent):
		next = len(m.recent) - 1
	}

	m.recentIdx = next
	m.input.SetValue(m.recent[next])
	m.input.CursorEnd()
}

func (m *chatModel) appendEntry(e entry) {
	m.entries = append(m.entries, e)
	m.refresh()
}

func (m *chatModel) refresh() {
	m.viewport.SetContent(renderEntries(m.entries, m.viewport.Width))
	m.viewport.GotoBottom()
}

// chrome is the number of lines around the conversation viewport.
const chrome = 7

func (m *chatModel) resize(width, height int) {
	m.width, m.height = width, height

	m.viewport.Width = width
	m.viewport.Height = max(height-chrome, 3)
	m.input.Width = max(width-4, 10)
	m.progress.Width = min(max(width-30, 10), 60)
	m.refresh()
}
