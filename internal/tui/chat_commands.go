package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/reco-chat/internal/service"
	"github.com/MKhiriev/reco-chat/models"
	tea "github.com/charmbracelet/bubbletea"
)

const helpText = `Type what you are looking for and press enter.
Commands:
  /chat <message>  ask the assistant without searching
  /history         show searches saved on the backend
  /copy [n]        copy card n of the last recommendation
  /prefs           edit preferences (ctrl+p)
  /new             start a new conversation
  /about           version information
  /quit            leave
Keys: esc cancels a running request, up/down recall recent searches,
pgup/pgdown scroll.`

type command struct {
	name string
	arg  string
}

// parseCommand splits "/name arg" input. Plain text is not a command.
func parseCommand(text string) (command, bool) {
	if !strings.HasPrefix(text, "/") {
		return command{}, false
	}

	name, arg, _ := strings.Cut(strings.TrimPrefix(text, "/"), " ")
	return command{name: strings.ToLower(name), arg: strings.TrimSpace(arg)}, true
}

func (m *chatModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	conversation := m.services.ConversationService
	preferences := m.services.PreferencesService

	return func() tea.Msg {
		msg := conversationLoadedMsg{prefs: preferences.Load(ctx)}

		messages, err := conversation.Messages(ctx)
		if err != nil {
			msg.err = err
		}
		msg.messages = messages

		recent, err := conversation.RecentSearches(ctx)
		if err != nil && msg.err == nil {
			msg.err = err
		}
		msg.recent = recent

		return msg
	}
}

func (m *chatModel) cmdWaitHealth() tea.Cmd {
	if m.services.HealthJob == nil {
		return nil
	}

	ctx := m.ctx
	updates := m.services.HealthJob.Updates()
	return func() tea.Msg {
		select {
		case status := <-updates:
			return healthMsg{status: status}
		case <-ctx.Done():
			return nil
		}
	}
}

func (m *chatModel) cmdOpenStream(ctx context.Context, seq uint64, query string) tea.Cmd {
	svc := m.services.RecommendationService
	prefs := m.prefs

	return func() tea.Msg {
		s, err := svc.Stream(ctx, query, prefs)
		return streamOpenedMsg{seq: seq, stream: s, err: err}
	}
}

// cmdRecv reads exactly one event so events reach Update in stream order.
func cmdRecv(seq uint64, s service.EventStream) tea.Cmd {
	return func() tea.Msg {
		event, err := s.Recv()
		return streamEventMsg{seq: seq, event: event, err: err}
	}
}

func (m *chatModel) cmdRecommend(ctx context.Context, seq uint64, query string) tea.Cmd {
	svc := m.services.RecommendationService
	prefs := m.prefs

	return func() tea.Msg {
		rec, err := svc.Recommend(ctx, query, prefs)
		return recommendationDoneMsg{seq: seq, rec: rec, err: err}
	}
}

func (m *chatModel) cmdChat(ctx context.Context, seq uint64, message string) tea.Cmd {
	svc := m.services.ChatService

	return func() tea.Msg {
		reply, err := svc.Chat(ctx, message)
		return chatDoneMsg{seq: seq, reply: reply, err: err}
	}
}

func (m *chatModel) cmdHistory() tea.Cmd {
	ctx := m.ctx
	svc := m.services.HistoryService

	return func() tea.Msg {
		entries, err := svc.List(ctx, models.HistoryPage{Limit: historyPageSize})
		return historyLoadedMsg{entries: entries, err: err}
	}
}

func (m *chatModel) cmdRecordHistory(rec models.Recommendation) tea.Cmd {
	ctx := m.ctx
	svc := m.services.HistoryService
	prefs := m.prefs

	return func() tea.Msg {
		// failures are logged by the service and never shown
		_ = svc.Record(ctx, prefs, rec)
		return nil
	}
}

func (m *chatModel) cmdPersist(role models.Role, text string, cards []models.ProductCard) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ConversationService

	return func() tea.Msg {
		if _, err := svc.Append(ctx, role, text, cards); err != nil {
			return statusMsg{text: "Could not save the conversation locally"}
		}
		return nil
	}
}

func (m *chatModel) cmdRecordSearch(query string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ConversationService

	return func() tea.Msg {
		_ = svc.RecordSearch(ctx, query)
		return nil
	}
}

func (m *chatModel) cmdReset() tea.Cmd {
	ctx := m.ctx
	svc := m.services.ConversationService

	return func() tea.Msg {
		return resetDoneMsg{err: svc.Reset(ctx)}
	}
}
