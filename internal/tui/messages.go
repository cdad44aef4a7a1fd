package tui

import (
	"github.com/MKhiriev/reco-chat/internal/service"
	"github.com/MKhiriev/reco-chat/models"
)

// backgroundMsg marks results of chat-page commands. The root model routes
// them to the chat page even while another page is shown.
type backgroundMsg interface {
	background()
}

type conversationLoadedMsg struct {
	messages []models.ConversationMessage
	recent   []string
	prefs    models.Preferences
	err      error
}

type streamOpenedMsg struct {
	seq    uint64
	stream service.EventStream
	err    error
}

type streamEventMsg struct {
	seq   uint64
	event models.StreamEvent
	err   error
}

type recommendationDoneMsg struct {
	seq uint64
	rec models.Recommendation
	err error
}

type chatDoneMsg struct {
	seq   uint64
	reply string
	err   error
}

type historyLoadedMsg struct {
	entries []models.HistoryEntry
	err     error
}

type resetDoneMsg struct {
	err error
}

type healthMsg struct {
	status models.HealthStatus
}

type statusMsg struct {
	text string
}

func (conversationLoadedMsg) background() {}
func (streamOpenedMsg) background()       {}
func (streamEventMsg) background()        {}
func (recommendationDoneMsg) background() {}
func (chatDoneMsg) background()           {}
func (historyLoadedMsg) background()      {}
func (resetDoneMsg) background()          {}
func (healthMsg) background()             {}
func (statusMsg) background()             {}

// openPreferencesMsg carries the current preferences into the form.
type openPreferencesMsg struct {
	prefs models.Preferences
}

type prefsSavedMsg struct {
	prefs models.Preferences
	err   error
}

// prefsChangedMsg tells the chat page which preferences to send from now on.
type prefsChangedMsg struct {
	prefs models.Preferences
}

type showBuildInfoMsg struct{}
