package tui

import (
	"testing"

	"github.com/MKhiriev/reco-chat/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingPage records every message it receives.
type recordingPage struct {
	name  string
	inits int
	got   []tea.Msg
}

func (p *recordingPage) Init() tea.Cmd {
	p.inits++
	return nil
}

func (p *recordingPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	p.got = append(p.got, msg)
	return p, nil
}

func (p *recordingPage) View() string { return p.name }

func newTestRoot() (RootModel, *recordingPage, *recordingPage) {
	chat := &recordingPage{name: "chat view"}
	prefs := &recordingPage{name: "prefs view"}
	root := NewRootModel(map[string]tea.Model{pageChat: chat, pagePreferences: prefs}, pageChat, models.NewAppBuildInfo("1.2.3", "", "abc"))
	return root, chat, prefs
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	root, _, _ := newTestRoot()

	_, cmd := root.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRootModel_NavigateWithPayload(t *testing.T) {
	root, _, prefs := newTestRoot()
	payload := openPreferencesMsg{prefs: models.DefaultPreferences()}

	model, cmd := root.Update(NavigateTo{Page: pagePreferences, Payload: payload})
	root = model.(RootModel)
	assert.Equal(t, "prefs view", root.View())
	assert.Equal(t, 1, prefs.inits, "first visit initialises the page")
	require.NotNil(t, cmd)

	// navigating again does not re-initialise
	model, _ = root.Update(NavigateTo{Page: pageChat})
	root = model.(RootModel)
	model, _ = root.Update(NavigateTo{Page: pagePreferences})
	root = model.(RootModel)
	assert.Equal(t, 1, prefs.inits)
}

func TestRootModel_UnknownPageIgnored(t *testing.T) {
	root, _, _ := newTestRoot()

	model, cmd := root.Update(NavigateTo{Page: "nowhere"})
	assert.Nil(t, cmd)
	assert.Equal(t, "chat view", model.View())
}

func TestRootModel_BackgroundMessagesReachChat(t *testing.T) {
	root, chat, prefs := newTestRoot()
	model, _ := root.Update(NavigateTo{Page: pagePreferences})
	root = model.(RootModel)

	_, _ = root.Update(healthMsg{status: models.HealthStatus{Healthy: true}})
	_, _ = root.Update(streamEventMsg{seq: 1})

	assert.Len(t, chat.got, 2)
	assert.Empty(t, prefs.got)
}

func TestRootModel_BuildInfoOverlay(t *testing.T) {
	root, chat, _ := newTestRoot()

	model, _ := root.Update(showBuildInfoMsg{})
	root = model.(RootModel)
	assert.Contains(t, root.View(), "1.2.3")
	assert.Contains(t, root.View(), "Date: N/A")

	// keys are swallowed while the overlay is open
	model, _ = root.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	root = model.(RootModel)
	assert.Empty(t, chat.got)

	model, _ = root.Update(tea.KeyMsg{Type: tea.KeyEsc})
	root = model.(RootModel)
	assert.Equal(t, "chat view", root.View())
}

func TestRootModel_WindowSizeBroadcast(t *testing.T) {
	root, chat, prefs := newTestRoot()

	_, _ = root.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Len(t, chat.got, 1)
	assert.Len(t, prefs.got, 1)
}
