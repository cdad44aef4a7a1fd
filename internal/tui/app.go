package tui

import (
	"github.com/MKhiriev/reco-chat/models"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageChat        = "chat"
	pagePreferences = "preferences"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to
// the new page as the next message.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages
// 4) routes background results to the chat page
// 5) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current string
	started map[string]bool

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   startPage,
		started:   map[string]bool{startPage: true},
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	page, ok := r.pages[r.current]
	if !ok {
		return nil
	}
	return page.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkey for every page.
	if key, ok := msg.(tea.KeyMsg); ok {
		if key.String() == "ctrl+c" {
			return r, tea.Quit
		}

		if r.showBuildInfo {
			switch key.String() {
			case "esc", "enter", "q":
				r.showBuildInfo = false
			}
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case showBuildInfoMsg:
		r.showBuildInfo = true
		return r, nil

	case tea.WindowSizeMsg:
		// every page keeps its own layout
		var cmds []tea.Cmd
		for name, page := range r.pages {
			updated, cmd := page.Update(msg)
			r.pages[name] = updated
			cmds = append(cmds, cmd)
		}
		return r, tea.Batch(cmds...)

	case backgroundMsg:
		return r, r.updatePage(pageChat, msg)

	case NavigateTo:
		next, exists := r.pages[msg.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = msg.Page

		var cmds []tea.Cmd
		if !r.started[msg.Page] {
			r.started[msg.Page] = true
			cmds = append(cmds, next.Init())
		}
		if msg.Payload != nil {
			payload := msg.Payload
			cmds = append(cmds, func() tea.Msg { return payload })
		}
		return r, tea.Batch(cmds...)
	}

	return r, r.updatePage(r.current, msg)
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	page, ok := r.pages[r.current]
	if !ok {
		return renderPage("ReCo", "", "")
	}
	return page.View()
}

func (r RootModel) updatePage(name string, msg tea.Msg) tea.Cmd {
	page, ok := r.pages[name]
	if !ok {
		return nil
	}

	updated, cmd := page.Update(msg)
	r.pages[name] = updated
	return cmd
}
