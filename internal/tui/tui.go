// Package tui implements the terminal chat interface on top of bubbletea.
//
// The root model routes between the chat page and the preferences page.
// Recommendation streams are consumed one event per command, so the chat
// page sees progress and the terminal event in arrival order on the single
// bubbletea update loop.
package tui

import (
	"context"

	"github.com/MKhiriev/reco-chat/internal/logger"
	"github.com/MKhiriev/reco-chat/internal/service"
	"github.com/MKhiriev/reco-chat/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// Run blocks until the user quits or ctx is cancelled. Any request still in
// flight is cancelled before Run returns.
func (t *TUI) Run(ctx context.Context) error {
	pages := map[string]tea.Model{
		pageChat:        newChatModel(ctx, t.services),
		pagePreferences: newPreferencesModel(ctx, t.services.PreferencesService),
	}

	root := NewRootModel(pages, pageChat, t.buildInfo)
	_, err := tea.NewProgram(root,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	).Run()

	if t.services.StreamGuard.Cancel() {
		t.logger.Info().Msg("in-flight request cancelled on exit")
	}
	return err
}
