package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/reco-chat/internal/logger"
	"github.com/MKhiriev/reco-chat/internal/workers"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrNilUI = errors.New("ui is nil")

type App struct {
	ui      UI
	workers *workers.Workers
	closers []func() error

	logger *logger.Logger
}

// NewApp creates the client runtime. closers run in order after the UI
// exits, e.g. to close the local database.
func NewApp(ui UI, w *workers.Workers, logger *logger.Logger, closers ...func() error) (*App, error) {
	if ui == nil {
		return nil, ErrNilUI
	}
	if w == nil {
		w = &workers.Workers{}
	}

	return &App{ui: ui, workers: w, closers: closers, logger: logger}, nil
}

// Run starts the background workers, blocks in the UI and shuts everything
// down once the UI returns. Cancelling ctx ends the UI.
func (a *App) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.workers.Start(ctx)
	a.logger.Info().Msg("client started")

	defer func() {
		cancel()
		a.workers.Stop()

		for _, closeFn := range a.closers {
			if closeErr := closeFn(); closeErr != nil {
				a.logger.Err(closeErr).Msg("failed to release resource")
				err = errors.Join(err, closeErr)
			}
		}
		a.logger.Info().Msg("client stopped")
	}()

	if err = a.ui.Run(ctx); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			// interrupted by a signal
			return nil
		}
		return fmt.Errorf("ui: %w", err)
	}

	return nil
}
