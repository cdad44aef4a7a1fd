package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/reco-chat/internal/logger"
	"github.com/MKhiriev/reco-chat/internal/store"
	"github.com/MKhiriev/reco-chat/models"
)

type preferencesService struct {
	repo   store.PreferencesRepository
	logger *logger.Logger
}

func NewPreferencesService(repo store.PreferencesRepository, logger *logger.Logger) PreferencesService {
	return &preferencesService{repo: repo, logger: logger}
}

func (p *preferencesService) Load(ctx context.Context) models.Preferences {
	prefs, err := p.repo.GetPreferences(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrPreferencesNotFound) {
			p.logger.Warn().Err(err).Msg("failed to load preferences, using defaults")
		}
		return models.DefaultPreferences()
	}
	return prefs
}

func (p *preferencesService) Save(ctx context.Context, prefs models.Preferences) error {
	if err := p.repo.SavePreferences(ctx, prefs.Normalized()); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}
