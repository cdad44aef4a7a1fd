package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/reco-chat/internal/logger"
	"github.com/MKhiriev/reco-chat/models"
)

// settingsRepository stores single values in the client_settings key/value
// table. It backs both [SessionRepository] and [PreferencesRepository].
type settingsRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

func newSettingsRepository(db *DB, logger *logger.Logger) *settingsRepository {
	return &settingsRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

// NewSessionRepository returns the SQLite-backed [SessionRepository].
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return newSettingsRepository(db, logger)
}

// NewPreferencesRepository returns the SQLite-backed [PreferencesRepository].
func NewPreferencesRepository(db *DB, logger *logger.Logger) PreferencesRepository {
	return newSettingsRepository(db, logger)
}

func (s *settingsRepository) GetSessionID(ctx context.Context) (string, error) {
	return s.get(ctx, settingSessionID, ErrSessionNotFound)
}

func (s *settingsRepository) SaveSessionID(ctx context.Context, id string) error {
	return s.put(ctx, settingSessionID, id)
}

func (s *settingsRepository) ClearSessionID(ctx context.Context) error {
	return s.delete(ctx, settingSessionID)
}

func (s *settingsRepository) GetPreferences(ctx context.Context) (models.Preferences, error) {
	value, err := s.get(ctx, settingPreferences, ErrPreferencesNotFound)
	if err != nil {
		return models.Preferences{}, err
	}

	prefs := models.DefaultPreferences()
	if err = json.Unmarshal([]byte(value), &prefs); err != nil {
		return models.Preferences{}, fmt.Errorf("failed to decode stored preferences: %w", err)
	}

	return prefs.Normalized(), nil
}

func (s *settingsRepository) SavePreferences(ctx context.Context, prefs models.Preferences) error {
	value, err := json.Marshal(prefs.Normalized())
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}

	return s.put(ctx, settingPreferences, string(value))
}

func (s *settingsRepository) get(ctx context.Context, key string, notFound error) (string, error) {
	log := s.logger

	var value string
	err := s.DB.QueryRowContext(ctx, getSetting, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", notFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "settingsRepository.get").
			Str("key", key).
			Msg("failed to query client setting")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (s *settingsRepository) put(ctx context.Context, key, value string) error {
	log := s.logger

	if _, err := s.DB.ExecContext(ctx, upsertSetting, key, value, s.now().UTC()); err != nil {
		log.Err(err).
			Str("func", "settingsRepository.put").
			Str("key", key).
			Msg("failed to upsert client setting")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *settingsRepository) delete(ctx context.Context, key string) error {
	log := s.logger

	if _, err := s.DB.ExecContext(ctx, deleteSetting, key); err != nil {
		log.Err(err).
			Str("func", "settingsRepository.delete").
			Str("key", key).
			Msg("failed to delete client setting")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
