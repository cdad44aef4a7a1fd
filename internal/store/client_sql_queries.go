// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	settingSessionID   = "reco_session_id"
	settingPreferences = "reco_preferences"

	getSetting = `
		SELECT value
		FROM client_settings
		WHERE key = ?;`

	upsertSetting = `
		INSERT INTO client_settings (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET
			value      = excluded.value,
			updated_at = excluded.updated_at;`

	deleteSetting = `
		DELETE FROM client_settings
		WHERE key = ?;`
)
