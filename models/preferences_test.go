package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestPreferences_Normalized(t *testing.T) {
	p := Preferences{
		TrustSafety:            150,
		QualityCondition:       -10,
		RemoteTransaction:      40,
		ActivityResponsiveness: 100,
		PriceFlexibility:       0,
		Category:               ptr(""),
		Location:               ptr("Seoul"),
		PriceMin:               ptr(500000.0),
		PriceMax:               ptr(100000.0),
	}

	got := p.Normalized()

	assert.Equal(t, 100, got.TrustSafety)
	assert.Equal(t, 0, got.QualityCondition)
	assert.Equal(t, 40, got.RemoteTransaction)
	assert.Nil(t, got.Category)
	require.NotNil(t, got.Location)
	assert.Equal(t, "Seoul", *got.Location)
	assert.Equal(t, 100000.0, *got.PriceMin)
	assert.Equal(t, 500000.0, *got.PriceMax)

	// the receiver is untouched
	assert.Equal(t, 150, p.TrustSafety)
	assert.Equal(t, 500000.0, *p.PriceMin)
}

func TestNewRecommendRequest_JSON(t *testing.T) {
	raw, err := json.Marshal(NewRecommendRequest("camera", DefaultPreferences(), ""))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"search_query": "camera",
		"trust_safety": 50,
		"quality_condition": 50,
		"remote_transaction": 50,
		"activity_responsiveness": 50,
		"price_flexibility": 50,
		"category": null,
		"location": null,
		"price_min": null,
		"price_max": null,
		"session_id": null
	}`, string(raw))

	req := NewRecommendRequest("camera", DefaultPreferences(), "s-1")
	require.NotNil(t, req.SessionID)
	assert.Equal(t, "s-1", *req.SessionID)
}
