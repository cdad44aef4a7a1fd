package mapper

import (
	"testing"

	"github.com/MKhiriev/reco-chat/models"
	"github.com/stretchr/testify/assert"
)

func TestResultItems(t *testing.T) {
	final := []models.RankedItem{{Title: "final"}}
	ranked := []models.RankedItem{{Title: "ranked"}}

	tests := []struct {
		name string
		resp models.BulkRecommendation
		want []models.RankedItem
	}{
		{name: "final wins", resp: models.BulkRecommendation{FinalItemScores: final, RankedProducts: ranked}, want: final},
		{name: "ranked fallback", resp: models.BulkRecommendation{FinalItemScores: []models.RankedItem{}, RankedProducts: ranked}, want: ranked},
		{name: "both empty", resp: models.BulkRecommendation{}, want: []models.RankedItem{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResultItems(tt.resp)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResultSummary(t *testing.T) {
	assert.Contains(t, ResultSummary("bike", 0), "No recommendations")
	assert.Equal(t, `Found a match for "bike". 1 item recommended:`, ResultSummary("bike", 1))
	assert.Equal(t, `Found matches for "bike". 3 items recommended:`, ResultSummary("bike", 3))
}

func TestFromStreamEvent(t *testing.T) {
	ev := models.StreamEvent{
		Type:      models.StreamEventComplete,
		SessionID: "s-1",
		Results:   []models.RankedItem{{Title: "Desk"}},
	}

	rec := FromStreamEvent("desk", ev)

	assert.Equal(t, "desk", rec.Query)
	assert.Equal(t, "s-1", rec.SessionID)
	assert.Len(t, rec.Items, 1)
	assert.Equal(t, "Desk", rec.Cards[0].Name)
}

func TestFromStreamEvent_NoResults(t *testing.T) {
	rec := FromStreamEvent("desk", models.StreamEvent{Type: models.StreamEventComplete})

	assert.NotNil(t, rec.Items)
	assert.Empty(t, rec.Cards)
}

func TestFromBulk_SameCardsAsStream(t *testing.T) {
	items := []models.RankedItem{{Title: "Desk"}, {Name: "Chair"}}
	bulk := models.BulkRecommendation{
		Status:                models.StatusSuccess,
		RankedProducts:        items,
		SessionID:             "s-2",
		PersonaClassification: &models.PersonaClassification{PersonaType: "bargain_hunter"},
	}

	fromBulk := FromBulk("furniture", bulk)
	fromStream := FromStreamEvent("furniture", models.StreamEvent{Type: models.StreamEventComplete, Results: items})

	assert.Equal(t, fromStream.Cards, fromBulk.Cards)
	assert.Equal(t, "bargain_hunter", fromBulk.PersonaType)
	assert.Equal(t, "s-2", fromBulk.SessionID)
}
