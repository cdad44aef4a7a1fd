package mapper

import (
	"fmt"

	"github.com/MKhiriev/reco-chat/models"
)

// ResultItems returns the result list of a bulk response. final_item_scores
// takes precedence over ranked_products; the first non-empty one wins and an
// empty slice is returned when both are empty.
func ResultItems(resp models.BulkRecommendation) []models.RankedItem {
	switch {
	case len(resp.FinalItemScores) > 0:
		return resp.FinalItemScores
	case len(resp.RankedProducts) > 0:
		return resp.RankedProducts
	default:
		return []models.RankedItem{}
	}
}

// ResultSummary is the assistant line shown above the cards of a finished
// recommendation.
func ResultSummary(query string, count int) string {
	switch count {
	case 0:
		return fmt.Sprintf("No recommendations found for %q. Try different keywords.", query)
	case 1:
		return fmt.Sprintf("Found a match for %q. 1 item recommended:", query)
	default:
		return fmt.Sprintf("Found matches for %q. %d items recommended:", query, count)
	}
}

// FromStreamEvent builds the recommendation carried by a complete event.
func FromStreamEvent(query string, event models.StreamEvent) models.Recommendation {
	items := event.Results
	if items == nil {
		items = []models.RankedItem{}
	}

	return models.Recommendation{
		Query:     query,
		Items:     items,
		Cards:     ToProductCards(items),
		SessionID: event.SessionID,
	}
}

// FromBulk builds the recommendation carried by a non-streaming response.
func FromBulk(query string, resp models.BulkRecommendation) models.Recommendation {
	items := ResultItems(resp)

	rec := models.Recommendation{
		Query:         query,
		Items:         items,
		Cards:         ToProductCards(items),
		SessionID:     resp.SessionID,
		ExecutionTime: resp.ExecutionTime,
	}
	if resp.PersonaClassification != nil {
		rec.PersonaType = resp.PersonaClassification.PersonaType
	}

	return rec
}
