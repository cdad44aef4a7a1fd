package models

// DefaultWeight is the neutral value of every preference slider.
const DefaultWeight = 50

// Preferences holds the optional filters and the five weighting sliders the
// user can tune before asking for recommendations. Nil pointers mean "not
// set" and are sent as JSON null.
type Preferences struct {
	// TrustSafety weighs seller trust and transaction safety (0-100).
	TrustSafety int `json:"trust_safety"`

	// QualityCondition weighs the physical condition of the item (0-100).
	QualityCondition int `json:"quality_condition"`

	// RemoteTransaction weighs support for shipping/remote deals (0-100).
	RemoteTransaction int `json:"remote_transaction"`

	// ActivityResponsiveness weighs how active and responsive the seller is
	// (0-100).
	ActivityResponsiveness int `json:"activity_responsiveness"`

	// PriceFlexibility weighs willingness to negotiate on price (0-100).
	PriceFlexibility int `json:"price_flexibility"`

	Category *string  `json:"category"`
	Location *string  `json:"location"`
	PriceMin *float64 `json:"price_min"`
	PriceMax *float64 `json:"price_max"`
}

// DefaultPreferences returns preferences with every slider at [DefaultWeight]
// and no filters.
func DefaultPreferences() Preferences {
	return Preferences{
		TrustSafety:            DefaultWeight,
		QualityCondition:       DefaultWeight,
		RemoteTransaction:      DefaultWeight,
		ActivityResponsiveness: DefaultWeight,
		PriceFlexibility:       DefaultWeight,
	}
}

// Normalized returns a copy with every weight clamped to 0..100, a swapped
// price range put back in order, and blank string filters dropped.
func (p Preferences) Normalized() Preferences {
	p.TrustSafety = clampPercent(p.TrustSafety)
	p.QualityCondition = clampPercent(p.QualityCondition)
	p.RemoteTransaction = clampPercent(p.RemoteTransaction)
	p.ActivityResponsiveness = clampPercent(p.ActivityResponsiveness)
	p.PriceFlexibility = clampPercent(p.PriceFlexibility)

	if p.Category != nil && *p.Category == "" {
		p.Category = nil
	}
	if p.Location != nil && *p.Location == "" {
		p.Location = nil
	}
	if p.PriceMin != nil && p.PriceMax != nil && *p.PriceMin > *p.PriceMax {
		p.PriceMin, p.PriceMax = p.PriceMax, p.PriceMin
	}

	return p
}

// RecommendRequest is the body of both recommendation endpoints.
type RecommendRequest struct {
	SearchQuery string `json:"search_query"`
	Preferences
	SessionID *string `json:"session_id"`
}

// NewRecommendRequest builds a request for query with normalized prefs.
// An empty sessionID is sent as null.
func NewRecommendRequest(query string, prefs Preferences, sessionID string) RecommendRequest {
	req := RecommendRequest{
		SearchQuery: query,
		Preferences: prefs.Normalized(),
	}
	if sessionID != "" {
		req.SessionID = &sessionID
	}
	return req
}

func clampPercent(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}
