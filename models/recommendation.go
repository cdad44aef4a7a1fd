package models

// Recommendation is a finished recommendation, regardless of whether it
// arrived through the stream or the non-streaming endpoint.
type Recommendation struct {
	Query     string
	Items     []RankedItem
	Cards     []ProductCard
	SessionID string

	// PersonaType and ExecutionTime are only reported by the
	// non-streaming endpoint.
	PersonaType   string
	ExecutionTime *float64
}
