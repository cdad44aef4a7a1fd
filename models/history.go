package models

import (
	"encoding/json"
	"time"
)

// HistoryRequest stores one finished recommendation on the backend.
type HistoryRequest struct {
	UserInput   RecommendRequest `json:"user_input"`
	SearchQuery string           `json:"search_query"`
	PersonaType string           `json:"persona_type"`
	Results     []RankedItem     `json:"results"`
}

// HistoryEntry is a stored recommendation as returned by the backend.
type HistoryEntry struct {
	ID          int64                      `json:"id"`
	UserInput   map[string]json.RawMessage `json:"user_input"`
	SearchQuery string                     `json:"search_query"`
	PersonaType *string                    `json:"persona_type"`
	Results     []RankedItem               `json:"results"`
	CreatedAt   time.Time                  `json:"created_at"`
}

// HistoryPage selects a window of the remote history.
type HistoryPage struct {
	Skip  int
	Limit int
}
