package models

import "encoding/json"

// RankedItem is one scored candidate as produced by the recommendation
// backend. The backend owns this shape; the client treats it as opaque data
// and only reads the fields below. Numeric fields are pointers so that a
// missing value can be told apart from zero.
type RankedItem struct {
	ProductID *int64 `json:"product_id,omitempty"`
	SellerID  *int64 `json:"seller_id,omitempty"`

	Title string `json:"title,omitempty"`
	Name  string `json:"name,omitempty"`

	Price *float64 `json:"price,omitempty"`

	FinalScore       *float64 `json:"final_score,omitempty"`
	MatchScore       *float64 `json:"match_score,omitempty"`
	SellerFinalScore *float64 `json:"seller_final_score,omitempty"`

	// Reason-bearing fields are kept raw because older backends sent
	// structured objects instead of strings.
	FinalReasoning         json.RawMessage `json:"final_reasoning,omitempty"`
	SellerFinalReasoning   json.RawMessage `json:"seller_final_reasoning,omitempty"`
	CombinationExplanation json.RawMessage `json:"combination_explanation,omitempty"`
	Reasoning              json.RawMessage `json:"reasoning,omitempty"`

	RankingFactors map[string]json.RawMessage `json:"ranking_factors,omitempty"`

	SellerName string `json:"seller_name,omitempty"`
	Category   string `json:"category,omitempty"`
	Condition  string `json:"condition,omitempty"`
	Location   string `json:"location,omitempty"`
}
