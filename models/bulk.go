package models

// Status values reported in [BulkRecommendation.Status].
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// BulkRecommendation is the single JSON response of the non-streaming
// recommendation endpoint. Two historical field names carry the result list;
// see mapper.ResultItems for the precedence between them.
type BulkRecommendation struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`

	PersonaClassification *PersonaClassification `json:"persona_classification,omitempty"`

	FinalItemScores []RankedItem `json:"final_item_scores,omitempty"`
	RankedProducts  []RankedItem `json:"ranked_products,omitempty"`

	ErrorMessage  string   `json:"error_message,omitempty"`
	ExecutionTime *float64 `json:"execution_time,omitempty"`
	SessionID     string   `json:"session_id,omitempty"`
}

// PersonaClassification is the buyer persona the backend inferred.
type PersonaClassification struct {
	PersonaType string `json:"persona_type,omitempty"`
}
