package models

// ProductCard is the presentation shape of a [RankedItem].
type ProductCard struct {
	Name  string `json:"name"`
	Price string `json:"price"`

	// AvgPrice is the formatted market average, nil when unknown.
	AvgPrice *string `json:"avg_price,omitempty"`

	// Score is the 1-100 recommendation score, nil when the backend sent no
	// usable score. It is never 0.
	Score *int `json:"score,omitempty"`

	Reason *string `json:"reason,omitempty"`

	// Site is the seller or marketplace label.
	Site string `json:"site"`
}
