package mapper

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/MKhiriev/reco-chat/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func raw(s string) json.RawMessage { return json.RawMessage(s) }

func TestToProductCard_FullItem(t *testing.T) {
	item := models.RankedItem{
		Title:          "Sony A7 III",
		Name:           "ignored",
		Price:          f(1250000),
		FinalScore:     f(0.873),
		MatchScore:     f(0.5),
		FinalReasoning: raw(`"Trusted seller, barely used"`),
		RankingFactors: map[string]json.RawMessage{"market_avg": raw(`1399999.6`)},
		SellerName:     "camera_shop",
	}

	card := ToProductCard(item)

	assert.Equal(t, "Sony A7 III", card.Name)
	assert.Equal(t, "₩1,250,000", card.Price)
	require.NotNil(t, card.AvgPrice)
	assert.Equal(t, "₩1,400,000", *card.AvgPrice)
	require.NotNil(t, card.Score)
	assert.Equal(t, 87, *card.Score)
	require.NotNil(t, card.Reason)
	assert.Equal(t, "Trusted seller, barely used", *card.Reason)
	assert.Equal(t, "camera_shop", card.Site)
}

func TestToProductCard_EmptyItem(t *testing.T) {
	card := ToProductCard(models.RankedItem{})

	assert.Equal(t, UntitledItem, card.Name)
	assert.Equal(t, PriceUnavailable, card.Price)
	assert.Nil(t, card.AvgPrice)
	assert.Nil(t, card.Score, "missing score must not render as 0")
	assert.Nil(t, card.Reason)
	assert.Equal(t, DefaultSite, card.Site)
}

func TestToProductCard_Name(t *testing.T) {
	assert.Equal(t, "Bike", ToProductCard(models.RankedItem{Name: "Bike"}).Name)
	assert.Equal(t, "Bike", ToProductCard(models.RankedItem{Title: "  ", Name: "Bike"}).Name)
}

func TestToProductCard_Price(t *testing.T) {
	tests := []struct {
		name  string
		price *float64
		want  string
	}{
		{name: "absent", price: nil, want: PriceUnavailable},
		{name: "NaN", price: f(math.NaN()), want: PriceUnavailable},
		{name: "zero", price: f(0), want: "₩0"},
		{name: "small", price: f(950), want: "₩950"},
		{name: "rounded", price: f(12000.5), want: "₩12,001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToProductCard(models.RankedItem{Price: tt.price}).Price)
		})
	}
}

func TestToProductCard_Score(t *testing.T) {
	tests := []struct {
		name  string
		final *float64
		match *float64
		want  *int
	}{
		{name: "final wins", final: f(0.91), match: f(0.2), want: intPtr(91)},
		{name: "match fallback", match: f(0.456), want: intPtr(46)},
		{name: "zero final falls back to match", final: f(0), match: f(0.3), want: intPtr(30)},
		{name: "NaN", final: f(math.NaN()), want: nil},
		{name: "infinite", final: f(math.Inf(1)), want: nil},
		{name: "negative", final: f(-0.4), want: nil},
		{name: "rounds to zero", final: f(0.004), want: nil},
		{name: "clamped", final: f(1.7), want: intPtr(100)},
		{name: "absent", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToProductCard(models.RankedItem{FinalScore: tt.final, MatchScore: tt.match}).Score
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToProductCard_ReasonPrecedence(t *testing.T) {
	item := models.RankedItem{
		SellerFinalReasoning:   raw(`"seller"`),
		CombinationExplanation: raw(`"combination"`),
		Reasoning:              raw(`"reasoning"`),
		RankingFactors: map[string]json.RawMessage{
			"reasoning": raw(`"factor reasoning"`),
			"reason":    raw(`"factor reason"`),
		},
	}

	assert.Equal(t, "seller", *ToProductCard(item).Reason)

	item.SellerFinalReasoning = raw(`""`)
	assert.Equal(t, "combination", *ToProductCard(item).Reason)

	item.CombinationExplanation = nil
	item.Reasoning = raw(`null`)
	assert.Equal(t, "factor reasoning", *ToProductCard(item).Reason)

	delete(item.RankingFactors, "reasoning")
	assert.Equal(t, "factor reason", *ToProductCard(item).Reason)
}

func TestToProductCard_StructuredReasonIsCompacted(t *testing.T) {
	item := models.RankedItem{Reasoning: raw(`{ "price": "fair",  "seller": "fast" }`)}

	assert.Equal(t, `{"price":"fair","seller":"fast"}`, *ToProductCard(item).Reason)
}

func TestToProductCard_ReasonFromScores(t *testing.T) {
	tests := []struct {
		name   string
		match  *float64
		seller *float64
		want   string
	}{
		{name: "both", match: f(0.82), seller: f(0.64), want: "match score 82 (seller score 64)"},
		{name: "match only", match: f(0.82), want: "match score 82"},
		{name: "seller only", seller: f(0.7), want: "seller score 70"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reason := ToProductCard(models.RankedItem{MatchScore: tt.match, SellerFinalScore: tt.seller}).Reason
			require.NotNil(t, reason)
			assert.Equal(t, tt.want, *reason)
		})
	}
}

func TestToProductCard_MarketAverageIgnoredWhenUnusable(t *testing.T) {
	for _, v := range []string{`0`, `-5`, `"cheap"`, `null`} {
		item := models.RankedItem{RankingFactors: map[string]json.RawMessage{"market_avg": raw(v)}}
		assert.Nil(t, ToProductCard(item).AvgPrice, "market_avg %s", v)
	}
}

func TestToProductCards_KeepsOrder(t *testing.T) {
	cards := ToProductCards([]models.RankedItem{{Title: "a"}, {Title: "b"}})

	require.Len(t, cards, 2)
	assert.Equal(t, "a", cards[0].Name)
	assert.Equal(t, "b", cards[1].Name)
}

func intPtr(v int) *int { return &v }
