package mapper

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/MKhiriev/reco-chat/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	UntitledItem     = "Untitled item"
	PriceUnavailable = "price unavailable"
	DefaultSite      = "Joonggonara"

	currencySymbol = "₩"
	maxScore       = 100
)

var printer = message.NewPrinter(language.Korean)

// ToProductCards maps items in order.
func ToProductCards(items []models.RankedItem) []models.ProductCard {
	cards := make([]models.ProductCard, 0, len(items))
	for _, item := range items {
		cards = append(cards, ToProductCard(item))
	}
	return cards
}

// ToProductCard maps a single ranked item.
func ToProductCard(item models.RankedItem) models.ProductCard {
	return models.ProductCard{
		Name:     itemName(item),
		Price:    formatPrice(item.Price),
		AvgPrice: marketAverage(item.RankingFactors),
		Score:    itemScore(item),
		Reason:   itemReason(item),
		Site:     firstNonBlank(item.SellerName, DefaultSite),
	}
}

func itemName(item models.RankedItem) string {
	return firstNonBlank(item.Title, item.Name, UntitledItem)
}

// FormatWon renders v as a won amount with grouped digits, e.g. ₩1,250,000.
func FormatWon(v float64) string {
	return currencySymbol + printer.Sprintf("%d", int64(math.Round(v)))
}

func formatPrice(price *float64) string {
	if !usable(price) {
		return PriceUnavailable
	}
	return FormatWon(*price)
}

func marketAverage(factors map[string]json.RawMessage) *string {
	raw, ok := factors["market_avg"]
	if !ok {
		return nil
	}

	var avg float64
	if err := json.Unmarshal(raw, &avg); err != nil || !usable(&avg) || avg <= 0 {
		return nil
	}

	formatted := FormatWon(avg)
	return &formatted
}

// itemScore prefers final_score over match_score. Absent, non-finite and
// non-positive values yield nil.
func itemScore(item models.RankedItem) *int {
	raw := item.FinalScore
	if !positive(raw) {
		raw = item.MatchScore
	}
	if !positive(raw) {
		return nil
	}

	score := percent(*raw)
	if score <= 0 {
		return nil
	}
	score = min(score, maxScore)
	return &score
}

func itemReason(item models.RankedItem) *string {
	candidates := []json.RawMessage{
		item.FinalReasoning,
		item.SellerFinalReasoning,
		item.CombinationExplanation,
		item.Reasoning,
		item.RankingFactors["reasoning"],
		item.RankingFactors["reason"],
	}
	for _, raw := range candidates {
		if text, ok := reasonText(raw); ok {
			return &text
		}
	}

	if text, ok := scoreReason(item.MatchScore, item.SellerFinalScore); ok {
		return &text
	}

	return nil
}

// reasonText renders a reason field: strings verbatim, other non-empty JSON
// values compacted. Empty strings, null, false and 0 count as missing.
func reasonText(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	switch string(raw) {
	case "", "null", "false", "0", `""`, "[]", "{}":
		return "", false
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		s = strings.TrimSpace(s)
		return s, s != ""
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return "", false
	}
	return compact.String(), true
}

func scoreReason(match, seller *float64) (string, bool) {
	switch {
	case positive(match) && positive(seller):
		return fmt.Sprintf("match score %d (seller score %d)", percent(*match), percent(*seller)), true
	case positive(match):
		return fmt.Sprintf("match score %d", percent(*match)), true
	case positive(seller):
		return fmt.Sprintf("seller score %d", percent(*seller)), true
	default:
		return "", false
	}
}

func percent(v float64) int {
	return int(math.Round(v * 100))
}

func usable(v *float64) bool {
	return v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0)
}

func positive(v *float64) bool {
	return usable(v) && *v > 0
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
