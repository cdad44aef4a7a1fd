package stub

import (
	"encoding/json"

	"github.com/MKhiriev/reco-chat/models"
)

type listing struct {
	productID  int64
	sellerID   int64
	title      string
	category   string
	condition  string
	location   string
	seller     string
	price      float64
	marketAvg  float64
	finalScore float64
	matchScore float64
	sellerScr  float64
	reasoning  string
	keywords   []string
}

var catalog = []listing{
	{
		productID: 1001, sellerID: 51, title: "Sony A7 III body", category: "camera", condition: "like new",
		location: "Seoul", seller: "camgear_kim", price: 1250000, marketAvg: 1400000,
		finalScore: 0.91, matchScore: 0.88, sellerScr: 0.95,
		reasoning: "Low shutter count and a seller with 120 completed trades.",
		keywords:  []string{"camera", "mirrorless", "sony", "full frame"},
	},
	{
		productID: 1002, sellerID: 52, title: "Fujifilm X-T4 with 18-55mm", category: "camera", condition: "good",
		location: "Busan", seller: "fuji_lover", price: 1090000, marketAvg: 1150000,
		finalScore: 0.84, matchScore: 0.86, sellerScr: 0.79,
		reasoning: "Kit lens included, accepts remote transactions with escrow.",
		keywords:  []string{"camera", "mirrorless", "fujifilm", "fuji"},
	},
	{
		productID: 1003, sellerID: 53, title: "Canon EOS R6", category: "camera", condition: "fair",
		location: "Incheon", seller: "photo_dad", price: 1480000, marketAvg: 1600000,
		finalScore: 0.72, matchScore: 0.81,
		keywords: []string{"camera", "mirrorless", "canon"},
	},
	{
		productID: 2001, sellerID: 61, title: "MacBook Air M2 13-inch", category: "laptop", condition: "like new",
		location: "Seoul", seller: "apple_pick", price: 1150000, marketAvg: 1230000,
		finalScore: 0.89, matchScore: 0.9, sellerScr: 0.87,
		reasoning: "Battery cycle count 41, original box and charger.",
		keywords:  []string{"laptop", "macbook", "apple", "notebook"},
	},
	{
		productID: 2002, sellerID: 62, title: "LG Gram 16 (2023)", category: "laptop", condition: "good",
		location: "Daejeon", seller: "gram_seller", price: 890000,
		finalScore: 0.77, matchScore: 0.74, sellerScr: 0.81,
		keywords: []string{"laptop", "lg", "gram", "notebook"},
	},
	{
		productID: 3001, sellerID: 71, title: "Nintendo Switch OLED", category: "console", condition: "good",
		location: "Gwangju", seller: "game_town", price: 280000, marketAvg: 300000,
		finalScore: 0.8, matchScore: 0.83,
		reasoning: "Joy-Con drift repaired, two games included.",
		keywords:  []string{"console", "nintendo", "switch", "game"},
	},
	{
		productID: 3002, sellerID: 72, title: "PlayStation 5 disc edition", category: "console", condition: "like new",
		location: "Seoul", seller: "ps_owner", price: 520000, marketAvg: 560000,
		finalScore: 0.86, matchScore: 0.85, sellerScr: 0.9,
		keywords: []string{"console", "playstation", "ps5", "sony", "game"},
	},
}

func (l listing) rankedItem() models.RankedItem {
	item := models.RankedItem{
		ProductID:  &l.productID,
		SellerID:   &l.sellerID,
		Title:      l.title,
		Price:      &l.price,
		FinalScore: &l.finalScore,
		MatchScore: &l.matchScore,
		SellerName: l.seller,
		Category:   l.category,
		Condition:  l.condition,
		Location:   l.location,
	}
	if l.sellerScr > 0 {
		item.SellerFinalScore = &l.sellerScr
	}
	if l.reasoning != "" {
		item.FinalReasoning = mustJSON(l.reasoning)
	}
	if l.marketAvg > 0 {
		item.RankingFactors = map[string]json.RawMessage{"market_avg": mustJSON(l.marketAvg)}
	}
	return item
}

func mustJSON(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}
