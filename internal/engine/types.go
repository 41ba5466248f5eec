package engine

import "github.com/mkovtun/aifolio/internal/storage"

// Candidate pairs an asset with its most recent prediction.
type Candidate struct {
	Asset      storage.Asset
	Prediction storage.Prediction
	GrowthPct  float64 // predicted price change vs current, percent
	Score      float64
}

// Request describes a portfolio generation run. Not persisted.
type Request struct {
	UserID    string
	Budget    float64
	RiskLevel float64 // 0-100
	Strategy  string
}

// Allocation is one line of a computed portfolio: how much of the budget goes
// into an asset and the quantity that money buys at the current price.
type Allocation struct {
	Asset    storage.Asset
	Amount   float64
	Quantity float64
}
