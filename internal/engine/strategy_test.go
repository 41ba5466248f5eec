package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkovtun/aifolio/internal/storage"
)

func TestPassesStrategy(t *testing.T) {
	tests := []struct {
		name       string
		strategy   string
		growthPct  float64
		confidence float64
		want       bool
	}{
		{"ai-prophet accepts high growth high confidence", StrategyAIProphet, 12, 90, true},
		{"ai-prophet rejects low confidence", StrategyAIProphet, 12, 80, false},
		{"ai-prophet rejects low growth", StrategyAIProphet, 5, 90, false},
		{"infinity shares the ai-prophet predicate", StrategyInfinity, 12, 90, true},
		{"buffett rejects growth above its band", StrategyBuffett, 12, 90, false},
		{"buffett accepts moderate growth", StrategyBuffett, 7, 80, true},
		{"buffett rejects growth at lower bound", StrategyBuffett, 3, 80, false},
		{"human accepts small growth", StrategyHuman, 2, 75, true},
		{"human rejects growth at upper bound", StrategyHuman, 7, 75, false},
		{"human rejects low confidence", StrategyHuman, 2, 70, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, passesStrategy(tt.strategy, tt.growthPct, tt.confidence))
		})
	}
}

// An unrecognized strategy name passes the whole candidate set through. This
// is the intended fallback, not missing validation: a strategy rolled out in
// the UI before the backend knows it degrades to "no filter".
func TestFilterByStrategy_UnknownStrategyPassesEverything(t *testing.T) {
	candidates := []Candidate{
		{Asset: storage.Asset{Symbol: "A"}, GrowthPct: -50, Prediction: storage.Prediction{Confidence: 1}},
		{Asset: storage.Asset{Symbol: "B"}, GrowthPct: 0.1, Prediction: storage.Prediction{Confidence: 10}},
	}

	assert.Len(t, FilterByStrategy(candidates, "yolo"), 2)
	assert.Len(t, FilterByStrategy(candidates, ""), 2)
}

func TestFilterByStrategy_FiltersByPredicate(t *testing.T) {
	candidates := []Candidate{
		{Asset: storage.Asset{Symbol: "PASS"}, GrowthPct: 12, Prediction: storage.Prediction{Confidence: 90}},
		{Asset: storage.Asset{Symbol: "FAIL"}, GrowthPct: 2, Prediction: storage.Prediction{Confidence: 90}},
	}

	filtered := FilterByStrategy(candidates, StrategyAIProphet)
	assert.Len(t, filtered, 1)
	assert.Equal(t, "PASS", filtered[0].Asset.Symbol)
}
