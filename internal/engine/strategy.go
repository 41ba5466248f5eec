package engine

// Strategy names accepted by the generator. Any other value passes the full
// candidate set through unfiltered; that fallback is intentional, so a new
// strategy name rolled out in the UI degrades to "no filter" instead of
// producing an empty portfolio.
const (
	StrategyAIProphet = "ai-prophet"
	StrategyInfinity  = "infinity"
	StrategyBuffett   = "buffett"
	StrategyHuman     = "human"
)

func passesStrategy(strategy string, growthPct, confidence float64) bool {
	switch strategy {
	case StrategyAIProphet, StrategyInfinity:
		return confidence > 80 && growthPct > 5
	case StrategyBuffett:
		return confidence > 75 && growthPct > 3 && growthPct < 10
	case StrategyHuman:
		return confidence > 70 && growthPct > 1 && growthPct < 7
	default:
		return true
	}
}

// FilterByStrategy keeps candidates whose predicted growth and confidence pass
// the named strategy.
func FilterByStrategy(candidates []Candidate, strategy string) []Candidate {
	filtered := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if passesStrategy(strategy, c.GrowthPct, c.Prediction.Confidence) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
