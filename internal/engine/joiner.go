package engine

import "github.com/mkovtun/aifolio/internal/storage"

// JoinLatest pairs each asset with the single most recent prediction sharing
// its symbol. When predictions from several timeframes are present, the newest
// wins regardless of timeframe. Assets without a prediction, or without a
// positive current price, are dropped from the candidate set.
func JoinLatest(assets []storage.Asset, predictions []storage.Prediction) []Candidate {
	latest := make(map[string]storage.Prediction, len(predictions))
	for _, p := range predictions {
		if cur, ok := latest[p.AssetSymbol]; !ok || p.CreatedAt.After(cur.CreatedAt) {
			latest[p.AssetSymbol] = p
		}
	}

	candidates := make([]Candidate, 0, len(assets))
	for _, a := range assets {
		p, ok := latest[a.Symbol]
		if !ok || a.CurrentPrice <= 0 {
			continue
		}
		growth := (p.PredictedPrice - a.CurrentPrice) / a.CurrentPrice * 100
		candidates = append(candidates, Candidate{
			Asset:      a,
			Prediction: p,
			GrowthPct:  growth,
			Score:      growth * (p.Confidence / 100),
		})
	}
	return candidates
}
