package engine

import "sort"

// Rank orders candidates by score descending. Equal scores break ties by
// symbol ascending so ordering is deterministic.
func Rank(candidates []Candidate) []Candidate {
	ranked := make([]Candidate, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Asset.Symbol < ranked[j].Asset.Symbol
	})
	return ranked
}

// SelectCount maps risk appetite to portfolio breadth: cautious investors get
// more, smaller positions; aggressive ones concentrate into fewer.
func SelectCount(riskLevel float64) int {
	switch {
	case riskLevel < 33:
		return 5
	case riskLevel < 66:
		return 3
	default:
		return 2
	}
}

// SelectTop truncates ranked candidates to the risk-determined count.
func SelectTop(ranked []Candidate, riskLevel float64) []Candidate {
	n := SelectCount(riskLevel)
	if len(ranked) < n {
		n = len(ranked)
	}
	return ranked[:n]
}
