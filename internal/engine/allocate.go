package engine

// Allocate converts scores into a budget-proportional, risk-adjusted
// allocation and normalizes the result to sum exactly to the budget.
//
// When the total score is zero or negative (every candidate predicted flat or
// falling under an unfiltered strategy), the proportional split is undefined;
// the recovery policy is an equal split of the budget across the selected
// candidates.
//
// The riskLevel > 66 branch scales every raw allocation by the same 1.2
// constant before normalization, which normalization cancels exactly. That
// matches the historical behavior of the generator and is covered by a
// regression test; do not "fix" it here without changing the test.
func Allocate(candidates []Candidate, budget, riskLevel float64) []Allocation {
	n := len(candidates)
	if n == 0 {
		return nil
	}

	totalScore := 0.0
	for _, c := range candidates {
		totalScore += c.Score
	}

	equalShare := budget / float64(n)

	raw := make([]float64, n)
	for i, c := range candidates {
		if totalScore <= 0 {
			raw[i] = equalShare
		} else {
			raw[i] = (c.Score / totalScore) * budget
		}
	}

	adjusted := make([]float64, n)
	for i, r := range raw {
		switch {
		case riskLevel > 66:
			adjusted[i] = r * 1.2
		case riskLevel < 33:
			// blend proportional allocation with an equal split
			adjusted[i] = (r + equalShare) / 2
		default:
			adjusted[i] = r
		}
	}

	totalAdjusted := 0.0
	for _, a := range adjusted {
		totalAdjusted += a
	}
	if totalAdjusted <= 0 {
		return nil
	}

	result := make([]Allocation, 0, n)
	for i, c := range candidates {
		amount := (adjusted[i] / totalAdjusted) * budget
		quantity := amount / c.Asset.CurrentPrice
		if quantity <= 0 {
			continue
		}
		result = append(result, Allocation{
			Asset:    c.Asset,
			Amount:   amount,
			Quantity: quantity,
		})
	}
	return result
}
