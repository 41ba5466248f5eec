// Package engine computes strategy-driven portfolio allocations. It is pure:
// callers fetch assets and predictions up front, the engine never touches the
// network or the database.
package engine

import (
	"fmt"

	"github.com/mkovtun/aifolio/internal/apperrors"
	"github.com/mkovtun/aifolio/internal/storage"
)

// Build runs the full pipeline: join assets with their latest predictions,
// filter by strategy, rank by score, truncate by risk appetite, allocate and
// normalize the budget.
func Build(assets []storage.Asset, predictions []storage.Prediction, req Request) ([]Allocation, error) {
	if req.Budget <= 0 {
		return nil, apperrors.Validation("budget must be positive")
	}
	if req.RiskLevel < 0 || req.RiskLevel > 100 {
		return nil, apperrors.Validation("risk level must be between 0 and 100")
	}

	candidates := JoinLatest(assets, predictions)
	candidates = FilterByStrategy(candidates, req.Strategy)
	if len(candidates) == 0 {
		return nil, apperrors.Computation(
			fmt.Sprintf("no candidates pass strategy %q", req.Strategy))
	}

	selected := SelectTop(Rank(candidates), req.RiskLevel)

	allocations := Allocate(selected, req.Budget, req.RiskLevel)
	if len(allocations) == 0 {
		return nil, apperrors.Computation("allocation produced no positive quantities")
	}
	return allocations, nil
}
