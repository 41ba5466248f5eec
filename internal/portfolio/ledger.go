package portfolio

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mkovtun/aifolio/internal/apperrors"
	"github.com/mkovtun/aifolio/internal/storage"
)

// AddPosition records a manual buy. Buying into an existing position folds the
// purchase into a quantity-weighted average cost; otherwise a fresh position
// opens at the purchase price.
func (s *Service) AddPosition(userID string, assetID uint, quantity, price float64) (*storage.Position, error) {
	if userID == "" {
		return nil, apperrors.Validation("user id is required")
	}
	if quantity <= 0 {
		return nil, apperrors.Validation("quantity must be positive")
	}
	if price <= 0 {
		return nil, apperrors.Validation("price must be positive")
	}

	if _, err := s.repo.GetAsset(assetID); err != nil {
		return nil, notFoundOrExternal(err, "asset not found")
	}

	unlock := s.locks.lock(userID)
	defer unlock()

	existing, err := s.repo.GetPositionByAsset(userID, assetID)
	switch {
	case err == nil:
		newQuantity := existing.Quantity + quantity
		existing.AveragePrice = (existing.Quantity*existing.AveragePrice + quantity*price) / newQuantity
		existing.Quantity = newQuantity
		if err := s.repo.UpdatePosition(existing); err != nil {
			return nil, apperrors.External("update position", err)
		}
		return existing, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		position := &storage.Position{
			UserID:       userID,
			AssetID:      assetID,
			Quantity:     quantity,
			AveragePrice: price,
		}
		if err := s.repo.CreatePosition(position); err != nil {
			return nil, apperrors.External("create position", err)
		}
		return position, nil
	default:
		return nil, apperrors.External("load position", err)
	}
}

// RemovePosition deletes a position the user owns. A position belonging to
// someone else reports not found; the ownership check doubles as the
// authorization check.
func (s *Service) RemovePosition(userID string, positionID uint) error {
	if userID == "" {
		return apperrors.Validation("user id is required")
	}

	unlock := s.locks.lock(userID)
	defer unlock()

	if err := s.repo.DeletePosition(userID, positionID); err != nil {
		return notFoundOrExternal(err, "position not found")
	}
	return nil
}

// UpdateQuantity sets a position's quantity, leaving the average price alone.
// A new quantity of zero or below removes the position instead; no position
// row ever holds a non-positive quantity.
func (s *Service) UpdateQuantity(userID string, positionID uint, newQuantity float64) (*storage.Position, error) {
	if userID == "" {
		return nil, apperrors.Validation("user id is required")
	}

	unlock := s.locks.lock(userID)
	defer unlock()

	if newQuantity <= 0 {
		if err := s.repo.DeletePosition(userID, positionID); err != nil {
			return nil, notFoundOrExternal(err, "position not found")
		}
		return nil, nil
	}

	position, err := s.repo.GetPositionByID(userID, positionID)
	if err != nil {
		return nil, notFoundOrExternal(err, "position not found")
	}

	position.Quantity = newQuantity
	if err := s.repo.UpdatePosition(position); err != nil {
		return nil, apperrors.External("update position", err)
	}
	return position, nil
}
