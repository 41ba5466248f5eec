package storage

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Assets

func (r *Repository) SaveAsset(asset *Asset) error {
	return r.db.Save(asset).Error
}

// ListAssetsWithLatestPrice returns the full catalog; CurrentPrice on each row
// is whatever the last refresh wrote.
func (r *Repository) ListAssetsWithLatestPrice() ([]Asset, error) {
	var assets []Asset
	err := r.db.Order("symbol ASC").Find(&assets).Error
	return assets, err
}

func (r *Repository) GetAsset(id uint) (*Asset, error) {
	var asset Asset
	if err := r.db.First(&asset, id).Error; err != nil {
		return nil, err
	}
	return &asset, nil
}

func (r *Repository) GetAssetBySymbol(symbol string) (*Asset, error) {
	var asset Asset
	if err := r.db.Where("symbol = ?", symbol).First(&asset).Error; err != nil {
		return nil, err
	}
	return &asset, nil
}

func (r *Repository) UpdateAssetPrice(symbol string, price float64) error {
	return r.db.Model(&Asset{}).Where("symbol = ?", symbol).
		Update("current_price", price).Error
}

// Predictions

func (r *Repository) SavePredictions(predictions []Prediction) error {
	if len(predictions) == 0 {
		return nil
	}
	return r.db.Create(&predictions).Error
}

// LatestPredictions returns all predictions for the given timeframes, newest
// first. Picking the latest per symbol is the engine's job.
func (r *Repository) LatestPredictions(timeframes []string) ([]Prediction, error) {
	var predictions []Prediction
	err := r.db.Where("timeframe IN ?", timeframes).
		Order("created_at DESC").Find(&predictions).Error
	return predictions, err
}

// Positions

func (r *Repository) PositionsByUser(userID string) ([]Position, error) {
	var positions []Position
	err := r.db.Preload("Asset").Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").Find(&positions).Error
	return positions, err
}

func (r *Repository) GetPositionByAsset(userID string, assetID uint) (*Position, error) {
	var position Position
	err := r.db.Where("user_id = ? AND asset_id = ?", userID, assetID).
		First(&position).Error
	if err != nil {
		return nil, err
	}
	return &position, nil
}

func (r *Repository) GetPositionByID(userID string, id uint) (*Position, error) {
	var position Position
	err := r.db.Where("user_id = ? AND id = ?", userID, id).First(&position).Error
	if err != nil {
		return nil, err
	}
	return &position, nil
}

func (r *Repository) CreatePosition(position *Position) error {
	return r.db.Omit(clause.Associations).Create(position).Error
}

func (r *Repository) UpdatePosition(position *Position) error {
	return r.db.Omit(clause.Associations).Save(position).Error
}

func (r *Repository) DeletePosition(userID string, id uint) error {
	res := r.db.Where("user_id = ? AND id = ?", userID, id).Delete(&Position{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ReplacePositions deletes every position the user holds and inserts the new
// set inside one transaction, so a failure partway leaves the prior portfolio
// intact and no reader ever observes an empty portfolio mid-replace.
func (r *Repository) ReplacePositions(userID string, positions []Position) ([]Position, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&Position{}).Error; err != nil {
			return fmt.Errorf("delete positions: %w", err)
		}
		for i := range positions {
			positions[i].UserID = userID
			if err := tx.Omit(clause.Associations).Create(&positions[i]).Error; err != nil {
				return fmt.Errorf("insert position for asset %d: %w", positions[i].AssetID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return positions, nil
}
