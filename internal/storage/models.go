package storage

import "time"

type Asset struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Symbol       string  `gorm:"uniqueIndex;not null" json:"symbol"`
	Name         string  `gorm:"not null" json:"name"`
	Type         string  `gorm:"not null" json:"type"` // stock, etf, crypto
	CurrentPrice float64 `json:"current_price"`
}

type Prediction struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`

	AssetSymbol    string  `gorm:"index;not null" json:"asset_symbol"`
	Timeframe      string  `gorm:"not null" json:"timeframe"` // 1d, 1w, 1m
	PredictedPrice float64 `gorm:"not null" json:"predicted_price"`
	Confidence     float64 `gorm:"not null" json:"confidence"` // 0-100
	Reasoning      string  `gorm:"type:text" json:"reasoning"`
}

type Position struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID       string  `gorm:"index:idx_user_asset,unique;not null" json:"user_id"`
	AssetID      uint    `gorm:"index:idx_user_asset,unique;not null" json:"asset_id"`
	Quantity     float64 `gorm:"not null" json:"quantity"`
	AveragePrice float64 `gorm:"not null" json:"average_price"`

	Asset Asset `gorm:"foreignKey:AssetID" json:"asset"`
}
