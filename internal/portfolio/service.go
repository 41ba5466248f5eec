package portfolio

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/mkovtun/aifolio/internal/apperrors"
	"github.com/mkovtun/aifolio/internal/engine"
	"github.com/mkovtun/aifolio/internal/logger"
	"github.com/mkovtun/aifolio/internal/storage"
)

// AssetCatalog supplies the tradable universe with current prices.
type AssetCatalog interface {
	ListAssetsWithLatestPrice() ([]storage.Asset, error)
}

// PredictionFeed supplies recent predictions for the given timeframes.
type PredictionFeed interface {
	LatestPredictions(timeframes []string) ([]storage.Prediction, error)
}

// Holding is the dashboard view of one portfolio line.
type Holding struct {
	PositionID uint    `json:"position_id"`
	Symbol     string  `json:"symbol"`
	Name       string  `json:"name"`
	Quantity   float64 `json:"quantity"`
	Price      float64 `json:"price"`
	Allocation float64 `json:"allocation"`
}

type Service struct {
	catalog    AssetCatalog
	feed       PredictionFeed
	repo       *storage.Repository
	timeframes []string
	locks      *userLocks
	logger     *logger.Logger
}

func NewService(
	catalog AssetCatalog,
	feed PredictionFeed,
	repo *storage.Repository,
	timeframes []string,
	log *logger.Logger,
) *Service {
	return &Service{
		catalog:    catalog,
		feed:       feed,
		repo:       repo,
		timeframes: timeframes,
		locks:      newUserLocks(),
		logger:     log,
	}
}

// Generate builds a portfolio for the user under the named strategy and
// atomically replaces their holdings with it. The whole read phase (assets,
// predictions) completes before any mutation starts; a failure anywhere
// leaves the prior portfolio untouched.
func (s *Service) Generate(userID string, budget, riskLevel float64, strategy string) ([]Holding, error) {
	if userID == "" {
		return nil, apperrors.Validation("user id is required")
	}

	assets, err := s.catalog.ListAssetsWithLatestPrice()
	if err != nil {
		return nil, apperrors.External("list assets", err)
	}
	predictions, err := s.feed.LatestPredictions(s.timeframes)
	if err != nil {
		return nil, apperrors.External("list predictions", err)
	}

	allocations, err := engine.Build(assets, predictions, engine.Request{
		UserID:    userID,
		Budget:    budget,
		RiskLevel: riskLevel,
		Strategy:  strategy,
	})
	if err != nil {
		return nil, err
	}

	unlock := s.locks.lock(userID)
	defer unlock()

	now := time.Now()
	positions := make([]storage.Position, len(allocations))
	for i, a := range allocations {
		positions[i] = storage.Position{
			UserID:       userID,
			AssetID:      a.Asset.ID,
			Quantity:     a.Quantity,
			AveragePrice: a.Asset.CurrentPrice,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
	}

	created, err := s.repo.ReplacePositions(userID, positions)
	if err != nil {
		return nil, apperrors.External("replace positions", err)
	}

	s.logger.Info("portfolio generated",
		"user_id", userID, "strategy", strategy,
		"budget", budget, "risk_level", riskLevel,
		"positions", len(created))

	holdings := make([]Holding, len(allocations))
	for i, a := range allocations {
		holdings[i] = Holding{
			PositionID: created[i].ID,
			Symbol:     a.Asset.Symbol,
			Name:       a.Asset.Name,
			Quantity:   a.Quantity,
			Price:      a.Asset.CurrentPrice,
			Allocation: a.Amount,
		}
	}
	return holdings, nil
}

// Holdings returns the user's current positions with their assets preloaded.
func (s *Service) Holdings(userID string) ([]storage.Position, error) {
	if userID == "" {
		return nil, apperrors.Validation("user id is required")
	}
	positions, err := s.repo.PositionsByUser(userID)
	if err != nil {
		return nil, apperrors.External("list positions", err)
	}
	return positions, nil
}

func notFoundOrExternal(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound(message)
	}
	return apperrors.External(message, err)
}
