package portfolio

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkovtun/aifolio/internal/apperrors"
	"github.com/mkovtun/aifolio/internal/logger"
	"github.com/mkovtun/aifolio/internal/storage"
)

type stubCatalog struct {
	assets []storage.Asset
	err    error
}

func (s stubCatalog) ListAssetsWithLatestPrice() ([]storage.Asset, error) {
	return s.assets, s.err
}

type stubFeed struct {
	predictions []storage.Prediction
	err         error
}

func (s stubFeed) LatestPredictions(timeframes []string) ([]storage.Prediction, error) {
	return s.predictions, s.err
}

func generateFixtures(t *testing.T, repo *storage.Repository) (stubCatalog, stubFeed) {
	t.Helper()
	apple := seedAsset(t, repo, "AAPL", 100)
	nvda := seedAsset(t, repo, "NVDA", 50)
	msft := seedAsset(t, repo, "MSFT", 200)

	now := time.Now()
	return stubCatalog{assets: []storage.Asset{apple, nvda, msft}},
		stubFeed{predictions: []storage.Prediction{
			{AssetSymbol: "AAPL", Timeframe: "1w", PredictedPrice: 112, Confidence: 90, CreatedAt: now},
			{AssetSymbol: "NVDA", Timeframe: "1m", PredictedPrice: 60, Confidence: 95, CreatedAt: now},
			{AssetSymbol: "MSFT", Timeframe: "1w", PredictedPrice: 214, Confidence: 85, CreatedAt: now},
		}}
}

func TestGenerate_CreatesPortfolio(t *testing.T) {
	_, repo := newTestService(t)
	catalog, feed := generateFixtures(t, repo)
	svc := NewService(catalog, feed, repo, []string{"1w", "1m"}, logger.New("error"))

	holdings, err := svc.Generate("alice", 10000, 50, "ai-prophet")
	require.NoError(t, err)
	require.Len(t, holdings, 3)

	total := 0.0
	for _, h := range holdings {
		total += h.Allocation
		assert.InDelta(t, h.Allocation/h.Price, h.Quantity, 1e-9)
		assert.Greater(t, h.Quantity, 0.0)
		assert.NotZero(t, h.PositionID)
	}
	assert.InEpsilon(t, 10000, total, 1e-6)

	positions, err := repo.PositionsByUser("alice")
	require.NoError(t, err)
	assert.Len(t, positions, 3)
}

func TestGenerate_ReplacesPreviousHoldings(t *testing.T) {
	_, repo := newTestService(t)
	catalog, feed := generateFixtures(t, repo)
	svc := NewService(catalog, feed, repo, []string{"1w", "1m"}, logger.New("error"))

	// a manual position that a fresh generation must sweep away
	manual := seedAsset(t, repo, "OLD", 10)
	_, err := svc.AddPosition("alice", manual.ID, 3, 9)
	require.NoError(t, err)

	holdings, err := svc.Generate("alice", 5000, 90, "ai-prophet")
	require.NoError(t, err)
	require.Len(t, holdings, 2) // risk 90 concentrates into 2

	positions, err := repo.PositionsByUser("alice")
	require.NoError(t, err)
	require.Len(t, positions, 2)
	for _, p := range positions {
		assert.NotEqual(t, manual.ID, p.AssetID)
	}
}

func TestGenerate_ValidationAndErrorKinds(t *testing.T) {
	_, repo := newTestService(t)
	catalog, feed := generateFixtures(t, repo)
	svc := NewService(catalog, feed, repo, []string{"1w", "1m"}, logger.New("error"))

	_, err := svc.Generate("", 1000, 50, "ai-prophet")
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

	_, err = svc.Generate("alice", -1, 50, "ai-prophet")
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

	// human wants 1 < growth < 7; the fixture growths are 12, 20 and exactly 7
	_, err = svc.Generate("alice", 1000, 50, "human")
	assert.Equal(t, apperrors.KindComputation, apperrors.KindOf(err))
}

func TestGenerate_UpstreamFailureAbortsBeforeMutation(t *testing.T) {
	_, repo := newTestService(t)
	catalog, feed := generateFixtures(t, repo)

	// existing portfolio to protect
	okSvc := NewService(catalog, feed, repo, []string{"1w", "1m"}, logger.New("error"))
	_, err := okSvc.Generate("alice", 1000, 50, "ai-prophet")
	require.NoError(t, err)
	before, err := repo.PositionsByUser("alice")
	require.NoError(t, err)

	failing := NewService(stubCatalog{err: errors.New("catalog down")}, feed, repo,
		[]string{"1w", "1m"}, logger.New("error"))
	_, err = failing.Generate("alice", 2000, 50, "ai-prophet")
	assert.Equal(t, apperrors.KindExternal, apperrors.KindOf(err))

	after, err := repo.PositionsByUser("alice")
	require.NoError(t, err)
	assert.Equal(t, len(before), len(after))
}

// Two catalog rows sharing an asset id make the bulk insert violate the
// (user, asset) unique index partway through; the transaction must roll back
// to the pre-operation portfolio.
func TestGenerate_PartialInsertFailureKeepsPriorPortfolio(t *testing.T) {
	_, repo := newTestService(t)
	catalog, feed := generateFixtures(t, repo)
	svc := NewService(catalog, feed, repo, []string{"1w", "1m"}, logger.New("error"))

	_, err := svc.Generate("alice", 1000, 50, "ai-prophet")
	require.NoError(t, err)
	before, err := repo.PositionsByUser("alice")
	require.NoError(t, err)
	require.Len(t, before, 3)

	dupe := catalog.assets[0]
	dupe.Symbol = "AAPL2"
	now := time.Now()
	broken := NewService(
		stubCatalog{assets: append([]storage.Asset{dupe}, catalog.assets...)},
		stubFeed{predictions: append([]storage.Prediction{
			{AssetSymbol: "AAPL2", Timeframe: "1w", PredictedPrice: 112, Confidence: 90, CreatedAt: now},
		}, feed.predictions...)},
		repo, []string{"1w", "1m"}, logger.New("error"))

	_, err = broken.Generate("alice", 9000, 20, "ai-prophet")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindExternal, apperrors.KindOf(err))

	after, err := repo.PositionsByUser("alice")
	require.NoError(t, err)
	require.Len(t, after, len(before))
	for i := range before {
		assert.Equal(t, before[i].ID, after[i].ID)
		assert.InDelta(t, before[i].Quantity, after[i].Quantity, 1e-9)
	}
}
