package scheduler

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkovtun/aifolio/internal/config"
	"github.com/mkovtun/aifolio/internal/logger"
	"github.com/mkovtun/aifolio/internal/market"
	"github.com/mkovtun/aifolio/internal/storage"
	"github.com/mkovtun/aifolio/internal/telegram"
)

func TestRefreshPrices_UpdatesCatalog(t *testing.T) {
	db, err := storage.NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	repo := storage.NewRepository(db)

	require.NoError(t, repo.SaveAsset(&storage.Asset{
		Symbol: "AAPL", Name: "Apple", Type: "stock", CurrentPrice: 100,
	}))
	require.NoError(t, repo.SaveAsset(&storage.Asset{
		Symbol: "MSFT", Name: "Microsoft", Type: "stock", CurrentPrice: 200,
	}))

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"quoteResponse": {
				"result": [{"symbol": "AAPL", "regularMarketPrice": 111.5}],
				"error": null
			}
		}`))
	}))
	defer ts.Close()

	cfg := &config.Config{}
	cfg.Market.QuoteURL = ts.URL
	cfg.Market.RefreshCron = "*/15 * * * *"
	cfg.Market.PredictionCron = "0 */4 * * *"

	log := logger.New("error")
	sched := NewScheduler(repo, market.NewClient(ts.URL, log), nil,
		telegram.NewNotifier(cfg, log), cfg, log)

	sched.refreshPrices()

	apple, err := repo.GetAssetBySymbol("AAPL")
	require.NoError(t, err)
	assert.InDelta(t, 111.5, apple.CurrentPrice, 1e-9)

	// symbols the endpoint did not return keep their last price
	msft, err := repo.GetAssetBySymbol("MSFT")
	require.NoError(t, err)
	assert.InDelta(t, 200, msft.CurrentPrice, 1e-9)
}

func TestScheduler_StartRejectsBadCron(t *testing.T) {
	db, err := storage.NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	repo := storage.NewRepository(db)

	cfg := &config.Config{}
	cfg.Market.QuoteURL = "http://unused"
	cfg.Market.RefreshCron = "every now and then"
	cfg.Market.PredictionCron = "0 */4 * * *"

	log := logger.New("error")
	sched := NewScheduler(repo, market.NewClient(cfg.Market.QuoteURL, log), nil,
		telegram.NewNotifier(cfg, log), cfg, log)

	assert.Error(t, sched.Start())
}
