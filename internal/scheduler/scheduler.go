package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mkovtun/aifolio/internal/config"
	"github.com/mkovtun/aifolio/internal/logger"
	"github.com/mkovtun/aifolio/internal/market"
	"github.com/mkovtun/aifolio/internal/predict"
	"github.com/mkovtun/aifolio/internal/storage"
	"github.com/mkovtun/aifolio/internal/telegram"
)

// Scheduler runs the two ingestion jobs the dashboard depends on: market
// price refresh and AI prediction generation.
type Scheduler struct {
	cron     *cron.Cron
	repo     *storage.Repository
	market   *market.Client
	ai       *predict.DeepSeekClient
	notifier *telegram.Notifier
	cfg      *config.Config
	logger   *logger.Logger
}

func NewScheduler(
	repo *storage.Repository,
	marketClient *market.Client,
	aiClient *predict.DeepSeekClient,
	notifier *telegram.Notifier,
	cfg *config.Config,
	log *logger.Logger,
) *Scheduler {
	c := cron.New(cron.WithChain(
		cron.Recover(cronLogger{log}),
	))

	return &Scheduler{
		cron:     c,
		repo:     repo,
		market:   marketClient,
		ai:       aiClient,
		notifier: notifier,
		cfg:      cfg,
		logger:   log,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.cfg.Market.RefreshCron, s.refreshPrices); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc(s.cfg.Market.PredictionCron, s.generatePredictions); err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("scheduler started",
		"refresh_cron", s.cfg.Market.RefreshCron,
		"prediction_cron", s.cfg.Market.PredictionCron)
	return nil
}

// Stop halts the cron and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) refreshPrices() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	assets, err := s.repo.ListAssetsWithLatestPrice()
	if err != nil {
		s.logger.Error("list assets for refresh", "error", err)
		return
	}
	if len(assets) == 0 {
		s.logger.Info("no assets to refresh")
		return
	}

	symbols := make([]string, len(assets))
	for i, a := range assets {
		symbols[i] = a.Symbol
	}

	quotes, err := s.market.FetchQuotes(ctx, symbols)
	if err != nil {
		s.logger.Error("fetch quotes", "error", err)
		s.notifier.NotifyError("price refresh", err)
		return
	}

	updated := 0
	for _, q := range quotes {
		if err := s.repo.UpdateAssetPrice(q.Symbol, q.Price); err != nil {
			s.logger.Error("update asset price", "symbol", q.Symbol, "error", err)
			continue
		}
		updated++
	}

	s.logger.Info("prices refreshed", "updated", updated, "total", len(assets))
}

func (s *Scheduler) generatePredictions() {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.DeepSeekTimeout())
	defer cancel()

	assets, err := s.repo.ListAssetsWithLatestPrice()
	if err != nil {
		s.logger.Error("list assets for predictions", "error", err)
		return
	}
	if len(assets) == 0 {
		s.logger.Info("no assets to predict")
		return
	}

	raws, _, err := s.ai.Predict(ctx, assets, s.cfg.Portfolio.Timeframes)
	if err != nil {
		s.logger.Error("prediction generation", "error", err)
		s.notifier.NotifyError("prediction generation", err)
		return
	}

	predictions := make([]storage.Prediction, 0, len(raws))
	for _, r := range raws {
		if r.Symbol == "" || r.PredictedPrice <= 0 {
			continue
		}
		if r.Confidence < 0 || r.Confidence > 100 {
			continue
		}
		predictions = append(predictions, storage.Prediction{
			AssetSymbol:    r.Symbol,
			Timeframe:      r.Timeframe,
			PredictedPrice: r.PredictedPrice,
			Confidence:     r.Confidence,
			Reasoning:      r.Reasoning,
		})
	}

	if err := s.repo.SavePredictions(predictions); err != nil {
		s.logger.Error("save predictions", "error", err)
		return
	}

	s.logger.Info("predictions stored", "count", len(predictions))
	s.notifier.NotifyPredictions(len(predictions))
}

// cronLogger adapts *logger.Logger to cron.Logger.
type cronLogger struct {
	log *logger.Logger
}

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.log.Info(msg, keysAndValues...)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.log.Error(msg, append(keysAndValues, "error", err)...)
}
