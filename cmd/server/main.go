package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mkovtun/aifolio/internal/config"
	"github.com/mkovtun/aifolio/internal/logger"
	"github.com/mkovtun/aifolio/internal/market"
	"github.com/mkovtun/aifolio/internal/portfolio"
	"github.com/mkovtun/aifolio/internal/predict"
	"github.com/mkovtun/aifolio/internal/scheduler"
	"github.com/mkovtun/aifolio/internal/storage"
	"github.com/mkovtun/aifolio/internal/telegram"
	"github.com/mkovtun/aifolio/internal/web"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	dbPath := flag.String("db", "data/aifolio.db", "path to SQLite database")
	flag.Parse()

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	// Init logger
	log := logger.New(cfg.Logging.Level)
	log.Info("starting aifolio")

	// Init database
	db, err := storage.NewDatabase(*dbPath)
	if err != nil {
		log.Error("database init failed", "error", err)
		os.Exit(1)
	}
	repo := storage.NewRepository(db)

	// Init services
	aiClient := predict.NewDeepSeekClient(cfg, log)
	marketClient := market.NewClient(cfg.Market.QuoteURL, log)
	notifier := telegram.NewNotifier(cfg, log)
	service := portfolio.NewService(repo, repo, repo, cfg.Portfolio.Timeframes, log)
	sched := scheduler.NewScheduler(repo, marketClient, aiClient, notifier, cfg, log)
	webServer := web.NewServer(service, repo, cfg, log)

	// Start ingestion jobs
	if err := sched.Start(); err != nil {
		log.Error("scheduler start failed", "error", err)
		os.Exit(1)
	}

	// Start web server in goroutine
	go func() {
		if err := webServer.Start(); err != nil {
			log.Error("web server error", "error", err)
		}
	}()

	notifier.NotifyStatus("🤖 aifolio started")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Info("shutdown signal received", "signal", sig.String())

	// Graceful shutdown
	sched.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := webServer.Shutdown(shutdownCtx); err != nil {
		log.Error("web server shutdown error", "error", err)
	}

	notifier.NotifyStatus("🛑 aifolio stopped")
	log.Info("aifolio stopped")
}
