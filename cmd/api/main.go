package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"intentions-tracker/config"
	"intentions-tracker/internal/extract"
	"intentions-tracker/internal/httpserver"
	"intentions-tracker/internal/progress"
	trackerRepo "intentions-tracker/internal/tracker/repository/sqlite"
	"intentions-tracker/internal/tracker/usecase"
	"intentions-tracker/pkg/datemath"
	"intentions-tracker/pkg/llmprovider"
	"intentions-tracker/pkg/log"
)

// @title       Intentions Tracker API
// @description Habit tracking from spoken check-ins: LLM extraction, daily and weekly progress aggregation.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Intentions Tracker...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, err := trackerRepo.Open(cfg.Storage.Path)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open storage at %q: %v", cfg.Storage.Path, err)
	}
	defer db.Close()
	logger.Infof(ctx, "Storage ready at %s", cfg.Storage.Path)

	repo := trackerRepo.New(db, logger)

	// 4. Date parser
	dateParser, err := datemath.NewParser(cfg.Tracking.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Tracking.Timezone, err)
		dateParser, _ = datemath.NewParser("UTC")
	}
	logger.Infof(ctx, "Day bucketing timezone: %s", dateParser.Location())

	// 5. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize LLM providers: %v", err)
	}
	logger.Infof(ctx, "LLM providers initialized: %d", len(providers))

	llmManager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled:   cfg.LLM.FallbackEnabled,
		RetryAttempts:     cfg.LLM.RetryAttempts,
		RetryDelay:        parseDuration(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout:   parseDuration(cfg.LLM.MaxTotalTimeout, 30*time.Second),
		RequestsPerMinute: cfg.LLM.RequestsPerMinute,
	}, logger)

	// 6. Tracker domain
	trackerUC := usecase.New(repo, logger, llmManager, extract.New(), progress.NewCalculator(), dateParser)

	// 7. HTTP server
	srv, err := httpserver.New(httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		TrackerUseCase: trackerUC,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to create HTTP server: %v", err)
	}

	if err := srv.Run(ctx); err != nil {
		logger.Fatalf(ctx, "HTTP server error: %v", err)
	}

	logger.Info(context.Background(), "Shutdown complete")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
