package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/openmaterials/auction-engine/internal/api/rest"
	"github.com/openmaterials/auction-engine/internal/domain/clock"
	"github.com/openmaterials/auction-engine/internal/infrastructure/cache"
	"github.com/openmaterials/auction-engine/internal/infrastructure/config"
	"github.com/openmaterials/auction-engine/internal/infrastructure/database"
	"github.com/openmaterials/auction-engine/internal/infrastructure/eligibility"
	"github.com/openmaterials/auction-engine/internal/infrastructure/repository"
	"github.com/openmaterials/auction-engine/internal/infrastructure/telemetry"
	"github.com/openmaterials/auction-engine/internal/metrics"
	"github.com/openmaterials/auction-engine/internal/service/bidding"
)

func main() {
	var configPath = flag.String("config", "", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := telemetry.NewLogger(cfg.LogLevel, cfg.Environment)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting auction engine",
		zap.String("version", cfg.Version),
		zap.String("environment", cfg.Environment),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPool(ctx, &cfg.Database, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() { _ = redisClient.Close() }()

	registry, err := metrics.NewRegistry("auction-engine")
	if err != nil {
		logger.Fatal("failed to create metrics registry", zap.Error(err))
	}

	eligibilitySource := eligibility.NewClient(cfg.Eligibility.BaseURL, cfg.Eligibility.Timeout)
	checker := cache.NewCachedEligibilityChecker(redisClient, eligibilitySource, cfg.Eligibility.CacheTTL, logger)

	service := bidding.NewService(
		repository.NewAuctionRepository(pool),
		repository.NewBidRepository(pool),
		checker,
		repository.NewPgxTransactionManager(pool, logger),
		clock.Real{},
		logger,
		registry,
	)

	server := rest.NewServer(&cfg.Server, service, logger)

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start() }()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
