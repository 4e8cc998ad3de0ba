package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	handler "github.com/gymstack/accounting-service/internal/adapter/handler/http"
	"github.com/gymstack/accounting-service/internal/config"
	"github.com/gymstack/accounting-service/internal/infrastructure/database"
	httpserver "github.com/gymstack/accounting-service/internal/infrastructure/http"
	"github.com/gymstack/accounting-service/internal/infrastructure/provider"
	"github.com/gymstack/accounting-service/internal/usecase"
	"github.com/gymstack/accounting-service/pkg/logger"
	"github.com/gymstack/accounting-service/pkg/messaging"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.DefaultZapLogger().Fatal("Failed to load config", zap.Error(err))
	}

	log, err := logger.NewZapLogger(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		Output:      cfg.Log.Output,
		Development: cfg.Log.Development,
	})
	if err != nil {
		logger.DefaultZapLogger().Fatal("Failed to build logger", zap.Error(err))
	}
	defer log.Sync()

	log.Info("Starting accounting service",
		zap.String("environment", cfg.Service.Environment),
		zap.String("version", cfg.Service.Version))

	db, err := database.Connect(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	if err := database.Migrate(db, log); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	repos := database.NewRepositories(db, log)

	// Event publishing is optional; the sync service tolerates a nil client.
	var publisher messaging.RedisClient
	if cfg.Service.Redis.Addr != "" {
		publisher, err = messaging.NewRedisClient(
			cfg.Service.Redis.Addr,
			cfg.Service.Redis.Password,
			cfg.Service.Redis.DB,
		)
		if err != nil {
			log.Fatal("Failed to connect to redis", zap.Error(err))
		}
		defer publisher.Close()
	}

	providerFactory := provider.NewFactory(cfg, log)

	syncService := usecase.NewSyncService(
		repos.Payments,
		repos.AccountMappings,
		repos.Integrations,
		repos.SyncLogs,
		repos.SyncedTransactions,
		providerFactory,
		publisher,
		log,
	)
	featureService := usecase.NewFeatureService(repos.Features, log)

	handlers := &httpserver.Handlers{
		Sync:        handler.NewSyncHandler(syncService, log),
		Mapping:     handler.NewMappingHandler(repos.AccountMappings, log),
		Integration: handler.NewIntegrationHandler(repos.Integrations, log),
		Feature:     handler.NewFeatureHandler(featureService, log),
		Webhook:     handler.NewWebhookHandler(repos.Payments, cfg.Service.StripeWebhookSecret, log),
	}

	server := httpserver.NewServer(cfg, handlers, repos.Profiles, log)

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("Failed to shut down HTTP server", zap.Error(err))
	}
}
