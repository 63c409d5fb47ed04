package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/campus-kit/triage-service/internal/api/http"
	"github.com/campus-kit/triage-service/internal/api/http/handlers"
	"github.com/campus-kit/triage-service/internal/auth"
	"github.com/campus-kit/triage-service/internal/cache"
	"github.com/campus-kit/triage-service/internal/classify"
	"github.com/campus-kit/triage-service/internal/config"
	"github.com/campus-kit/triage-service/internal/events"
	"github.com/campus-kit/triage-service/internal/observability"
	"github.com/campus-kit/triage-service/internal/persistence"
	"github.com/campus-kit/triage-service/internal/repository"
	"github.com/campus-kit/triage-service/internal/service"
	"github.com/campus-kit/triage-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metrics := observability.NewMetrics()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	var store repository.TicketStore
	if pool := pg.PoolHandle(); pool != nil {
		store = repository.NewPostgresStore(pool)
	} else {
		logger.Warn("running on in-memory ticket store; tickets will not survive restarts")
		store = repository.NewMemoryStore()
	}

	statsCache := cache.NewStatsCache(redis.Client, cfg.Redis.CountsTTL(), logger)
	classifier := classify.NewGeminiClassifier(cfg.Classifier, logger, metrics)
	dispatcher := events.NewInMemoryDispatcher()

	lifecycleService := service.NewLifecycleService(service.LifecycleDependencies{
		Store:      store,
		Classifier: classifier,
		Dispatcher: dispatcher,
	})
	queryService := service.NewQueryService(store, statsCache)
	authService := service.NewAuthService(*cfg)
	notificationService := service.NewNotificationService(dispatcher, logger)

	worker.StartNotificationWorker(notificationService)
	worker.StartCacheInvalidator(dispatcher, statsCache)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager())

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Tickets:        handlers.NewTicketsHandler(lifecycleService, queryService),
		Operator:       handlers.NewOperatorHandler(lifecycleService, queryService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
