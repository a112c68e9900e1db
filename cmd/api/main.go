package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/equipment-support/internal/api/http"
	"github.com/spec-kit/equipment-support/internal/api/http/handlers"
	"github.com/spec-kit/equipment-support/internal/api/validation"
	"github.com/spec-kit/equipment-support/internal/config"
	"github.com/spec-kit/equipment-support/internal/events"
	"github.com/spec-kit/equipment-support/internal/notify"
	"github.com/spec-kit/equipment-support/internal/observability"
	"github.com/spec-kit/equipment-support/internal/persistence"
	"github.com/spec-kit/equipment-support/internal/repository"
	"github.com/spec-kit/equipment-support/internal/service"
	"github.com/spec-kit/equipment-support/internal/worker"
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

	metrics := observability.NewMetrics()
	pool := pg.PoolHandle()

	requestRepo := repository.NewRequestRepository(pool)
	technicianRepo := repository.NewTechnicianRepository(pool)
	knowledgeRepo := repository.NewKnowledgeRepository(pool)
	systemRepo := repository.NewSystemNotificationRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	mailer := notify.NewResendMailer(cfg.Mail)
	carrier := notify.NewSimulatedCarrier(cfg.SMS, logger)
	sender := notify.NewDispatcher(mailer, carrier, cfg.Notification.SendTimeout(), logger, metrics)

	requestService := service.NewRequestService(service.RequestDependencies{
		RequestRepo:            requestRepo,
		SystemNotificationRepo: systemRepo,
		Dispatcher:             dispatcher,
		Logger:                 logger,
	})
	technicianService := service.NewTechnicianService(technicianRepo)
	knowledgeService := service.NewKnowledgeService(knowledgeRepo, redis.Client, cfg.Redis.KnowledgeCacheTTL(), logger)
	systemStatusService := service.NewSystemStatusService(systemRepo)
	statsService := service.NewStatsService(requestRepo, technicianRepo)
	notificationService := service.NewNotificationService(service.NotificationDependencies{
		TechnicianRepo:         technicianRepo,
		SystemNotificationRepo: systemRepo,
		Sender:                 sender,
		Dispatcher:             dispatcher,
		Logger:                 logger,
	})
	worker.StartNotificationWorker(notificationService)

	validate := validation.New()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:       handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Requests:     handlers.NewRequestsHandler(requestService, validate),
		Technicians:  handlers.NewTechniciansHandler(technicianService, validate),
		Knowledge:    handlers.NewKnowledgeHandler(knowledgeService),
		SystemStatus: handlers.NewSystemStatusHandler(systemStatusService, validate),
		Stats:        handlers.NewStatsHandler(statsService),
		Alerts:       handlers.NewAlertsHandler(requestService, validate),
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
