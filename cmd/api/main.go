package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/Fakedev-cmd/botforge-services.it/internal/api/http"
	"github.com/Fakedev-cmd/botforge-services.it/internal/api/http/handlers"
	"github.com/Fakedev-cmd/botforge-services.it/internal/auth"
	"github.com/Fakedev-cmd/botforge-services.it/internal/cache"
	"github.com/Fakedev-cmd/botforge-services.it/internal/config"
	"github.com/Fakedev-cmd/botforge-services.it/internal/events"
	"github.com/Fakedev-cmd/botforge-services.it/internal/observability"
	"github.com/Fakedev-cmd/botforge-services.it/internal/persistence"
	"github.com/Fakedev-cmd/botforge-services.it/internal/repository"
	"github.com/Fakedev-cmd/botforge-services.it/internal/service"
	"github.com/Fakedev-cmd/botforge-services.it/internal/worker"
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

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	productRepo := repository.NewProductRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	reviewRepo := repository.NewReviewRepository(pool)
	updateRepo := repository.NewUpdateRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)
	messageRepo := repository.NewTicketMessageRepository(pool)
	requestRepo := repository.NewPasswordRequestRepository(pool)

	catalogCache := cache.NewCatalogCache(redis.Client, cfg.Catalog.CacheTTL(), logger)
	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(cfg.Auth, userRepo)
	catalogService := service.NewCatalogService(productRepo, catalogCache)
	orderService := service.NewOrderService(orderRepo, productRepo, dispatcher)
	reviewService := service.NewReviewService(reviewRepo)
	updateService := service.NewUpdateService(updateRepo, dispatcher)
	ticketService := service.NewTicketService(ticketRepo, messageRepo, dispatcher)
	accountService := service.NewAccountService(userRepo, requestRepo, dispatcher)
	qrService := service.NewQRService(cfg.QR)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)

	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)
	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:           handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:             handlers.NewAuthHandler(authService),
		Products:         handlers.NewProductsHandler(catalogService),
		Orders:           handlers.NewOrdersHandler(orderService),
		Reviews:          handlers.NewReviewsHandler(reviewService),
		Updates:          handlers.NewUpdatesHandler(updateService),
		Tickets:          handlers.NewTicketsHandler(ticketService),
		Users:            handlers.NewUsersHandler(accountService),
		PasswordRequests: handlers.NewPasswordRequestsHandler(accountService),
		QR:               handlers.NewQRHandler(qrService),
		AuthMiddleware:   authMiddleware,
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
