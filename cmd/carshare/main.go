package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/fahrtenbuch/backend/internal/pkg/config"
	"github.com/fahrtenbuch/backend/internal/pkg/database"
	"github.com/fahrtenbuch/backend/internal/pkg/health"
	"github.com/fahrtenbuch/backend/internal/pkg/logger"
	"github.com/fahrtenbuch/backend/internal/pkg/middleware"
	natspkg "github.com/fahrtenbuch/backend/internal/pkg/nats"
	"github.com/fahrtenbuch/backend/internal/pkg/retry"
	"github.com/fahrtenbuch/backend/internal/pkg/server"

	billingGateway "github.com/fahrtenbuch/backend/services/billing/gateway"
	billingHandler "github.com/fahrtenbuch/backend/services/billing/handler"
	billingRepo "github.com/fahrtenbuch/backend/services/billing/repository"
	billingUsecase "github.com/fahrtenbuch/backend/services/billing/usecase"
	bookingsHandler "github.com/fahrtenbuch/backend/services/bookings/handler"
	bookingsRepo "github.com/fahrtenbuch/backend/services/bookings/repository"
	bookingsUsecase "github.com/fahrtenbuch/backend/services/bookings/usecase"
	invitesHandler "github.com/fahrtenbuch/backend/services/invites/handler"
	invitesRepo "github.com/fahrtenbuch/backend/services/invites/repository"
	invitesUsecase "github.com/fahrtenbuch/backend/services/invites/usecase"
	settingsHandler "github.com/fahrtenbuch/backend/services/settings/handler"
	settingsRepo "github.com/fahrtenbuch/backend/services/settings/repository"
	settingsUsecase "github.com/fahrtenbuch/backend/services/settings/usecase"
	tripsGateway "github.com/fahrtenbuch/backend/services/trips/gateway"
	tripsHandler "github.com/fahrtenbuch/backend/services/trips/handler"
	tripsRepo "github.com/fahrtenbuch/backend/services/trips/repository"
	tripsUsecase "github.com/fahrtenbuch/backend/services/trips/usecase"
	usersGateway "github.com/fahrtenbuch/backend/services/users/gateway"
	usersHandler "github.com/fahrtenbuch/backend/services/users/handler"
	usersRepo "github.com/fahrtenbuch/backend/services/users/repository"
	usersUsecase "github.com/fahrtenbuch/backend/services/users/usecase"
)

func main() {
	appName := "carshare-backend"
	configs := config.InitConfig(".env")

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Infrastructure clients. Retried with backoff so the binary survives
	// postgres or NATS starting up after us.
	retrier := retry.New(retry.StartupConfig(), zapLogger)

	var postgresClient *database.PostgresClient
	if err := retrier.Execute(context.Background(), func(ctx context.Context) error {
		postgresClient, err = database.NewPostgresClient(configs.Database)
		return err
	}); err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	var redisClient *database.RedisClient
	if err := retrier.Execute(context.Background(), func(ctx context.Context) error {
		redisClient, err = database.NewRedisClient(configs.Redis)
		return err
	}); err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	var natsClient *natspkg.Client
	if err := retrier.Execute(context.Background(), func(ctx context.Context) error {
		natsClient, err = natspkg.NewClient(configs.NATS.URL)
		return err
	}); err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	db := postgresClient.GetDB()

	// Repositories
	userRepository := usersRepo.NewUserRepo(configs, db)
	inviteRepository := invitesRepo.NewInviteRepo(configs, db)
	settingRepository := settingsRepo.NewSettingsRepo(configs, db)
	rateCache := settingsRepo.NewRateCache(redisClient)
	tripRepository := tripsRepo.NewTripRepository(configs, db)
	activeTripCache := tripsRepo.NewActiveTripCache(redisClient)
	bookingRepository := bookingsRepo.NewBookingRepo(configs, db)
	billingRepository := billingRepo.NewBillingRepo(configs, db)
	costsCache := billingRepo.NewCostsCache(redisClient)

	// Gateways
	tripGW := tripsGateway.NewTripGW(natsClient)
	billingGW := billingGateway.NewBillingGW(natsClient)
	userGW := usersGateway.NewUserGW(natsClient)

	// Use cases. Settings doubles as the rate provider for trips so the
	// cost_per_km setting takes effect without a restart.
	settingsUC := settingsUsecase.NewSettingsUC(configs, settingRepository, rateCache)
	inviteUC := invitesUsecase.NewInviteUC(configs, inviteRepository)
	userUC := usersUsecase.NewUserUC(configs, userRepository, inviteUC, userGW)
	tripUC := tripsUsecase.NewTripUC(configs, tripRepository, tripGW, settingsUC, activeTripCache)
	bookingUC := bookingsUsecase.NewBookingUC(configs, bookingRepository)
	billingUC := billingUsecase.NewBillingUC(configs, billingRepository, billingGW, costsCache)

	// Handlers
	usersH := usersHandler.NewHandler(userUC, configs)
	invitesH := invitesHandler.NewHandler(inviteUC, configs)
	settingsH := settingsHandler.NewHandler(settingsUC, configs)
	tripsH := tripsHandler.NewHandler(tripUC, configs)
	bookingsH := bookingsHandler.NewHandler(bookingUC, configs)
	billingH := billingHandler.NewHandler(billingUC, natsClient, configs)

	// Echo router
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	authMiddleware := middleware.JWTAuthMiddleware(configs.JWT)
	usersH.RegisterRoutes(e, authMiddleware)
	invitesH.RegisterRoutes(e, authMiddleware)
	settingsH.RegisterRoutes(e, authMiddleware)
	tripsH.RegisterRoutes(e, authMiddleware)
	bookingsH.RegisterRoutes(e, authMiddleware)
	billingH.RegisterRoutes(e, authMiddleware)

	// Cost cache invalidation listens to trip and receipt events
	if err := billingH.StartConsumer(); err != nil {
		zapLogger.Fatal("Failed to start NATS consumers", zap.Error(err))
	}

	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		billingH.StopConsumer()
		return nil
	})

	gracefulServer := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)

	if err := gracefulServer.Start(); err != nil {
		zapLogger.Error("Server stopped with error", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := shutdownManager.Shutdown(ctx); err != nil {
		zapLogger.Error("Component shutdown failed", zap.Error(err))
	}
}
