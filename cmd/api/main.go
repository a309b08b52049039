// Package main is the entry point for the Fleet Manager API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/fleet-manager/backend/config"
	"github.com/fleet-manager/backend/internal/application/adapter"
	"github.com/fleet-manager/backend/internal/application/usecase/auth"
	"github.com/fleet-manager/backend/internal/application/usecase/cashdesk"
	"github.com/fleet-manager/backend/internal/application/usecase/entry"
	"github.com/fleet-manager/backend/internal/application/usecase/expense"
	"github.com/fleet-manager/backend/internal/application/usecase/maintenance"
	"github.com/fleet-manager/backend/internal/application/usecase/message"
	"github.com/fleet-manager/backend/internal/application/usecase/notification"
	"github.com/fleet-manager/backend/internal/application/usecase/periodclose"
	"github.com/fleet-manager/backend/internal/application/usecase/report"
	"github.com/fleet-manager/backend/internal/application/usecase/vehicle"
	"github.com/fleet-manager/backend/internal/domain/valueobject"
	"github.com/fleet-manager/backend/internal/infra/db"
	"github.com/fleet-manager/backend/internal/infra/server/router"
	"github.com/fleet-manager/backend/internal/integration/adapters"
	"github.com/fleet-manager/backend/internal/integration/entrypoint/controller"
	"github.com/fleet-manager/backend/internal/integration/entrypoint/middleware"
	"github.com/fleet-manager/backend/internal/integration/persistence"
	"github.com/fleet-manager/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting Fleet Manager API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.VehicleModel{},
		&model.MaintenanceConfigModel{},
		&model.EntryModel{},
		&model.GlobalExpenseModel{},
		&model.CashDeskModel{},
		&model.NotificationModel{},
		&model.HistoricalStatsModel{},
		&model.MessageModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Redis backs the report snapshot cache and the change pub/sub.
	redisOpts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		slog.Error("Invalid Redis URL", "error", err)
		os.Exit(1)
	}
	if cfg.Redis.Password != "" {
		redisOpts.Password = cfg.Redis.Password
	}
	redisOpts.DB = cfg.Redis.DB
	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()

	reportCache := adapters.NewReportCache(redisClient)

	listenCtx, stopListener := context.WithCancel(context.Background())
	defer stopListener()
	go reportCache.ListenForChanges(listenCtx)

	// Repositories
	userRepo := persistence.NewUserRepository(database.DB())
	vehicleRepo := persistence.NewVehicleRepository(database.DB(), reportCache)
	entryRepo := persistence.NewEntryRepository(database.DB(), reportCache)
	expenseRepo := persistence.NewGlobalExpenseRepository(database.DB(), reportCache)
	cashDeskRepo := persistence.NewCashDeskRepository(database.DB(), reportCache)
	notificationRepo := persistence.NewNotificationRepository(database.DB(), reportCache)
	statsRepo := persistence.NewHistoricalStatsRepository(database.DB())
	messageRepo := persistence.NewMessageRepository(database.DB(), reportCache)

	// Services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	var alertSender adapter.AlertSender
	if cfg.Email.ResendAPIKey != "" && cfg.Email.AlertEmail != "" {
		alertSender = adapters.NewAlertMailer(
			cfg.Email.ResendAPIKey,
			cfg.Email.FromName,
			cfg.Email.FromEmail,
			cfg.Email.AlertEmail,
		)
		slog.Info("Critical maintenance alerts enabled", "recipient", cfg.Email.AlertEmail)
	} else {
		alertSender = adapters.NewNoopAlertSender()
		slog.Info("Critical maintenance alerts disabled, no email configured")
	}

	registry := valueobject.NewMaintenanceTypeRegistry(valueobject.DefaultMaintenanceTypes...)

	// Use cases
	trackerUseCase := maintenance.NewEvaluateAlertsUseCase(vehicleRepo, entryRepo, notificationRepo, alertSender)
	postponeUseCase := maintenance.NewPostponeMaintenanceUseCase(vehicleRepo)

	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, cashDeskRepo, passwordService)
	listUsersUseCase := auth.NewListUsersUseCase(userRepo)
	deactivateUseCase := auth.NewDeactivateUserUseCase(userRepo)

	createVehicleUseCase := vehicle.NewCreateVehicleUseCase(vehicleRepo, registry)
	listVehiclesUseCase := vehicle.NewListVehiclesUseCase(vehicleRepo)
	updateMileageUseCase := vehicle.NewUpdateMileageUseCase(vehicleRepo, trackerUseCase)
	archiveVehicleUseCase := vehicle.NewArchiveVehicleUseCase(vehicleRepo)
	simulateResaleUseCase := vehicle.NewSimulateResaleUseCase(vehicleRepo)
	addConfigUseCase := vehicle.NewAddMaintenanceConfigUseCase(vehicleRepo, registry)

	createEntryUseCase := entry.NewCreateEntryUseCase(entryRepo, vehicleRepo, cashDeskRepo, notificationRepo, registry, trackerUseCase)
	listEntriesUseCase := entry.NewListEntriesUseCase(entryRepo)
	updateEntryUseCase := entry.NewUpdateEntryUseCase(entryRepo)
	approveEntryUseCase := entry.NewApproveEntryUseCase(entryRepo, vehicleRepo, notificationRepo)
	rejectEntryUseCase := entry.NewRejectEntryUseCase(entryRepo)
	deleteEntryUseCase := entry.NewDeleteEntryUseCase(entryRepo, cashDeskRepo)

	createExpenseUseCase := expense.NewCreateGlobalExpenseUseCase(expenseRepo, cashDeskRepo)
	listExpensesUseCase := expense.NewListGlobalExpensesUseCase(expenseRepo)
	deleteExpenseUseCase := expense.NewDeleteGlobalExpenseUseCase(expenseRepo, cashDeskRepo)

	listDesksUseCase := cashdesk.NewListCashDesksUseCase(cashDeskRepo, userRepo)

	listNotificationsUseCase := notification.NewListNotificationsUseCase(notificationRepo)
	archiveNotificationUseCase := notification.NewArchiveNotificationUseCase(notificationRepo)

	getReportUseCase := report.NewGetReportUseCase(entryRepo, expenseRepo, vehicleRepo, cashDeskRepo, statsRepo, reportCache)
	exportUseCase := report.NewExportDataUseCase(vehicleRepo, entryRepo, expenseRepo, userRepo, notificationRepo, cashDeskRepo)

	sendMessageUseCase := message.NewSendMessageUseCase(messageRepo)
	listMessagesUseCase := message.NewListMessagesUseCase(messageRepo)

	closePeriodUseCase := periodclose.NewClosePeriodUseCase(
		getReportUseCase,
		statsRepo,
		userRepo,
		entryRepo,
		expenseRepo,
		notificationRepo,
		messageRepo,
		reportCache,
	)

	// Controllers and middleware
	healthController := controller.NewHealthController(database.HealthCheck)
	authController := controller.NewAuthController(loginUseCase, registerUseCase, listUsersUseCase, deactivateUseCase)
	vehicleController := controller.NewVehicleController(
		createVehicleUseCase,
		listVehiclesUseCase,
		updateMileageUseCase,
		archiveVehicleUseCase,
		simulateResaleUseCase,
		addConfigUseCase,
		postponeUseCase,
	)
	entryController := controller.NewEntryController(
		createEntryUseCase,
		listEntriesUseCase,
		updateEntryUseCase,
		approveEntryUseCase,
		rejectEntryUseCase,
		deleteEntryUseCase,
	)
	expenseController := controller.NewExpenseController(createExpenseUseCase, listExpensesUseCase, deleteExpenseUseCase)
	cashDeskController := controller.NewCashDeskController(listDesksUseCase)
	notificationController := controller.NewNotificationController(listNotificationsUseCase, archiveNotificationUseCase)
	reportController := controller.NewReportController(getReportUseCase, exportUseCase)
	messageController := controller.NewMessageController(sendMessageUseCase, listMessagesUseCase)
	adminController := controller.NewAdminController(closePeriodUseCase)

	loginRateLimiter := middleware.NewRateLimiter()
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		vehicleController,
		entryController,
		expenseController,
		cashDeskController,
		notificationController,
		reportController,
		messageController,
		adminController,
		loginRateLimiter,
		authMiddleware,
	)
	engine := r.Setup(cfg.Server.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	stopListener()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
