package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"resolution-desk.backend/internal/config"
	"resolution-desk.backend/internal/infrastructure/datasources/database"
	"resolution-desk.backend/internal/infrastructure/repositories"
	"resolution-desk.backend/internal/infrastructure/telemetry"
	"resolution-desk.backend/internal/interfaces/http/handlers"
	"resolution-desk.backend/internal/interfaces/http/middleware"
	"resolution-desk.backend/internal/usecases"
	"resolution-desk.backend/pkg/logger"
	"resolution-desk.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = database.NewConnection
	seedDB     = repositories.Seed
	runServer  = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB   = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	ctx := context.Background()
	logger.Info(ctx, "Logger initialized", zap.String("env", cfg.Server.Env))

	// Redis backs idempotency and the per-conversation lock; without it both pass through
	if cfg.Redis.Enabled {
		if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
			logger.Error(ctx, "Failed to initialize Redis", zap.Error(err))
			return fmt.Errorf("failed to initialize redis: %w", err)
		}
		defer func() { _ = redis.Close() }()
		logger.Info(ctx, "Redis initialized")
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := seedDB(ctx, db, cfg.Database.ResetOnStart); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}
	logger.Info(ctx, "Database ready",
		zap.String("driver", cfg.Database.Driver),
		zap.Bool("reset_on_start", cfg.Database.ResetOnStart),
	)

	policy, err := usecases.NewCompensationPolicy(cfg.Resolution.Policy)
	if err != nil {
		return fmt.Errorf("invalid resolution policy: %w", err)
	}

	// Initialize store and usecases
	store := usecases.NewDomainStore(usecases.StoreRepositories{
		Customers:    repositories.NewCustomerRepository(db),
		Merchants:    repositories.NewMerchantRepository(db),
		Drivers:      repositories.NewDriverRepository(db),
		Orders:       repositories.NewOrderRepository(db),
		Transactions: repositories.NewTransactionRepository(db),
		Vouchers:     repositories.NewVoucherRepository(db),
		Complaints:   repositories.NewComplaintRepository(db),
		Escalations:  repositories.NewEscalationRepository(db),
		Sequences:    repositories.NewSequenceRepository(db),
	}, repositories.NewUnitOfWork(db), cfg.Resolution)

	narrator := usecases.NewNarrator(cfg.Resolution.CurrencySymbol)
	investigationUsecase := usecases.NewInvestigationUsecase(store, narrator, telemetry.New(cfg.Telemetry.Mode, cfg.Telemetry.Seed))
	actionExecutor := usecases.NewActionExecutor(store, narrator)
	resolutionUsecase := usecases.NewResolutionUsecase(store, policy, narrator)
	toolkit := usecases.NewToolkit(investigationUsecase, actionExecutor, resolutionUsecase)

	// Initialize handlers
	toolHandler := handlers.NewToolHandler(toolkit)
	resolutionHandler := handlers.NewResolutionHandler(resolutionUsecase)
	recordsHandler := handlers.NewRecordsHandler(store)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		toolHandler:       toolHandler,
		resolutionHandler: resolutionHandler,
		recordsHandler:    recordsHandler,
	})

	logger.Info(ctx, "Routes registered",
		zap.Int("count", len(r.Routes())),
		zap.String("policy", policy.Name()),
		zap.Int("tools", len(toolkit.Names())),
	)

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logger.Info(ctx, "Shutting down server")
		_ = sqlDB.Close()
		os.Exit(0)
	}()

	logger.Info(ctx, "Resolution desk starting",
		zap.String("port", cfg.Server.Port),
		zap.String("api", fmt.Sprintf("http://localhost:%s/api/v1", cfg.Server.Port)),
	)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
