package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dora-metrics-service/internal/config"
	"dora-metrics-service/internal/logger"

	doraHttp "dora-metrics-service/internal/dora/adapters/http/fiber"
	doraRepoPg "dora-metrics-service/internal/dora/adapters/postgres"
	doraUsecase "dora-metrics-service/internal/dora/core/usecase"

	filtersHttp "dora-metrics-service/internal/filters/adapters/http/fiber"
	filtersRepoPg "dora-metrics-service/internal/filters/adapters/postgres"
	filtersUsecase "dora-metrics-service/internal/filters/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	_ "dora-metrics-service/docs"
)

// @title DORA Metrics Service API
// @version 1.0
// @description Aggregates day-bucketed warehouse rows into the four DORA metrics with cascading filter resolution.
// @BasePath /
func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.Logger.Level, cfg.Logger.Format)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	// DB connection
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		zlog.Fatal("failed to open postgres", zap.Error(err))
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		zlog.Fatal("failed to ping postgres", zap.Error(err))
	}

	// Adapter-level DB wrappers
	doraDB := doraRepoPg.NewSQLDB(db)
	filtersDB := filtersRepoPg.NewSQLDB(db)

	// Repositories
	metricsRepository := doraRepoPg.NewMetricsRepository(doraDB)
	optionsRepository := filtersRepoPg.NewFilterOptionsRepository(filtersDB)

	// Usecases
	cascadeUC := filtersUsecase.NewCascadeApplicationsUseCase(optionsRepository, zlog)
	planner := doraUsecase.NewPlanner(cascadeUC)

	frequencyUC := doraUsecase.NewDeploymentFrequencyUseCase(metricsRepository, planner)
	failuresUC := doraUsecase.NewChangeFailureRateUseCase(metricsRepository, planner)
	leadTimeUC := doraUsecase.NewLeadTimeUseCase(metricsRepository, planner)
	restoreUC := doraUsecase.NewTimeToRestoreUseCase(metricsRepository, planner)
	allUC := doraUsecase.NewGetAllMetricsUseCase(planner, frequencyUC, failuresUC, leadTimeUC, restoreUC)

	// HTTP (Fiber) app + handlers
	app := fiber.New()

	app.Use(func(c *fiber.Ctx) error {
		requestID := c.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("X-Request-ID", requestID)

		start := time.Now()
		err := c.Next()

		zlog.Info("request",
			zap.String("request_id", requestID),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)))

		return err
	})

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// metrics endpoints
	metricsHandler := doraHttp.NewMetricsHandler(frequencyUC, failuresUC, leadTimeUC, restoreUC, allUC)
	app.Get("/metrics", metricsHandler.GetAllMetrics)
	app.Get("/metrics/deployment-frequency", metricsHandler.GetDeploymentFrequency)
	app.Get("/metrics/change-failure-rate", metricsHandler.GetChangeFailureRate)
	app.Get("/metrics/lead-time", metricsHandler.GetLeadTime)
	app.Get("/metrics/time-to-restore", metricsHandler.GetTimeToRestore)

	// filter option endpoints
	filtersHandler := filtersHttp.NewFiltersHandler(cascadeUC)
	app.Get("/filters/applications", filtersHandler.GetApplicationOptions)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.Server.Addr); err != nil {
			zlog.Error("fiber stopped", zap.Error(err))
		}
	}()

	zlog.Info("server started", zap.String("addr", cfg.Server.Addr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	zlog.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		zlog.Error("fiber shutdown error", zap.Error(err))
	}

	zlog.Info("server exiting")
}
