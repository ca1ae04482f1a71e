package main

// @title Vaccination Dashboard API
// @version 1.0.0
// @description Уровень вакцинации и заболеваемость по уездам Эстонии.
// @description
// @description Основные возможности:
// @description - Хороплеты вакцинации и заболеваемости за выбранный год и болезнь
// @description - Панель деталей региона и агрегата по стране
// @description - Тренд вакцинации за предыдущие годы

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/vaccination-dashboard/docs"
	"github.com/vaccination-dashboard/internal/config"
	httpDelivery "github.com/vaccination-dashboard/internal/delivery/http"
	"github.com/vaccination-dashboard/internal/delivery/http/handler"
	"github.com/vaccination-dashboard/internal/domain/repository"
	"github.com/vaccination-dashboard/internal/pkg/logger"
	"github.com/vaccination-dashboard/internal/pkg/metrics"
	"github.com/vaccination-dashboard/internal/repository/file"
	"github.com/vaccination-dashboard/internal/repository/postgres"
	"github.com/vaccination-dashboard/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Vaccination Dashboard")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("data_source", cfg.Data.Source),
	)

	// 3. Initialize repositories
	geometryRepo := file.NewGeometryRepository(&cfg.Data, log)

	var (
		metricRepo repository.MetricRepository
		health     httpDelivery.HealthChecker
		db         *postgres.DB
	)

	switch cfg.Data.Source {
	case config.SourcePostgres:
		db, err = postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Failed to close PostgreSQL connection", zap.Error(err))
			}
		}()
		metricRepo = postgres.NewMetricRepository(db, &cfg.Data)
		health = db
		log.Info("PostgreSQL connected")
	default:
		metricRepo = file.NewMetricRepository(&cfg.Data, log)
	}

	// 4. Load dataset once
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	ds, err := usecase.LoadDataset(ctx, metricRepo, geometryRepo, usecase.DatasetOptions{
		RegionColumn: cfg.Data.RegionColumn,
		YearColumn:   cfg.Data.YearColumn,
		Geometry: usecase.GeometryOptions{
			CountyNameProperty:     cfg.Data.CountyNameProperty,
			SettlementNameProperty: cfg.Data.SettlementNameProperty,
			ExtraCities:            cfg.Data.ExtraCities,
			AggregateLabel:         cfg.Data.AggregateLabel,
		},
	}, log)
	cancel()
	if err != nil {
		log.Fatal("Failed to load dataset", zap.Error(err))
	}

	// 5. Initialize use cases
	metricsManager := metrics.NewManager()
	dashboardUC := usecase.NewDashboardUseCase(ds, cfg.Trend.WindowSize, metricsManager, log)

	log.Info("Use cases initialized")

	// 6. Initialize HTTP handlers
	dashboardHandler := handler.NewDashboardHandler(dashboardUC, log)
	pageHandler, err := handler.NewPageHandler(dashboardUC, httpDelivery.APIPrefix, cfg.Trend.WindowSize)
	if err != nil {
		log.Warn("Failed to initialize dashboard page, only API is served", zap.Error(err))
	}

	// 7. Initialize HTTP server
	server := httpDelivery.NewServer(cfg, log, metricsManager, dashboardHandler, pageHandler, health)

	// 8. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
