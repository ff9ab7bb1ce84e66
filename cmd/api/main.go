package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"costmanager/internal/config"
	"costmanager/internal/database"
	"costmanager/internal/logger"
	"costmanager/internal/report"
	"costmanager/internal/router"
	"costmanager/internal/services"
	"costmanager/internal/store"
	"costmanager/internal/validator"
)

// @title           Cost Manager API
// @version         1.0
// @description     Cost Manager tracks users and their expenses and serves monthly reports grouped by category.

// @host      localhost:8080
// @BasePath  /

func main() {
	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Init(appConfig.Env, appConfig.LogLevel)
	defer logger.Sync()
	log := logger.Get()

	if appConfig.GinMode != "" {
		gin.SetMode(appConfig.GinMode)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig(appConfig)
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("database close error: %v", err)
		}
	}()

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	validator.Register(appConfig.Categories)

	// Initialize services
	db := dbManager.DB()
	reportStore := store.NewReportStore(db)
	builder := report.NewBuilder(reportStore, appConfig.ReportOrder, appConfig.Location)
	cache := report.NewCache(builder, reportStore, logger.Named("report"))

	engine, err := router.Setup(appConfig, router.Services{
		Users:   services.NewUserService(db),
		Costs:   services.NewCostService(db, appConfig.Categories, appConfig.CreatedAtSkew),
		Reports: services.NewReportService(cache),
		Logs:    services.NewLogService(db),
	})
	if err != nil {
		return fmt.Errorf("failed to set up router: %w", err)
	}

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting Cost Manager server on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
