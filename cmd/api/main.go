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

	"asset-management-api/internal/config"
	"asset-management-api/internal/database"
	"asset-management-api/internal/handler"
	"asset-management-api/internal/metrics"
	"asset-management-api/internal/notification"
	"asset-management-api/internal/repository"
	"asset-management-api/internal/router"
	"asset-management-api/internal/service"
	notificationAdapter "asset-management-api/internal/service/notification"
	"asset-management-api/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.New("info").Fatalf("Failed to load configuration: %v", err)
	}

	log := logger.New(cfg.LogLevel)

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(db, log); err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}
	}

	// Initialize repositories
	assignmentRepo := repository.NewAssignmentRepository(db, cfg.Assignment.OperationTimeout)
	reportRepo := repository.NewReportRepository(db, cfg.Assignment.OperationTimeout)
	computerRepo := repository.NewComputerRepository(db)
	softwareRepo := repository.NewSoftwareRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)

	// Notifications are optional
	var notifier service.NotificationService
	if cfg.NotificationService.Enabled() {
		client := notification.NewNotifierWithConfig(notification.NotificationConfig{
			URL:            cfg.NotificationService.URL,
			Timeout:        cfg.NotificationService.Timeout,
			RetryAttempts:  cfg.NotificationService.RetryAttempts,
			RetryDelay:     cfg.NotificationService.RetryDelay,
			MaxPayloadSize: cfg.NotificationService.MaxPayloadSize,
		}, log)
		notifier = notificationAdapter.NewServiceAdapter(client)
		log.WithField("url", cfg.NotificationService.URL).Info("Notifications enabled")
	} else {
		log.Info("NOTIFIER_URL not set, notifications disabled")
	}

	// Initialize services
	assignmentService := service.NewAssignmentService(assignmentRepo, reportRepo, service.AssignmentServiceConfig{
		Notifier:  notifier,
		Recorder:  metrics.AssignmentRecorder{},
		Logger:    log,
		Threshold: cfg.Assignment.EmployeeThreshold,
	})
	inventoryService := service.NewInventoryService(computerRepo, softwareRepo, employeeRepo, log)

	// Setup router with security configuration
	r := router.NewRouter(router.Handlers{
		Assignments: handler.NewAssignmentHandler(assignmentService, log),
		Inventory:   handler.NewInventoryHandler(inventoryService, log),
		Health:      handler.NewHealthHandler(db, log),
	}, cfg, log)

	server := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.Port),
		Handler:        r,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	var metricsServer *http.Server
	if cfg.Server.EnableMetrics {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		metricsServer = &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Server.MetricsPort),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			log.Infof("Metrics available on :%d/metrics", cfg.Server.MetricsPort)
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Errorf("Metrics server failed: %v", err)
			}
		}()
	}

	// Channel to listen for interrupt signal to gracefully shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Infof("Starting server on port %d", cfg.Port)
		log.Infof("Security: Rate limit=%d RPS, Burst=%d, CORS=%v, Timeout=%v",
			cfg.Security.RateLimitRPS,
			cfg.Security.RateLimitBurst,
			cfg.Security.EnableCORS,
			cfg.Security.RequestTimeout,
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Block until we receive a signal
	<-done
	log.Info("Server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Security.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}
	if metricsServer != nil {
		if err := metricsServer.Shutdown(ctx); err != nil {
			log.Errorf("Metrics server forced to shutdown: %v", err)
		}
	}

	// Let in-flight notifications finish before the process exits
	assignmentService.Wait()
	log.Info("Server exited gracefully")
}
