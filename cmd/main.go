package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	bulkBookingsHandler "github.com/erplora/OnlineBooking-Service/internal/api/handlers/bulk_bookings"
	createBookingHandler "github.com/erplora/OnlineBooking-Service/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/erplora/OnlineBooking-Service/internal/api/handlers/delete_booking"
	executeToolHandler "github.com/erplora/OnlineBooking-Service/internal/api/handlers/execute_tool"
	getBookingHandler "github.com/erplora/OnlineBooking-Service/internal/api/handlers/get_booking"
	getDashboardHandler "github.com/erplora/OnlineBooking-Service/internal/api/handlers/get_dashboard"
	getSettingsHandler "github.com/erplora/OnlineBooking-Service/internal/api/handlers/get_settings"
	listBookingsHandler "github.com/erplora/OnlineBooking-Service/internal/api/handlers/list_bookings"
	updateBookingStatusHandler "github.com/erplora/OnlineBooking-Service/internal/api/handlers/update_booking_status"
	updateSettingsHandler "github.com/erplora/OnlineBooking-Service/internal/api/handlers/update_settings"
	"github.com/erplora/OnlineBooking-Service/internal/api/middleware"
	"github.com/erplora/OnlineBooking-Service/internal/assistant"
	"github.com/erplora/OnlineBooking-Service/internal/config"
	bookingRepo "github.com/erplora/OnlineBooking-Service/internal/infra/storage/booking"
	settingsRepo "github.com/erplora/OnlineBooking-Service/internal/infra/storage/settings"
	customerServiceClient "github.com/erplora/OnlineBooking-Service/internal/integrations/customerservice"
	bookingsService "github.com/erplora/OnlineBooking-Service/internal/service/bookings"
	settingsService "github.com/erplora/OnlineBooking-Service/internal/service/settings"
	createBookingUC "github.com/erplora/OnlineBooking-Service/internal/usecase/create_booking"
	"github.com/erplora/OnlineBooking-Service/pkg/dbmetrics"
	"github.com/erplora/OnlineBooking-Service/pkg/logger"
	"github.com/erplora/OnlineBooking-Service/pkg/metrics"
	"github.com/erplora/OnlineBooking-Service/pkg/simpletxmanager"
	"github.com/erplora/OnlineBooking-Service/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting OnlineBooking-Service...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Customer linking is optional: without the integration, bookings
	// keep their snapshot fields only
	var customerClient createBookingUC.CustomerServiceClient
	if cfg.CustomerService.Enabled {
		customerClient = customerServiceClient.NewClient(
			cfg.CustomerService.URL,
			time.Duration(cfg.CustomerService.Timeout)*time.Second,
			log,
		)
		log.Info("Customer service client initialized (url=%s timeout=%ds)",
			cfg.CustomerService.URL, cfg.CustomerService.Timeout)
	} else {
		log.Info("Customer service integration disabled")
	}

	var (
		bookingRepository  *bookingRepo.Repository
		settingsRepository *settingsRepo.Repository
		txMgr              createBookingUC.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	bookingSvc := bookingsService.NewService(
		bookingRepository,
		bookingsService.RealTimeProvider{},
		log,
	)
	settingsSvc := settingsService.NewService(
		settingsRepository,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		settingsSvc,
		customerClient,
		txMgr,
		log,
	)

	toolRegistry := assistant.NewDefaultRegistry(
		bookingSvc,
		settingsSvc,
		createBookingUseCase,
		log,
	)
	log.Info("Assistant tool registry initialized with %d tools", len(toolRegistry.List()))

	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	bulkBookings := bulkBookingsHandler.NewHandler(bookingSvc, log)
	getDashboard := getDashboardHandler.NewHandler(bookingSvc, settingsSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)
	executeTool := executeToolHandler.NewHandler(toolRegistry, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint stays public
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Every admin route requires the hub header
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.HubAuth)

	// Bookings
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/bulk", bulkBookings.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Dashboard
	api.HandleFunc("/dashboard", getDashboard.Handle).Methods(http.MethodGet)

	// Booking page settings
	api.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

	// Assistant tools
	api.HandleFunc("/assistant/tools", executeTool.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/assistant/tools/{toolName}", executeTool.HandleExecute).Methods(http.MethodPost)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
