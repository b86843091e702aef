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
	"github.com/redis/go-redis/v9"

	blockDayHandler "github.com/m04kA/salon-booking/internal/api/handlers/block_day"
	blockSlotHandler "github.com/m04kA/salon-booking/internal/api/handlers/block_slot"
	cancelAppointmentHandler "github.com/m04kA/salon-booking/internal/api/handlers/cancel_appointment"
	confirmAppointmentHandler "github.com/m04kA/salon-booking/internal/api/handlers/confirm_appointment"
	createAppointmentHandler "github.com/m04kA/salon-booking/internal/api/handlers/create_appointment"
	createStylistHandler "github.com/m04kA/salon-booking/internal/api/handlers/create_stylist"
	deleteAppointmentHandler "github.com/m04kA/salon-booking/internal/api/handlers/delete_appointment"
	deleteStylistHandler "github.com/m04kA/salon-booking/internal/api/handlers/delete_stylist"
	getActionableHandler "github.com/m04kA/salon-booking/internal/api/handlers/get_actionable_appointments"
	getAvailabilityHandler "github.com/m04kA/salon-booking/internal/api/handlers/get_availability"
	getClientAppointmentsHandler "github.com/m04kA/salon-booking/internal/api/handlers/get_client_appointments"
	getStaffHandler "github.com/m04kA/salon-booking/internal/api/handlers/get_staff"
	getStatsHandler "github.com/m04kA/salon-booking/internal/api/handlers/get_stats"
	healthHandler "github.com/m04kA/salon-booking/internal/api/handlers/health"
	listBlockedDaysHandler "github.com/m04kA/salon-booking/internal/api/handlers/list_blocked_days"
	listBlockedSlotsHandler "github.com/m04kA/salon-booking/internal/api/handlers/list_blocked_slots"
	listServicesHandler "github.com/m04kA/salon-booking/internal/api/handlers/list_services"
	listStylistsHandler "github.com/m04kA/salon-booking/internal/api/handlers/list_stylists"
	loginClientHandler "github.com/m04kA/salon-booking/internal/api/handlers/login_client"
	registerClientHandler "github.com/m04kA/salon-booking/internal/api/handlers/register_client"
	unblockDayHandler "github.com/m04kA/salon-booking/internal/api/handlers/unblock_day"
	unblockSlotHandler "github.com/m04kA/salon-booking/internal/api/handlers/unblock_slot"
	"github.com/m04kA/salon-booking/internal/api/middleware"
	"github.com/m04kA/salon-booking/internal/config"
	appointmentRepo "github.com/m04kA/salon-booking/internal/infra/storage/appointment"
	blockRepo "github.com/m04kA/salon-booking/internal/infra/storage/block"
	catalogRepo "github.com/m04kA/salon-booking/internal/infra/storage/catalog"
	clientRepo "github.com/m04kA/salon-booking/internal/infra/storage/client"
	appointmentsService "github.com/m04kA/salon-booking/internal/service/appointments"
	"github.com/m04kA/salon-booking/internal/service/availability"
	blocksService "github.com/m04kA/salon-booking/internal/service/blocks"
	catalogService "github.com/m04kA/salon-booking/internal/service/catalog"
	clientsService "github.com/m04kA/salon-booking/internal/service/clients"
	statsService "github.com/m04kA/salon-booking/internal/service/stats"
	getAvailabilityUC "github.com/m04kA/salon-booking/internal/usecase/get_availability"
	requestBookingUC "github.com/m04kA/salon-booking/internal/usecase/request_booking"
	"github.com/m04kA/salon-booking/pkg/dbmetrics"
	"github.com/m04kA/salon-booking/pkg/logger"
	"github.com/m04kA/salon-booking/pkg/metrics"
	"github.com/m04kA/salon-booking/pkg/txmanager"
)

const configPath = "config.toml"

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting salon-booking...")
	log.Info("Configuration loaded from %s (timezone=%s, slots=%d)",
		configPath, cfg.Schedule.Timezone, len(cfg.Schedule.SlotTimes))

	// Метрики (если включены). nil коллектор допустим во всех вызовах.
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
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

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Репозитории
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	blockRepository := blockRepo.NewRepository(wrappedDB)
	catalogRepository := catalogRepo.NewRepository(wrappedDB)
	clientRepository := clientRepo.NewRepository(wrappedDB)

	location := cfg.Schedule.Location()
	ledger := availability.NewLedger(blockRepository, appointmentRepository)

	// Сервисы
	appointmentSvc := appointmentsService.NewService(appointmentRepository, txMgr, log)
	blockSvc := blocksService.NewService(blockRepository, txMgr, log)
	catalogSvc := catalogService.NewService(catalogRepository, txMgr, location, log)
	clientSvc := clientsService.NewService(clientRepository, log)
	statsSvc := statsService.NewService(appointmentRepository, txMgr, location, cfg.Schedule.SatisfactionWindowDays, log)

	// Use cases
	requestBookingUseCase := requestBookingUC.NewUseCase(
		appointmentRepository,
		catalogRepository,
		ledger,
		txMgr,
		metricsCollector,
		requestBookingUC.Options{
			Location:           location,
			EnforceEligibility: cfg.Schedule.EnforceEligibility,
		},
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		catalogRepository,
		ledger,
		txMgr,
		cfg.Schedule.Slots(),
		location,
		log,
	)

	// Handlers
	createAppointment := createAppointmentHandler.NewHandler(requestBookingUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	confirmAppointment := confirmAppointmentHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentSvc, log)
	getClientAppointments := getClientAppointmentsHandler.NewHandler(appointmentSvc, log)
	getActionable := getActionableHandler.NewHandler(appointmentSvc, log)
	blockDay := blockDayHandler.NewHandler(blockSvc, log)
	blockSlot := blockSlotHandler.NewHandler(blockSvc, log)
	unblockDay := unblockDayHandler.NewHandler(blockSvc, log)
	unblockSlot := unblockSlotHandler.NewHandler(blockSvc, log)
	listBlockedDays := listBlockedDaysHandler.NewHandler(blockSvc, log)
	listBlockedSlots := listBlockedSlotsHandler.NewHandler(blockSvc, log)
	getStats := getStatsHandler.NewHandler(statsSvc, log)
	listStylists := listStylistsHandler.NewHandler(catalogSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	createStylist := createStylistHandler.NewHandler(catalogSvc, log)
	deleteStylist := deleteStylistHandler.NewHandler(catalogSvc, log)
	getStaff := getStaffHandler.NewHandler(catalogSvc, log)
	registerClient := registerClientHandler.NewHandler(clientSvc, log)
	loginClient := loginClientHandler.NewHandler(clientSvc, log)
	health := healthHandler.NewHandler(wrappedDB, log)

	// Rate limiter на запись и логин (если включен Redis)
	limit := func(_ string, h http.HandlerFunc) http.HandlerFunc { return h }
	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis ping failed (addr=%s, fail_open=%t): %v", cfg.Redis.Addr, cfg.Redis.FailOpen, err)
		}
		cancelPing()

		limiter := middleware.NewRateLimiter(
			middleware.NewRedisCounter(rdb),
			cfg.Redis.RequestsPerMin,
			time.Minute,
			cfg.Metrics.ServiceName,
			cfg.Redis.FailOpen,
			log,
		)
		limit = limiter.Wrap
		log.Info("Rate limiting enabled: %d requests/min (redis=%s)", cfg.Redis.RequestsPerMin, cfg.Redis.Addr)
	}

	// Роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Записи ---
	api.HandleFunc("/appointments", limit("appointments", createAppointment.Handle)).Methods(http.MethodPost)
	api.HandleFunc("/appointments/actionable", getActionable.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId}/confirm", confirmAppointment.Handle).Methods(http.MethodPut)
	api.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPut)
	api.HandleFunc("/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/clients/{clientId}/appointments", getClientAppointments.Handle).Methods(http.MethodGet)

	// --- Доступность и блокировки ---
	api.HandleFunc("/stylists/{stylistId}/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/blocked-days", blockDay.Handle).Methods(http.MethodPost)
	api.HandleFunc("/blocked-days/{blockId}", unblockDay.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/stylists/{stylistId}/blocked-days", listBlockedDays.Handle).Methods(http.MethodGet)
	api.HandleFunc("/blocked-slots", blockSlot.Handle).Methods(http.MethodPost)
	api.HandleFunc("/blocked-slots/{blockId}", unblockSlot.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/stylists/{stylistId}/blocked-slots", listBlockedSlots.Handle).Methods(http.MethodGet)

	// --- Персонал ---
	api.HandleFunc("/stats", getStats.Handle).Methods(http.MethodGet)
	api.HandleFunc("/staff", getStaff.Handle).Methods(http.MethodGet)

	// --- Каталог ---
	api.HandleFunc("/stylists", listStylists.Handle).Methods(http.MethodGet)
	api.HandleFunc("/stylists", createStylist.Handle).Methods(http.MethodPost)
	api.HandleFunc("/stylists/{stylistId}", deleteStylist.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}/stylists", listStylists.Handle).Methods(http.MethodGet)

	// --- Клиенты ---
	api.HandleFunc("/clients/register", registerClient.Handle).Methods(http.MethodPost)
	api.HandleFunc("/clients/login", limit("login", loginClient.Handle)).Methods(http.MethodPost)

	// HTTP сервер
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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	close(stopMetricsCh)

	if rdb != nil {
		if err := rdb.Close(); err != nil {
			log.Warn("Failed to close redis client: %v", err)
		}
	}

	log.Info("Server stopped gracefully")
}
