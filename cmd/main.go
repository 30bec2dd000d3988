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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/DennizCann/RandevuApp-sub000/internal/api/handlers"
	blockSlotHandler "github.com/DennizCann/RandevuApp-sub000/internal/api/handlers/block_slot"
	cancelAppointmentHandler "github.com/DennizCann/RandevuApp-sub000/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/DennizCann/RandevuApp-sub000/internal/api/handlers/create_appointment"
	createBusinessHandler "github.com/DennizCann/RandevuApp-sub000/internal/api/handlers/create_business"
	getAppointmentHandler "github.com/DennizCann/RandevuApp-sub000/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/DennizCann/RandevuApp-sub000/internal/api/handlers/get_available_slots"
	getBusinessHandler "github.com/DennizCann/RandevuApp-sub000/internal/api/handlers/get_business"
	getBusinessAppointmentsHandler "github.com/DennizCann/RandevuApp-sub000/internal/api/handlers/get_business_appointments"
	getCustomerAppointmentsHandler "github.com/DennizCann/RandevuApp-sub000/internal/api/handlers/get_customer_appointments"
	unblockSlotHandler "github.com/DennizCann/RandevuApp-sub000/internal/api/handlers/unblock_slot"
	updateStatusHandler "github.com/DennizCann/RandevuApp-sub000/internal/api/handlers/update_status"
	updateWorkingHoursHandler "github.com/DennizCann/RandevuApp-sub000/internal/api/handlers/update_working_hours"
	"github.com/DennizCann/RandevuApp-sub000/internal/api/middleware"
	"github.com/DennizCann/RandevuApp-sub000/internal/config"
	"github.com/DennizCann/RandevuApp-sub000/internal/infra/cache"
	appointmentRepo "github.com/DennizCann/RandevuApp-sub000/internal/infra/storage/appointment"
	businessRepo "github.com/DennizCann/RandevuApp-sub000/internal/infra/storage/business"
	"github.com/DennizCann/RandevuApp-sub000/internal/infra/storage/memory"
	appointmentsService "github.com/DennizCann/RandevuApp-sub000/internal/service/appointments"
	businessService "github.com/DennizCann/RandevuApp-sub000/internal/service/business"
	blockSlotUC "github.com/DennizCann/RandevuApp-sub000/internal/usecase/block_slot"
	createAppointmentUC "github.com/DennizCann/RandevuApp-sub000/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/DennizCann/RandevuApp-sub000/internal/usecase/get_available_slots"
	"github.com/DennizCann/RandevuApp-sub000/pkg/dbmetrics"
	"github.com/DennizCann/RandevuApp-sub000/pkg/logger"
	"github.com/DennizCann/RandevuApp-sub000/pkg/metrics"
)

func main() {
	// .env необязателен, переменные окружения имеют приоритет
	_ = godotenv.Load()

	// Загружаем конфигурацию
	configPath := config.Path("config.toml")
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

	log.Info("Starting RandevuApp...")
	log.Info("Configuration loaded from %s", configPath)

	location, err := cfg.Scheduling.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.Scheduling.Timezone, err)
	}
	storeTimeout := cfg.Scheduling.StoreTimeout()

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Хранилище: Postgres или память процесса
	var (
		appointmentStore cache.AppointmentStore
		businessStore    businessService.BusinessDirectory
		db               *sql.DB
	)

	switch cfg.Scheduling.Storage {
	case config.StorageMemory:
		appointmentStore = memory.NewAppointmentStore()
		businessStore = memory.NewBusinessDirectory()
		log.Warn("Using in-memory storage: data is lost on restart")

	default:
		db, err = sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		if cfg.Metrics.Enabled {
			wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
			appointmentStore = appointmentRepo.NewRepository(wrappedDB)
			businessStore = businessRepo.NewRepository(wrappedDB)
			log.Info("Database metrics collection started")
		} else {
			appointmentStore = appointmentRepo.NewRepository(db)
			businessStore = businessRepo.NewRepository(db)
		}
	}

	// Кеш дневных списков записей (если включен)
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis at %s is not reachable, cache will fall back to storage: %v", cfg.Redis.Addr, err)
		} else {
			log.Info("Redis cache enabled (addr=%s, ttl=%s)", cfg.Redis.Addr, cfg.Redis.TTL())
		}
		cancel()
	}
	cachedAppointments := cache.NewAppointmentStore(appointmentStore, redisClient, cfg.Redis.TTL(), log)
	defer cachedAppointments.Close()

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(cachedAppointments, businessStore, storeTimeout, log)
	businessSvc := businessService.NewService(businessStore, storeTimeout, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		cachedAppointments,
		businessStore,
		metricsCollector,
		location,
		storeTimeout,
		log,
	)

	blockSlotUseCase := blockSlotUC.NewUseCase(
		cachedAppointments,
		businessStore,
		metricsCollector,
		location,
		storeTimeout,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		cachedAppointments,
		businessStore,
		location,
		storeTimeout,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	blockSlot := blockSlotHandler.NewHandler(blockSlotUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	getBusinessAppointments := getBusinessAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getCustomerAppointments := getCustomerAppointmentsHandler.NewHandler(appointmentsSvc, log)
	updateStatus := updateStatusHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	unblockSlot := unblockSlotHandler.NewHandler(appointmentsSvc, log)
	createBusiness := createBusinessHandler.NewHandler(businessSvc, log)
	getBusiness := getBusinessHandler.NewHandler(businessSvc, log)
	updateWorkingHours := updateWorkingHoursHandler.NewHandler(businessSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/healthz", healthHandler(db, redisClient)).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()
	if cfg.Server.RateLimitRPS > 0 {
		api.Use(middleware.NewRateLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst).Middleware())
		log.Info("Rate limit enabled: %.1f rps, burst %d per client", cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst)
	}

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/businesses/{businessId}", getBusiness.Handle).Methods(http.MethodGet)
	api.HandleFunc("/businesses/{businessId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бизнес ---
	protected.HandleFunc("/businesses", createBusiness.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/businesses/{businessId}/working-hours", updateWorkingHours.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/businesses/{businessId}/appointments", getBusinessAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/businesses/{businessId}/blocks", blockSlot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/blocks/{appointmentId}", unblockSlot.Handle).Methods(http.MethodDelete)

	// --- Записи ---
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}", cancelAppointment.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/appointments/{appointmentId}/status", updateStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/customers/me/appointments", getCustomerAppointments.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s (storage=%s, timezone=%s)", addr, cfg.Scheduling.Storage, location)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

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

// healthHandler проверяет доступность Postgres и Redis, если они используются
func healthHandler(db *sql.DB, redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := map[string]string{"status": "ok"}
		code := http.StatusOK

		if db != nil {
			if err := db.PingContext(ctx); err != nil {
				status["postgres"] = err.Error()
				code = http.StatusServiceUnavailable
			} else {
				status["postgres"] = "ok"
			}
		}

		// Redis необязателен: его недоступность не делает сервис нездоровым
		if redisClient != nil {
			if err := redisClient.Ping(ctx).Err(); err != nil {
				status["redis"] = err.Error()
			} else {
				status["redis"] = "ok"
			}
		}

		if code != http.StatusOK {
			status["status"] = "degraded"
		}
		handlers.RespondJSON(w, code, status)
	}
}
