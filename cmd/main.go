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

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/CWS-BookingService/internal/api/handlers/cancel_booking"
	confirmBookingHandler "github.com/m04kA/CWS-BookingService/internal/api/handlers/confirm_booking"
	createAvailabilityWindowHandler "github.com/m04kA/CWS-BookingService/internal/api/handlers/create_availability_window"
	createBulkBookingHandler "github.com/m04kA/CWS-BookingService/internal/api/handlers/create_bulk_booking"
	createUnavailabilityWindowHandler "github.com/m04kA/CWS-BookingService/internal/api/handlers/create_unavailability_window"
	deleteAvailabilityWindowHandler "github.com/m04kA/CWS-BookingService/internal/api/handlers/delete_availability_window"
	deleteUnavailabilityWindowHandler "github.com/m04kA/CWS-BookingService/internal/api/handlers/delete_unavailability_window"
	getAvailableSlotsHandler "github.com/m04kA/CWS-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/CWS-BookingService/internal/api/handlers/get_booking"
	getServiceScheduleHandler "github.com/m04kA/CWS-BookingService/internal/api/handlers/get_service_schedule"
	getSpaceBookingsHandler "github.com/m04kA/CWS-BookingService/internal/api/handlers/get_space_bookings"
	getUserBookingsHandler "github.com/m04kA/CWS-BookingService/internal/api/handlers/get_user_bookings"
	listAvailabilityWindowsHandler "github.com/m04kA/CWS-BookingService/internal/api/handlers/list_availability_windows"
	listUnavailabilityWindowsHandler "github.com/m04kA/CWS-BookingService/internal/api/handlers/list_unavailability_windows"
	updateAvailabilityWindowHandler "github.com/m04kA/CWS-BookingService/internal/api/handlers/update_availability_window"
	"github.com/m04kA/CWS-BookingService/internal/api/middleware"
	"github.com/m04kA/CWS-BookingService/internal/config"
	availabilityRepo "github.com/m04kA/CWS-BookingService/internal/infra/storage/availability"
	bookingRepo "github.com/m04kA/CWS-BookingService/internal/infra/storage/booking"
	unavailabilityRepo "github.com/m04kA/CWS-BookingService/internal/infra/storage/unavailability"
	creditServiceClient "github.com/m04kA/CWS-BookingService/internal/integrations/creditservice"
	bookingsService "github.com/m04kA/CWS-BookingService/internal/service/bookings"
	jobsService "github.com/m04kA/CWS-BookingService/internal/service/jobs"
	scheduleService "github.com/m04kA/CWS-BookingService/internal/service/schedule"
	createBulkBookingUC "github.com/m04kA/CWS-BookingService/internal/usecase/create_bulk_booking"
	getAvailableSlotsUC "github.com/m04kA/CWS-BookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/CWS-BookingService/pkg/dbmetrics"
	"github.com/m04kA/CWS-BookingService/pkg/logger"
	"github.com/m04kA/CWS-BookingService/pkg/metrics"
	"github.com/m04kA/CWS-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/CWS-BookingService/pkg/txmanager"
)

func main() {
	// .env опционален: в контейнере переменные приходят из окружения
	_ = godotenv.Load()

	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting CWS-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем клиент CreditService
	creditClient := creditServiceClient.NewClient(
		cfg.CreditService.URL,
		time.Duration(cfg.CreditService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (CreditService=%s timeout=%ds)",
		cfg.CreditService.URL, cfg.CreditService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository        *bookingRepo.Repository
		availabilityRepository   *availabilityRepo.Repository
		unavailabilityRepository *unavailabilityRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		unavailabilityRepository = unavailabilityRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		availabilityRepository = availabilityRepo.NewRepository(db)
		unavailabilityRepository = unavailabilityRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		availabilityRepository,
		unavailabilityRepository,
		log,
	)
	jobsSvc := jobsService.NewService(
		bookingRepository,
		jobsService.Config{
			CompleteSpec:      cfg.Jobs.CompleteSpec,
			ExpireSpec:        cfg.Jobs.ExpireSpec,
			PendingTTLMinutes: cfg.Jobs.PendingTTLMinutes,
		},
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		availabilityRepository,
		unavailabilityRepository,
		bookingRepository,
		log,
	)
	createBulkBookingUseCase := createBulkBookingUC.NewUseCase(
		bookingRepository,
		availabilityRepository,
		creditClient,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBulkBooking := createBulkBookingHandler.NewHandler(createBulkBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	spaceCancelBooking := cancelBookingHandler.NewSpaceHandler(bookingSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getSpaceBookings := getSpaceBookingsHandler.NewHandler(bookingSvc, log)
	getServiceSchedule := getServiceScheduleHandler.NewHandler(scheduleSvc, log)
	createAvailabilityWindow := createAvailabilityWindowHandler.NewHandler(scheduleSvc, log)
	updateAvailabilityWindow := updateAvailabilityWindowHandler.NewHandler(scheduleSvc, log)
	listAvailabilityWindows := listAvailabilityWindowsHandler.NewHandler(scheduleSvc, log)
	deleteAvailabilityWindow := deleteAvailabilityWindowHandler.NewHandler(scheduleSvc, log)
	createUnavailabilityWindow := createUnavailabilityWindowHandler.NewHandler(scheduleSvc, log)
	listUnavailabilityWindows := listUnavailabilityWindowsHandler.NewHandler(scheduleSvc, log)
	deleteUnavailabilityWindow := deleteUnavailabilityWindowHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Расписание услуги за период (для календарной сетки)
	api.HandleFunc("/services/{serviceId}/schedule",
		getServiceSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Доступность ---
	// Расчет доступных слотов под форму бронирования
	protected.HandleFunc("/services/{serviceId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	// Пакетное создание бронирований
	protected.HandleFunc("/bookings/bulk", createBulkBooking.Handle).Methods(http.MethodPost)

	// История бронирований пользователя (?status=, ?requestCode=)
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{id}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования пользователем
	protected.HandleFunc("/bookings/{id}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// --- Управление площадкой (для администраторов) ---
	// Список бронирований коворкинга
	protected.HandleFunc("/spaces/{spaceId}/bookings", getSpaceBookings.Handle).Methods(http.MethodGet)

	// Подтверждение бронирования площадкой
	protected.HandleFunc("/bookings/{id}/confirm", confirmBooking.Handle).Methods(http.MethodPatch)

	// Отмена бронирования площадкой
	protected.HandleFunc("/spaces/{spaceId}/bookings/{id}/cancel",
		spaceCancelBooking.Handle).Methods(http.MethodPatch)

	// Окна доступности услуги
	protected.HandleFunc("/services/{serviceId}/availability-windows",
		createAvailabilityWindow.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/services/{serviceId}/availability-windows",
		listAvailabilityWindows.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/availability-windows/{id}",
		updateAvailabilityWindow.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/availability-windows/{id}",
		deleteAvailabilityWindow.Handle).Methods(http.MethodDelete)

	// Окна недоступности площадок
	protected.HandleFunc("/unavailability-windows",
		createUnavailabilityWindow.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/spaces/{spaceId}/unavailability-windows",
		listUnavailabilityWindows.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/unavailability-windows/{id}",
		deleteUnavailabilityWindow.Handle).Methods(http.MethodDelete)

	// CORS для фронтенда
	corsHandler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins([]string{"*"}),
		gorillaHandlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "X-User-ID"}),
	)(r)

	// Запускаем фоновые задачи жизненного цикла броней
	if err := jobsSvc.Start(); err != nil {
		log.Fatal("Failed to start background jobs: %v", err)
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
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

	// Останавливаем фоновые задачи
	jobsSvc.Stop()

	// Останавливаем сбор метрик connection pool
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
