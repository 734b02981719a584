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

	cancelBookingHandler "github.com/m04kA/RPM-BookingService/internal/api/handlers/cancel_booking"
	cancelTourHandler "github.com/m04kA/RPM-BookingService/internal/api/handlers/cancel_tour"
	confirmBookingHandler "github.com/m04kA/RPM-BookingService/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/m04kA/RPM-BookingService/internal/api/handlers/create_booking"
	getBookingHandler "github.com/m04kA/RPM-BookingService/internal/api/handlers/get_booking"
	getBookingQuoteHandler "github.com/m04kA/RPM-BookingService/internal/api/handlers/get_booking_quote"
	getPropertyBookingsHandler "github.com/m04kA/RPM-BookingService/internal/api/handlers/get_property_bookings"
	getTourHandler "github.com/m04kA/RPM-BookingService/internal/api/handlers/get_tour"
	getTourConfigHandler "github.com/m04kA/RPM-BookingService/internal/api/handlers/get_tour_config"
	getTourSlotsHandler "github.com/m04kA/RPM-BookingService/internal/api/handlers/get_tour_slots"
	getUserBookingsHandler "github.com/m04kA/RPM-BookingService/internal/api/handlers/get_user_bookings"
	getUserToursHandler "github.com/m04kA/RPM-BookingService/internal/api/handlers/get_user_tours"
	scheduleTourHandler "github.com/m04kA/RPM-BookingService/internal/api/handlers/schedule_tour"
	updateTourConfigHandler "github.com/m04kA/RPM-BookingService/internal/api/handlers/update_tour_config"
	"github.com/m04kA/RPM-BookingService/internal/api/middleware"
	"github.com/m04kA/RPM-BookingService/internal/config"
	bookingRepo "github.com/m04kA/RPM-BookingService/internal/infra/storage/booking"
	tourRepo "github.com/m04kA/RPM-BookingService/internal/infra/storage/tour"
	tourConfigRepo "github.com/m04kA/RPM-BookingService/internal/infra/storage/tourconfig"
	propertyServiceClient "github.com/m04kA/RPM-BookingService/internal/integrations/propertyservice"
	userServiceClient "github.com/m04kA/RPM-BookingService/internal/integrations/userservice"
	bookingsService "github.com/m04kA/RPM-BookingService/internal/service/bookings"
	tourConfigService "github.com/m04kA/RPM-BookingService/internal/service/tourconfig"
	toursService "github.com/m04kA/RPM-BookingService/internal/service/tours"
	createBookingUC "github.com/m04kA/RPM-BookingService/internal/usecase/create_booking"
	getBookingQuoteUC "github.com/m04kA/RPM-BookingService/internal/usecase/get_booking_quote"
	getTourSlotsUC "github.com/m04kA/RPM-BookingService/internal/usecase/get_tour_slots"
	scheduleTourUC "github.com/m04kA/RPM-BookingService/internal/usecase/schedule_tour"
	"github.com/m04kA/RPM-BookingService/pkg/dbmetrics"
	"github.com/m04kA/RPM-BookingService/pkg/logger"
	"github.com/m04kA/RPM-BookingService/pkg/metrics"
	"github.com/m04kA/RPM-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/RPM-BookingService/pkg/txmanager"
)

func main() {
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

	log.Info("Starting RPM-BookingService...")
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

	// Инициализируем интеграционных клиентов
	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	propertyClient := propertyServiceClient.NewClient(
		cfg.PropertyService.URL,
		time.Duration(cfg.PropertyService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (UserService=%s timeout=%ds, PropertyService=%s timeout=%ds)",
		cfg.UserService.URL, cfg.UserService.Timeout, cfg.PropertyService.URL, cfg.PropertyService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository    *bookingRepo.Repository
		tourRepository       *tourRepo.Repository
		tourConfigRepository *tourConfigRepo.Repository
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
		tourRepository = tourRepo.NewRepository(wrappedDB)
		tourConfigRepository = tourConfigRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		tourRepository = tourRepo.NewRepository(db)
		tourConfigRepository = tourConfigRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		propertyClient,
		log,
	)
	tourSvc := toursService.NewService(
		tourRepository,
		propertyClient,
		log,
	)
	tourConfigSvc := tourConfigService.NewService(
		tourConfigRepository,
		propertyClient,
		log,
	)

	// Инициализируем use cases
	getBookingQuoteUseCase := getBookingQuoteUC.NewUseCase(
		propertyClient,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		propertyClient,
		userClient,
		txMgr,
		log,
	)

	getTourSlotsUseCase := getTourSlotsUC.NewUseCase(
		tourRepository,
		tourConfigRepository,
		propertyClient,
		log,
	)

	scheduleTourUseCase := scheduleTourUC.NewUseCase(
		tourRepository,
		tourConfigRepository,
		propertyClient,
		userClient,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getBookingQuote := getBookingQuoteHandler.NewHandler(getBookingQuoteUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getPropertyBookings := getPropertyBookingsHandler.NewHandler(bookingSvc, log)
	getTourSlots := getTourSlotsHandler.NewHandler(getTourSlotsUseCase, log)
	scheduleTour := scheduleTourHandler.NewHandler(scheduleTourUseCase, log)
	getTour := getTourHandler.NewHandler(tourSvc, log)
	cancelTour := cancelTourHandler.NewHandler(tourSvc, log)
	getUserTours := getUserToursHandler.NewHandler(tourSvc, log)
	getTourConfig := getTourConfigHandler.NewHandler(tourConfigSvc, log)
	updateTourConfig := updateTourConfigHandler.NewHandler(tourConfigSvc, log)

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

	// Расчёт стоимости бронирования
	api.HandleFunc("/properties/{propertyId}/quote",
		getBookingQuote.Handle).Methods(http.MethodGet)

	// Доступные слоты для просмотра объекта
	api.HandleFunc("/properties/{propertyId}/tour-slots",
		getTourSlots.Handle).Methods(http.MethodGet)

	// Действующая конфигурация слотов объекта
	api.HandleFunc("/properties/{propertyId}/tour-config",
		getTourConfig.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Подтверждение бронирования (для менеджеров)
	protected.HandleFunc("/bookings/{bookingId}/confirm", confirmBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Туры ---
	// Запись на просмотр объекта
	protected.HandleFunc("/tours", scheduleTour.Handle).Methods(http.MethodPost)

	// Получение тура по ID
	protected.HandleFunc("/tours/{tourId}", getTour.Handle).Methods(http.MethodGet)

	// Отмена тура
	protected.HandleFunc("/tours/{tourId}/cancel", cancelTour.Handle).Methods(http.MethodPatch)

	// История туров пользователя
	protected.HandleFunc("/users/{userId}/tours", getUserTours.Handle).Methods(http.MethodGet)

	// --- Управление объектом (для менеджеров) ---
	// Список бронирований объекта
	protected.HandleFunc("/properties/{propertyId}/bookings", getPropertyBookings.Handle).Methods(http.MethodGet)

	// Обновление конфигурации слотов объекта
	protected.HandleFunc("/properties/{propertyId}/tour-config", updateTourConfig.Handle).Methods(http.MethodPut)

	// Сброс конфигурации слотов к дефолтам
	protected.HandleFunc("/properties/{propertyId}/tour-config", updateTourConfig.HandleDelete).Methods(http.MethodDelete)

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
