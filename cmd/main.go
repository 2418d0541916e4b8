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

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	createBookingHandler "github.com/m04kA/hotel-booking-service/internal/api/handlers/create_booking"
	createRoomHandler "github.com/m04kA/hotel-booking-service/internal/api/handlers/create_room"
	deleteRoomHandler "github.com/m04kA/hotel-booking-service/internal/api/handlers/delete_room"
	getBookingHandler "github.com/m04kA/hotel-booking-service/internal/api/handlers/get_booking"
	getFeaturedRoomsHandler "github.com/m04kA/hotel-booking-service/internal/api/handlers/get_featured_rooms"
	getProfileHandler "github.com/m04kA/hotel-booking-service/internal/api/handlers/get_profile"
	getRoomHandler "github.com/m04kA/hotel-booking-service/internal/api/handlers/get_room"
	getRoomAvailabilityHandler "github.com/m04kA/hotel-booking-service/internal/api/handlers/get_room_availability"
	getUserBookingsHandler "github.com/m04kA/hotel-booking-service/internal/api/handlers/get_user_bookings"
	listBookingsHandler "github.com/m04kA/hotel-booking-service/internal/api/handlers/list_bookings"
	listRoomsHandler "github.com/m04kA/hotel-booking-service/internal/api/handlers/list_rooms"
	resetSelectionHandler "github.com/m04kA/hotel-booking-service/internal/api/handlers/reset_selection"
	selectDatesHandler "github.com/m04kA/hotel-booking-service/internal/api/handlers/select_dates"
	updateBookingStatusHandler "github.com/m04kA/hotel-booking-service/internal/api/handlers/update_booking_status"
	updateRoomHandler "github.com/m04kA/hotel-booking-service/internal/api/handlers/update_room"
	"github.com/m04kA/hotel-booking-service/internal/api/middleware"
	"github.com/m04kA/hotel-booking-service/internal/config"
	"github.com/m04kA/hotel-booking-service/internal/infra/session"
	bookingRepo "github.com/m04kA/hotel-booking-service/internal/infra/storage/booking"
	"github.com/m04kA/hotel-booking-service/internal/infra/storage/migrations"
	profileRepo "github.com/m04kA/hotel-booking-service/internal/infra/storage/profile"
	roomRepo "github.com/m04kA/hotel-booking-service/internal/infra/storage/room"
	"github.com/m04kA/hotel-booking-service/internal/integrations/notifications"
	bookingsService "github.com/m04kA/hotel-booking-service/internal/service/bookings"
	profilesService "github.com/m04kA/hotel-booking-service/internal/service/profiles"
	roomsService "github.com/m04kA/hotel-booking-service/internal/service/rooms"
	createBookingUC "github.com/m04kA/hotel-booking-service/internal/usecase/create_booking"
	getRoomAvailabilityUC "github.com/m04kA/hotel-booking-service/internal/usecase/get_room_availability"
	selectDatesUC "github.com/m04kA/hotel-booking-service/internal/usecase/select_dates"
	"github.com/m04kA/hotel-booking-service/pkg/dbmetrics"
	"github.com/m04kA/hotel-booking-service/pkg/logger"
	"github.com/m04kA/hotel-booking-service/pkg/metrics"
	"github.com/m04kA/hotel-booking-service/pkg/txmanager"
)

const (
	sessionJanitorInterval   = time.Minute
	rateLimitCleanupInterval = 5 * time.Minute
)

// sessionStore общий контракт memory и redis хранилищ сессий выбора
type sessionStore interface {
	Create(ctx context.Context, roomID uuid.UUID) (*session.Session, error)
	Get(ctx context.Context, id uuid.UUID) (*session.Session, error)
	Save(ctx context.Context, sess *session.Session) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// eventPublisher общий контракт RabbitMQ и Nop издателей
type eventPublisher interface {
	PublishBookingCreated(ctx context.Context, event notifications.BookingCreatedEvent) error
	PublishBookingStatusChanged(ctx context.Context, event notifications.BookingStatusChangedEvent) error
	Close() error
}

// domainMetrics доменные счетчики (Prometheus или заглушка)
type domainMetrics interface {
	IncSelectionClick(outcome string)
	IncBookingCreated(roomType string)
	IncBookingConflict(stage string)
}

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

	log.Info("Starting hotel-booking-service...")
	log.Info("Configuration loaded from config.toml")

	// Контекст фоновых задач (janitor сессий, очистка rate limiter)
	bgCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		counters         domainMetrics = metrics.Nop{}
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		counters = metricsCollector
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
	if err := db.PingContext(bgCtx); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Применяем миграции
	if cfg.Database.AutoMigrate {
		if err := migrations.Up(bgCtx, db); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Database migrations applied")
	}

	// Обёртка считает метрики запросов, с nil метриками работает как обычный *sql.DB
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Хранилище сессий выбора дат
	var sessions sessionStore
	switch cfg.Session.Store {
	case "redis":
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(bgCtx).Err(); err != nil {
			log.Fatal("Failed to connect to redis at %s: %v", cfg.Redis.Addr, err)
		}
		sessions = session.NewRedisStore(redisClient, cfg.Redis.KeyPrefix, cfg.Session.TTLDuration())
		log.Info("Selection sessions stored in redis (addr=%s, ttl=%s)", cfg.Redis.Addr, cfg.Session.TTLDuration())
	default:
		memoryStore := session.NewMemoryStore(cfg.Session.TTLDuration())
		go memoryStore.RunJanitor(bgCtx, sessionJanitorInterval)
		sessions = memoryStore
		log.Info("Selection sessions stored in memory (ttl=%s)", cfg.Session.TTLDuration())
	}

	// Публикация событий бронирования
	var publisher eventPublisher = notifications.NopPublisher{}
	if cfg.RabbitMQ.Enabled {
		amqpPublisher, err := notifications.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange, log)
		if err != nil {
			log.Fatal("Failed to connect to rabbitmq: %v", err)
		}
		publisher = amqpPublisher
		log.Info("Booking events published to exchange %s", cfg.RabbitMQ.Exchange)
	}
	defer publisher.Close()

	// Инициализируем репозитории
	roomRepository := roomRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	profileRepository := profileRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	checkoutPolicy := cfg.Availability.CheckoutPolicy()
	log.Info("Checkout day policy: %s, calendar window: %d days", checkoutPolicy, cfg.Availability.CalendarDays)

	// Инициализируем use cases
	getRoomAvailabilityUseCase := getRoomAvailabilityUC.NewUseCase(
		roomRepository,
		bookingRepository,
		sessions,
		getRoomAvailabilityUC.Options{
			CheckoutPolicy: checkoutPolicy,
			CalendarDays:   cfg.Availability.CalendarDays,
		},
		log,
	)

	selectDatesUseCase := selectDatesUC.NewUseCase(
		roomRepository,
		bookingRepository,
		sessions,
		counters,
		checkoutPolicy,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		roomRepository,
		sessions,
		publisher,
		counters,
		txMgr,
		checkoutPolicy,
		log,
	)

	// Инициализируем сервисы
	roomSvc := roomsService.NewService(roomRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, profileRepository, publisher, txMgr, checkoutPolicy, log)
	profileSvc := profilesService.NewService(profileRepository, log)

	// Инициализируем handlers
	listRooms := listRoomsHandler.NewHandler(roomSvc, log)
	getFeaturedRooms := getFeaturedRoomsHandler.NewHandler(roomSvc, log)
	getRoom := getRoomHandler.NewHandler(roomSvc, log)
	createRoom := createRoomHandler.NewHandler(roomSvc, log)
	updateRoom := updateRoomHandler.NewHandler(roomSvc, log)
	deleteRoom := deleteRoomHandler.NewHandler(roomSvc, log)
	getRoomAvailability := getRoomAvailabilityHandler.NewHandler(getRoomAvailabilityUseCase, log)
	selectDates := selectDatesHandler.NewHandler(selectDatesUseCase, log)
	resetSelection := resetSelectionHandler.NewHandler(selectDatesUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getProfile := getProfileHandler.NewHandler(profileSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// --- Каталог комнат ---
	api.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/featured", getFeaturedRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}", getRoom.Handle).Methods(http.MethodGet)

	// --- Календарь доступности и выбор дат ---
	api.HandleFunc("/rooms/{roomId}/availability", getRoomAvailability.Handle).Methods(http.MethodGet)

	selection := api.PathPrefix("").Subrouter()
	if cfg.RateLimit.Enabled {
		limiter, err := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst,
			cfg.RateLimit.TrustedProxies, log)
		if err != nil {
			log.Fatal("Failed to configure rate limiter: %v", err)
		}
		go limiter.RunCleanup(bgCtx, rateLimitCleanupInterval)
		selection.Use(limiter.Middleware)
		log.Info("Rate limit on selection endpoints: %.1f rps, burst %d",
			cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}
	selection.HandleFunc("/rooms/{roomId}/selection", selectDates.Handle).Methods(http.MethodPost)
	selection.HandleFunc("/selections/{sessionId}", resetSelection.Handle).Methods(http.MethodDelete)

	// ============================================================
	// PROTECTED ROUTES (Bearer JWT от провайдера аутентификации)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Auth.JWTSecret, cfg.Auth.Issuer, log))

	// --- Бронирования гостя ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// --- Личный кабинет ---
	protected.HandleFunc("/me/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/me/profile", getProfile.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (роль admin в user_roles)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth(cfg.Auth.JWTSecret, cfg.Auth.Issuer, log))
	admin.Use(middleware.RequireAdmin(profileSvc, log))

	admin.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/rooms", createRoom.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/rooms/{roomId}", updateRoom.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/rooms/{roomId}", deleteRoom.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Останавливаем фоновые задачи и сбор метрик connection pool
	stopBackground()
	close(stopMetricsCh)

	log.Info("Server stopped gracefully")
}
