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

	cancelBookingHandler "github.com/playgrid/PGC-StationService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/playgrid/PGC-StationService/internal/api/handlers/create_booking"
	getActiveTimersHandler "github.com/playgrid/PGC-StationService/internal/api/handlers/get_active_timers"
	getAvailabilityHandler "github.com/playgrid/PGC-StationService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/playgrid/PGC-StationService/internal/api/handlers/get_booking"
	getCafeBookingsHandler "github.com/playgrid/PGC-StationService/internal/api/handlers/get_cafe_bookings"
	getCafeConfigHandler "github.com/playgrid/PGC-StationService/internal/api/handlers/get_cafe_config"
	getLiveStatusHandler "github.com/playgrid/PGC-StationService/internal/api/handlers/get_live_status"
	getUserBookingsHandler "github.com/playgrid/PGC-StationService/internal/api/handlers/get_user_bookings"
	startTimerHandler "github.com/playgrid/PGC-StationService/internal/api/handlers/start_timer"
	stopTimerHandler "github.com/playgrid/PGC-StationService/internal/api/handlers/stop_timer"
	updateCafeConfigHandler "github.com/playgrid/PGC-StationService/internal/api/handlers/update_cafe_config"
	"github.com/playgrid/PGC-StationService/internal/api/middleware"
	"github.com/playgrid/PGC-StationService/internal/config"
	"github.com/playgrid/PGC-StationService/internal/domain"
	"github.com/playgrid/PGC-StationService/internal/events"
	"github.com/playgrid/PGC-StationService/internal/infra/cache/statuscache"
	cafeConfigRepo "github.com/playgrid/PGC-StationService/internal/infra/storage/cafeconfig"
	reservationRepo "github.com/playgrid/PGC-StationService/internal/infra/storage/reservation"
	timerRepo "github.com/playgrid/PGC-StationService/internal/infra/storage/timer"
	memberServiceClient "github.com/playgrid/PGC-StationService/internal/integrations/memberservice"
	cafeConfigService "github.com/playgrid/PGC-StationService/internal/service/cafeconfig"
	reservationsService "github.com/playgrid/PGC-StationService/internal/service/reservations"
	timersService "github.com/playgrid/PGC-StationService/internal/service/timers"
	"github.com/playgrid/PGC-StationService/internal/tracker"
	createBookingUC "github.com/playgrid/PGC-StationService/internal/usecase/create_booking"
	getAvailabilityUC "github.com/playgrid/PGC-StationService/internal/usecase/get_availability"
	getLiveStatusUC "github.com/playgrid/PGC-StationService/internal/usecase/get_live_status"
	"github.com/playgrid/PGC-StationService/pkg/dbmetrics"
	"github.com/playgrid/PGC-StationService/pkg/logger"
	"github.com/playgrid/PGC-StationService/pkg/metrics"
	"github.com/playgrid/PGC-StationService/pkg/simpletxmanager"
	"github.com/playgrid/PGC-StationService/pkg/txmanager"
)

// allCafesTimers адаптирует репозиторий таймеров под трекер:
// трекер обходит активные таймеры всех кафе разом
type allCafesTimers struct {
	repo *timerRepo.Repository
}

func (r *allCafesTimers) ListActive(ctx context.Context) ([]*domain.TimerSubscription, error) {
	return r.repo.ListActive(ctx, 0)
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

	log.Info("Starting PGC-StationService...")
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

	// Подключаемся к Redis (если включён): кеш живого статуса
	// деградирует до прямых чтений из базы при недоступном Redis
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis unavailable, live status cache disabled: %v", err)
			redisClient = nil
		} else {
			log.Info("Successfully connected to Redis (addr=%s)", cfg.Redis.Addr)
		}
		cancelPing()
	}
	statusCache := statuscache.New(redisClient, time.Duration(cfg.Redis.TTLSeconds)*time.Second)

	// Подключаемся к RabbitMQ (если включён): события завершения сессий
	// необязательны, недоступный брокер не мешает запуску
	var publisher *events.Publisher
	if cfg.RabbitMQ.Enabled {
		publisher, err = events.New(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue, log)
		if err != nil {
			log.Warn("RabbitMQ unavailable, session events disabled: %v", err)
			publisher = nil
		} else {
			log.Info("Successfully connected to RabbitMQ (queue=%s)", cfg.RabbitMQ.Queue)
			defer publisher.Close()
		}
	}

	// Инициализируем интеграционного клиента
	memberClient := memberServiceClient.NewClient(
		cfg.MemberService.URL,
		time.Duration(cfg.MemberService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (MemberService=%s timeout=%ds)",
		cfg.MemberService.URL, cfg.MemberService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		configRepository      *cafeConfigRepo.Repository
		timerRepository       *timerRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		configRepository = cafeConfigRepo.NewRepository(wrappedDB)
		timerRepository = timerRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		configRepository = cafeConfigRepo.NewRepository(db)
		timerRepository = timerRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(
		reservationRepository,
		statusCache,
		log,
	)
	configSvc := cafeConfigService.NewService(
		configRepository,
		statusCache,
		txMgr,
		log,
	)
	timerSvc := timersService.NewService(
		timerRepository,
		configRepository,
		memberClient,
		statusCache,
		&timersService.RealTimeProvider{},
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		reservationRepository,
		configRepository,
		statusCache,
		txMgr,
		cfg.Booking.ScanStepMinutes,
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		reservationRepository,
		configRepository,
		cfg.Booking.ScanStepMinutes,
		log,
	)
	getLiveStatusUseCase := getLiveStatusUC.NewUseCase(
		reservationRepository,
		timerRepository,
		configRepository,
		statusCache,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(reservationSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(reservationSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(reservationSvc, log)
	getCafeBookings := getCafeBookingsHandler.NewHandler(reservationSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getLiveStatus := getLiveStatusHandler.NewHandler(getLiveStatusUseCase, log)
	getCafeConfig := getCafeConfigHandler.NewHandler(configSvc, log)
	updateCafeConfig := updateCafeConfigHandler.NewHandler(configSvc, log)
	startTimer := startTimerHandler.NewHandler(timerSvc, log)
	stopTimer := stopTimerHandler.NewHandler(timerSvc, log)
	getActiveTimers := getActiveTimersHandler.NewHandler(timerSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
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

	// Проверка доступности станций на интервал
	api.HandleFunc("/cafes/{cafeId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Живой статус станций кафе
	api.HandleFunc("/cafes/{cafeId}/live-status", getLiveStatus.Handle).Methods(http.MethodGet)

	// Конфигурация кафе
	api.HandleFunc("/cafes/{cafeId}/config", getCafeConfig.Handle).Methods(http.MethodGet)

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

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Управление кафе (для операторов) ---
	// Список бронирований кафе на дату
	protected.HandleFunc("/cafes/{cafeId}/bookings", getCafeBookings.Handle).Methods(http.MethodGet)

	// Обновление конфигурации кафе
	protected.HandleFunc("/cafes/{cafeId}/config", updateCafeConfig.Handle).Methods(http.MethodPut)

	// --- Членские таймеры ---
	// Запуск таймера
	protected.HandleFunc("/cafes/{cafeId}/timers", startTimer.Handle).Methods(http.MethodPost)

	// Остановка таймера
	protected.HandleFunc("/timers/{timerId}/stop", stopTimer.Handle).Methods(http.MethodPatch)

	// Активные таймеры кафе
	protected.HandleFunc("/cafes/{cafeId}/timers", getActiveTimers.Handle).Methods(http.MethodGet)

	// Запускаем трекер сессий
	var trackerMetrics tracker.MetricsCollector
	if metricsCollector != nil {
		trackerMetrics = metricsCollector
	}
	sessionTracker := tracker.NewRunner(
		reservationRepository,
		&allCafesTimers{repo: timerRepository},
		publisher,
		trackerMetrics,
		log,
		time.Duration(cfg.Tracker.IntervalSeconds)*time.Second,
	)
	trackerCtx, stopTracker := context.WithCancel(context.Background())
	go sessionTracker.Run(trackerCtx)

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

	// Останавливаем трекер сессий
	stopTracker()

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
