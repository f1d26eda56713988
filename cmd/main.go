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
	cache "github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	assignTableHandler "github.com/m04kA/CTRS-ReservationService/internal/api/handlers/assign_table"
	auditConflictsHandler "github.com/m04kA/CTRS-ReservationService/internal/api/handlers/audit_conflicts"
	batchAssignHandler "github.com/m04kA/CTRS-ReservationService/internal/api/handlers/batch_assign"
	cancelReservationHandler "github.com/m04kA/CTRS-ReservationService/internal/api/handlers/cancel_reservation"
	checkAvailabilityHandler "github.com/m04kA/CTRS-ReservationService/internal/api/handlers/check_availability"
	createReservationHandler "github.com/m04kA/CTRS-ReservationService/internal/api/handlers/create_reservation"
	createTableHandler "github.com/m04kA/CTRS-ReservationService/internal/api/handlers/create_table"
	deleteTableHandler "github.com/m04kA/CTRS-ReservationService/internal/api/handlers/delete_table"
	getContactReservationsHandler "github.com/m04kA/CTRS-ReservationService/internal/api/handlers/get_contact_reservations"
	getReservationHandler "github.com/m04kA/CTRS-ReservationService/internal/api/handlers/get_reservation"
	listReservationsHandler "github.com/m04kA/CTRS-ReservationService/internal/api/handlers/list_reservations"
	listTablesHandler "github.com/m04kA/CTRS-ReservationService/internal/api/handlers/list_tables"
	occupancyHandler "github.com/m04kA/CTRS-ReservationService/internal/api/handlers/occupancy"
	"github.com/m04kA/CTRS-ReservationService/internal/api/middleware"
	"github.com/m04kA/CTRS-ReservationService/internal/config"
	"github.com/m04kA/CTRS-ReservationService/internal/domain"
	tableRepo "github.com/m04kA/CTRS-ReservationService/internal/infra/storage/cafetable"
	reservationRepo "github.com/m04kA/CTRS-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/CTRS-ReservationService/internal/notify"
	reservationsService "github.com/m04kA/CTRS-ReservationService/internal/service/reservations"
	tablesService "github.com/m04kA/CTRS-ReservationService/internal/service/tables"
	assignTableUC "github.com/m04kA/CTRS-ReservationService/internal/usecase/assign_table"
	auditConflictsUC "github.com/m04kA/CTRS-ReservationService/internal/usecase/audit_conflicts"
	batchAssignUC "github.com/m04kA/CTRS-ReservationService/internal/usecase/batch_assign"
	cancelReservationUC "github.com/m04kA/CTRS-ReservationService/internal/usecase/cancel_reservation"
	checkAvailabilityUC "github.com/m04kA/CTRS-ReservationService/internal/usecase/check_availability"
	createReservationUC "github.com/m04kA/CTRS-ReservationService/internal/usecase/create_reservation"
	occupancyUC "github.com/m04kA/CTRS-ReservationService/internal/usecase/occupancy"
	"github.com/m04kA/CTRS-ReservationService/migrations"
	"github.com/m04kA/CTRS-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/CTRS-ReservationService/pkg/logger"
	"github.com/m04kA/CTRS-ReservationService/pkg/metrics"
	"github.com/m04kA/CTRS-ReservationService/pkg/simpletxmanager"
	"github.com/m04kA/CTRS-ReservationService/pkg/txmanager"
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

	log.Info("Starting CTRS-ReservationService...")
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

	// Применяем миграции схемы
	if cfg.Database.Migrate {
		if err := migrations.Up(db); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Database migrations applied")
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		tableRepository       *tableRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	// TODO: вынести общий интерфейс менеджера транзакций в отдельный пакет
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		tableRepository = tableRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		reservationRepository = reservationRepo.NewRepository(db)
		tableRepository = tableRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Интерфейс доставки уведомлений (пул воркеров или заглушка)
	type Notifier interface {
		ReservationPending(reservation *domain.Reservation)
		ReservationConfirmed(reservation *domain.Reservation, tableName string)
		ReservationCancelled(reservation *domain.Reservation)
	}

	// Инициализируем доставку уведомлений
	notifyCtx, notifyCancel := context.WithCancel(context.Background())

	var notifier Notifier
	var notifyPool *notify.Pool

	if cfg.Notifications.Enabled {
		var sender notify.Sender
		switch cfg.Notifications.Mode {
		case config.NotifyModeAMQP:
			amqpSender, err := notify.NewAMQPSender(cfg.Notifications.AMQP.URL, cfg.Notifications.AMQP.Queue)
			if err != nil {
				log.Fatal("Failed to connect to AMQP broker: %v", err)
			}
			defer amqpSender.Close()
			sender = amqpSender
			log.Info("Notifications enabled (mode=amqp, queue=%s)", cfg.Notifications.AMQP.Queue)
		default:
			sender = notify.NewLogSender(log)
			log.Info("Notifications enabled (mode=log)")
		}

		notifyPool = notify.NewPool(cfg.Notifications.Workers, cfg.Notifications.QueueSize, sender, log)
		notifyPool.Start(notifyCtx)
		notifier = notifyPool
	} else {
		notifier = notify.Noop{}
		log.Info("Notifications disabled")
	}

	// Инициализируем сервисы
	tableSvc := tablesService.NewService(tableRepository, log)
	reservationSvc := reservationsService.NewService(reservationRepository, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		tableRepository,
		notifier,
		txMgr,
		cfg.Booking.DurationMinutes,
		createReservationUC.NoAvailabilityPolicy(cfg.Booking.OnNoAvailability),
		log,
	)

	cancelReservationUseCase := cancelReservationUC.NewUseCase(
		reservationRepository,
		notifier,
		txMgr,
		log,
	)

	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		reservationRepository,
		tableRepository,
		cfg.Booking.DurationMinutes,
		log,
	)

	assignTableUseCase := assignTableUC.NewUseCase(
		reservationRepository,
		tableRepository,
		notifier,
		txMgr,
		cfg.Booking.DurationMinutes,
		log,
	)

	batchAssignUseCase := batchAssignUC.NewUseCase(
		reservationRepository,
		tableRepository,
		notifier,
		txMgr,
		cfg.Booking.DurationMinutes,
		log,
	)

	auditConflictsUseCase := auditConflictsUC.NewUseCase(
		reservationRepository,
		cfg.Booking.DurationMinutes,
		log,
	)

	occupancyUseCase := occupancyUC.NewUseCase(
		reservationRepository,
		tableRepository,
		cfg.Booking.DurationMinutes,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	getContactReservations := getContactReservationsHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(cancelReservationUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	listTables := listTablesHandler.NewHandler(tableSvc, log)
	createTable := createTableHandler.NewHandler(tableSvc, log)
	deleteTable := deleteTableHandler.NewHandler(tableSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)
	assignTable := assignTableHandler.NewHandler(assignTableUseCase, log)
	batchAssign := batchAssignHandler.NewHandler(batchAssignUseCase, log)
	auditConflicts := auditConflictsHandler.NewHandler(auditConflictsUseCase, log)
	getOccupancy := occupancyHandler.NewHandler(occupancyUseCase, log)

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

	public := api.PathPrefix("").Subrouter()

	// Ограничение частоты гостевых запросов (per-IP)
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewIPRateLimiter(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst)
		public.Use(middleware.RateLimit(limiter))
		log.Info("Rate limiting enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	// Создание брони
	public.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// История броней гостя (?contact=)
	public.HandleFunc("/reservations", getContactReservations.Handle).Methods(http.MethodGet)

	// Получение брони по ID
	public.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Отмена брони гостем (контакт обязателен)
	public.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// Проверка доступности столов на дату и время
	public.HandleFunc("/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// Список столов зала (кэшируется)
	if cfg.Cache.Enabled {
		ttl := time.Duration(cfg.Cache.TablesTTL) * time.Second
		tablesCache := middleware.Cache(cache.New(ttl, 2*ttl), ttl)
		public.Handle("/tables", tablesCache(http.HandlerFunc(listTables.Handle))).Methods(http.MethodGet)
		log.Info("Tables response cache enabled (ttl=%ds)", cfg.Cache.TablesTTL)
	} else {
		public.HandleFunc("/tables", listTables.Handle).Methods(http.MethodGet)
	}

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Auth.AdminToken))

	// --- Столы ---
	// Создание стола
	admin.HandleFunc("/tables", createTable.Handle).Methods(http.MethodPost)

	// Удаление стола
	admin.HandleFunc("/tables/{tableId}", deleteTable.Handle).Methods(http.MethodDelete)

	// --- Брони ---
	// Список броней с фильтрами
	admin.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)

	// Ручное назначение стола
	admin.HandleFunc("/reservations/{reservationId}/assign", assignTable.Handle).Methods(http.MethodPatch)

	// Пакетное назначение столов ожидающим броням
	admin.HandleFunc("/reservations/batch-assign", batchAssign.Handle).Methods(http.MethodPost)

	// Отмена брони администратором (без контакта)
	admin.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// --- Диагностика ---
	// Аудит конфликтов расписания
	admin.HandleFunc("/conflicts", auditConflicts.Handle).Methods(http.MethodGet)

	// Занятость зала на дату
	admin.HandleFunc("/occupancy", getOccupancy.Handle).Methods(http.MethodGet)

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

	// Останавливаем воркеров уведомлений
	notifyCancel()
	if notifyPool != nil {
		notifyPool.Wait()
		log.Info("Notification workers stopped")
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
