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

	cancelReservationHandler "github.com/Celia92000/laia-skin-nextjs-sub023/internal/api/handlers/cancel_reservation"
	checkSlotHandler "github.com/Celia92000/laia-skin-nextjs-sub023/internal/api/handlers/check_slot"
	claimReminderHandler "github.com/Celia92000/laia-skin-nextjs-sub023/internal/api/handlers/claim_reminder"
	createBlockedSlotHandler "github.com/Celia92000/laia-skin-nextjs-sub023/internal/api/handlers/create_blocked_slot"
	createReservationHandler "github.com/Celia92000/laia-skin-nextjs-sub023/internal/api/handlers/create_reservation"
	deleteBlockedSlotHandler "github.com/Celia92000/laia-skin-nextjs-sub023/internal/api/handlers/delete_blocked_slot"
	getAvailableSlotsHandler "github.com/Celia92000/laia-skin-nextjs-sub023/internal/api/handlers/get_available_slots"
	getBlockedDatesHandler "github.com/Celia92000/laia-skin-nextjs-sub023/internal/api/handlers/get_blocked_dates"
	getReservationHandler "github.com/Celia92000/laia-skin-nextjs-sub023/internal/api/handlers/get_reservation"
	getWorkingHoursHandler "github.com/Celia92000/laia-skin-nextjs-sub023/internal/api/handlers/get_working_hours"
	healthHandler "github.com/Celia92000/laia-skin-nextjs-sub023/internal/api/handlers/health"
	listReservationsHandler "github.com/Celia92000/laia-skin-nextjs-sub023/internal/api/handlers/list_reservations"
	updateWorkingHoursHandler "github.com/Celia92000/laia-skin-nextjs-sub023/internal/api/handlers/update_working_hours"
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/api/middleware"
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/config"
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/domain"
	blockedSlotRepo "github.com/Celia92000/laia-skin-nextjs-sub023/internal/infra/storage/blockedslot"
	catalogRepo "github.com/Celia92000/laia-skin-nextjs-sub023/internal/infra/storage/catalog"
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/infra/storage/migrations"
	reminderRepo "github.com/Celia92000/laia-skin-nextjs-sub023/internal/infra/storage/reminder"
	reservationRepo "github.com/Celia92000/laia-skin-nextjs-sub023/internal/infra/storage/reservation"
	workingHoursRepo "github.com/Celia92000/laia-skin-nextjs-sub023/internal/infra/storage/workinghours"
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/service/availability"
	calendarService "github.com/Celia92000/laia-skin-nextjs-sub023/internal/service/calendar"
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/service/reminders"
	reservationsService "github.com/Celia92000/laia-skin-nextjs-sub023/internal/service/reservations"
	createReservationUC "github.com/Celia92000/laia-skin-nextjs-sub023/internal/usecase/create_reservation"
	"github.com/Celia92000/laia-skin-nextjs-sub023/pkg/dbmetrics"
	"github.com/Celia92000/laia-skin-nextjs-sub023/pkg/logger"
	"github.com/Celia92000/laia-skin-nextjs-sub023/pkg/metrics"
	"github.com/Celia92000/laia-skin-nextjs-sub023/pkg/txmanager"
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

	log.Info("Starting availability service...")

	// Метрики (если включены). С nil коллектором обёртка БД и движок просто не пишут метрики
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

	// Миграции схемы
	if cfg.Migrations.Enabled {
		migrator, err := migrations.NewMigrator(db, log)
		if err != nil {
			log.Fatal("Failed to init migrator: %v", err)
		}
		if err := migrator.Up(context.Background()); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Репозитории создаются на каждый запрос и привязаны к организации:
	// организация не передается в методы, поэтому сервисы не могут прочитать чужие данные
	availabilitySvc := availability.NewService(
		func(tenantID domain.TenantID) availability.Store {
			return availability.Store{
				WorkingHours: workingHoursRepo.NewRepository(wrappedDB, tenantID),
				BlockedSlots: blockedSlotRepo.NewRepository(wrappedDB, tenantID),
				Reservations: reservationRepo.NewRepository(wrappedDB, tenantID),
			}
		},
		availability.Options{
			GranularityMinutes:     cfg.Availability.SlotGranularityMinutes,
			DefaultDurationMinutes: cfg.Availability.DefaultDurationMinutes,
		},
		metricsCollector,
		log,
	)

	reservationSvc := reservationsService.NewService(
		func(tenantID domain.TenantID) reservationsService.ReservationRepository {
			return reservationRepo.NewRepository(wrappedDB, tenantID)
		},
		log,
	)

	calendarSvc := calendarService.NewService(
		func(tenantID domain.TenantID) calendarService.Repositories {
			return calendarService.Repositories{
				WorkingHours: workingHoursRepo.NewRepository(wrappedDB, tenantID),
				BlockedSlots: blockedSlotRepo.NewRepository(wrappedDB, tenantID),
			}
		},
		cfg.Availability.SlotGranularityMinutes,
		log,
	)

	reminderLedger := reminders.NewLedger(
		func(tenantID domain.TenantID) reminders.DeliveryRepository {
			return reminderRepo.NewRepository(wrappedDB, tenantID)
		},
		log,
	)

	createReservationUseCase := createReservationUC.NewUseCase(
		func(tenantID domain.TenantID) createReservationUC.Dependencies {
			return createReservationUC.Dependencies{
				Reservations: reservationRepo.NewRepository(wrappedDB, tenantID),
				Catalog:      catalogRepo.NewRepository(wrappedDB, tenantID),
				Availability: availabilitySvc.ForTenant(tenantID),
			}
		},
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(availabilitySvc, log)
	checkSlot := checkSlotHandler.NewHandler(availabilitySvc, log)
	getBlockedDates := getBlockedDatesHandler.NewHandler(availabilitySvc, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	claimReminder := claimReminderHandler.NewHandler(reminderLedger, log)
	getWorkingHours := getWorkingHoursHandler.NewHandler(calendarSvc, log)
	updateWorkingHours := updateWorkingHoursHandler.NewHandler(calendarSvc, log)
	createBlockedSlot := createBlockedSlotHandler.NewHandler(calendarSvc, log)
	deleteBlockedSlot := deleteBlockedSlotHandler.NewHandler(calendarSvc, log)
	health := healthHandler.NewHandler(wrappedDB, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Проверки для оркестратора (без организации)
	r.HandleFunc("/healthz", health.Live).Methods(http.MethodGet)
	r.HandleFunc("/readyz", health.Ready).Methods(http.MethodGet)

	// API: все маршруты требуют X-Organization-ID
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Tenant)

	// --- Доступность ---
	api.HandleFunc("/availability/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/check", checkSlot.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/blocked-dates", getBlockedDates.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// --- Напоминания (внешний воркер рассылки) ---
	api.HandleFunc("/reminders/claim", claimReminder.Handle).Methods(http.MethodPost)

	// --- Календарь (администратор института) ---
	api.HandleFunc("/calendar/working-hours", getWorkingHours.Handle).Methods(http.MethodGet)
	api.HandleFunc("/calendar/working-hours/{weekday}", updateWorkingHours.Handle).Methods(http.MethodPut)
	api.HandleFunc("/calendar/blocked-slots", createBlockedSlot.Handle).Methods(http.MethodPost)
	api.HandleFunc("/calendar/blocked-slots/{blockedSlotId}", deleteBlockedSlot.Handle).Methods(http.MethodDelete)

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
