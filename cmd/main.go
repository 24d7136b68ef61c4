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

	cancelBookingHandler "github.com/avdnk/DocBooking/internal/api/handlers/cancel_booking"
	createBlockHandler "github.com/avdnk/DocBooking/internal/api/handlers/create_block"
	createBookingHandler "github.com/avdnk/DocBooking/internal/api/handlers/create_booking"
	deleteBlockHandler "github.com/avdnk/DocBooking/internal/api/handlers/delete_block"
	exportBookingsHandler "github.com/avdnk/DocBooking/internal/api/handlers/export_bookings"
	getAvailableSlotsHandler "github.com/avdnk/DocBooking/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/avdnk/DocBooking/internal/api/handlers/get_booking"
	listBlocksHandler "github.com/avdnk/DocBooking/internal/api/handlers/list_blocks"
	listBookingsHandler "github.com/avdnk/DocBooking/internal/api/handlers/list_bookings"
	listServicesHandler "github.com/avdnk/DocBooking/internal/api/handlers/list_services"
	loginHandler "github.com/avdnk/DocBooking/internal/api/handlers/login"
	logoutHandler "github.com/avdnk/DocBooking/internal/api/handlers/logout"
	rescheduleBookingHandler "github.com/avdnk/DocBooking/internal/api/handlers/reschedule_booking"
	"github.com/avdnk/DocBooking/internal/api/middleware"
	"github.com/avdnk/DocBooking/internal/config"
	blockRepo "github.com/avdnk/DocBooking/internal/infra/storage/blockedrange"
	bookingRepo "github.com/avdnk/DocBooking/internal/infra/storage/booking"
	sessionRepo "github.com/avdnk/DocBooking/internal/infra/storage/doctorsession"
	serviceRepo "github.com/avdnk/DocBooking/internal/infra/storage/service"
	"github.com/avdnk/DocBooking/internal/integrations/googlecalendar"
	"github.com/avdnk/DocBooking/internal/integrations/mailer"
	"github.com/avdnk/DocBooking/internal/schedule"
	authService "github.com/avdnk/DocBooking/internal/service/auth"
	blocksService "github.com/avdnk/DocBooking/internal/service/blocks"
	bookingsService "github.com/avdnk/DocBooking/internal/service/bookings"
	notifierService "github.com/avdnk/DocBooking/internal/service/notifier"
	reportsService "github.com/avdnk/DocBooking/internal/service/reports"
	createBookingUC "github.com/avdnk/DocBooking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/avdnk/DocBooking/internal/usecase/get_available_slots"
	rescheduleBookingUC "github.com/avdnk/DocBooking/internal/usecase/reschedule_booking"
	"github.com/avdnk/DocBooking/pkg/logger"
	"github.com/avdnk/DocBooking/pkg/metrics"
	"github.com/avdnk/DocBooking/pkg/txmanager"
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

	log.Info("Starting DocBooking...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Недельное расписание приёма
	weeklySchedule, err := schedule.New(cfg.Schedule)
	if err != nil {
		log.Fatal("Failed to build weekly schedule: %v", err)
	}
	log.Info("Weekly schedule loaded (timezone=%s)", weeklySchedule.Location())

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(db)
	serviceRepository := serviceRepo.NewRepository(db)
	blockRepository := blockRepo.NewRepository(db)
	sessionRepository := sessionRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем интеграции
	mailClient := mailer.NewClient(cfg.SMTP)
	if cfg.SMTP.Enabled {
		log.Info("SMTP mailer enabled (host=%s, doctor=%s)", cfg.SMTP.Host, cfg.SMTP.DoctorEmail)
	} else {
		log.Info("SMTP mailer disabled, emails will be skipped")
	}

	var calendarClient *googlecalendar.Client
	if cfg.Calendar.Enabled {
		calendarClient, err = googlecalendar.NewClient(context.Background(), cfg.Calendar)
		if err != nil {
			log.Fatal("Failed to initialize calendar client: %v", err)
		}
		log.Info("Google Calendar integration enabled (calendar=%s)", cfg.Calendar.CalendarID)
	} else {
		calendarClient = googlecalendar.NewDisabled()
		log.Info("Google Calendar integration disabled")
	}

	// Инициализируем сервисы
	notifier := notifierService.NewService(
		mailClient,
		calendarClient,
		bookingRepository,
		blockRepository,
		weeklySchedule.Location(),
		metricsCollector,
		log,
	)

	bookingSvc := bookingsService.NewService(bookingRepository, notifier, metricsCollector, log)
	blocksSvc := blocksService.NewService(blockRepository, bookingRepository, notifier, log)
	authSvc := authService.NewService(
		sessionRepository,
		cfg.Admin.PasswordHash,
		time.Duration(cfg.Admin.SessionTTLMinutes)*time.Minute,
		log,
	)
	reportsSvc := reportsService.NewService(log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		blockRepository,
		serviceRepository,
		weeklySchedule,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		blockRepository,
		serviceRepository,
		weeklySchedule,
		txMgr,
		notifier,
		cfg.Booking.CodePrefix,
		metricsCollector,
		log,
	)
	rescheduleBookingUseCase := rescheduleBookingUC.NewUseCase(
		bookingSvc,
		bookingRepository,
		blockRepository,
		weeklySchedule,
		txMgr,
		notifier,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	listServices := listServicesHandler.NewHandler(serviceRepository, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(rescheduleBookingUseCase, log)
	login := loginHandler.NewHandler(authSvc, log)
	logout := logoutHandler.NewHandler(authSvc, log)
	createBlock := createBlockHandler.NewHandler(blocksSvc, log)
	listBlocks := listBlocksHandler.NewHandler(blocksSvc, log)
	deleteBlock := deleteBlockHandler.NewHandler(blocksSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	exportBookings := exportBookingsHandler.NewHandler(bookingSvc, reportsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

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

	// Справочник услуг
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)

	// Доступные слоты на дату
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание записи
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Просмотр записи по коду (доступ по email)
	api.HandleFunc("/bookings/{code}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена записи
	api.HandleFunc("/bookings/{code}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Перенос записи на другой слот
	api.HandleFunc("/bookings/{code}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPatch)

	// Вход врача
	api.HandleFunc("/admin/login", login.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют Bearer токен сессии врача)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth(authSvc, log))

	admin.HandleFunc("/logout", logout.Handle).Methods(http.MethodPost)

	// --- Блокировки ---
	admin.HandleFunc("/blocked-ranges", createBlock.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/blocked-ranges", listBlocks.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/blocked-ranges/{id}", deleteBlock.Handle).Methods(http.MethodDelete)

	// --- Записи ---
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/report", exportBookings.Handle).Methods(http.MethodGet)

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

	// Дожидаемся фоновых отправок писем и событий календаря
	notifier.Wait()

	log.Info("Server stopped")
}
