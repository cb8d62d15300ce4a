package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createAvailabilityHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/create_availability"
	deleteAvailabilityHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/delete_availability"
	getCalendarViewHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_calendar_view"
	getVendorBookingsHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_vendor_bookings"
	listAvailabilityHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/list_availability"
	updateAvailabilityHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/update_availability"
	"github.com/m04kA/SMC-CalendarService/internal/api/middleware"
	resolverPkg "github.com/m04kA/SMC-CalendarService/internal/availability"
	"github.com/m04kA/SMC-CalendarService/internal/calendar"
	"github.com/m04kA/SMC-CalendarService/internal/config"
	scheduleServiceClient "github.com/m04kA/SMC-CalendarService/internal/integrations/scheduleservice"
	availabilityService "github.com/m04kA/SMC-CalendarService/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-CalendarService/internal/service/bookings"
	getCalendarViewUC "github.com/m04kA/SMC-CalendarService/internal/usecase/get_calendar_view"
	"github.com/m04kA/SMC-CalendarService/pkg/logger"
	"github.com/m04kA/SMC-CalendarService/pkg/metrics"
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

	log.Info("Starting SMC-CalendarService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем календарный якорь: референсная таймзона и начало недели
	// фиксированы конфигурацией, локальные часы пользователей не участвуют
	weekStart, err := calendar.ParseWeekStart(cfg.Calendar.WeekStart)
	if err != nil {
		log.Fatal("Invalid calendar.week_start: %v", err)
	}

	anchor, err := calendar.NewAnchor(cfg.Calendar.ReferenceTimezone, weekStart)
	if err != nil {
		log.Fatal("Failed to initialize calendar anchor: %v", err)
	}
	log.Info("Calendar anchor initialized (timezone=%s, week_start=%s)",
		cfg.Calendar.ReferenceTimezone, cfg.Calendar.WeekStart)

	gridBuilder := calendar.NewGridBuilder(anchor)
	resolver := resolverPkg.NewResolver(anchor)

	// Инициализируем интеграционного клиента ScheduleService
	scheduleClient := scheduleServiceClient.NewClient(
		cfg.ScheduleService.URL,
		time.Duration(cfg.ScheduleService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (ScheduleService=%s timeout=%ds)",
		cfg.ScheduleService.URL, cfg.ScheduleService.Timeout)

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(scheduleClient, resolver, log)
	bookingsSvc := bookingsService.NewService(scheduleClient, log)

	// Инициализируем use cases
	getCalendarViewUseCase := getCalendarViewUC.NewUseCase(
		scheduleClient,
		anchor,
		gridBuilder,
		resolver,
		log,
	)

	// Инициализируем handlers
	getCalendarView := getCalendarViewHandler.NewHandler(getCalendarViewUseCase, log)
	listAvailability := listAvailabilityHandler.NewHandler(availabilitySvc, log)
	createAvailability := createAvailabilityHandler.NewHandler(availabilitySvc, log)
	updateAvailability := updateAvailabilityHandler.NewHandler(availabilitySvc, log)
	deleteAvailability := deleteAvailabilityHandler.NewHandler(availabilitySvc, log)
	getVendorBookings := getVendorBookingsHandler.NewHandler(bookingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Календарное представление вендора (месяц/неделя/день)
	api.HandleFunc("/vendors/{vendorId}/calendar",
		getCalendarView.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Окна доступности ---
	protected.HandleFunc("/vendors/{vendorId}/availability",
		listAvailability.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/vendors/{vendorId}/availability",
		createAvailability.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/vendors/{vendorId}/availability/{windowId}",
		updateAvailability.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/vendors/{vendorId}/availability/{windowId}",
		deleteAvailability.Handle).Methods(http.MethodDelete)

	// --- Бронирования (только чтение) ---
	protected.HandleFunc("/vendors/{vendorId}/bookings",
		getVendorBookings.Handle).Methods(http.MethodGet)

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

	log.Info("Server stopped gracefully")
}
