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

	cancelAppointmentHandler "github.com/itpmanager/ITP-SchedulingService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/itpmanager/ITP-SchedulingService/internal/api/handlers/create_appointment"
	deleteAppointmentHandler "github.com/itpmanager/ITP-SchedulingService/internal/api/handlers/delete_appointment"
	getAppointmentHandler "github.com/itpmanager/ITP-SchedulingService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/itpmanager/ITP-SchedulingService/internal/api/handlers/get_available_slots"
	getCalendarHandler "github.com/itpmanager/ITP-SchedulingService/internal/api/handlers/get_calendar"
	holidaysHandler "github.com/itpmanager/ITP-SchedulingService/internal/api/handlers/holidays"
	listAppointmentsHandler "github.com/itpmanager/ITP-SchedulingService/internal/api/handlers/list_appointments"
	lookupAppointmentHandler "github.com/itpmanager/ITP-SchedulingService/internal/api/handlers/lookup_appointment"
	quickAdmisHandler "github.com/itpmanager/ITP-SchedulingService/internal/api/handlers/quick_admis"
	rarBlockAppointmentHandler "github.com/itpmanager/ITP-SchedulingService/internal/api/handlers/rar_block_appointment"
	setItpResultHandler "github.com/itpmanager/ITP-SchedulingService/internal/api/handlers/set_itp_result"
	transitionAppointmentHandler "github.com/itpmanager/ITP-SchedulingService/internal/api/handlers/transition_appointment"
	updateAppointmentHandler "github.com/itpmanager/ITP-SchedulingService/internal/api/handlers/update_appointment"
	workingHoursHandler "github.com/itpmanager/ITP-SchedulingService/internal/api/handlers/working_hours"
	"github.com/itpmanager/ITP-SchedulingService/internal/api/middleware"
	"github.com/itpmanager/ITP-SchedulingService/internal/config"
	appointmentRepo "github.com/itpmanager/ITP-SchedulingService/internal/infra/storage/appointment"
	holidayRepo "github.com/itpmanager/ITP-SchedulingService/internal/infra/storage/holiday"
	scheduleRepo "github.com/itpmanager/ITP-SchedulingService/internal/infra/storage/schedule"
	clientServiceClient "github.com/itpmanager/ITP-SchedulingService/internal/integrations/clientservice"
	notifyServiceClient "github.com/itpmanager/ITP-SchedulingService/internal/integrations/notifyservice"
	appointmentsService "github.com/itpmanager/ITP-SchedulingService/internal/service/appointments"
	calendarService "github.com/itpmanager/ITP-SchedulingService/internal/service/calendar"
	scheduleService "github.com/itpmanager/ITP-SchedulingService/internal/service/schedule"
	createAppointmentUC "github.com/itpmanager/ITP-SchedulingService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/itpmanager/ITP-SchedulingService/internal/usecase/get_available_slots"
	"github.com/itpmanager/ITP-SchedulingService/pkg/dbmetrics"
	"github.com/itpmanager/ITP-SchedulingService/pkg/logger"
	"github.com/itpmanager/ITP-SchedulingService/pkg/metrics"
	"github.com/itpmanager/ITP-SchedulingService/pkg/simpletxmanager"
	"github.com/itpmanager/ITP-SchedulingService/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting ITP-SchedulingService...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

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

	clientClient := clientServiceClient.NewClient(
		cfg.ClientService.URL,
		time.Duration(cfg.ClientService.Timeout)*time.Second,
		log,
	)
	notifyClient := notifyServiceClient.NewClient(
		cfg.NotifyService.URL,
		time.Duration(cfg.NotifyService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (ClientService=%s timeout=%ds, NotifyService=%s timeout=%ds)",
		cfg.ClientService.URL, cfg.ClientService.Timeout, cfg.NotifyService.URL, cfg.NotifyService.Timeout)

	var (
		appointmentRepository *appointmentRepo.Repository
		scheduleRepository    *scheduleRepo.Repository
		holidayRepository     *holidayRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		holidayRepository = holidayRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		holidayRepository = holidayRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	appointmentSvc := appointmentsService.NewService(
		appointmentRepository,
		notifyClient,
		log,
	)
	calendarSvc := calendarService.NewService(
		appointmentRepository,
		scheduleRepository,
		holidayRepository,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		scheduleRepository,
		holidayRepository,
		log,
	)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		holidayRepository,
		clientClient,
		notifyClient,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		holidayRepository,
		log,
	)

	// An empty schedule table means a fresh install, seed the default week
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := scheduleSvc.SeedDefaultSchedule(seedCtx); err != nil {
		seedCancel()
		log.Fatal("Failed to seed default schedule: %v", err)
	}
	seedCancel()

	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentSvc, log)
	lookupAppointment := lookupAppointmentHandler.NewHandler(appointmentSvc, log)
	transitionAppointment := transitionAppointmentHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	rarBlockAppointment := rarBlockAppointmentHandler.NewHandler(appointmentSvc, log)
	setItpResult := setItpResultHandler.NewHandler(appointmentSvc, log)
	quickAdmis := quickAdmisHandler.NewHandler(appointmentSvc, log)
	updateAppointment := updateAppointmentHandler.NewHandler(appointmentSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentSvc, log)
	getCalendar := getCalendarHandler.NewHandler(calendarSvc, log)
	workingHours := workingHoursHandler.NewHandler(scheduleSvc, log)
	holidays := holidaysHandler.NewHandler(scheduleSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (no authentication, used by the booking page)
	// ============================================================

	// Slot availability of one day
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Client self-service lookups. Registered before the protected
	// /appointments/{appointmentId} routes so mux matches them first.
	api.HandleFunc("/appointments/confirmation/{code}",
		lookupAppointment.HandleByCode).Methods(http.MethodGet)
	api.HandleFunc("/appointments/by-phone/{phone}",
		lookupAppointment.HandleByPhone).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (staff only, require X-Staff-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(log))

	// --- Appointments ---
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}", updateAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)

	// --- Lifecycle transitions ---
	protected.HandleFunc("/appointments/{appointmentId}/confirm",
		transitionAppointment.HandleConfirm).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}/start",
		transitionAppointment.HandleStart).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}/complete",
		transitionAppointment.HandleComplete).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}/no-show",
		transitionAppointment.HandleNoShow).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}/cancel",
		cancelAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}/rar-block",
		rarBlockAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}/itp-result",
		setItpResult.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}/quick-admis",
		quickAdmis.Handle).Methods(http.MethodPost)

	// --- Staff calendar ---
	protected.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// --- Schedule management ---
	protected.HandleFunc("/schedule/working-hours", workingHours.HandleGetWeek).Methods(http.MethodGet)
	protected.HandleFunc("/schedule/working-hours/{dayOfWeek}", workingHours.HandleGetDay).Methods(http.MethodGet)
	protected.HandleFunc("/schedule/working-hours/{dayOfWeek}", workingHours.HandleUpdate).Methods(http.MethodPut)

	// --- Holidays ---
	protected.HandleFunc("/schedule/holidays", holidays.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/schedule/holidays", holidays.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/schedule/holidays/seed/{year}", holidays.HandleSeed).Methods(http.MethodPost)
	protected.HandleFunc("/schedule/holidays/{holidayId}", holidays.HandleDelete).Methods(http.MethodDelete)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
