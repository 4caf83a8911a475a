package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"hospital-management-api/config"
	deliveryHttp "hospital-management-api/internal/delivery/http"
	"hospital-management-api/internal/delivery/http/handler"
	"hospital-management-api/internal/delivery/http/middleware"
	"hospital-management-api/internal/infrastructure/database"
	"hospital-management-api/internal/infrastructure/pubsub"
	"hospital-management-api/internal/repository"
	"hospital-management-api/internal/service"
	"hospital-management-api/internal/usecase"
	"hospital-management-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Events      *service.RedisEventPublisher
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, log, err := loadConfig()
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	app.Log = log

	location, err := cfg.App.Location()
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}

	// Initialize database
	db, err := database.NewConnection(cfg.DB, log)
	if err != nil {
		return nil, err
	}
	app.DB = db

	if err := database.AutoMigrate(db); err != nil {
		app.Close()
		return nil, err
	}
	log.Info("Database tables are up to date")

	// Initialize Redis when change events are enabled
	events := service.NewNoopEventPublisher()
	if cfg.Redis.Enabled {
		redisClient, err := pubsub.NewRedisClient(cfg.Redis, log)
		if err != nil {
			app.Close()
			return nil, err
		}
		app.RedisClient = redisClient
		app.Events = service.NewRedisEventPublisher(redisClient, cfg.Redis.Channel, log)
		events = app.Events
	}

	// Initialize all layers
	app.Server = initializeServer(cfg, log, db, events, location)

	return app, nil
}

// Migrate creates or updates the tables and closes the connection
func Migrate() error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := database.NewConnection(cfg.DB, log)
	if err != nil {
		return err
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	if err := database.AutoMigrate(db); err != nil {
		return err
	}

	log.Info("Migration completed")
	return nil
}

func loadConfig() (*config.Config, *logrus.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := setupLogger(cfg.Log)
	log.Info("Configuration loaded successfully")

	return cfg, log, nil
}

// setupLogger configures the shared logrus logger
func setupLogger(cfg config.LogConfig) *logrus.Logger {
	log := logrus.StandardLogger()

	if strings.EqualFold(cfg.Format, "text") {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, db *gorm.DB, events service.EventPublisher, location *time.Location) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator(location)

	// Initialize repositories
	patientRepo := repository.NewPatientRepository(db)
	doctorRepo := repository.NewDoctorRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)

	// Initialize usecases
	patientUsecase := usecase.NewPatientUsecase(log, patientRepo, events)
	doctorUsecase := usecase.NewDoctorUsecase(log, doctorRepo, events)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, appointmentRepo, patientRepo, doctorRepo, events, location)
	dashboardUsecase := usecase.NewDashboardUsecase(log, patientRepo, doctorRepo, appointmentRepo, location)

	// Initialize handlers
	debug := cfg.App.Debug
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator, debug)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator, debug)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator, debug)
	dashboardHandler := handler.NewDashboardHandler(dashboardUsecase, debug)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware(cfg.CORS.AllowedOrigins)
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	recoveryMiddleware := middleware.NewRecoveryMiddleware(log, debug)

	// Initialize router
	router := deliveryHttp.NewRouter(
		patientHandler,
		doctorHandler,
		appointmentHandler,
		dashboardHandler,
		corsMiddleware,
		loggingMiddleware,
		recoveryMiddleware,
	)

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close closes the database and Redis connections
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Flush in-flight events before the client goes away
	if app.Events != nil {
		app.Events.Wait()
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
