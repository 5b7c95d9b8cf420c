package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "etats/docs"
	"etats/internal/config"
	"etats/internal/database"
	"etats/internal/handlers"
	"etats/internal/logger"
	"etats/internal/middleware"
	"etats/internal/notify"
	"etats/internal/pdf"
	"etats/internal/repositories"
	"etats/internal/routes"
	"etats/internal/services"
	"etats/internal/session"
)

const shutdownTimeout = 10 * time.Second

// Deps is everything the HTTP layer is built from.
type Deps struct {
	Config   *config.Config
	Log      zerolog.Logger
	DB       *sql.DB
	Notifier notify.Notifier
	Renderer pdf.Renderer
}

// NewRouter wires repositories, services and handlers into a gin engine.
func NewRouter(d Deps) (*gin.Engine, error) {
	if err := handlers.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}
	if d.Notifier == nil {
		d.Notifier = notify.Nop{}
	}
	if d.Renderer == nil {
		d.Renderer = pdf.NewReportRenderer(d.Config.PDF.FontPath)
	}

	// === Repos ===
	taskRepo := repositories.NewTaskRepository(d.DB, logger.Component(d.Log, "task_repository"))
	employeeRepo := repositories.NewEmployeeRepository(d.DB)
	reportRepo := repositories.NewReportRepository(d.DB)

	// === Services ===
	taskService := services.NewTaskService(taskRepo, employeeRepo, d.Notifier, logger.Component(d.Log, "task_service"))
	employeeService := services.NewEmployeeService(employeeRepo, d.Notifier, logger.Component(d.Log, "employee_service"))
	authService := services.NewAuthService(employeeRepo, logger.Component(d.Log, "auth_service"))
	reportService := services.NewReportService(reportRepo, d.Renderer)

	codec := session.NewCodec(d.Config.Session.Secret, d.Config.Session.TTL)

	// === Gin ===
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger.Component(d.Log, "http")))
	router.Use(middleware.CORS(d.Config.Server.CORSOrigins))
	router.Use(middleware.Session(codec, d.Config.Session.CookieName))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRoutes(router, routes.Handlers{
		Auth:      handlers.NewAuthHandler(authService, codec, d.Config.Session),
		Employees: handlers.NewEmployeeHandler(employeeService),
		Tasks:     handlers.NewTaskHandler(taskService),
		Reports:   handlers.NewReportHandler(reportService),
		DB:        d.DB,
	})
	return router, nil
}

// NewNotifier enables every channel that has configuration.
func NewNotifier(cfg *config.Config, log zerolog.Logger) notify.Notifier {
	var channels notify.Multi
	if cfg.Email.SMTPHost != "" {
		channels = append(channels, notify.NewEmailNotifier(cfg.Email))
		log.Info().Str("smtp_host", cfg.Email.SMTPHost).Msg("email notifications enabled")
	}
	if cfg.Telegram.BotToken != "" {
		tg, err := notify.NewTelegramNotifier(cfg.Telegram.BotToken)
		if err != nil {
			log.Warn().Err(err).Msg("telegram notifications disabled")
		} else {
			channels = append(channels, tg)
			log.Info().Msg("telegram notifications enabled")
		}
	}
	if len(channels) == 0 {
		return notify.Nop{}
	}
	return channels
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	if cfg.Log.Env != config.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}
	}()

	router, err := NewRouter(Deps{
		Config:   cfg,
		Log:      log,
		DB:       db,
		Notifier: NewNotifier(cfg, log),
	})
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("http server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen and serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info().Msg("http server stopped")
	return nil
}
