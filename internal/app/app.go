package app

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/thewondry/job-service/internal/config"
	"github.com/thewondry/job-service/internal/delivery/httpd"
	"github.com/thewondry/job-service/internal/repository"
	"github.com/thewondry/job-service/internal/service"
	"github.com/thewondry/job-service/internal/service/integration"
)

type App struct {
	server   *http.Server
	logger   zerolog.Logger
	config   *config.Config
	db       *sql.DB
	notifier integration.Notifier
}

func New(cfg *config.Config, log zerolog.Logger, db *sql.DB) (*App, error) {
	storage, err := repository.NewMinIORepository(cfg.Storage, log)
	if err != nil {
		return nil, err
	}

	notifier, err := integration.NewRabbitMQNotifier(
		cfg.RabbitMQ.URL,
		cfg.RabbitMQ.Exchange,
		cfg.RabbitMQ.RoutingKey,
		cfg.RabbitMQ.QueueName,
		log,
	)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create RabbitMQ notifier")
		// Notifications are best-effort; the service runs without them.
		notifier = integration.NopNotifier(log)
	}

	jobRepo := repository.NewJobRepository(db, log)
	fileRepo := repository.NewFileRepository(db, log)

	fileService := service.NewFileService(fileRepo, jobRepo, storage, log)
	workflowService := service.NewWorkflowService(jobRepo, notifier, log)
	boardService := service.NewBoardService(jobRepo, workflowService, log)
	jobService := service.NewJobService(jobRepo, fileService, log)
	noteService := service.NewNoteService(jobRepo, log)

	handler := httpd.NewHandler(
		jobService,
		boardService,
		fileService,
		noteService,
		log,
	)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}))

	handler.RegisterRoutes(router)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &App{
		server:   server,
		logger:   log,
		config:   cfg,
		db:       db,
		notifier: notifier,
	}, nil
}

func (a *App) Run() error {
	a.logger.Info().Msgf("Starting job service on %s", a.config.Server.Address)
	return a.server.ListenAndServe()
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info().Msg("Shutting down job service...")

	if a.notifier != nil {
		if err := a.notifier.Close(); err != nil {
			a.logger.Error().Err(err).Msg("Failed to close RabbitMQ connection")
		}
	}

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Error().Err(err).Msg("Failed to close database connection")
		}
	}

	return a.server.Shutdown(ctx)
}
