package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"lm-events/internal/aggregators"
	"lm-events/internal/client"
	"lm-events/internal/dispatch"
	internalhttp "lm-events/internal/http"
	"lm-events/internal/ingestors"
	"lm-events/internal/shared/configs"
	"lm-events/internal/shared/filestorages"
	"lm-events/internal/shared/loggers"
	"lm-events/internal/stores"
)

// Services are the domain services built from a config, shared by the
// HTTP server and the CLI.
type Services struct {
	Client              *client.Client
	Collector           ingestors.EventCollector
	VolumeService       aggregators.VolumeService
	ExportDownloader    ingestors.ExportDownloader
	ExportStore         stores.ExportStore
	VolumeSnapshotStore stores.VolumeSnapshotStore
	Policy              aggregators.VolumePolicy
}

// NewServices wires the events API client, collector, aggregator and
// stores. A nil token uses upstream.token from the config.
func NewServices(config *configs.Config, token dispatch.TokenProvider) (*Services, error) {
	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	policy, err := aggregators.NewVolumePolicy(config.Aggregation)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize volume policy: %w", err)
	}

	apiClient := client.New(client.NewConfig(config.Upstream, token))
	collector := ingestors.NewEventCollector(apiClient.Events, ingestors.NewCollectOptions(config.Ingestion))
	aggregator := aggregators.NewEventAggregator(policy)
	exportStore := stores.NewExportStore(fileStorage)

	return &Services{
		Client:              apiClient,
		Collector:           collector,
		VolumeService:       aggregators.NewVolumeService(collector, aggregator, policy.WindowSize),
		ExportDownloader:    ingestors.NewExportDownloader(apiClient.Events, exportStore, time.Now),
		ExportStore:         exportStore,
		VolumeSnapshotStore: stores.NewVolumeSnapshotStore(fileStorage),
		Policy:              policy,
	}, nil
}

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "lm-events").
		Logger()

	services, err := NewServices(config, nil)
	if err != nil {
		return nil, err
	}

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(services.VolumeService, services.ExportDownloader, services.ExportStore, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:    config,
		appLogger: appLogger,
		server:    server,
	}, nil
}

// Handler returns the HTTP handler served by the app.
func (app *App) Handler() http.Handler {
	return app.server.Handler
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting lm-events service on port %d (log_level=%s, upstream=%s, window_size=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Upstream.BaseURL,
			app.config.Aggregation.WindowSize)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")
	return nil
}
