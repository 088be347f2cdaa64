package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"slurm-plot/internal/aggregators"
	"slurm-plot/internal/extractors"
	internalhttp "slurm-plot/internal/http"
	"slurm-plot/internal/processors"
	"slurm-plot/internal/renderers"
	"slurm-plot/internal/reports"
	"slurm-plot/internal/shared/configs"
	"slurm-plot/internal/shared/loggers"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server
}

// New creates and initializes a new App instance. A non-empty logFile
// serves reports from an accounting dump instead of the sacct command.
func New(config *configs.Config, logFile string) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "slurm-plot").
		Logger()

	// Initialize report pipeline
	var extractor extractors.Extractor
	if logFile != "" {
		extractor = extractors.NewLogFileExtractor(logFile)
	} else {
		extractor = extractors.NewSacctExtractor(config.Slurm.SacctCommand, time.Duration(config.Slurm.Timeout)*time.Second)
	}
	normalizer := processors.NewRecordNormalizer()
	deriver := processors.NewMetricDeriver()
	aggregator := aggregators.NewIntervalAggregator()
	summaryCalculator := aggregators.NewSummaryCalculator()
	reportService := reports.NewReportService(extractor, normalizer, deriver, aggregator, summaryCalculator)

	// Initialize http router
	chartRenderer := renderers.NewHTMLRenderer(config.Plotting)
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(reportService, chartRenderer, httpLogger)

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

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting slurm-plot report server on port %d (log_level=%s, sacct_command=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Slurm.SacctCommand)

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
