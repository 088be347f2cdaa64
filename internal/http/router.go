package http

import (
	"net/http"

	"slurm-plot/internal/renderers"
	"slurm-plot/internal/reports"
	"slurm-plot/internal/shared/loggers"
	"slurm-plot/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(reportService reports.ReportService, chartRenderer renderers.ChartRenderer, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	timeseriesHandler := NewTimeseriesHandler(reportService)
	summaryHandler := NewSummaryHandler(reportService)
	chartsHandler := NewChartsHandler(reportService, chartRenderer)

	// Routes
	router.Get("/api/v1/timeseries", errorHandlingAdapter(timeseriesHandler))
	router.Get("/api/v1/summary", errorHandlingAdapter(summaryHandler))
	router.Get("/charts", errorHandlingAdapter(chartsHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
