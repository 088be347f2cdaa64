package http

import (
	"bytes"
	"net/http"

	"slurm-plot/internal/renderers"
	"slurm-plot/internal/reports"
)

type chartsHandler struct {
	reportService reports.ReportService
	chartRenderer renderers.ChartRenderer
}

func NewChartsHandler(reportService reports.ReportService, chartRenderer renderers.ChartRenderer) AppHttpHandler {
	return &chartsHandler{
		reportService: reportService,
		chartRenderer: chartRenderer,
	}
}

// Handle processes GET /charts requests.
func (h *chartsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	params, err := parseReportParams(r)
	if err != nil {
		return err
	}

	report, err := h.reportService.Generate(r.Context(), params)
	if err != nil {
		return err
	}

	input := renderers.Input{
		Title:    renderers.DefaultTitle(report.WindowStart, report.WindowEnd),
		Interval: report.Interval,
		Rows:     report.Rows,
		Summary:  report.Summary,
		Metrics:  parseMetricsParam(r),
	}

	// Render into a buffer first so a failed render still produces the
	// error envelope instead of a truncated page.
	var buf bytes.Buffer
	if err := h.chartRenderer.Render(r.Context(), input, &buf); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)

	return nil
}
