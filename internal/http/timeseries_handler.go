package http

import (
	"net/http"
	"time"

	"slurm-plot/internal/aggregators"
	"slurm-plot/internal/models"
	"slurm-plot/internal/reports"
)

// TimeseriesResponse is the JSON body of GET /api/v1/timeseries.
type TimeseriesResponse struct {
	RunID       string                  `json:"runId"`
	Interval    models.Interval         `json:"interval"`
	WindowStart time.Time               `json:"windowStart"`
	WindowEnd   time.Time               `json:"windowEnd"`
	Rows        []*models.AggregatedRow `json:"rows"`
}

type timeseriesHandler struct {
	reportService reports.ReportService
}

func NewTimeseriesHandler(reportService reports.ReportService) AppHttpHandler {
	return &timeseriesHandler{
		reportService: reportService,
	}
}

// Handle processes GET /api/v1/timeseries requests.
func (h *timeseriesHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	params, err := parseReportParams(r)
	if err != nil {
		return err
	}
	minJobCount, err := parseMinJobCountParam(r)
	if err != nil {
		return err
	}

	report, err := h.reportService.Generate(r.Context(), params)
	if err != nil {
		return err
	}

	rows := report.Rows
	if minJobCount > 0 {
		rows = aggregators.FilterRows(rows, time.Time{}, time.Time{}, minJobCount)
	}

	return writeJSON(w, http.StatusOK, TimeseriesResponse{
		RunID:       report.RunID,
		Interval:    report.Interval,
		WindowStart: report.WindowStart,
		WindowEnd:   report.WindowEnd,
		Rows:        rows,
	})
}
