package http

import (
	"net/http"
	"time"

	"slurm-plot/internal/models"
	"slurm-plot/internal/reports"
)

// SummaryResponse is the JSON body of GET /api/v1/summary.
type SummaryResponse struct {
	RunID       string                    `json:"runId"`
	Interval    models.Interval           `json:"interval"`
	WindowStart time.Time                 `json:"windowStart"`
	WindowEnd   time.Time                 `json:"windowEnd"`
	Summary     *models.SummaryStatistics `json:"summary"`
}

type summaryHandler struct {
	reportService reports.ReportService
}

func NewSummaryHandler(reportService reports.ReportService) AppHttpHandler {
	return &summaryHandler{
		reportService: reportService,
	}
}

// Handle processes GET /api/v1/summary requests.
func (h *summaryHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	params, err := parseReportParams(r)
	if err != nil {
		return err
	}

	report, err := h.reportService.Generate(r.Context(), params)
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, SummaryResponse{
		RunID:       report.RunID,
		Interval:    report.Interval,
		WindowStart: report.WindowStart,
		WindowEnd:   report.WindowEnd,
		Summary:     report.Summary,
	})
}
