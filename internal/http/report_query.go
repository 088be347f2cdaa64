package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"slurm-plot/internal/models"
	"slurm-plot/internal/reports"
)

const dateLayout = "2006-01-02"

// parseReportParams maps the shared report query parameters onto
// reports.GenerateParams. Dates are calendar days in the server's location,
// matching how sacct interprets its window arguments. Interval validation is
// left to the aggregation layer.
func parseReportParams(r *http.Request) (reports.GenerateParams, error) {
	q := r.URL.Query()

	params := reports.GenerateParams{
		Account:   q.Get("account"),
		Partition: q.Get("partition"),
		State:     q.Get("state"),
		User:      q.Get("user"),
		Interval:  models.Interval(q.Get("interval")),
	}

	var err error
	if params.Start, err = parseDateParam(q.Get("start"), "start"); err != nil {
		return reports.GenerateParams{}, err
	}
	if params.End, err = parseDateParam(q.Get("end"), "end"); err != nil {
		return reports.GenerateParams{}, err
	}

	return params, nil
}

func parseDateParam(value, name string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	t, err := time.ParseInLocation(dateLayout, value, time.Local)
	if err != nil {
		return time.Time{}, errInvalidDateParam(name, value)
	}
	return t, nil
}

// parseMetricsParam reads the metrics selection, accepting both repeated
// parameters and comma-separated lists.
func parseMetricsParam(r *http.Request) []string {
	var selection []string
	for _, value := range r.URL.Query()["metrics"] {
		for _, name := range strings.Split(value, ",") {
			if name = strings.TrimSpace(name); name != "" {
				selection = append(selection, name)
			}
		}
	}
	return selection
}

func parseMinJobCountParam(r *http.Request) (int64, error) {
	value := r.URL.Query().Get("min_job_count")
	if value == "" {
		return 0, nil
	}

	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil || n < 0 {
		return 0, errInvalidMinJobCount(value)
	}
	return n, nil
}
