package reports

import (
	"slurm-plot/internal/shared/metrics"
)

var (
	// metricReportsGeneratedTotal counts finished report runs by outcome:
	// an empty error_code for success, otherwise the code that ended the
	// run early.
	metricReportsGeneratedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubProcessing,
			Name:      "reports_generated_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricReportDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubProcessing,
			Name:      "report_duration_seconds",
			Help:      "Time to run the full extract-to-summary pipeline.",
			Buckets:   metrics.DefBuckets,
		},
		[]string{metrics.FieldInterval},
	)
)
