package extractors

import (
	"slurm-plot/internal/shared/metrics"
)

var (
	metricRecordsExtractedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubExtraction,
			Name:      "records_extracted_total",
		},
		[]string{metrics.FieldSource},
	)

	// metricRowsSkippedTotal counts rows dropped before they became records:
	// short rows, rows outside the query window, rows excluded by filters.
	metricRowsSkippedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubExtraction,
			Name:      "rows_skipped_total",
		},
		[]string{metrics.FieldSource},
	)

	metricExtractionDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubExtraction,
			Name:      "duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{metrics.FieldSource},
	)
)
