package processors

import (
	"slurm-plot/internal/shared/metrics"
)

const reasonNoSubmitTime = "no_submit_time"

var (
	// metricRecordsDroppedTotal counts records discarded during
	// normalization, labeled by the reason they were unusable.
	metricRecordsDroppedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubProcessing,
			Name:      "records_dropped_total",
		},
		[]string{"reason"},
	)
)
