package aggregators

import (
	"slurm-plot/internal/shared/metrics"
)

// metricRowsAggregatedTotal counts bucket rows produced by aggregation runs.
//
// The interval label is the requested granularity (hour, day, week). One run
// over a week of records adds up to 168 to the hour series but at most 7 to
// the day series, so a sudden ratio change between the two usually means the
// submit timestamps of incoming records went bad.
var (
	metricRowsAggregatedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "rows_aggregated_total",
		},
		[]string{metrics.FieldInterval},
	)
)
