package renderers

import (
	"slurm-plot/internal/shared/metrics"
)

const fieldFormat = "format"

var (
	metricChartsRenderedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubRender,
			Name:      "charts_rendered_total",
		},
		[]string{fieldFormat},
	)

	metricRenderDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubRender,
			Name:      "duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{fieldFormat},
	)
)
