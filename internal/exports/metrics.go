package exports

import (
	"slurm-plot/internal/shared/metrics"
)

const fieldFormat = "format"

var metricTablesExportedTotal = metrics.NewCounterVec(metrics.CounterOpts{
	Namespace: metrics.Namespace,
	Subsystem: metrics.SubExport,
	Name:      "tables_exported_total",
	Help:      "Number of aggregated tables exported, by format.",
}, []string{fieldFormat})
