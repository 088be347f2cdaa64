package aggregators

import (
	"time"

	"slurm-plot/internal/models"
)

// FilterRows narrows an aggregated table to buckets starting within
// [start, end] that hold at least minJobCount jobs. Zero time bounds leave
// that side open; row order is preserved.
func FilterRows(rows []*models.AggregatedRow, start, end time.Time, minJobCount int64) []*models.AggregatedRow {
	filtered := make([]*models.AggregatedRow, 0, len(rows))
	for _, row := range rows {
		if !start.IsZero() && row.BucketStart.Before(start) {
			continue
		}
		if !end.IsZero() && row.BucketStart.After(end) {
			continue
		}
		if row.JobCount < minJobCount {
			continue
		}
		filtered = append(filtered, row)
	}
	return filtered
}
