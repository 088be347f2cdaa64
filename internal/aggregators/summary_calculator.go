package aggregators

import (
	"slurm-plot/internal/models"
)

//go:generate mockgen -source=summary_calculator.go -destination=./mocks/summary_calculator_mock.go -package=mocks
type SummaryCalculator interface {
	// Summarize reduces an aggregated table to its headline statistics.
	// An empty table yields zero statistics with no date range.
	Summarize(rows []*models.AggregatedRow) *models.SummaryStatistics
}

type summaryCalculator struct{}

func NewSummaryCalculator() SummaryCalculator {
	return &summaryCalculator{}
}

func (c *summaryCalculator) Summarize(rows []*models.AggregatedRow) *models.SummaryStatistics {
	stats := &models.SummaryStatistics{}
	if len(rows) == 0 {
		return stats
	}

	var queueHours, runHours float64
	first, last := rows[0].BucketStart, rows[0].BucketStart
	for _, row := range rows {
		stats.TotalJobs += row.JobCount
		stats.TotalCPUHoursRequested += row.ReqCPUs
		stats.TotalCPUHoursAllocated += row.AllocCPUHours
		stats.TotalCPUHoursUsed += row.UsedCPUs
		stats.TotalMemoryRequestedGB += row.ReqMem
		stats.TotalMemoryUsedGB += row.UsedMem
		stats.TotalGPUHours += row.UsedGPUs

		queueHours += row.QueueTime
		runHours += row.RunTime

		if row.BucketStart.Before(first) {
			first = row.BucketStart
		}
		if row.BucketStart.After(last) {
			last = row.BucketStart
		}
	}

	buckets := float64(len(rows))
	stats.AvgQueueTimeHours = queueHours / buckets
	stats.AvgRunTimeHours = runHours / buckets

	// Ratio of sums, not mean of ratios: a bucket with two jobs must not
	// weigh as much as a bucket with two thousand.
	if stats.TotalCPUHoursAllocated > 0 {
		stats.OverallCPUEfficiency = stats.TotalCPUHoursUsed / stats.TotalCPUHoursAllocated
	}
	if stats.TotalMemoryRequestedGB > 0 {
		stats.OverallMemoryEfficiency = stats.TotalMemoryUsedGB / stats.TotalMemoryRequestedGB
	}

	stats.DateRange = &models.DateRange{Start: first, End: last}

	return stats
}
