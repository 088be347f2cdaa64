package processors

import (
	"math"
	"strconv"
	"time"

	"slurm-plot/internal/models"
)

//go:generate mockgen -source=deriver.go -destination=./mocks/deriver_mock.go -package=mocks
type MetricDeriver interface {
	// Derive computes per-job usage numbers from normalized records.
	Derive(records []*models.NormalizedJobRecord) []*models.EnrichedJobRecord
}

type metricDeriver struct{}

func NewMetricDeriver() MetricDeriver {
	return &metricDeriver{}
}

func (d *metricDeriver) Derive(records []*models.NormalizedJobRecord) []*models.EnrichedJobRecord {
	enriched := make([]*models.EnrichedJobRecord, 0, len(records))
	for _, record := range records {
		reqCPUs := coerceCount(record.ReqCPUS)
		allocCPUs := coerceCount(record.AllocCPUS)
		cpuTimeRaw := coerceCount(record.CPUTimeRAW)
		gpuCount := coerceCount(record.GPUCount)

		queueHours := hoursBetween(record.SubmitTime, record.StartTime)
		runHours := hoursBetween(record.StartTime, record.EndTime)

		usedCPUHours := cpuTimeRaw / 3600
		allocCPUHours := allocCPUs * runHours
		gpuHours := gpuCount * runHours

		enriched = append(enriched, &models.EnrichedJobRecord{
			JobID:            record.JobID,
			State:            record.State,
			SubmitTime:       record.SubmitTime,
			QueueTimeHours:   queueHours,
			RunTimeHours:     runHours,
			ReqCPUs:          reqCPUs,
			AllocCPUs:        allocCPUs,
			UsedCPUHours:     usedCPUHours,
			AllocCPUHours:    allocCPUHours,
			ReqMemGB:         math.Max(record.ReqMemGB, 0),
			MaxRSSGB:         math.Max(record.MaxRSSGB, 0),
			GPUCount:         gpuCount,
			GPUHours:         gpuHours,
			CPUEfficiency:    efficiency(usedCPUHours, allocCPUHours),
			MemoryEfficiency: efficiency(record.MaxRSSGB, record.ReqMemGB),
		})
	}
	return enriched
}

// coerceCount reads a numeric accounting cell. Unparsable, non-finite and
// negative cells all collapse to zero so one bad row cannot poison a bucket.
func coerceCount(cell string) float64 {
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// hoursBetween returns the hours from one timestamp to a later one. Missing
// timestamps and negative spans yield zero.
func hoursBetween(from, to time.Time) float64 {
	if from.IsZero() || to.IsZero() {
		return 0
	}
	hours := to.Sub(from).Hours()
	if hours < 0 {
		return 0
	}
	return hours
}

// efficiency is used/available capped at 1. A job with nothing available
// has no meaningful ratio and reports zero.
func efficiency(used, available float64) float64 {
	if available <= 0 {
		return 0
	}
	return math.Min(math.Max(used, 0)/available, 1)
}
