package aggregators

import (
	"context"
	"sort"
	"time"

	"slurm-plot/internal/models"
	"slurm-plot/internal/shared/loggers"
)

//go:generate mockgen -source=interval_aggregator.go -destination=./mocks/interval_aggregator_mock.go -package=mocks
type IntervalAggregator interface {
	// Aggregate buckets enriched records by the floor of their submit time
	// and reduces each bucket to one row. Rows come back sorted ascending by
	// bucket start; empty input yields an empty table, not an error.
	Aggregate(ctx context.Context, records []*models.EnrichedJobRecord, interval models.Interval) ([]*models.AggregatedRow, error)
}

type intervalAggregator struct{}

func NewIntervalAggregator() IntervalAggregator {
	return &intervalAggregator{}
}

func (a *intervalAggregator) Aggregate(ctx context.Context, records []*models.EnrichedJobRecord, interval models.Interval) ([]*models.AggregatedRow, error) {
	logger := loggers.Ctx(ctx)

	switch interval {
	case models.IntervalHour, models.IntervalDay, models.IntervalWeek:
	default:
		return nil, errInvalidInterval(string(interval))
	}

	buckets := make(map[time.Time]*bucketAccumulator)
	for _, record := range records {
		bucketStart := interval.FloorTime(record.SubmitTime)
		acc, ok := buckets[bucketStart]
		if !ok {
			acc = &bucketAccumulator{}
			buckets[bucketStart] = acc
		}
		acc.add(record)
	}

	rows := make([]*models.AggregatedRow, 0, len(buckets))
	for bucketStart, acc := range buckets {
		rows = append(rows, acc.row(bucketStart))
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].BucketStart.Before(rows[j].BucketStart)
	})

	metricRowsAggregatedTotal.WithLabelValues(string(interval)).Add(float64(len(rows)))
	logger.Debug().
		Str(loggers.FieldInterval, string(interval)).
		Int(loggers.FieldRecordCount, len(records)).
		Msgf("aggregated %d records into %d buckets", len(records), len(rows))

	return rows, nil
}

// bucketAccumulator collects one bucket's running sums. Queue time, run time
// and the two efficiency ratios are averaged per job at reduce time; the
// resource metrics stay sums.
type bucketAccumulator struct {
	reqCPUs       float64
	allocCPUs     float64
	usedCPUHours  float64
	allocCPUHours float64
	reqMemGB      float64
	maxRSSGB      float64
	gpuCount      float64
	gpuHours      float64

	queueHours float64
	runHours   float64
	cpuEff     float64
	memEff     float64

	jobs int64
}

func (b *bucketAccumulator) add(r *models.EnrichedJobRecord) {
	b.reqCPUs += r.ReqCPUs
	b.allocCPUs += r.AllocCPUs
	b.usedCPUHours += r.UsedCPUHours
	b.allocCPUHours += r.AllocCPUHours
	b.reqMemGB += r.ReqMemGB
	b.maxRSSGB += r.MaxRSSGB
	b.gpuCount += r.GPUCount
	b.gpuHours += r.GPUHours

	b.queueHours += r.QueueTimeHours
	b.runHours += r.RunTimeHours
	b.cpuEff += r.CPUEfficiency
	b.memEff += r.MemoryEfficiency

	b.jobs++
}

func (b *bucketAccumulator) row(bucketStart time.Time) *models.AggregatedRow {
	jobs := float64(b.jobs)
	return &models.AggregatedRow{
		BucketStart: bucketStart,
		ReqCPUs:     b.reqCPUs,
		AllocCPUs:   b.allocCPUs,
		UsedCPUs:    b.usedCPUHours,
		ReqMem:      b.reqMemGB,
		MaxRSS:      b.maxRSSGB,
		UsedMem:     b.maxRSSGB,
		AllocGPUs:   b.gpuCount,
		UsedGPUs:    b.gpuHours,
		QueueTime:   b.queueHours / jobs,
		RunTime:     b.runHours / jobs,
		JobCount:    b.jobs,

		AllocCPUHours:    b.allocCPUHours,
		CPUEfficiency:    b.cpuEff / jobs,
		MemoryEfficiency: b.memEff / jobs,
	}
}
