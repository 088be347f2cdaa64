package aggregators

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slurm-plot/internal/models"
	"slurm-plot/internal/shared/svcerrors"
)

func TestIntervalAggregator_Aggregate_DayBuckets(t *testing.T) {
	t.Parallel()

	aggregator := NewIntervalAggregator()

	day1 := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	// Deliberately unsorted; the second record carries a zone offset and
	// still lands on day one once bucketed in UTC.
	records := []*models.EnrichedJobRecord{
		{
			JobID:            "C",
			SubmitTime:       day2,
			ReqCPUs:          8,
			AllocCPUs:        8,
			UsedCPUHours:     1,
			AllocCPUHours:    8,
			ReqMemGB:         32,
			MaxRSSGB:         16,
			GPUCount:         2,
			GPUHours:         8,
			QueueTimeHours:   0,
			RunTimeHours:     1,
			CPUEfficiency:    0.125,
			MemoryEfficiency: 0.5,
		},
		{
			JobID:            "B",
			SubmitTime:       time.Date(2026, 3, 3, 1, 59, 59, 0, time.FixedZone("", 2*60*60)),
			ReqCPUs:          2,
			AllocCPUs:        2,
			UsedCPUHours:     2,
			AllocCPUHours:    2,
			ReqMemGB:         8,
			MaxRSSGB:         2,
			QueueTimeHours:   3,
			RunTimeHours:     4,
			CPUEfficiency:    1,
			MemoryEfficiency: 0.25,
		},
		{
			JobID:            "A",
			SubmitTime:       day1.Add(8 * time.Hour),
			ReqCPUs:          4,
			AllocCPUs:        4,
			UsedCPUHours:     2,
			AllocCPUHours:    4,
			ReqMemGB:         16,
			MaxRSSGB:         8,
			GPUCount:         1,
			GPUHours:         2,
			QueueTimeHours:   1,
			RunTimeHours:     2,
			CPUEfficiency:    0.5,
			MemoryEfficiency: 0.5,
		},
	}

	rows, err := aggregator.Aggregate(context.Background(), records, models.IntervalDay)
	require.NoError(t, err)

	expected := []*models.AggregatedRow{
		{
			BucketStart: day1,
			ReqCPUs:     6,
			AllocCPUs:   6,
			UsedCPUs:    4,
			ReqMem:      24,
			MaxRSS:      10,
			UsedMem:     10,
			AllocGPUs:   1,
			UsedGPUs:    2,
			QueueTime:   2,
			RunTime:     3,
			JobCount:    2,

			AllocCPUHours:    6,
			CPUEfficiency:    0.75,
			MemoryEfficiency: 0.375,
		},
		{
			BucketStart: day2,
			ReqCPUs:     8,
			AllocCPUs:   8,
			UsedCPUs:    1,
			ReqMem:      32,
			MaxRSS:      16,
			UsedMem:     16,
			AllocGPUs:   2,
			UsedGPUs:    8,
			QueueTime:   0,
			RunTime:     1,
			JobCount:    1,

			AllocCPUHours:    8,
			CPUEfficiency:    0.125,
			MemoryEfficiency: 0.5,
		},
	}
	assert.Equal(t, expected, rows)
}

func TestIntervalAggregator_Aggregate_HourBuckets(t *testing.T) {
	t.Parallel()

	aggregator := NewIntervalAggregator()

	hour := time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)
	records := []*models.EnrichedJobRecord{
		{JobID: "1", SubmitTime: hour.Add(5 * time.Minute)},
		{JobID: "2", SubmitTime: hour.Add(59 * time.Minute)},
		{JobID: "3", SubmitTime: hour.Add(time.Hour)},
	}

	rows, err := aggregator.Aggregate(context.Background(), records, models.IntervalHour)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.True(t, rows[0].BucketStart.Equal(hour))
	assert.Equal(t, int64(2), rows[0].JobCount)
	assert.True(t, rows[1].BucketStart.Equal(hour.Add(time.Hour)))
	assert.Equal(t, int64(1), rows[1].JobCount)
}

func TestIntervalAggregator_Aggregate_WeekBucketsStartMonday(t *testing.T) {
	t.Parallel()

	aggregator := NewIntervalAggregator()

	// 2026-03-02 is a Monday.
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	records := []*models.EnrichedJobRecord{
		{JobID: "mon", SubmitTime: monday},
		{JobID: "wed", SubmitTime: monday.AddDate(0, 0, 2).Add(13 * time.Hour)},
		{JobID: "sun", SubmitTime: monday.AddDate(0, 0, 6).Add(23 * time.Hour)},
		{JobID: "next-mon", SubmitTime: monday.AddDate(0, 0, 7)},
	}

	rows, err := aggregator.Aggregate(context.Background(), records, models.IntervalWeek)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.True(t, rows[0].BucketStart.Equal(monday))
	assert.Equal(t, int64(3), rows[0].JobCount)
	assert.True(t, rows[1].BucketStart.Equal(monday.AddDate(0, 0, 7)))
	assert.Equal(t, int64(1), rows[1].JobCount)
}

func TestIntervalAggregator_Aggregate_GranularityConservesTotals(t *testing.T) {
	t.Parallel()

	aggregator := NewIntervalAggregator()

	base := time.Date(2026, 3, 2, 0, 30, 0, 0, time.UTC)
	records := make([]*models.EnrichedJobRecord, 0, 30)
	for i := 0; i < 30; i++ {
		records = append(records, &models.EnrichedJobRecord{
			JobID:        string(rune('a' + i)),
			SubmitTime:   base.Add(time.Duration(i) * 7 * time.Hour),
			UsedCPUHours: float64(i),
		})
	}

	bucketCounts := make(map[models.Interval]int)
	for _, interval := range models.Intervals {
		rows, err := aggregator.Aggregate(context.Background(), records, interval)
		require.NoError(t, err)
		bucketCounts[interval] = len(rows)

		var jobs int64
		var usedCPUs float64
		for _, row := range rows {
			jobs += row.JobCount
			usedCPUs += row.UsedCPUs
		}
		assert.Equal(t, int64(30), jobs, "interval %s must not lose records", interval)
		assert.InDelta(t, 435, usedCPUs, 1e-9, "interval %s must not lose hours", interval)
	}

	assert.GreaterOrEqual(t, bucketCounts[models.IntervalHour], bucketCounts[models.IntervalDay])
	assert.GreaterOrEqual(t, bucketCounts[models.IntervalDay], bucketCounts[models.IntervalWeek])
}

func TestIntervalAggregator_Aggregate_InvalidInterval(t *testing.T) {
	t.Parallel()

	aggregator := NewIntervalAggregator()

	records := []*models.EnrichedJobRecord{
		{JobID: "1", SubmitTime: time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)},
	}

	tests := []struct {
		name     string
		interval models.Interval
	}{
		{name: "month", interval: models.Interval("month")},
		{name: "empty", interval: models.Interval("")},
		{name: "mixed case", interval: models.Interval("Day")},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rows, err := aggregator.Aggregate(context.Background(), records, tt.interval)
			require.Error(t, err)
			assert.Nil(t, rows)

			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok)
			assert.Equal(t, "AGG_1000", svcErr.Code)
		})
	}
}

func TestIntervalAggregator_Aggregate_Empty(t *testing.T) {
	t.Parallel()

	aggregator := NewIntervalAggregator()

	rows, err := aggregator.Aggregate(context.Background(), nil, models.IntervalDay)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
