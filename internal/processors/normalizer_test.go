package processors

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slurm-plot/internal/models"
)

func TestRecordNormalizer_Normalize(t *testing.T) {
	t.Parallel()

	normalizer := NewRecordNormalizer()

	raw := []*models.RawJobRecord{
		{
			JobID:      "101",
			JobName:    "train",
			User:       "alice",
			Account:    "geo",
			Partition:  "gpu",
			State:      "COMPLETED",
			Submit:     "2026-03-02T08:00:00",
			Start:      "2026-03-02T09:00:00",
			End:        "2026-03-02T11:00:00",
			ReqCPUS:    "4",
			AllocCPUS:  "4",
			CPUTimeRAW: "28800",
			ReqMemGB:   16,
			MaxRSSGB:   8,
			GPUCount:   "1",
		},
	}

	normalized := normalizer.Normalize(context.Background(), raw)

	expected := []*models.NormalizedJobRecord{
		{
			JobID:      "101",
			User:       "alice",
			Account:    "geo",
			Partition:  "gpu",
			State:      "COMPLETED",
			SubmitTime: time.Date(2026, 3, 2, 8, 0, 0, 0, time.Local),
			StartTime:  time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local),
			EndTime:    time.Date(2026, 3, 2, 11, 0, 0, 0, time.Local),
			ReqCPUS:    "4",
			AllocCPUS:  "4",
			CPUTimeRAW: "28800",
			ReqMemGB:   16,
			MaxRSSGB:   8,
			GPUCount:   "1",
		},
	}
	assert.Equal(t, expected, normalized)
}

func TestRecordNormalizer_Normalize_SubmitFallsBackToStart(t *testing.T) {
	t.Parallel()

	normalizer := NewRecordNormalizer()

	raw := []*models.RawJobRecord{
		{
			JobID:  "102",
			State:  "CANCELLED",
			Submit: "Unknown",
			Start:  "2026-03-02T09:00:00",
			End:    "Unknown",
		},
	}

	normalized := normalizer.Normalize(context.Background(), raw)

	require.Len(t, normalized, 1)
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local)
	assert.True(t, normalized[0].SubmitTime.Equal(start))
	assert.True(t, normalized[0].StartTime.Equal(start))
	assert.True(t, normalized[0].EndTime.IsZero())
}

func TestRecordNormalizer_Normalize_DropsUnplaceableRecords(t *testing.T) {
	t.Parallel()

	normalizer := NewRecordNormalizer()

	raw := []*models.RawJobRecord{
		{JobID: "101", Submit: "2026-03-02T08:00:00", Start: "2026-03-02T09:00:00"},
		{JobID: "102", Submit: "Unknown", Start: "Unknown"},
		{JobID: "103", Submit: "", Start: "garbage"},
		{JobID: "104", Submit: "2026-03-03T08:00:00"},
	}

	normalized := normalizer.Normalize(context.Background(), raw)

	got := make([]string, 0, len(normalized))
	for _, r := range normalized {
		got = append(got, r.JobID)
	}
	assert.Equal(t, []string{"101", "104"}, got)
}

func TestRecordNormalizer_Normalize_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	normalizer := NewRecordNormalizer()

	raw := []*models.RawJobRecord{
		{JobID: "101", Submit: "2026-03-02T08:00:00", Start: "Unknown", End: "Unknown"},
	}

	normalized := normalizer.Normalize(context.Background(), raw)

	require.Len(t, normalized, 1)
	normalized[0].JobID = "changed"
	assert.Equal(t, "101", raw[0].JobID)
	assert.Equal(t, "Unknown", raw[0].Start)
}

func TestRecordNormalizer_Normalize_Empty(t *testing.T) {
	t.Parallel()

	normalizer := NewRecordNormalizer()

	normalized := normalizer.Normalize(context.Background(), []*models.RawJobRecord{})

	assert.Empty(t, normalized)
}
