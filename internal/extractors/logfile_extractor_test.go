package extractors

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slurm-plot/internal/shared/svcerrors"
)

const dumpHeader = "JobID|User|Account|Partition|State|Submit|Start|End|ReqCPUS|AllocCPUS|CPUTimeRAW|ReqMem|MaxRSS|AllocTRES|JobName"

func writeDump(t *testing.T, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "accounting.log")
	content := ""
	for _, line := range lines {
		content += line + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testWindow() (time.Time, time.Time) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)
	return start, start.AddDate(0, 0, 7)
}

func TestLogFileExtractor_Extract(t *testing.T) {
	t.Parallel()

	path := writeDump(t,
		dumpHeader,
		"101|alice|geo|gpu|COMPLETED|2026-03-02T08:00:00|2026-03-02T09:00:00|2026-03-02T11:00:00|4|4|28800|16G|8192M|cpu=4,gres/gpu=1|train",
		"102|bob|bio|batch|FAILED|2026-03-03T10:00:00|2026-03-03T10:05:00|2026-03-03T10:35:00|2|2|3600|8G|1024M|cpu=2|etl",
	)

	start, end := testWindow()
	records, err := NewLogFileExtractor(path).Extract(context.Background(), Query{Start: start, End: end})
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, "101", records[0].JobID)
	assert.InDelta(t, 16.0, records[0].ReqMemGB, 1e-9)
	assert.Equal(t, "1", records[0].GPUCount)
	assert.Equal(t, "102", records[1].JobID)
}

func TestLogFileExtractor_Extract_AppliesFilters(t *testing.T) {
	t.Parallel()

	path := writeDump(t,
		dumpHeader,
		"101|alice|geo|gpu|COMPLETED|2026-03-02T08:00:00|2026-03-02T09:00:00|2026-03-02T11:00:00|4|4|28800|16G|8192M||train",
		"102|bob|geo|batch|FAILED|2026-03-03T10:00:00|2026-03-03T10:05:00|2026-03-03T10:35:00|2|2|3600|8G|1024M||etl",
		"103|alice|bio|gpu|COMPLETED|2026-03-04T12:00:00|2026-03-04T12:30:00|2026-03-04T13:00:00|1|1|1800|4G|512M||qc",
	)

	start, end := testWindow()

	tests := []struct {
		name     string
		query    Query
		expected []string
	}{
		{
			name:     "filter by user",
			query:    Query{Start: start, End: end, User: "alice"},
			expected: []string{"101", "103"},
		},
		{
			name:     "filter by account",
			query:    Query{Start: start, End: end, Account: "geo"},
			expected: []string{"101", "102"},
		},
		{
			name:     "filter by partition",
			query:    Query{Start: start, End: end, Partition: "batch"},
			expected: []string{"102"},
		},
		{
			name:     "filter by state is case insensitive",
			query:    Query{Start: start, End: end, State: "failed"},
			expected: []string{"102"},
		},
		{
			name:     "combined filters",
			query:    Query{Start: start, End: end, User: "alice", Account: "bio"},
			expected: []string{"103"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			records, err := NewLogFileExtractor(path).Extract(context.Background(), tt.query)
			require.NoError(t, err)

			got := make([]string, 0, len(records))
			for _, r := range records {
				got = append(got, r.JobID)
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLogFileExtractor_Extract_WindowOnSubmitTime(t *testing.T) {
	t.Parallel()

	path := writeDump(t,
		dumpHeader,
		// Submitted before the window.
		"100|alice|geo|gpu|COMPLETED|2026-02-20T08:00:00|2026-03-02T09:00:00|2026-03-02T11:00:00|4|4|28800|16G|8192M||old",
		// Inside the window.
		"101|alice|geo|gpu|COMPLETED|2026-03-02T08:00:00|2026-03-02T09:00:00|2026-03-02T11:00:00|4|4|28800|16G|8192M||train",
		// Submit unknown, start inside the window: kept via the fallback.
		"102|alice|geo|gpu|CANCELLED|Unknown|2026-03-03T09:00:00|2026-03-03T10:00:00|4|4|0|16G|0||probe",
		// Submitted exactly at the exclusive end.
		"103|alice|geo|gpu|COMPLETED|2026-03-09T00:00:00|2026-03-09T01:00:00|2026-03-09T02:00:00|4|4|3600|16G|512M||late",
	)

	start, end := testWindow()
	records, err := NewLogFileExtractor(path).Extract(context.Background(), Query{Start: start, End: end})
	require.NoError(t, err)

	got := make([]string, 0, len(records))
	for _, r := range records {
		got = append(got, r.JobID)
	}
	assert.Equal(t, []string{"101", "102"}, got)
}

func TestLogFileExtractor_Extract_MissingColumn(t *testing.T) {
	t.Parallel()

	// Header lacks CPUTimeRAW.
	path := writeDump(t,
		"JobID|User|Account|Partition|State|Submit|Start|End|ReqCPUS|AllocCPUS|ReqMem|MaxRSS",
		"101|alice|geo|gpu|COMPLETED|2026-03-02T08:00:00|2026-03-02T09:00:00|2026-03-02T11:00:00|4|4|16G|8192M",
	)

	start, end := testWindow()
	_, err := NewLogFileExtractor(path).Extract(context.Background(), Query{Start: start, End: end})
	require.Error(t, err)

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "EXT_1000", svcErr.Code)
	assert.Contains(t, svcErr.Message, "CPUTimeRAW")
}

func TestLogFileExtractor_Extract_EmptyFile(t *testing.T) {
	t.Parallel()

	path := writeDump(t)

	start, end := testWindow()
	_, err := NewLogFileExtractor(path).Extract(context.Background(), Query{Start: start, End: end})
	require.Error(t, err)

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "EXT_1000", svcErr.Code)
}

func TestLogFileExtractor_Extract_FileNotFound(t *testing.T) {
	t.Parallel()

	start, end := testWindow()
	_, err := NewLogFileExtractor("/nonexistent/accounting.log").Extract(context.Background(), Query{Start: start, End: end})
	require.Error(t, err)

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "EXT_1001", svcErr.Code)
}

func TestLogFileExtractor_Extract_SkipsMalformedRows(t *testing.T) {
	t.Parallel()

	path := writeDump(t,
		dumpHeader,
		"101|alice|geo|gpu|COMPLETED|2026-03-02T08:00:00|2026-03-02T09:00:00|2026-03-02T11:00:00|4|4|28800|16G|8192M||train",
		"short|row",
	)

	start, end := testWindow()
	records, err := NewLogFileExtractor(path).Extract(context.Background(), Query{Start: start, End: end})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "101", records[0].JobID)
}
