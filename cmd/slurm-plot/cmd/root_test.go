package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slurm-plot/internal/models"
	"slurm-plot/internal/shared/svcerrors"
)

func TestResolveWindow(t *testing.T) {
	t.Parallel()

	start, end, err := resolveWindow("2026-03-02", "2026-03-09")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local), end)
}

func TestResolveWindow_Defaults(t *testing.T) {
	t.Parallel()

	start, end, err := resolveWindow("", "")
	require.NoError(t, err)

	assert.WithinDuration(t, time.Now(), end, 2*time.Second)
	assert.Equal(t, end.AddDate(0, 0, -7), start)
}

func TestResolveWindow_DefaultStartFollowsEnd(t *testing.T) {
	t.Parallel()

	start, end, err := resolveWindow("", "2026-03-09")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local), end)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local), start)
}

func TestResolveWindow_ErrInvalidDate(t *testing.T) {
	t.Parallel()

	_, _, err := resolveWindow("2026-3-2", "")
	require.EqualError(t, err, "Invalid date format: 2026-3-2. Use YYYY-MM-DD.")

	_, _, err = resolveWindow("", "03/09/2026")
	require.EqualError(t, err, "Invalid date format: 03/09/2026. Use YYYY-MM-DD.")
}

func TestResolveWindow_ErrStartNotBeforeEnd(t *testing.T) {
	t.Parallel()

	_, _, err := resolveWindow("2026-03-09", "2026-03-02")
	require.EqualError(t, err, "Start date must be before end date.")

	_, _, err = resolveWindow("2026-03-02", "2026-03-02")
	require.EqualError(t, err, "Start date must be before end date.")
}

func TestResolveState(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "failed", want: "FAILED"},
		{in: "Completed", want: "COMPLETED"},
		{in: "TIMEOUT", want: "TIMEOUT"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()

			got, err := resolveState(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolveState_ErrUnknown(t *testing.T) {
	t.Parallel()

	_, err := resolveState("EXPLODED")
	require.EqualError(t, err, "Invalid state: EXPLODED. Available: COMPLETED, FAILED, CANCELLED, TIMEOUT, RUNNING, PENDING")
}

func TestValidateMetrics(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validateMetrics(nil))
	assert.NoError(t, validateMetrics([]string{"req_cpus", "job_count"}))
}

func TestValidateMetrics_ErrInvalid(t *testing.T) {
	t.Parallel()

	err := validateMetrics([]string{"cpus", "req_mem", "memz"})
	require.EqualError(t, err, "Invalid metrics: cpus, memz. Available: "+strings.Join(models.MetricNames, ", "))
}

func TestValidateFormat(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validateFormat("png"))
	assert.NoError(t, validateFormat("svg"))
	assert.NoError(t, validateFormat("html"))
	require.EqualError(t, validateFormat("pdf"), "Invalid format: pdf. Available: png, svg, html")
}

func TestPrintRunError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "no data",
			err:  svcerrors.NewNotFoundError("RPT_2000", "no data found for the specified criteria", nil),
			want: "No data found for the specified criteria.\n",
		},
		{
			name: "nothing to plot",
			err:  svcerrors.NewNotFoundError("RPT_2001", "no data to plot after processing", nil),
			want: "No data to plot after processing.\n",
		},
		{
			name: "invalid argument",
			err:  svcerrors.NewInvalidArgumentError("AGG_1000", `unsupported interval "minute": want one of hour, day, week`, nil),
			want: "Error: unsupported interval \"minute\": want one of hour, day, week\n",
		},
		{
			name: "internal with cause",
			err:  svcerrors.NewInternalError("EXT_9000", errors.New("sacct: command not found")),
			want: "Error: sacct: command not found\n",
		},
		{
			name: "internal without cause",
			err:  svcerrors.NewInternalError("REN_9000", nil),
			want: "Error: internal server error\n",
		},
		{
			name: "plain error",
			err:  errors.New("boom"),
			want: "Error: boom\n",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			printRunError(&buf, tc.err)
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

// resetFlags restores the flag globals between Execute-based tests, which
// share the package-level rootCmd and therefore must not run in parallel.
func resetFlags() {
	flagStart, flagEnd = "", ""
	flagAccount, flagPartition, flagState, flagUser = "", "", "", ""
	flagInterval = "day"
	flagMetrics = nil
	flagOutput = "slurm_plot"
	flagFormat = "png"
	flagInteractive = false
	flagConfig = ""
	flagLogFile = ""
	flagExport = ""
	flagVerbose = false
	flagDryRun = false
}

func executeRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	resetFlags()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCommand_DryRun(t *testing.T) {
	out, errOut, err := executeRoot(t,
		"--start", "2026-03-02", "--end", "2026-03-09",
		"-m", "req_cpus", "-m", "job_count",
		"--output", "report", "--format", "svg",
		"--verbose", "--dry-run",
	)
	require.NoError(t, err)
	assert.Empty(t, errOut)

	assert.Equal(t, "Configuration loaded from: default\n"+
		"Date range: 2026-03-02 to 2026-03-09\n"+
		"Metrics: req_cpus, job_count\n"+
		"Interval: day\n"+
		"Output: report.svg\n"+
		"Dry run mode - no actual processing will be performed.\n", out)
}

func TestRootCommand_InteractiveForcesHTML(t *testing.T) {
	out, _, err := executeRoot(t,
		"--start", "2026-03-02", "--end", "2026-03-09",
		"--interactive", "--verbose", "--dry-run",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Output: slurm_plot.html\n")
}

func TestRootCommand_ErrStartNotBeforeEnd(t *testing.T) {
	out, errOut, err := executeRoot(t, "--start", "2026-03-09", "--end", "2026-03-02")
	require.Error(t, err)

	assert.Empty(t, out)
	assert.Equal(t, "Error: Start date must be before end date.\n", errOut)
}

func TestRootCommand_ErrInvalidMetrics(t *testing.T) {
	_, errOut, err := executeRoot(t, "-m", "cpus")
	require.Error(t, err)

	assert.Equal(t, "Error: Invalid metrics: cpus. Available: "+strings.Join(models.MetricNames, ", ")+"\n", errOut)
}

func TestRootCommand_ErrNoData(t *testing.T) {
	dump := filepath.Join(t.TempDir(), "accounting.log")
	header := "JobID|User|Account|Partition|State|Submit|Start|End|ReqCPUS|AllocCPUS|CPUTimeRAW|ReqMem|MaxRSS|AllocTRES|JobName"
	require.NoError(t, os.WriteFile(dump, []byte(header+"\n"), 0o644))

	out, errOut, err := executeRoot(t,
		"--log-file", dump,
		"--start", "2026-03-02", "--end", "2026-03-09",
	)
	require.Error(t, err)

	assert.Empty(t, out)
	assert.Equal(t, "No data found for the specified criteria.\n", errOut)
}

func TestRootCommand_EndToEnd(t *testing.T) {
	outDir := t.TempDir()

	dump := filepath.Join(t.TempDir(), "accounting.log")
	dumpContent := strings.Join([]string{
		"JobID|User|Account|Partition|State|Submit|Start|End|ReqCPUS|AllocCPUS|CPUTimeRAW|ReqMem|MaxRSS|AllocTRES|JobName",
		"101|alice|geo|gpu|COMPLETED|2026-03-02T08:00:00|2026-03-02T09:00:00|2026-03-02T11:00:00|4|4|28800|16G|8192M|cpu=4,gres/gpu=1|train",
		"102|bob|bio|batch|FAILED|2026-03-03T10:00:00|2026-03-03T10:05:00|2026-03-03T10:35:00|2|2|3600|8G|1024M|cpu=2|etl",
		"",
	}, "\n")
	require.NoError(t, os.WriteFile(dump, []byte(dumpContent), 0o644))

	cfgPath := filepath.Join(t.TempDir(), "slurm-plot.yml")
	cfgContent := fmt.Sprintf("output:\n  directory: %s\nlog:\n  level: error\n", outDir)
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgContent), 0o644))

	out, errOut, err := executeRoot(t,
		"--log-file", dump,
		"--config", cfgPath,
		"--start", "2026-03-02", "--end", "2026-03-09",
		"--output", "usage", "--format", "png",
		"--export", "csv",
		"--verbose",
	)
	require.NoError(t, err, errOut)

	assert.Contains(t, out, "Configuration loaded from: "+cfgPath)
	assert.Contains(t, out, "Plot saved to: "+filepath.Join(outDir, "usage.png"))
	assert.Contains(t, out, "Export saved to: "+filepath.Join(outDir, "usage_export.csv"))
	assert.Contains(t, out, "Total Jobs")
	assert.Contains(t, out, "CPU Efficiency")

	plot, err := os.ReadFile(filepath.Join(outDir, "usage.png"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(plot, []byte("\x89PNG\r\n\x1a\n")))

	report, err := os.ReadFile(filepath.Join(outDir, "usage_report.md"))
	require.NoError(t, err)
	assert.Contains(t, string(report), "# SLURM Job Analysis Report")
	assert.Contains(t, string(report), "**Total Jobs**: 2")

	export, err := os.ReadFile(filepath.Join(outDir, "usage_export.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(export)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "bucket_start,"+strings.Join(models.MetricNames, ","), lines[0])
}
