package renderers

import (
	"context"
	"fmt"
	"io"
	"strings"

	"slurm-plot/internal/models"
	"slurm-plot/internal/shared/loggers"
)

//go:generate mockgen -source=markdown_reporter.go -destination=./mocks/markdown_reporter_mock.go -package=mocks
type MarkdownReporter interface {
	// Write renders the summary statistics and the full aggregated table as
	// a markdown document.
	Write(ctx context.Context, input Input, w io.Writer) error
}

type markdownReporter struct{}

func NewMarkdownReporter() MarkdownReporter {
	return &markdownReporter{}
}

func (r *markdownReporter) Write(ctx context.Context, input Input, w io.Writer) error {
	logger := loggers.Ctx(ctx)

	var b strings.Builder
	b.WriteString("# SLURM Job Analysis Report\n\n")
	writeSummarySection(&b, input.Summary)
	writeTableSection(&b, input)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return errInternalRenderFailed(err)
	}

	logger.Debug().Int(loggers.FieldRecordCount, len(input.Rows)).Msg("rendered markdown report")

	return nil
}

func writeSummarySection(b *strings.Builder, stats *models.SummaryStatistics) {
	if stats == nil {
		stats = &models.SummaryStatistics{}
	}

	dateRange := "N/A to N/A"
	if stats.DateRange != nil {
		dateRange = fmt.Sprintf("%s to %s", stats.DateRange.Start.Format("2006-01-02"), stats.DateRange.End.Format("2006-01-02"))
	}

	b.WriteString("## Summary Statistics\n\n")
	fmt.Fprintf(b, "- **Total Jobs**: %d\n", stats.TotalJobs)
	fmt.Fprintf(b, "- **Date Range**: %s\n", dateRange)
	fmt.Fprintf(b, "- **Total CPU Hours Requested**: %.1f\n", stats.TotalCPUHoursRequested)
	fmt.Fprintf(b, "- **Total CPU Hours Used**: %.1f\n", stats.TotalCPUHoursUsed)
	fmt.Fprintf(b, "- **CPU Efficiency**: %.1f%%\n", stats.OverallCPUEfficiency*100)
	fmt.Fprintf(b, "- **Total Memory Requested**: %.1f GB\n", stats.TotalMemoryRequestedGB)
	fmt.Fprintf(b, "- **Total Memory Used**: %.1f GB\n", stats.TotalMemoryUsedGB)
	fmt.Fprintf(b, "- **Memory Efficiency**: %.1f%%\n", stats.OverallMemoryEfficiency*100)
	fmt.Fprintf(b, "- **Total GPU Hours**: %.1f\n", stats.TotalGPUHours)
	fmt.Fprintf(b, "- **Average Queue Time**: %.1f hours\n", stats.AvgQueueTimeHours)
	fmt.Fprintf(b, "- **Average Run Time**: %.1f hours\n", stats.AvgRunTimeHours)
}

func writeTableSection(b *strings.Builder, input Input) {
	b.WriteString("\n## Time Series Data\n\n")

	b.WriteString("| bucket_start |")
	for _, name := range models.MetricNames {
		fmt.Fprintf(b, " %s |", name)
	}
	b.WriteString("\n|---|")
	b.WriteString(strings.Repeat("---|", len(models.MetricNames)))
	b.WriteString("\n")

	for _, row := range input.Rows {
		fmt.Fprintf(b, "| %s |", input.Interval.FormatBucketStart(row.BucketStart))
		for _, name := range models.MetricNames {
			if name == models.MetricJobCount {
				fmt.Fprintf(b, " %d |", row.JobCount)
				continue
			}
			value, _ := row.Metric(name)
			fmt.Fprintf(b, " %.2f |", value)
		}
		b.WriteString("\n")
	}
}
