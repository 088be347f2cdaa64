package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"slurm-plot/internal/aggregators"
	"slurm-plot/internal/exports"
	"slurm-plot/internal/extractors"
	"slurm-plot/internal/models"
	"slurm-plot/internal/processors"
	"slurm-plot/internal/renderers"
	"slurm-plot/internal/reports"
	"slurm-plot/internal/shared/artifacts"
	"slurm-plot/internal/shared/configs"
	"slurm-plot/internal/shared/loggers"
	"slurm-plot/internal/shared/svcerrors"
)

const dateLayout = "2006-01-02"

// jobStates lists the sacct job states the --state flag accepts.
var jobStates = []string{"COMPLETED", "FAILED", "CANCELLED", "TIMEOUT", "RUNNING", "PENDING"}

var (
	flagStart       string
	flagEnd         string
	flagAccount     string
	flagPartition   string
	flagState       string
	flagUser        string
	flagInterval    string
	flagMetrics     []string
	flagOutput      string
	flagFormat      string
	flagInteractive bool
	flagConfig      string
	flagLogFile     string
	flagExport      string
	flagVerbose     bool
	flagDryRun      bool
)

var rootCmd = &cobra.Command{
	Use:   "slurm-plot",
	Short: "Extract, aggregate and plot SLURM job accounting data",
	Long: `slurm-plot pulls job accounting records from SLURM via the sacct command
(or from an accounting dump file), aggregates them into time series buckets,
and renders charts, a markdown report and optional table exports.

Examples:

  # Plot CPU and memory usage for the last 7 days
  slurm-plot -m req_cpus -m alloc_cpus -m req_mem -m max_rss

  # Interactive HTML chart for a single account
  slurm-plot --account myproject --interactive

  # Weekly view of failed jobs since January, exported as CSV
  slurm-plot --start 2026-01-01 --state failed --interval week --export csv`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		err := runReport(cmd)
		if err != nil {
			printRunError(cmd.ErrOrStderr(), err)
		}
		return err
	},
}

// Execute runs the root command. Errors are already printed by the time it
// returns, so the caller only decides the exit code.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&flagStart, "start", "s", "", "start date (YYYY-MM-DD), default: 7 days before end")
	flags.StringVarP(&flagEnd, "end", "e", "", "end date (YYYY-MM-DD), default: today")
	flags.StringVarP(&flagAccount, "account", "A", "", "filter by SLURM account")
	flags.StringVarP(&flagPartition, "partition", "p", "", "filter by SLURM partition")
	flags.StringVar(&flagState, "state", "", "filter by job state ("+strings.Join(jobStates, ", ")+")")
	flags.StringVarP(&flagUser, "user", "u", "", "filter by username")
	flags.StringVarP(&flagInterval, "interval", "i", "day", "aggregation interval (hour, day, week)")
	flags.StringArrayVarP(&flagMetrics, "metrics", "m", nil, "metric to plot, repeatable (default: all)")
	flags.StringVarP(&flagOutput, "output", "o", "slurm_plot", "output filename without extension")
	flags.StringVarP(&flagFormat, "format", "f", "png", "plot format (png, svg, html)")
	flags.BoolVar(&flagInteractive, "interactive", false, "generate an interactive HTML chart (implies --format html)")
	flags.StringVar(&flagExport, "export", "", "also export the aggregated table (csv, json)")
	flags.BoolVarP(&flagVerbose, "verbose", "v", false, "verbose output with a run summary table")
	flags.BoolVar(&flagDryRun, "dry-run", false, "validate options and show what would run, without executing")

	persistent := rootCmd.PersistentFlags()
	persistent.StringVarP(&flagConfig, "config", "c", "", "path to configuration file")
	persistent.StringVar(&flagLogFile, "log-file", "", "read jobs from a SLURM accounting dump instead of running sacct")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		cmd.PrintErrf("Error: %v\n", err)
		cmd.PrintErrln(cmd.UsageString())
		return err
	})
}

func runReport(cmd *cobra.Command) error {
	cfg, err := configs.LoadConfig(flagConfig)
	if err != nil {
		return err
	}

	start, end, err := resolveWindow(flagStart, flagEnd)
	if err != nil {
		return err
	}

	interval, err := models.ParseInterval(flagInterval)
	if err != nil {
		return err
	}

	state, err := resolveState(flagState)
	if err != nil {
		return err
	}

	if err := validateMetrics(flagMetrics); err != nil {
		return err
	}

	format := flagFormat
	if flagInteractive {
		format = "html"
	}
	if err := validateFormat(format); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if flagVerbose {
		printRunPlan(out, start, end, interval, format)
	}

	if flagDryRun {
		fmt.Fprintln(out, "Dry run mode - no actual processing will be performed.")
		return nil
	}

	logLevel := cfg.Log.Level
	if flagVerbose {
		logLevel = "debug"
	}
	logger, err := loggers.New(logLevel)
	if err != nil {
		return err
	}
	logger = logger.With().Str(loggers.FieldApp, "slurm-plot").Logger()
	ctx := logger.WithContext(cmd.Context())

	report, err := newReportService(cfg).Generate(ctx, reports.GenerateParams{
		Start:     start,
		End:       end,
		Account:   flagAccount,
		Partition: flagPartition,
		State:     state,
		User:      flagUser,
		Interval:  interval,
	})
	if err != nil {
		return err
	}

	store, err := artifacts.NewStore(cfg.Output.Directory)
	if err != nil {
		return err
	}

	plotPath, err := renderChart(ctx, cfg, store, report, format)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Plot saved to: %s\n", plotPath)

	if err := writeMarkdownReport(ctx, store, report); err != nil {
		return err
	}

	if flagExport != "" {
		result, err := exports.NewTableExporter(store).Export(
			ctx,
			exports.Format(flagExport),
			report.Rows,
			fmt.Sprintf("%s_export.%s", flagOutput, flagExport),
		)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Export saved to: %s\n", result.Path)
	}

	if flagVerbose {
		printSummaryTable(out, report)
	}

	return nil
}

// resolveWindow applies the original CLI defaults: end falls back to now and
// start to seven days before end. Dates are calendar days in the server's
// location, matching how sacct interprets its window arguments.
func resolveWindow(startFlag, endFlag string) (time.Time, time.Time, error) {
	end := time.Now()
	if endFlag != "" {
		var err error
		end, err = time.ParseInLocation(dateLayout, endFlag, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("Invalid date format: %s. Use YYYY-MM-DD.", endFlag)
		}
	}

	start := end.AddDate(0, 0, -7)
	if startFlag != "" {
		var err error
		start, err = time.ParseInLocation(dateLayout, startFlag, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("Invalid date format: %s. Use YYYY-MM-DD.", startFlag)
		}
	}

	if !start.Before(end) {
		return time.Time{}, time.Time{}, errors.New("Start date must be before end date.")
	}
	return start, end, nil
}

// resolveState canonicalizes the --state value to the uppercase form sacct
// expects. Matching is case-insensitive.
func resolveState(value string) (string, error) {
	if value == "" {
		return "", nil
	}
	for _, state := range jobStates {
		if strings.EqualFold(state, value) {
			return state, nil
		}
	}
	return "", fmt.Errorf("Invalid state: %s. Available: %s", value, strings.Join(jobStates, ", "))
}

func validateMetrics(selection []string) error {
	var invalid []string
	for _, name := range selection {
		if !models.IsMetricName(name) {
			invalid = append(invalid, name)
		}
	}
	if len(invalid) > 0 {
		return fmt.Errorf("Invalid metrics: %s. Available: %s",
			strings.Join(invalid, ", "), strings.Join(models.MetricNames, ", "))
	}
	return nil
}

func validateFormat(format string) error {
	switch format {
	case "png", "svg", "html":
		return nil
	}
	return fmt.Errorf("Invalid format: %s. Available: png, svg, html", format)
}

func printRunPlan(w io.Writer, start, end time.Time, interval models.Interval, format string) {
	configName := flagConfig
	if configName == "" {
		configName = "default"
	}
	metricNames := flagMetrics
	if len(metricNames) == 0 {
		metricNames = models.MetricNames
	}
	fmt.Fprintf(w, "Configuration loaded from: %s\n", configName)
	fmt.Fprintf(w, "Date range: %s to %s\n", start.Format(dateLayout), end.Format(dateLayout))
	fmt.Fprintf(w, "Metrics: %s\n", strings.Join(metricNames, ", "))
	fmt.Fprintf(w, "Interval: %s\n", interval)
	fmt.Fprintf(w, "Output: %s.%s\n", flagOutput, format)
}

func newReportService(cfg *configs.Config) reports.ReportService {
	var extractor extractors.Extractor
	if flagLogFile != "" {
		extractor = extractors.NewLogFileExtractor(flagLogFile)
	} else {
		extractor = extractors.NewSacctExtractor(cfg.Slurm.SacctCommand, time.Duration(cfg.Slurm.Timeout)*time.Second)
	}

	return reports.NewReportService(
		extractor,
		processors.NewRecordNormalizer(),
		processors.NewMetricDeriver(),
		aggregators.NewIntervalAggregator(),
		aggregators.NewSummaryCalculator(),
	)
}

// renderChart renders into a buffer first so a failed render leaves no
// half-written artifact behind.
func renderChart(ctx context.Context, cfg *configs.Config, store artifacts.Store, report *reports.Report, format string) (string, error) {
	var renderer renderers.ChartRenderer
	if format == "html" {
		renderer = renderers.NewHTMLRenderer(cfg.Plotting)
	} else {
		renderer = renderers.NewStaticRenderer(cfg.Plotting, cfg.Output, renderers.ImageFormat(format))
	}

	input := renderers.Input{
		Title:    renderers.DefaultTitle(report.WindowStart, report.WindowEnd),
		Interval: report.Interval,
		Rows:     report.Rows,
		Summary:  report.Summary,
		Metrics:  flagMetrics,
	}

	var buf bytes.Buffer
	if err := renderer.Render(ctx, input, &buf); err != nil {
		return "", err
	}

	result, err := store.Write(ctx, fmt.Sprintf("%s.%s", flagOutput, format), &buf, artifacts.WriteOptions{AllowOverwrite: true})
	if err != nil {
		return "", err
	}
	return result.Path, nil
}

func writeMarkdownReport(ctx context.Context, store artifacts.Store, report *reports.Report) error {
	input := renderers.Input{
		Interval: report.Interval,
		Rows:     report.Rows,
		Summary:  report.Summary,
	}

	var buf bytes.Buffer
	if err := renderers.NewMarkdownReporter().Write(ctx, input, &buf); err != nil {
		return err
	}

	result, err := store.Write(ctx, flagOutput+"_report.md", &buf, artifacts.WriteOptions{AllowOverwrite: true})
	if err != nil {
		return err
	}
	loggers.Ctx(ctx).Debug().Str(loggers.FieldArtifact, result.Path).Msg("markdown report written")
	return nil
}

func printSummaryTable(w io.Writer, report *reports.Report) {
	stats := report.Summary
	if stats == nil {
		stats = &models.SummaryStatistics{}
	}
	dateRange := "N/A"
	if stats.DateRange != nil {
		dateRange = fmt.Sprintf("%s to %s", stats.DateRange.Start.Format(dateLayout), stats.DateRange.End.Format(dateLayout))
	}

	fmt.Fprintln(w)
	table := tablewriter.NewWriter(w)
	table.Header("Property", "Value")
	table.Append([]string{"Total Jobs", fmt.Sprintf("%d", stats.TotalJobs)})
	table.Append([]string{"Date Range", dateRange})
	table.Append([]string{"Buckets", fmt.Sprintf("%d", len(report.Rows))})
	table.Append([]string{"Interval", string(report.Interval)})
	table.Append([]string{"CPU Hours Used", fmt.Sprintf("%.1f", stats.TotalCPUHoursUsed)})
	table.Append([]string{"CPU Efficiency", fmt.Sprintf("%.1f%%", stats.OverallCPUEfficiency*100)})
	table.Append([]string{"Memory Efficiency", fmt.Sprintf("%.1f%%", stats.OverallMemoryEfficiency*100)})
	table.Append([]string{"GPU Hours", fmt.Sprintf("%.1f", stats.TotalGPUHours)})
	table.Append([]string{"Avg Queue Time (h)", fmt.Sprintf("%.1f", stats.AvgQueueTimeHours)})
	table.Append([]string{"Avg Run Time (h)", fmt.Sprintf("%.1f", stats.AvgRunTimeHours)})
	table.Render()
}

// printRunError keeps the human-facing failure output stable: empty-result
// outcomes print as plain one-liners, everything else gets an Error prefix.
func printRunError(w io.Writer, err error) {
	svcErr, ok := svcerrors.AsServiceError(err)
	if !ok {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}

	if svcErr.IsNotFound() {
		fmt.Fprintln(w, sentence(svcErr.Message))
		return
	}
	if svcErr.IsInternalError() && svcErr.Cause != nil {
		fmt.Fprintf(w, "Error: %v\n", svcErr.Cause)
		return
	}
	fmt.Fprintf(w, "Error: %s\n", svcErr.Message)
}

// sentence turns a lowercase service message into a standalone sentence.
func sentence(msg string) string {
	if msg == "" {
		return msg
	}
	r, size := utf8.DecodeRuneInString(msg)
	out := string(unicode.ToUpper(r)) + msg[size:]
	if !strings.HasSuffix(out, ".") {
		out += "."
	}
	return out
}
