package reports

import (
	"context"
	"time"

	"slurm-plot/internal/aggregators"
	"slurm-plot/internal/extractors"
	"slurm-plot/internal/models"
	"slurm-plot/internal/processors"
	"slurm-plot/internal/shared/loggers"
	"slurm-plot/internal/shared/metrics"
	"slurm-plot/internal/shared/ulid"
)

// defaultWindow is how far back a report reaches when the caller gives no
// start date.
const defaultWindow = 7 * 24 * time.Hour

// GenerateParams selects which accounting records feed a report and how
// they are bucketed. Zero times default to the last seven days; an empty
// interval defaults to daily buckets. The filter fields pass through to the
// extraction source unchanged.
type GenerateParams struct {
	Start     time.Time
	End       time.Time
	Account   string
	Partition string
	State     string
	User      string
	Interval  models.Interval
}

// Report is one finished pipeline run: the aggregated table, its summary
// statistics and the window that produced them. RunID ties log lines and
// artifacts of the same run together.
type Report struct {
	RunID       string
	Interval    models.Interval
	WindowStart time.Time
	WindowEnd   time.Time
	Rows        []*models.AggregatedRow
	Summary     *models.SummaryStatistics
}

//go:generate mockgen -source=report_service.go -destination=./mocks/report_service_mock.go -package=mocks
type ReportService interface {
	// Generate runs extraction, normalization, metric derivation and
	// aggregation for one window and returns the resulting report.
	Generate(ctx context.Context, params GenerateParams) (*Report, error)
}

type reportService struct {
	extractor         extractors.Extractor
	normalizer        processors.RecordNormalizer
	deriver           processors.MetricDeriver
	aggregator        aggregators.IntervalAggregator
	summaryCalculator aggregators.SummaryCalculator
}

func NewReportService(
	extractor extractors.Extractor,
	normalizer processors.RecordNormalizer,
	deriver processors.MetricDeriver,
	aggregator aggregators.IntervalAggregator,
	summaryCalculator aggregators.SummaryCalculator,
) ReportService {
	return &reportService{
		extractor:         extractor,
		normalizer:        normalizer,
		deriver:           deriver,
		aggregator:        aggregator,
		summaryCalculator: summaryCalculator,
	}
}

func (s *reportService) Generate(ctx context.Context, params GenerateParams) (*Report, error) {
	logger := loggers.Ctx(ctx)
	runID := ulid.NewULID()
	started := time.Now()

	end := params.End
	if end.IsZero() {
		end = time.Now()
	}
	start := params.Start
	if start.IsZero() {
		start = end.Add(-defaultWindow)
	}
	if !start.Before(end) {
		return nil, errInvalidWindow(start, end)
	}

	interval := params.Interval
	if interval == "" {
		interval = models.IntervalDay
	}

	logger.Debug().
		Str(loggers.FieldRunID, runID).
		Str(loggers.FieldInterval, string(interval)).
		Msgf("started report run for window %s to %s", start.Format(time.RFC3339), end.Format(time.RFC3339))

	raw, err := s.extractor.Extract(ctx, extractors.Query{
		Start:     start,
		End:       end,
		Account:   params.Account,
		Partition: params.Partition,
		State:     params.State,
		User:      params.User,
	})
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		svcErr := errNoData()
		metricReportsGeneratedTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}

	normalized := s.normalizer.Normalize(ctx, raw)
	if len(normalized) == 0 {
		svcErr := errNoUsableRecords()
		metricReportsGeneratedTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}

	enriched := s.deriver.Derive(normalized)

	rows, err := s.aggregator.Aggregate(ctx, enriched, interval)
	if err != nil {
		return nil, err
	}

	summary := s.summaryCalculator.Summarize(rows)

	metricReportsGeneratedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	metricReportDuration.WithLabelValues(string(interval)).Observe(time.Since(started).Seconds())
	logger.Info().
		Str(loggers.FieldRunID, runID).
		Str(loggers.FieldInterval, string(interval)).
		Int(loggers.FieldRecordCount, len(raw)).
		Msgf("report run produced %d buckets", len(rows))

	return &Report{
		RunID:       runID,
		Interval:    interval,
		WindowStart: start,
		WindowEnd:   end,
		Rows:        rows,
		Summary:     summary,
	}, nil
}
