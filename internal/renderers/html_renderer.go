package renderers

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"slurm-plot/internal/shared/configs"
	"slurm-plot/internal/shared/loggers"
)

type htmlRenderer struct {
	cfg configs.PlottingConfig
}

// NewHTMLRenderer returns a ChartRenderer producing a single self-contained
// HTML page with one interactive line chart per metric group.
func NewHTMLRenderer(cfg configs.PlottingConfig) ChartRenderer {
	return &htmlRenderer{cfg: cfg}
}

func (r *htmlRenderer) Render(ctx context.Context, input Input, w io.Writer) error {
	logger := loggers.Ctx(ctx)
	started := time.Now()

	groups, err := GroupMetrics(input.Metrics)
	if err != nil {
		return err
	}

	xLabels := make([]string, 0, len(input.Rows))
	for _, row := range input.Rows {
		xLabels = append(xLabels, input.Interval.FormatBucketStart(row.BucketStart))
	}

	page := components.NewPage()
	page.PageTitle = input.Title
	page.SetLayout(components.PageFlexLayout)
	for _, group := range groups {
		page.AddCharts(r.lineChart(group, xLabels, input))
	}

	if err := page.Render(w); err != nil {
		return errInternalRenderFailed(err)
	}

	metricChartsRenderedTotal.WithLabelValues("html").Inc()
	metricRenderDuration.WithLabelValues("html").Observe(time.Since(started).Seconds())
	logger.Debug().Int(loggers.FieldRecordCount, len(input.Rows)).Msgf("rendered html page with %d charts", len(groups))

	return nil
}

func (r *htmlRenderer) lineChart(group MetricGroup, xLabels []string, input Input) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  r.cfg.Theme,
			Width:  fmt.Sprintf("%dpx", r.cfg.FigureWidth*100),
			Height: fmt.Sprintf("%dpx", r.cfg.FigureHeight*50),
		}),
		charts.WithTitleOpts(opts.Title{Title: group.Title, Subtitle: input.Title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(r.cfg.Legend)}),
		charts.WithYAxisOpts(opts.YAxis{Name: group.YLabel}),
	)

	line.SetXAxis(xLabels)
	for _, name := range group.Metrics {
		data := make([]opts.LineData, 0, len(input.Rows))
		for _, row := range input.Rows {
			value, _ := row.Metric(name)
			data = append(data, opts.LineData{Value: value})
		}
		line.AddSeries(MetricLabel(name), data)
	}
	line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true)}))

	return line
}
