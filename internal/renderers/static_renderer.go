package renderers

import (
	"context"
	"image/color"
	"io"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"

	"slurm-plot/internal/models"
	"slurm-plot/internal/shared/configs"
	"slurm-plot/internal/shared/loggers"
)

type staticRenderer struct {
	cfg    configs.PlottingConfig
	output configs.OutputConfig
	format ImageFormat
}

// NewStaticRenderer returns a ChartRenderer producing one PNG or SVG image
// with the metric groups stacked vertically, figure_height inches each.
func NewStaticRenderer(cfg configs.PlottingConfig, output configs.OutputConfig, format ImageFormat) ChartRenderer {
	return &staticRenderer{cfg: cfg, output: output, format: format}
}

func (r *staticRenderer) Render(ctx context.Context, input Input, w io.Writer) error {
	logger := loggers.Ctx(ctx)
	started := time.Now()

	groups, err := GroupMetrics(input.Metrics)
	if err != nil {
		return err
	}

	plots := make([][]*plot.Plot, len(groups))
	for i, group := range groups {
		p, err := r.groupPlot(group, input)
		if err != nil {
			return err
		}
		plots[i] = []*plot.Plot{p}
	}

	width := vg.Length(r.cfg.FigureWidth) * vg.Inch
	height := vg.Length(r.cfg.FigureHeight) * vg.Inch * vg.Length(len(groups))

	switch r.format {
	case FormatPNG:
		img := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(r.cfg.DPI))
		r.drawTiles(plots, draw.New(img))
		if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(w); err != nil {
			return errInternalRenderFailed(err)
		}
	case FormatSVG:
		svg := vgsvg.New(width, height)
		r.drawTiles(plots, draw.New(svg))
		if _, err := svg.WriteTo(w); err != nil {
			return errInternalRenderFailed(err)
		}
	default:
		return errUnsupportedFormat(string(r.format))
	}

	metricChartsRenderedTotal.WithLabelValues(string(r.format)).Inc()
	metricRenderDuration.WithLabelValues(string(r.format)).Observe(time.Since(started).Seconds())
	logger.Debug().Int(loggers.FieldRecordCount, len(input.Rows)).Msgf("rendered %s image with %d charts", r.format, len(groups))

	return nil
}

func (r *staticRenderer) drawTiles(plots [][]*plot.Plot, dc draw.Canvas) {
	if !r.output.Transparent {
		dc.SetColor(color.White)
		dc.Fill(dc.Rectangle.Path())
	}

	tiles := draw.Tiles{
		Rows: len(plots),
		Cols: 1,
		PadX: vg.Millimeter * 5, PadY: vg.Millimeter * 5,
		PadTop: vg.Millimeter * 5, PadBottom: vg.Millimeter * 5,
		PadLeft: vg.Millimeter * 5, PadRight: vg.Millimeter * 5,
	}
	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}
}

func (r *staticRenderer) groupPlot(group MetricGroup, input Input) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = group.Title
	p.X.Label.Text = "Time"
	p.Y.Label.Text = group.YLabel
	if r.output.Transparent {
		p.BackgroundColor = color.Transparent
	}

	layout := "2006-01-02"
	if input.Interval == models.IntervalHour {
		layout = "2006-01-02 15:04"
	}
	p.X.Tick.Marker = plot.TimeTicks{Format: layout}

	if r.cfg.Grid {
		p.Add(plotter.NewGrid())
	}

	for i, name := range group.Metrics {
		xys := make(plotter.XYs, 0, len(input.Rows))
		for _, row := range input.Rows {
			value, _ := row.Metric(name)
			xys = append(xys, plotter.XY{X: float64(row.BucketStart.Unix()), Y: value})
		}

		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, errInternalRenderFailed(err)
		}
		line.Color = plotutil.Color(i)
		points.Color = plotutil.Color(i)
		points.Shape = plotutil.Shape(i)
		p.Add(line, points)
		if r.cfg.Legend {
			p.Legend.Add(MetricLabel(name), line, points)
		}
	}
	p.Legend.Top = true

	return p, nil
}
