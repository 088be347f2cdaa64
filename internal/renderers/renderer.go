package renderers

import (
	"context"
	"fmt"
	"io"
	"time"

	"slurm-plot/internal/models"
)

// ImageFormat names a static chart encoding.
type ImageFormat string

const (
	FormatPNG ImageFormat = "png"
	FormatSVG ImageFormat = "svg"
)

// Input is the rendering contract shared by every back end: the aggregated
// table, how it was bucketed, and which metrics to draw. An empty Metrics
// selection means all of them.
type Input struct {
	Title    string
	Interval models.Interval
	Rows     []*models.AggregatedRow
	Summary  *models.SummaryStatistics
	Metrics  []string
}

//go:generate mockgen -source=renderer.go -destination=./mocks/renderer_mock.go -package=mocks
type ChartRenderer interface {
	// Render draws one chart per non-empty metric group into w.
	Render(ctx context.Context, input Input, w io.Writer) error
}

// DefaultTitle names a chart after the window it covers.
func DefaultTitle(start, end time.Time) string {
	return fmt.Sprintf("SLURM Job Metrics (%s to %s)", start.Format("2006-01-02"), end.Format("2006-01-02"))
}
