package extractors

import (
	"context"
	"time"

	"slurm-plot/internal/models"
)

// Query selects which accounting records to extract. Start is inclusive,
// End exclusive. The filter fields are optional; empty means no filtering.
type Query struct {
	Start     time.Time
	End       time.Time
	Account   string
	Partition string
	State     string
	User      string
}

//go:generate mockgen -source=extractor.go -destination=./mocks/extractor_mock.go -package=mocks
type Extractor interface {
	Extract(ctx context.Context, query Query) ([]*models.RawJobRecord, error)
}
