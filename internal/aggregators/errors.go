package aggregators

import (
	"fmt"

	"slurm-plot/internal/shared/svcerrors"
)

const (
	codeInvalidInterval = "AGG_1000"
)

// errInvalidInterval returns an error when a caller asks for an unsupported
// aggregation granularity.
func errInvalidInterval(interval string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidInterval, fmt.Sprintf("unsupported aggregation interval %q: want one of hour, day, week", interval), nil)
}
