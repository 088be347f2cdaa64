package reports

import (
	"fmt"
	"time"

	"slurm-plot/internal/shared/svcerrors"
)

const (
	codeInvalidWindow = "RPT_1000"

	codeNoData          = "RPT_2000"
	codeNoUsableRecords = "RPT_2001"
)

// errInvalidWindow returns an error when the report window is empty or reversed.
func errInvalidWindow(start, end time.Time) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidWindow, fmt.Sprintf("start date %s must be before end date %s", start.Format("2006-01-02"), end.Format("2006-01-02")), nil)
}

// errNoData returns an error when extraction yields no records at all.
func errNoData() *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeNoData, "no data found for the specified criteria", nil)
}

// errNoUsableRecords returns an error when every extracted record was dropped
// during normalization.
func errNoUsableRecords() *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeNoUsableRecords, "no data to plot after processing", nil)
}
