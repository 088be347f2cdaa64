package exports

import (
	"fmt"

	"slurm-plot/internal/shared/svcerrors"
)

const (
	codeUnsupportedFormat = "EXP_1000"

	codeInternalExportFailed = "EXP_9000"
)

// errUnsupportedFormat returns an error when an export format is not csv or json.
func errUnsupportedFormat(format string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeUnsupportedFormat, fmt.Sprintf("unsupported export format %q: want csv or json", format), nil)
}

// errInternalExportFailed returns an error when encoding or storing an export fails.
func errInternalExportFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalExportFailed, fmt.Errorf("exportFailed: %w", cause))
}
