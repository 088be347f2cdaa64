package http

import (
	"fmt"

	"slurm-plot/internal/shared/svcerrors"
)

const (
	codeInvalidDateParam   = "HTP_1000"
	codeInvalidMinJobCount = "HTP_1001"

	codeInternalWriteFailed = "HTP_9000"
)

// errInvalidDateParam returns an error when a date query parameter is not YYYY-MM-DD.
func errInvalidDateParam(name, value string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidDateParam, fmt.Sprintf("invalid %s date %q: want YYYY-MM-DD", name, value), nil)
}

// errInvalidMinJobCount returns an error when min_job_count is not a non-negative integer.
func errInvalidMinJobCount(value string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidMinJobCount, fmt.Sprintf("invalid min_job_count %q: want a non-negative integer", value), nil)
}

// errInternalWriteFailed returns an error when a response body cannot be encoded.
func errInternalWriteFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalWriteFailed, fmt.Errorf("writeResponseFailed: %w", cause))
}
