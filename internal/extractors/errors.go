package extractors

import (
	"fmt"

	"slurm-plot/internal/shared/svcerrors"
)

const (
	codeMissingColumn     = "EXT_1000"
	codeLogFileUnreadable = "EXT_1001"

	codeInternalSacctFailed = "EXT_9000"
)

// errMissingColumn returns an error when an accounting dump header lacks a required column.
func errMissingColumn(column string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeMissingColumn, fmt.Sprintf("accounting dump is missing required column %q", column), cause)
}

// errLogFileUnreadable returns an error when the accounting dump file cannot be read.
func errLogFileUnreadable(path string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeLogFileUnreadable, fmt.Sprintf("cannot read accounting dump %q", path), cause)
}

// errInternalSacctFailed returns an error when the sacct invocation fails.
func errInternalSacctFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSacctFailed, fmt.Errorf("sacctFailed: %w", cause))
}
