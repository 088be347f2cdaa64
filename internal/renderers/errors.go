package renderers

import (
	"fmt"

	"slurm-plot/internal/shared/svcerrors"
)

const (
	codeNoValidMetrics    = "REN_1000"
	codeUnsupportedFormat = "REN_1001"

	codeInternalRenderFailed = "REN_9000"
)

// errNoValidMetrics returns an error when a metric selection matches nothing plottable.
func errNoValidMetrics(selection []string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeNoValidMetrics, fmt.Sprintf("no valid metrics to plot in selection %v", selection), nil)
}

// errUnsupportedFormat returns an error when a static chart format is not png or svg.
func errUnsupportedFormat(format string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeUnsupportedFormat, fmt.Sprintf("unsupported image format %q: want png or svg", format), nil)
}

// errInternalRenderFailed returns an error when a chart back end fails to draw or encode.
func errInternalRenderFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRenderFailed, fmt.Errorf("renderFailed: %w", cause))
}
