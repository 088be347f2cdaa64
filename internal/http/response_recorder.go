package http

import (
	"net/http"

	"slurm-plot/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5/middleware"
)

// responseRecorder wraps the http.ResponseWriter so the outer middlewares can
// read the status, the bytes written and the service error of a finished
// request.
type responseRecorder struct {
	middleware.WrapResponseWriter
	svcError *svcerrors.ServiceError
}

func newResponseRecorder(w http.ResponseWriter, protoMajor int) *responseRecorder {
	return &responseRecorder{
		WrapResponseWriter: middleware.NewWrapResponseWriter(w, protoMajor),
	}
}

// SetServiceError records the error a handler failed with. The metrics and
// logging middlewares label their observations with its code.
func (w *responseRecorder) SetServiceError(svcError *svcerrors.ServiceError) {
	w.svcError = svcError
}

func (w *responseRecorder) ErrorCode() string {
	if w.svcError != nil {
		return w.svcError.Code
	}
	return ""
}
