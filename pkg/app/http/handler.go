// Package http provides HTTP utilities including chi-compatible error handling
package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	apperrors "github.com/rwadex/rwa-dex-api/pkg/app/errors"
)

// HandlerFunc defines a function that returns an error for clean error handling
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// HandleError wraps an error-returning HandlerFunc into a standard http.HandlerFunc.
//
// Usage with chi:
//
//	r.Post("/connect", apphttp.HandleError(logger, h.connect))
func HandleError(logger *zap.Logger, h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			DefaultErrorHandler(w, r, logger, err)
		}
	}
}

// DefaultErrorHandler maps err onto the error envelope and logs it with the
// request context. Request bodies are never logged since they carry signatures.
func DefaultErrorHandler(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	var svcErr *apperrors.ServiceError
	if !errors.As(err, &svcErr) {
		svcErr = &apperrors.ServiceError{
			Category: apperrors.CategoryGeneralError,
			Message:  "Unexpected Service Error",
			Err:      err,
		}
	}
	// Dependency failures caused by the request deadline are reported as a timeout.
	if apperrors.IsInternalError(svcErr) && errors.Is(r.Context().Err(), context.DeadlineExceeded) {
		svcErr = apperrors.RequestTimeoutError(err).(*apperrors.ServiceError)
	}

	if logger != nil {
		fields := requestFields(r)
		fields = append(fields,
			zap.String("code", svcErr.ErrorCode()),
			zap.Int("status", svcErr.StatusCode()),
			zap.Error(err),
		)
		if apperrors.IsInternalError(svcErr) {
			logger.Error("Request failed", fields...)
		} else {
			logger.Warn("Request rejected", fields...)
		}
	}

	WriteError(w, svcErr.StatusCode(), svcErr.ErrorCode(), svcErr.Message, svcErr.Details)
}

// NotFound answers unmatched routes with the error envelope.
func NotFound(w http.ResponseWriter, r *http.Request) {
	WriteError(w, http.StatusNotFound, apperrors.CodeNotFound, "Route "+r.Method+" "+r.URL.Path+" not found", nil)
}

// MethodNotAllowed answers known routes hit with the wrong method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	WriteError(w, http.StatusMethodNotAllowed, apperrors.CodeNotSupported, "Method "+r.Method+" not allowed", nil)
}

func requestFields(r *http.Request) []zap.Field {
	fields := []zap.Field{
		zap.String("method", r.Method),
		zap.String("url", r.URL.Path),
		zap.String("query", r.URL.RawQuery),
		zap.String("remote_addr", r.RemoteAddr),
	}
	if reqID := middleware.GetReqID(r.Context()); reqID != "" {
		fields = append(fields, zap.String("request_id", reqID))
	}
	if rctx := chi.RouteContext(r.Context()); rctx != nil && len(rctx.URLParams.Keys) > 0 {
		params := make(map[string]string, len(rctx.URLParams.Keys))
		for i, k := range rctx.URLParams.Keys {
			params[k] = rctx.URLParams.Values[i]
		}
		fields = append(fields, zap.Any("params", params))
	}
	return fields
}
