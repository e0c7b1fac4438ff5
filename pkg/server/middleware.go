package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/cors"

	"github.com/shouni/gemini-mannequin-proxy/pkg/adapters"
	"github.com/shouni/gemini-mannequin-proxy/pkg/domain"
	"github.com/shouni/gemini-mannequin-proxy/pkg/observability"
	"github.com/shouni/gemini-mannequin-proxy/pkg/sl"
)

// RequestIDHeader is the header used to propagate request IDs.
const RequestIDHeader = "X-Request-ID"

// Middleware wraps an http.Handler to add cross-cutting behavior.
type Middleware func(http.Handler) http.Handler

// Chain composes middleware so that Chain(a, b, c)(h) is a(b(c(h))).
func Chain(middlewares ...Middleware) Middleware {
	return func(next http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			next = middlewares[i](next)
		}
		return next
	}
}

// Recovery catches panics in the handler and converts them to a 500
// ErrorEnvelope. The server keeps accepting requests afterwards.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				err := &domain.UnexpectedError{Cause: fmt.Errorf("panic: %v", rec)}
				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("request_id", adapters.RequestIDFromContext(r.Context())),
					sl.Err(err),
				)
				status, msg := domain.Describe(err)
				adapters.WriteError(w, status, msg)
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// RequestID assigns a request ID to each request. An incoming X-Request-ID
// header is reused; otherwise a new UUID is generated. The ID is echoed in
// the response header and stored in the request context.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(adapters.ContextWithRequestID(r.Context(), id)))
		})
	}
}

// Logging emits one structured access log entry per request.
func Logging(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := observability.NewStatusWriter(w)

			next.ServeHTTP(sw, r)

			logger.LogAttrs(r.Context(), slog.LevelInfo, "request completed",
				slog.String("request_id", adapters.RequestIDFromContext(r.Context())),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.Status()),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

// Metrics records request metrics.
func Metrics() Middleware {
	return observability.MetricsMiddleware
}

// CORS allows cross-origin requests from any origin.
func CORS() Middleware {
	return cors.AllowAll().Handler
}
