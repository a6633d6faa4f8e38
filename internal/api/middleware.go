package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/sirdesai22/staffing-service/internal/metrics"
)

type ctxKey string

const ctxRequestID ctxKey = "request_id"

const RequestIDHeader = "X-Request-ID"

// statusResponseWriter records the status code written by the handler.
type statusResponseWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusResponseWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// RequestIDFromContext returns the id assigned by RequestIDMiddleware.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxRequestID).(string)
	return id
}

// RequestIDMiddleware keeps an incoming X-Request-ID or generates one, and
// echoes it on the response.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxRequestID, id)))
	})
}

// LoggingMiddleware logs every request and feeds the HTTP metrics. Routes are
// labelled by template so /engineers/1 and /engineers/2 share a series.
func LoggingMiddleware(log *zap.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			srw := &statusResponseWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(srw, r)
			dur := time.Since(start)

			route := r.URL.Path
			if cur := mux.CurrentRoute(r); cur != nil {
				if tpl, err := cur.GetPathTemplate(); err == nil {
					route = tpl
				}
			}
			metrics.HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(srw.status)).Inc()
			metrics.HTTPDuration.WithLabelValues(r.Method, route).Observe(dur.Seconds())

			log.Info("request",
				zap.String("method", r.Method),
				zap.String("route", route),
				zap.String("path", r.URL.Path),
				zap.Int("status", srw.status),
				zap.Duration("duration", dur),
				zap.String("request_id", RequestIDFromContext(r.Context())),
			)
		})
	}
}

func RecoveryMiddleware(log *zap.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("panic",
						zap.Any("err", rec),
						zap.String("path", r.URL.Path),
						zap.String("request_id", RequestIDFromContext(r.Context())),
					)
					writeError(w, http.StatusInternalServerError, ErrorResponse{"internal", "internal server error", map[string]interface{}{}})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
