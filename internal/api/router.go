package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewRouter returns the application router with request id, logging and
// panic recovery applied to every matched route.
func NewRouter(h *Handler, log *zap.Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestIDMiddleware, LoggingMiddleware(log), RecoveryMiddleware(log))

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	h.RegisterRoutes(r)
	return r
}
