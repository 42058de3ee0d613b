package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"vector-forces/internal/forces"
	"vector-forces/internal/handlers"
	"vector-forces/internal/observability"
)

// NewRouter builds the HTTP surface: the vector endpoints plus health and
// Prometheus scraping, all behind the observability middleware chain.
func NewRouter(api *forces.API) http.Handler {

	r := chi.NewRouter()

	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)

	r.Get("/health", handlers.Health)

	r.Handle("/metrics", observability.PrometheusHandler())

	forces.RegisterRoutes(r, api)

	return r
}
