package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"route-summary-service/internal/api/handlers"
	"route-summary-service/internal/format"
	"route-summary-service/internal/platform/metrics"
	"route-summary-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// Handlers stay unaware of concrete adapters. limiter and checks may be nil.
func NewRouter(svc *services.SummaryService, f *format.Formatter, limiter *rate.Limiter, checks map[string]handlers.HealthCheck) http.Handler {
	metrics.RegisterDefault()

	mux := http.NewServeMux()

	summaryHandler := &handlers.SummaryHandler{Service: svc, Formatter: f}
	resultHandler := &handlers.ResultHandler{Service: svc, Formatter: f}
	healthHandler := &handlers.HealthHandler{Checks: checks}

	mux.HandleFunc("/health", healthHandler.Health)
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/summaries", summaryHandler.Summarize)
	mux.HandleFunc("/results", resultHandler.Create)
	mux.HandleFunc("/results/{id}/summary", resultHandler.Summary)

	return loggingMiddleware(rateLimitMiddleware(limiter, mux))
}
