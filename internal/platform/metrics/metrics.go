package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the service
	Registry = prometheus.NewRegistry()
	// HTTPRequests counts requests by method, path, and status
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	// HTTPDuration records request durations in seconds
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)
	// RateLimited counts requests rejected by the limiter
	RateLimited = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "http_rate_limited_total", Help: "Requests rejected by the rate limiter."},
	)

	// Summaries counts produced summaries by result mode and report status
	Summaries = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "route_summaries_total", Help: "Route summaries produced by mode and status."},
		[]string{"mode", "status"},
	)
	// DepotAttributions counts routes by how their depot was resolved
	DepotAttributions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "route_depot_attributions_total", Help: "Routes attributed to a depot, by attribution rule."},
		[]string{"rule"},
	)
	// SummaryWarnings counts ambiguous depot attributions
	SummaryWarnings = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "route_summary_warnings_total", Help: "Warnings raised while aggregating costs."},
	)
	// CacheLookups counts summary cache lookups by result (hit, miss, error)
	CacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "summary_cache_lookups_total", Help: "Summary cache lookups by result."},
		[]string{"result"},
	)
)

// RegisterDefault registers collectors to the service registry.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(RateLimited)
		Registry.MustRegister(Summaries)
		Registry.MustRegister(DepotAttributions)
		Registry.MustRegister(SummaryWarnings)
		Registry.MustRegister(CacheLookups)
		// Go/process collectors on our registry
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

var regOnce sync.Once
