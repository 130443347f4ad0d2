// ABOUTME: Prometheus-backed metrics for fetch cycles and the companion API
// ABOUTME: Uses a private registry so each collector can be served and tested in isolation

package collector

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "newsgrid"

// Collector implements interfaces.Metrics and exposes HTTP request metrics
type Collector struct {
	registry *prometheus.Registry

	branchRequests   *prometheus.CounterVec
	branchArticles   *prometheus.CounterVec
	cycles           *prometheus.CounterVec
	cycleDuration    prometheus.Histogram
	cyclesSuperseded prometheus.Counter

	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	activeSessions prometheus.Gauge
}

// New creates a collector with its own registry. Go runtime and process
// collectors are registered alongside the application metrics.
func New() *Collector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,
		branchRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "branch_requests_total",
				Help:      "Total number of news queries issued, by branch and outcome",
			},
			[]string{"branch", "outcome"},
		),
		branchArticles: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "branch_articles_total",
				Help:      "Total number of articles decoded, by branch",
			},
			[]string{"branch"},
		),
		cycles: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "fetch_cycles_total",
				Help:      "Total number of completed fetch cycles, by page status",
			},
			[]string{"status"},
		),
		cycleDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "fetch_cycle_duration_seconds",
				Help:      "Fetch cycle duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
		),
		cyclesSuperseded: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "fetch_cycles_superseded_total",
				Help:      "Total number of fetch cycles discarded after a newer page change",
			},
		),
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		activeSessions: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "sessions_active",
				Help:      "Number of live browsing sessions",
			},
		),
	}
}

// ObserveBranch implements interfaces.Metrics
func (c *Collector) ObserveBranch(branch, outcome string, articles int) {
	c.branchRequests.WithLabelValues(branch, outcome).Inc()
	c.branchArticles.WithLabelValues(branch).Add(float64(articles))
}

// ObserveCycle implements interfaces.Metrics
func (c *Collector) ObserveCycle(status string, duration time.Duration) {
	c.cycles.WithLabelValues(status).Inc()
	c.cycleDuration.Observe(duration.Seconds())
}

// CycleSuperseded implements interfaces.Metrics
func (c *Collector) CycleSuperseded() {
	c.cyclesSuperseded.Inc()
}

// ObserveRequest records one served HTTP request
func (c *Collector) ObserveRequest(method, path string, status int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// SetActiveSessions reports the number of live sessions
func (c *Collector) SetActiveSessions(n int) {
	c.activeSessions.Set(float64(n))
}

// Handler serves the registry in the Prometheus exposition format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
