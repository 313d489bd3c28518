package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "orgbook"

// Collector holds all Prometheus metrics for the application. Each collector
// owns its registry so tests can build as many as they like.
type Collector struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Directory metrics
	Mutations           *prometheus.CounterVec
	ImportedRows        *prometheus.CounterVec
	PersistenceFailures *prometheus.CounterVec
	CollectionSize      *prometheus.GaugeVec
}

// NewCollector creates a collector with a fresh registry
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		Mutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "mutations_total",
				Help:      "Total number of applied directory mutations",
			},
			[]string{"operation"},
		),
		ImportedRows: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "import_rows_total",
				Help:      "Total number of import rows read",
			},
			[]string{"pipeline", "outcome"},
		),
		PersistenceFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "persistence_failures_total",
				Help:      "Total number of rejected storage writes",
			},
			[]string{"key"},
		),
		CollectionSize: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "collection_size",
				Help:      "Number of records in each collection of the current snapshot",
			},
			[]string{"collection"},
		),
	}

	registry.MustRegister(
		c.HTTPRequests,
		c.HTTPDuration,
		c.Mutations,
		c.ImportedRows,
		c.PersistenceFailures,
		c.CollectionSize,
	)

	return c
}

// ObserveRequest records one served HTTP request
func (c *Collector) ObserveRequest(method, route, status string, duration time.Duration) {
	c.HTTPRequests.WithLabelValues(method, route, status).Inc()
	c.HTTPDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordMutation counts one published snapshot transition
func (c *Collector) RecordMutation(operation string) {
	c.Mutations.WithLabelValues(operation).Inc()
}

// RecordImport counts rows read and skipped by an import pipeline
func (c *Collector) RecordImport(pipeline string, read, skipped int) {
	c.ImportedRows.WithLabelValues(pipeline, "read").Add(float64(read))
	c.ImportedRows.WithLabelValues(pipeline, "skipped").Add(float64(skipped))
}

// RecordPersistenceFailure counts a rejected write for a storage key
func (c *Collector) RecordPersistenceFailure(key string) {
	c.PersistenceFailures.WithLabelValues(key).Inc()
}

// SetCollectionSizes publishes the sizes of the current snapshot
func (c *Collector) SetCollectionSizes(employees, topics, teams int) {
	c.CollectionSize.WithLabelValues("employees").Set(float64(employees))
	c.CollectionSize.WithLabelValues("topics").Set(float64(topics))
	c.CollectionSize.WithLabelValues("teams").Set(float64(teams))
}

// GetRegistry returns the Prometheus registry for this collector
func (c *Collector) GetRegistry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
