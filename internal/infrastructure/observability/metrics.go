// Package observability exposes Prometheus metrics for the caching
// repository layer.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector holds the Prometheus metrics the repository layer reports.
type Collector struct {
	registry *prometheus.Registry

	// Cache metrics
	CacheHits      prometheus.Counter
	CacheMisses    prometheus.Counter
	CacheEvictions prometheus.Counter

	// Store metrics
	StoreOperations *prometheus.CounterVec
}

// NewCollector creates a collector with its own registry under the
// given namespace.
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	cacheHits := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_hits_total",
		Help:      "Total number of repository cache hits",
	})
	cacheMisses := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_misses_total",
		Help:      "Total number of repository cache misses",
	})
	cacheEvictions := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_evictions_total",
		Help:      "Total number of repository cache evictions",
	})
	storeOperations := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_operations_total",
			Help:      "Total number of store operations by name and outcome",
		},
		[]string{"operation", "outcome"},
	)

	registry.MustRegister(cacheHits, cacheMisses, cacheEvictions, storeOperations)

	return &Collector{
		registry:        registry,
		CacheHits:       cacheHits,
		CacheMisses:     cacheMisses,
		CacheEvictions:  cacheEvictions,
		StoreOperations: storeOperations,
	}
}

// Registry returns the collector's registry for exposition.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// ObserveStoreOperation records one store operation outcome.
func (c *Collector) ObserveStoreOperation(operation string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	c.StoreOperations.WithLabelValues(operation, outcome).Inc()
}
