// Package metrics registers the service's prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UpstreamRequests counts calls against the remote tiers API by
	// endpoint and outcome (ok, error, not_found).
	UpstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tierboard_upstream_requests_total",
		Help: "Requests issued against the upstream tiers API.",
	}, []string{"endpoint", "outcome"})

	// CacheHits counts snapshot cache hits by key.
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tierboard_cache_hits_total",
		Help: "Snapshot cache hits.",
	}, []string{"key"})

	// CacheMisses counts snapshot cache misses by key, stale and corrupt
	// entries included.
	CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tierboard_cache_misses_total",
		Help: "Snapshot cache misses.",
	}, []string{"key"})

	// CacheEvictions counts lazily evicted stale or corrupt entries.
	CacheEvictions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tierboard_cache_evictions_total",
		Help: "Stale or corrupt snapshot entries evicted on read.",
	}, []string{"key"})

	// RefreshCycles counts completed background refresh sweeps.
	RefreshCycles = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tierboard_refresh_cycles_total",
		Help: "Completed background refresh sweeps.",
	})
)
