// Package metrics exposes Prometheus collectors for the bridge service.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	syncPassesTotal      *prometheus.CounterVec
	locationsSyncedTotal prometheus.Counter
	fetchFailuresTotal   *prometheus.CounterVec

	once sync.Once
)

// Init initializes the Prometheus metrics collectors.
// It is safe to call this function multiple times.
func Init() {
	once.Do(func() {
		syncPassesTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bridge_sync_passes_total",
				Help: "Total number of synchronization passes, labeled by trigger and outcome.",
			},
			[]string{"trigger", "outcome"},
		)

		locationsSyncedTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "bridge_locations_synced_total",
				Help: "Total number of location measurements persisted.",
			},
		)

		fetchFailuresTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bridge_fetch_failures_total",
				Help: "Total number of upstream fetch failures, labeled by failure kind.",
			},
			[]string{"kind"},
		)
	})
}

// ObserveSyncPass records a completed synchronization pass.
func ObserveSyncPass(trigger, outcome string) {
	if syncPassesTotal != nil {
		syncPassesTotal.WithLabelValues(trigger, outcome).Inc()
	}
}

// ObserveLocationSynced records one persisted measurement.
func ObserveLocationSynced() {
	if locationsSyncedTotal != nil {
		locationsSyncedTotal.Inc()
	}
}

// ObserveFetchFailure records an upstream fetch failure by kind.
func ObserveFetchFailure(kind string) {
	if fetchFailuresTotal != nil {
		fetchFailuresTotal.WithLabelValues(kind).Inc()
	}
}
