// Package metrics exposes the prometheus collectors of the service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "moap"

type Metrics struct {
	registry *prometheus.Registry

	storeMutations   *prometheus.CounterVec
	snapshotWrites   *prometheus.CounterVec
	snapshotDuration prometheus.Histogram
	priceSyncUpdates prometheus.Counter
}

// New registers every collector, plus the Go runtime and process collectors,
// on a private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		storeMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "mutations_total",
			Help:      "Entities changed in the collection store, by collection and operation.",
		}, []string{"collection", "op"}),
		snapshotWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "snapshot",
			Name:      "writes_total",
			Help:      "Snapshot writes to the key-value backend, by result.",
		}, []string{"result"}),
		snapshotDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "snapshot",
			Name:      "write_duration_seconds",
			Help:      "Time spent encoding and writing one snapshot.",
			Buckets:   prometheus.DefBuckets,
		}),
		priceSyncUpdates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "price_sync",
			Name:      "updates_total",
			Help:      "Material prices overwritten by a price sync.",
		}),
	}
	reg.MustRegister(
		m.storeMutations,
		m.snapshotWrites,
		m.snapshotDuration,
		m.priceSyncUpdates,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// RecordMutation counts n entities changed by op in collection.
func (m *Metrics) RecordMutation(collection, op string, n int) {
	if n <= 0 {
		return
	}
	m.storeMutations.WithLabelValues(collection, op).Add(float64(n))
}

func (m *Metrics) ObserveSnapshotWrite(err error, d time.Duration) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.snapshotWrites.WithLabelValues(result).Inc()
	m.snapshotDuration.Observe(d.Seconds())
}

func (m *Metrics) RecordPriceUpdates(n int) {
	if n > 0 {
		m.priceSyncUpdates.Add(float64(n))
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
