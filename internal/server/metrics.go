package server

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/thebtf/promptlab/internal/store"
)

// metrics holds the service's own registry so tests can build isolated
// services without collector name collisions.
type metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	pruned   prometheus.Counter
}

func newMetrics(st *store.Store) *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "promptlab_http_requests_total",
			Help: "HTTP requests served, by method, route pattern and status code.",
		}, []string{"method", "path", "code"}),
		pruned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "promptlab_versions_pruned_total",
			Help: "Version entries removed by retention pruning.",
		}),
	}

	m.registry.MustRegister(
		m.requests,
		m.pruned,
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "promptlab_prompts",
			Help: "Live prompts in the store.",
		}, func() float64 {
			prompts, _, _ := st.Counts()
			return float64(prompts)
		}),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "promptlab_collections",
			Help: "Live collections in the store.",
		}, func() float64 {
			_, collections, _ := st.Counts()
			return float64(collections)
		}),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "promptlab_versions",
			Help: "Retained version snapshots across all prompts.",
		}, func() float64 {
			_, _, versions := st.Counts()
			return float64(versions)
		}),
	)
	return m
}
