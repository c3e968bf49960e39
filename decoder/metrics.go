package decoder

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics bundles the Prometheus collectors a Decoder exposes. A
// Decoder may be instantiated more than once per process (tests,
// parallel batch workers), so collectors register on a private
// *prometheus.Registry rather than the global DefaultRegisterer to
// avoid a duplicate-registration panic.
type metrics struct {
	registry *prometheus.Registry

	decodeCount      *prometheus.CounterVec
	decodeErrors     *prometheus.CounterVec
	tunerCandidates  prometheus.Counter
	cacheHits        prometheus.Counter
	cacheMisses      prometheus.Counter
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &metrics{
		registry: reg,
		decodeCount: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "morsecore_decode_total",
			Help: "Number of files decoded, by language table.",
		}, []string{"language"}),
		decodeErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "morsecore_decode_errors_total",
			Help: "Number of decode attempts that returned an error, by kind.",
		}, []string{"kind"}),
		tunerCandidates: factory.NewCounter(prometheus.CounterOpts{
			Name: "morsecore_tuner_candidates_total",
			Help: "Number of parameter combinations evaluated by the tuner.",
		}),
		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "morsecore_cache_hits_total",
			Help: "Result cache hits.",
		}),
		cacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "morsecore_cache_misses_total",
			Help: "Result cache misses.",
		}),
	}
}

// Registry exposes the private registry so a caller can serve it
// itself (e.g. mounted under a path alongside its own metrics).
func (m *metrics) Registry() *prometheus.Registry { return m.registry }
