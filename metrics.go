package reactivity

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus observer.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "reactivity").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus observer.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "reactivity",
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics is an Observer exporting runtime activity as Prometheus metrics.
type Metrics struct {
	EffectsRegistered prometheus.Counter
	EffectRuns        prometheus.Counter
	SignalWrites      prometheus.Counter
	ComputedUpdates   prometheus.Counter
	CycleFaults       prometheus.Counter
	TriggerFanout     prometheus.Histogram
	MaxDepth          prometheus.Gauge

	depthMu  sync.Mutex
	maxDepth int
}

// NewMetrics registers the runtime metrics and returns an observer feeding them.
// Pass it to Configure with WithObserver.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)

	return &Metrics{
		EffectsRegistered: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "effects_registered_total",
			Help:        "Total number of effects registered, computed updaters included",
			ConstLabels: config.ConstLabels,
		}),

		EffectRuns: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "effect_runs_total",
			Help:        "Total number of effect executions",
			ConstLabels: config.ConstLabels,
		}),

		SignalWrites: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "signal_writes_total",
			Help:        "Total number of signal writes",
			ConstLabels: config.ConstLabels,
		}),

		ComputedUpdates: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "computed_updates_total",
			Help:        "Total number of computed value recomputations",
			ConstLabels: config.ConstLabels,
		}),

		CycleFaults: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "cycle_faults_total",
			Help:        "Total number of propagations aborted by the depth guard",
			ConstLabels: config.ConstLabels,
		}),

		TriggerFanout: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "trigger_fanout",
			Help:        "Number of subscribers re-run by a single signal write",
			ConstLabels: config.ConstLabels,
			Buckets:     prometheus.ExponentialBuckets(1, 2, 12),
		}),

		MaxDepth: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "max_effect_depth",
			Help:        "Deepest nesting of effect runs observed",
			ConstLabels: config.ConstLabels,
		}),
	}
}

func (m *Metrics) EffectRegistered(EffectID) {
	m.EffectsRegistered.Inc()
}

func (m *Metrics) EffectRun(_ EffectID, depth int) {
	m.EffectRuns.Inc()
	m.observeDepth(depth)
}

func (m *Metrics) SignalWritten(subscribers int) {
	m.SignalWrites.Inc()
	m.TriggerFanout.Observe(float64(subscribers))
}

func (m *Metrics) ComputedUpdated(EffectID) {
	m.ComputedUpdates.Inc()
}

func (m *Metrics) CycleDetected(_ EffectID, depth int) {
	m.CycleFaults.Inc()
	m.observeDepth(depth)
}

func (m *Metrics) observeDepth(depth int) {
	m.depthMu.Lock()
	defer m.depthMu.Unlock()

	if depth > m.maxDepth {
		m.maxDepth = depth
		m.MaxDepth.Set(float64(depth))
	}
}
