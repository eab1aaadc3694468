// Package prommetrics bridges groupseq metrics to Prometheus.
package prommetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/hupe1980/groupseq"
)

// Options configures the Collector.
type Options struct {
	// Namespace prefixes every metric name.
	Namespace string

	// Registerer receives the collectors.
	// Defaults to prometheus.DefaultRegisterer.
	Registerer prometheus.Registerer

	// LatencyBuckets overrides the latency histogram buckets.
	LatencyBuckets []float64
}

// DefaultOptions holds the defaults used by New.
var DefaultOptions = Options{
	Namespace:      "groupseq",
	LatencyBuckets: prometheus.DefBuckets,
}

// Collector implements groupseq.MetricsCollector on top of Prometheus
// collectors. Register it with a Collection via
// groupseq.WithMetricsCollector.
type Collector struct {
	opLatency    *prometheus.HistogramVec
	mutations    *prometheus.CounterVec
	clearedItems prometheus.Counter
}

var _ groupseq.MetricsCollector = (*Collector)(nil)

// New creates a Collector and registers its metrics. It panics when a
// metric is already registered, like prometheus.MustRegister.
func New(optFns ...func(o *Options)) *Collector {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Registerer == nil {
		opts.Registerer = prometheus.DefaultRegisterer
	}

	factory := promauto.With(opts.Registerer)

	return &Collector{
		opLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: opts.Namespace,
			Name:      "operation_latency_seconds",
			Help:      "Latency of collection operations",
			Buckets:   opts.LatencyBuckets,
		}, []string{"op", "status"}),
		mutations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: opts.Namespace,
			Name:      "mutations_total",
			Help:      "Total mutations processed",
		}, []string{"op", "status"}),
		clearedItems: factory.NewCounter(prometheus.CounterOpts{
			Namespace: opts.Namespace,
			Name:      "cleared_items_total",
			Help:      "Total items removed by bulk clears",
		}),
	}
}

// RecordAdd implements groupseq.MetricsCollector.
func (c *Collector) RecordAdd(duration time.Duration, err error) {
	c.observe("add", duration, err)
}

// RecordInsert implements groupseq.MetricsCollector.
func (c *Collector) RecordInsert(duration time.Duration, err error) {
	c.observe("insert", duration, err)
}

// RecordRemove implements groupseq.MetricsCollector.
func (c *Collector) RecordRemove(duration time.Duration, err error) {
	c.observe("remove", duration, err)
}

// RecordSet implements groupseq.MetricsCollector.
func (c *Collector) RecordSet(duration time.Duration, err error) {
	c.observe("set", duration, err)
}

// RecordClear implements groupseq.MetricsCollector.
func (c *Collector) RecordClear(count int, duration time.Duration) {
	c.observe("clear", duration, nil)
	c.clearedItems.Add(float64(count))
}

func (c *Collector) observe(op string, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	c.opLatency.WithLabelValues(op, status).Observe(duration.Seconds())
	c.mutations.WithLabelValues(op, status).Inc()
}
