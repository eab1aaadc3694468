package groupseq

import "log/slog"

type options struct {
	groupCapacity    int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Collection constructor behavior.
type Option func(*options)

// WithGroupCapacity configures the initial item capacity of each new
// group's backing storage. Useful when the expected group size is known
// up front; non-positive values are ignored.
func WithGroupCapacity(capacity int) Option {
	return func(o *options) {
		if capacity > 0 {
			o.groupCapacity = capacity
		}
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &groupseq.BasicMetricsCollector{}
//	col := groupseq.New[string, *Task](groupseq.WithMetricsCollector(metrics))
//	// ... use col ...
//	stats := metrics.GetStats()
//	fmt.Printf("Adds: %d, Avg latency: %dns\n", stats.AddCount, stats.AddAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := groupseq.NewJSONLogger(slog.LevelInfo)
//	col := groupseq.New[string, *Task](groupseq.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
