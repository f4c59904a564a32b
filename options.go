package vec3

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	capacity         int
	maxHandles       int
}

// Option configures a Registry.
type Option func(*options)

// WithLogger sets the logger used for handle lifecycle events.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the collector notified after every operation.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithInitialCapacity preallocates room for n live handles. Large values are
// clamped to the handle cap and a fixed reservation limit.
func WithInitialCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithMaxHandles caps the number of live handles. Values <= 0 mean no cap
// beyond the handle encoding limit.
func WithMaxHandles(n int) Option {
	return func(o *options) {
		o.maxHandles = n
	}
}
