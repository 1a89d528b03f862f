package vecmath

type options struct {
	logger  *Logger
	metrics MetricsCollector
	epsilon float64
}

// Option configures Space construction behavior.
type Option func(*options)

// WithLogger configures the logger used by space operations. If nil
// is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures the metrics collector notified by
// space operations. If nil is passed, collection is disabled.
func WithMetricsCollector(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}

// WithEpsilon configures the tolerance used by Space.Equal.
func WithEpsilon(epsilon float64) Option {
	return func(o *options) {
		o.epsilon = epsilon
	}
}
