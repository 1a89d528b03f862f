package vecmath

// MetricsCollector defines an interface for collecting operational
// metrics from a Space. Implement this interface to integrate with
// monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    opCounter *prometheus.CounterVec
//	}
//
//	func (p *PrometheusCollector) RecordOp(op string, dim int, err error) {
//	    p.opCounter.WithLabelValues(op).Inc()
//	    // ... record error state, dimension, etc.
//	}
type MetricsCollector interface {
	// RecordOp is called after each space operation. op names the
	// operation, dim is the space dimension, err is nil on success.
	RecordOp(op string, dim int, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordOp(string, int, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// The zero value is ready to use. Counters are plain integers: every
// operation is synchronous and single-threaded, so no atomic access
// is required.
type BasicMetricsCollector struct {
	ops  map[string]int64
	errs map[string]int64
}

// NewBasicMetricsCollector creates an empty collector.
func NewBasicMetricsCollector() *BasicMetricsCollector {
	return &BasicMetricsCollector{}
}

// RecordOp implements MetricsCollector.
func (b *BasicMetricsCollector) RecordOp(op string, dim int, err error) {
	if b.ops == nil {
		b.ops = make(map[string]int64)
	}
	b.ops[op]++
	if err != nil {
		if b.errs == nil {
			b.errs = make(map[string]int64)
		}
		b.errs[op]++
	}
}

// BasicMetricsStats is a snapshot of collected counters.
type BasicMetricsStats struct {
	Ops    map[string]int64
	Errors map[string]int64
}

// Stats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) Stats() BasicMetricsStats {
	stats := BasicMetricsStats{
		Ops:    make(map[string]int64, len(b.ops)),
		Errors: make(map[string]int64, len(b.errs)),
	}
	for op, n := range b.ops {
		stats.Ops[op] = n
	}
	for op, n := range b.errs {
		stats.Errors[op] = n
	}
	return stats
}
