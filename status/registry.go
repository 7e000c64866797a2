package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Registry is the central metrics facade
// Systems cache pointers during construction; Update loops write directly to atomics
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Line renders the selected counters as "key=value" pairs in argument order
// Integer counters win over float gauges of the same key; unregistered keys are skipped rather than created
func (r *Registry) Line(keys ...string) string {
	var b strings.Builder
	for _, k := range keys {
		if n, ok := r.Ints.Lookup(k); ok {
			sep(&b)
			fmt.Fprintf(&b, "%s=%d", k, n.Load())
		} else if f, ok := r.Floats.Lookup(k); ok {
			sep(&b)
			fmt.Fprintf(&b, "%s=%.2f", k, f.Get())
		}
	}
	return b.String()
}

func sep(b *strings.Builder) {
	if b.Len() > 0 {
		b.WriteByte(' ')
	}
}
