// Package diag defines the diagnostic sink contract the annotation
// components emit through, plus the sinks shipped with the module: a
// discard sink, an in-memory collector, a fan-out, and a zap adapter.
package diag

import (
	"sync"

	"github.com/goliatone/go-a11yfix/pkg/model"
)

// Sink receives diagnostic records. Emission is fire-and-forget: a sink may
// log synchronously, enqueue, or drop; its behaviour never feeds back into
// a transformation result.
type Sink interface {
	Emit(model.Diagnostic)
}

// SinkFunc adapts a function into a Sink.
type SinkFunc func(model.Diagnostic)

// Emit calls the underlying function.
func (fn SinkFunc) Emit(d model.Diagnostic) {
	fn(d)
}

// Nop returns a sink that discards every diagnostic.
func Nop() Sink {
	return SinkFunc(func(model.Diagnostic) {})
}

// SafeEmit sends d to sink, swallowing nil sinks and any panic the sink
// raises. Diagnostic failures must never abort a transformation.
func SafeEmit(sink Sink, d model.Diagnostic) {
	if sink == nil {
		return
	}
	defer func() {
		_ = recover()
	}()
	sink.Emit(d)
}

// Collector records diagnostics in memory for later inspection. Safe for
// concurrent emission.
type Collector struct {
	mu      sync.Mutex
	records []model.Diagnostic
}

// NewCollector constructs an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Emit appends the diagnostic to the collector.
func (c *Collector) Emit(d model.Diagnostic) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = append(c.records, d)
}

// Records returns a copy of everything collected so far.
func (c *Collector) Records() []model.Diagnostic {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.Diagnostic, len(c.records))
	copy(out, c.records)
	return out
}

// Reset discards collected records.
func (c *Collector) Reset() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = nil
}

// Tee fans every diagnostic out to all provided sinks. Nil entries are
// skipped; each sink is wrapped by the same panic guard as SafeEmit.
func Tee(sinks ...Sink) Sink {
	return SinkFunc(func(d model.Diagnostic) {
		for _, sink := range sinks {
			SafeEmit(sink, d)
		}
	})
}
