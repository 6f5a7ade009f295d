package sink

import (
	"github.com/jmswint/weft/core"
)

// Sink is the interface every stage of the pipeline implements.
// Filters wrap a downstream Sink and compose by plain delegation;
// there is no registration or inheritance, a chain is built by
// handing one sink to the constructor of the next.
//
// Sinks are not internally synchronized. A sink shared by several
// producing goroutines needs external mutual exclusion around Handle,
// or confinement to a single writer goroutine. Under proper exclusion
// records are forwarded in arrival order.
type Sink interface {
	// Handle processes one record. Errors from the underlying stream
	// propagate to the caller unmodified; no sink retries.
	Handle(rec *core.Record) error

	// ShouldLog reports whether a record at the given level from the
	// given module would reach an output. Producers call this before
	// constructing a Record so filtered-out calls stay cheap.
	ShouldLog(level core.Level, module string) bool

	// MinLevel returns the lowest level that can reach an output
	// through this sink.
	MinLevel() core.Level

	// CatchPanics reports whether the producer should recover panics
	// raised while this sink handles a record.
	CatchPanics() bool
}
