// Package core defines the shared types used across the weft pipeline.
//
// It provides the Level type for severity filtering, the Record type
// that represents a single log event, and the Field type for
// structured key-value pairs.
//
// Records are treated as immutable once constructed. Filtering sinks
// buffer Record pointers across handle calls (the failure-context
// buffer holds up to its capacity, the repetition filter holds the
// last one), so there is deliberately no pooling or recycling of
// Record values: a buffered record must stay valid until the sink
// releases it. Sinks that need to alter a record, such as the
// repetition filter when it synthesizes its summary, work on a Clone.
//
// Field encodes values into fixed-size numeric fields (Int64,
// Float64) wherever possible so that common types like int, bool, and
// time.Time never escape to the heap. The Any field exists as a
// fallback for arbitrary types but will cause an allocation. String
// and error values may span multiple lines; renderers consult
// Multiline and lay those values out as a key header followed by one
// line per value line.
package core
