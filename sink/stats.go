package sink

import "sync/atomic"

// Stats tracks counters for the filtering sinks. All methods are
// safe for concurrent use; the counters are the one piece of sink
// state that may be read from another goroutine while the chain is
// running.
type Stats struct {
	ForwardedTotal  uint64
	SuppressedTotal uint64
	SummariesTotal  uint64
	FlushedTotal    uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementForwarded atomically increments the forwarded counter
func (s *Stats) IncrementForwarded() {
	atomic.AddUint64(&s.ForwardedTotal, 1)
}

// IncrementSuppressed atomically increments the suppressed counter
func (s *Stats) IncrementSuppressed() {
	atomic.AddUint64(&s.SuppressedTotal, 1)
}

// IncrementSummaries atomically increments the summary counter
func (s *Stats) IncrementSummaries() {
	atomic.AddUint64(&s.SummariesTotal, 1)
}

// AddFlushed atomically adds n to the flushed counter
func (s *Stats) AddFlushed(n int) {
	atomic.AddUint64(&s.FlushedTotal, uint64(n))
}

// GetForwarded returns the forwarded count
func (s *Stats) GetForwarded() uint64 {
	return atomic.LoadUint64(&s.ForwardedTotal)
}

// GetSuppressed returns the suppressed count
func (s *Stats) GetSuppressed() uint64 {
	return atomic.LoadUint64(&s.SuppressedTotal)
}

// GetSummaries returns the summary count
func (s *Stats) GetSummaries() uint64 {
	return atomic.LoadUint64(&s.SummariesTotal)
}

// GetFlushed returns the flushed count
func (s *Stats) GetFlushed() uint64 {
	return atomic.LoadUint64(&s.FlushedTotal)
}
