package sink

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jmswint/weft/core"
)

const (
	// DefaultCapacity is the default failure-context ring size.
	DefaultCapacity = 5
	// DefaultMarker is the substring identifying a failure record.
	DefaultMarker = "FAILED"
)

// FailureContextBuffer keeps the last K records in a fixed ring and
// stays silent until a record whose message contains the failure
// marker arrives. It then replays the buffered records in arrival
// order, clears the ring, and forwards the failure record itself.
// Failure lines get their surrounding context without the sink ever
// holding unbounded history: when the ring is full the oldest entry
// is evicted, silently, pure FIFO.
//
// The buffer owns its state exclusively and is not internally
// synchronized; see the Sink interface notes.
type FailureContextBuffer struct {
	next    Sink
	marker  string
	entries []*core.Record
	head    int
	count   int
	stats   *Stats
}

// ContextConfig holds configuration for the failure-context buffer
type ContextConfig struct {
	// Next is the downstream sink (required)
	Next Sink
	// Capacity is the ring size (default: DefaultCapacity)
	Capacity int
	// Marker is the failure substring (default: DefaultMarker)
	Marker string
}

// NewFailureContextBuffer creates a new failure-context buffer
func NewFailureContextBuffer(cfg ContextConfig) (*FailureContextBuffer, error) {
	if cfg.Next == nil {
		return nil, errors.New("sink: failure-context buffer needs a downstream sink")
	}
	if cfg.Capacity < 0 {
		return nil, fmt.Errorf("sink: context capacity must not be negative, got %d", cfg.Capacity)
	}
	if cfg.Capacity == 0 {
		cfg.Capacity = DefaultCapacity
	}
	if cfg.Marker == "" {
		cfg.Marker = DefaultMarker
	}

	return &FailureContextBuffer{
		next:    cfg.Next,
		marker:  cfg.Marker,
		entries: make([]*core.Record, cfg.Capacity),
		stats:   NewStats(),
	}, nil
}

// Handle buffers non-failure records and replays the ring when a
// failure record arrives. If replaying fails mid-way the error
// surfaces immediately; the drained entries are gone either way, the
// stream is not assumed replayable.
func (b *FailureContextBuffer) Handle(rec *core.Record) error {
	if !strings.Contains(rec.Message, b.marker) {
		b.push(rec)
		return nil
	}

	flushed, err := b.flush()
	b.stats.AddFlushed(flushed)
	if err != nil {
		return err
	}
	return b.forward(rec)
}

// push inserts the record, evicting the oldest entry when full.
func (b *FailureContextBuffer) push(rec *core.Record) {
	size := len(b.entries)
	if b.count < size {
		b.entries[(b.head+b.count)%size] = rec
		b.count++
		return
	}
	b.entries[b.head] = rec
	b.head = (b.head + 1) % size
}

// flush forwards the buffered records in arrival order and clears the
// ring. It returns how many records went downstream before any error.
func (b *FailureContextBuffer) flush() (int, error) {
	size := len(b.entries)
	for i := 0; i < b.count; i++ {
		rec := b.entries[(b.head+i)%size]
		if err := b.forward(rec); err != nil {
			b.clear()
			return i, err
		}
	}
	n := b.count
	b.clear()
	return n, nil
}

func (b *FailureContextBuffer) clear() {
	for i := range b.entries {
		b.entries[i] = nil
	}
	b.head = 0
	b.count = 0
}

func (b *FailureContextBuffer) forward(rec *core.Record) error {
	b.stats.IncrementForwarded()
	return b.next.Handle(rec)
}

// Stats returns the buffer's counters.
func (b *FailureContextBuffer) Stats() *Stats {
	return b.stats
}

// ShouldLog delegates to the downstream sink.
func (b *FailureContextBuffer) ShouldLog(level core.Level, module string) bool {
	return b.next.ShouldLog(level, module)
}

// MinLevel delegates to the downstream sink.
func (b *FailureContextBuffer) MinLevel() core.Level {
	return b.next.MinLevel()
}

// CatchPanics delegates to the downstream sink.
func (b *FailureContextBuffer) CatchPanics() bool {
	return b.next.CatchPanics()
}
