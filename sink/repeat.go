package sink

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jmswint/weft/core"
)

// DefaultWindow is the default repetition window.
const DefaultWindow = 10 * time.Second

// RepetitionFilter collapses bursts of identical records. A record is
// a repeat of the previous one when ID, module, and message all match
// and it arrives within the window of the previous occurrence; the
// window slides with every suppressed repeat. Repeats are wholly
// suppressed. When the pattern breaks, or the window expires, the
// filter first emits a single summary record ("(repeated xN) " in
// front of the suppressed message) and then the record that broke the
// series.
//
// Filtering is deliberately scoped: only records at or below MaxLevel
// whose module is in the watch-set ever enter the duplicate check.
// Everything else passes through untouched, with no summary side
// effect.
//
// The filter owns its state exclusively and is not internally
// synchronized; see the Sink interface notes.
type RepetitionFilter struct {
	next     Sink
	window   time.Duration
	maxLevel core.Level
	watched  map[string]struct{}
	now      func() time.Time
	stats    *Stats

	last     *core.Record
	lastSeen time.Time
	repeats  int
}

// RepeatConfig holds configuration for the repetition filter
type RepeatConfig struct {
	// Next is the downstream sink (required)
	Next Sink
	// Window is the sliding repetition window (default: DefaultWindow)
	Window time.Duration
	// MaxLevel is the highest level subject to deduplication
	// (default: InfoLevel; warnings and errors always pass through)
	MaxLevel core.Level
	// Modules is the watch-set; only these modules are deduplicated
	Modules []string
	// Now overrides the clock, for tests (default: time.Now)
	Now func() time.Time
}

// NewRepetitionFilter creates a new repetition filter
func NewRepetitionFilter(cfg RepeatConfig) (*RepetitionFilter, error) {
	if cfg.Next == nil {
		return nil, errors.New("sink: repetition filter needs a downstream sink")
	}
	if cfg.Window < 0 {
		return nil, fmt.Errorf("sink: repetition window must not be negative, got %v", cfg.Window)
	}
	if cfg.Window == 0 {
		cfg.Window = DefaultWindow
	}
	if cfg.MaxLevel == 0 {
		cfg.MaxLevel = core.InfoLevel
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	watched := make(map[string]struct{}, len(cfg.Modules))
	for _, m := range cfg.Modules {
		watched[m] = struct{}{}
	}

	return &RepetitionFilter{
		next:     cfg.Next,
		window:   cfg.Window,
		maxLevel: cfg.MaxLevel,
		watched:  watched,
		now:      cfg.Now,
		stats:    NewStats(),
	}, nil
}

// Handle forwards the record unless it is an exact repeat of the
// previous watched record inside the window.
func (f *RepetitionFilter) Handle(rec *core.Record) error {
	if rec.Level > f.maxLevel {
		return f.forward(rec)
	}
	if _, ok := f.watched[rec.Module]; !ok {
		return f.forward(rec)
	}

	now := f.now()
	if f.last != nil &&
		rec.ID == f.last.ID &&
		rec.Module == f.last.Module &&
		rec.Message == f.last.Message &&
		now.Sub(f.lastSeen) <= f.window {
		f.repeats++
		f.lastSeen = now
		f.stats.IncrementSuppressed()
		return nil
	}

	// Series over: summarize what was swallowed before anything else
	// goes downstream, so the summary lands in arrival order.
	if err := f.emitSummary(); err != nil {
		return err
	}
	f.last = rec
	f.lastSeen = now
	return f.forward(rec)
}

// Flush emits a pending summary, if any. Call it when the producer
// shuts down; otherwise a burst at end of stream would go
// unreported.
func (f *RepetitionFilter) Flush() error {
	return f.emitSummary()
}

func (f *RepetitionFilter) emitSummary() error {
	if f.repeats == 0 {
		return nil
	}
	summary := f.last.Clone()
	summary.Message = "(repeated x" + strconv.Itoa(f.repeats) + ") " + summary.Message
	f.repeats = 0
	f.stats.IncrementSummaries()
	return f.next.Handle(summary)
}

func (f *RepetitionFilter) forward(rec *core.Record) error {
	f.stats.IncrementForwarded()
	return f.next.Handle(rec)
}

// Stats returns the filter's counters.
func (f *RepetitionFilter) Stats() *Stats {
	return f.stats
}

// ShouldLog delegates to the downstream sink.
func (f *RepetitionFilter) ShouldLog(level core.Level, module string) bool {
	return f.next.ShouldLog(level, module)
}

// MinLevel delegates to the downstream sink.
func (f *RepetitionFilter) MinLevel() core.Level {
	return f.next.MinLevel()
}

// CatchPanics delegates to the downstream sink.
func (f *RepetitionFilter) CatchPanics() bool {
	return f.next.CatchPanics()
}
