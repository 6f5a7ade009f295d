package sink

import (
	"github.com/jmswint/weft/core"
)

// MultiSink fans records out to multiple sinks, e.g. a column
// terminal sink next to a plain file sink.
type MultiSink struct {
	sinks    []Sink
	minLevel core.Level
	catch    bool
}

// NewMultiSink creates a new multi sink. The aggregate minimum level
// is the lowest of the children; panics are caught only when every
// child asks for it.
func NewMultiSink(sinks ...Sink) *MultiSink {
	m := &MultiSink{
		sinks:    sinks,
		minLevel: core.ErrorLevel,
		catch:    len(sinks) > 0,
	}
	for _, s := range sinks {
		if s.MinLevel() < m.minLevel {
			m.minLevel = s.MinLevel()
		}
		if !s.CatchPanics() {
			m.catch = false
		}
	}
	return m
}

// Handle forwards the record to every child. All children see the
// record even when one fails; the last error wins.
func (m *MultiSink) Handle(rec *core.Record) error {
	var lastErr error
	for _, s := range m.sinks {
		if !s.ShouldLog(rec.Level, rec.Module) {
			continue
		}
		if err := s.Handle(rec); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// ShouldLog reports whether any child would log the record.
func (m *MultiSink) ShouldLog(level core.Level, module string) bool {
	for _, s := range m.sinks {
		if s.ShouldLog(level, module) {
			return true
		}
	}
	return false
}

// MinLevel returns the lowest minimum level across children.
func (m *MultiSink) MinLevel() core.Level {
	return m.minLevel
}

// CatchPanics reports whether every child wants panics caught.
func (m *MultiSink) CatchPanics() bool {
	return m.catch
}
