package sink

import (
	"errors"
	"strings"
	"time"

	"github.com/jmswint/weft/core"
)

// captureSink records everything it receives. failOn makes Handle
// fail for messages containing the substring, to exercise error
// propagation.
type captureSink struct {
	records  []*core.Record
	failOn   string
	minLevel core.Level
	catch    bool
}

var errCapture = errors.New("capture sink write failure")

func (c *captureSink) Handle(rec *core.Record) error {
	if c.failOn != "" && strings.Contains(rec.Message, c.failOn) {
		return errCapture
	}
	c.records = append(c.records, rec)
	return nil
}

func (c *captureSink) ShouldLog(level core.Level, _ string) bool {
	return level >= c.minLevel
}

func (c *captureSink) MinLevel() core.Level {
	return c.minLevel
}

func (c *captureSink) CatchPanics() bool {
	return c.catch
}

func (c *captureSink) messages() []string {
	out := make([]string, len(c.records))
	for i, r := range c.records {
		out[i] = r.Message
	}
	return out
}

// fakeClock advances only when told to, giving tests full control
// over the repetition window.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func rec(module, msg string) *core.Record {
	return &core.Record{
		Time:    time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC),
		Level:   core.InfoLevel,
		Message: msg,
		Module:  module,
		File:    "/src/" + module + ".go",
		Line:    1,
	}
}
