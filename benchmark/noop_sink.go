package benchmark

import (
	"github.com/jmswint/weft/core"
)

// noopSink accepts every record and does nothing, isolating the cost
// of the pipeline stages in front of it.
type noopSink struct{}

func (noopSink) Handle(*core.Record) error { return nil }

func (noopSink) ShouldLog(core.Level, string) bool { return true }

func (noopSink) MinLevel() core.Level { return core.DebugLevel }

func (noopSink) CatchPanics() bool { return false }
