package render

import (
	"bytes"
	"time"

	"github.com/jmswint/weft/core"
)

// PlainRenderer formats records as uncolored text for file-backed
// sinks. Single-line records render on one line; multi-line records
// get box-drawing borders:
//
//	┌ ERROR 2026-03-01T10:22:07Z: first line
//	│ second line
//	└ @ runner main.go:42
type PlainRenderer struct {
	timeFormat string
}

// PlainConfig holds configuration for the plain renderer
type PlainConfig struct {
	// TimestampFormat specifies the time format (empty for RFC3339)
	TimestampFormat string
}

// NewPlainRenderer creates a new plain renderer
func NewPlainRenderer(cfg PlainConfig) *PlainRenderer {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	return &PlainRenderer{timeFormat: cfg.TimestampFormat}
}

// Render formats the record. The width argument is ignored; plain
// output is not column-aligned.
func (r *PlainRenderer) Render(_ int, rec *core.Record) []byte {
	lines := recordLines(rec)
	var buf bytes.Buffer

	head := rec.Level.String() + " " + rec.Time.Format(r.timeFormat) + ": "
	at := "@ " + rec.Module + " " + locationSuffix(rec)

	if len(lines) == 1 {
		buf.WriteString("[ ")
		buf.WriteString(head)
		buf.WriteString(lines[0])
		buf.WriteByte(' ')
		buf.WriteString(at)
		buf.WriteByte('\n')
		return buf.Bytes()
	}

	buf.WriteString("┌ ")
	buf.WriteString(head)
	buf.WriteString(lines[0])
	buf.WriteByte('\n')
	for _, line := range lines[1:] {
		buf.WriteString("│ ")
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	buf.WriteString("└ ")
	buf.WriteString(at)
	buf.WriteByte('\n')
	return buf.Bytes()
}
