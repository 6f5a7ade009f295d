package render

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jmswint/weft/core"
)

// Renderer turns a record into formatted bytes ready for a stream.
// Implementations must tolerate any width >= 0 and must never panic
// on unusual input; formatting degrades, it does not fail.
type Renderer interface {
	// Render formats the record for the given display width. The
	// returned bytes end with a newline. Renderers that do not do
	// column layout may ignore the width.
	Render(width int, rec *core.Record) []byte
}

// recordLines expands a record into its display lines: the message
// split on newline boundaries, followed by one line per single-line
// field ("key = value") and a header plus value lines for each
// multi-line field.
func recordLines(rec *core.Record) []string {
	lines := strings.Split(strings.TrimRight(rec.Message, "\n"), "\n")
	for _, f := range rec.Fields {
		if f.Multiline() {
			lines = append(lines, f.Key+" =")
			val := strings.TrimRight(f.StringValue(), "\n")
			lines = append(lines, strings.Split(val, "\n")...)
		} else {
			lines = append(lines, f.Key+" = "+f.StringValue())
		}
	}
	return lines
}

// locationSuffix builds the source location tag: basename(file):line,
// prefixed with the group when it differs from the module.
func locationSuffix(rec *core.Record) string {
	loc := filepath.Base(rec.File) + ":" + strconv.Itoa(rec.Line)
	if rec.Group != "" && rec.Group != rec.Module {
		return rec.Group + ":" + loc
	}
	return loc
}
