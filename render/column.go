package render

import (
	"bytes"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/jmswint/weft/core"
)

// Column widths reserved in front of the message area.
const (
	LevelColWidth  = 5
	TimeColWidth   = 12
	ModuleColWidth = 20

	// DefaultWidth is the total render width used when the terminal
	// width is unknown.
	DefaultWidth = 160
)

// defaultTimeFormat occupies exactly TimeColWidth cells.
const defaultTimeFormat = "15:04:05.000"

// ColumnRenderer lays records out into fixed-width columns: level,
// timestamp, and module in front, the message area behind a vertical
// divider, and a right-aligned source location. Multi-line records
// (embedded newlines in the message or in field values) get a
// box-drawing frame; the divider column stays vertically aligned
// across all lines.
//
// Rendering is pure: the only mutable state touched is the injected
// ColorAssigner, and only when color is enabled.
type ColumnRenderer struct {
	color      bool
	profile    termenv.Profile
	colors     *ColorAssigner
	timeFormat string
}

// ColumnConfig holds configuration for the column renderer
type ColumnConfig struct {
	// Color enables ANSI SGR styling. When false the output is plain
	// text with identical cell layout.
	Color bool
	// Profile selects the terminal color capability used when Color
	// is enabled (default termenv.ANSI).
	Profile termenv.Profile
	// Colors assigns stable per-module background colors. nil creates
	// a fresh assigner over DefaultPalette when Color is enabled.
	Colors *ColorAssigner
	// TimestampFormat specifies the time format (empty for 15:04:05.000)
	TimestampFormat string
}

// NewColumnRenderer creates a new column renderer
func NewColumnRenderer(cfg ColumnConfig) *ColumnRenderer {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = defaultTimeFormat
	}
	r := &ColumnRenderer{
		color:      cfg.Color,
		profile:    cfg.Profile,
		colors:     cfg.Colors,
		timeFormat: cfg.TimestampFormat,
	}
	if r.color {
		if r.profile == termenv.Ascii {
			r.profile = termenv.ANSI
		}
		if r.colors == nil {
			r.colors = NewColorAssigner(nil)
		}
	}
	return r
}

// Render formats the record into width columns. Any width >= 0 is
// accepted; padding clamps to zero when the budget runs out, the
// content itself is never truncated.
func (r *ColumnRenderer) Render(width int, rec *core.Record) []byte {
	lines := recordLines(rec)
	multi := len(lines) > 1
	suffix := locationSuffix(rec)

	levelCell := rec.Level.String() + pad(LevelColWidth-VisualWidth(rec.Level.String()))
	timeCell := rec.Time.Format(r.timeFormat)
	timeCell += pad(TimeColWidth - VisualWidth(timeCell))
	module := runewidth.Truncate(rec.Module, ModuleColWidth, "")
	moduleCell := module + pad(ModuleColWidth-VisualWidth(module))

	// Cell widths are measured before styling; SGR sequences occupy
	// no cells and must not skew the padding arithmetic.
	leftBlock := VisualWidth(levelCell) + 1 + VisualWidth(timeCell) + 1 + VisualWidth(moduleCell)
	reserved := 2 + leftBlock + 3 // prefix + columns + " │ "

	var buf bytes.Buffer

	prefix := "[ "
	if multi {
		prefix = "┌ "
	}
	buf.WriteString(prefix)
	buf.WriteString(r.styleLevel(levelCell, rec.Level))
	buf.WriteByte(' ')
	buf.WriteString(r.dim(timeCell))
	buf.WriteByte(' ')
	buf.WriteString(r.styleModule(moduleCell, rec.Module))
	buf.WriteString(" │ ")
	buf.WriteString(lines[0])
	if multi {
		buf.WriteString(pad(width - reserved - VisualWidth(lines[0])))
	} else {
		buf.WriteString(pad(width - reserved - VisualWidth(lines[0]) - VisualWidth(suffix)))
		buf.WriteString(r.dim(suffix))
	}
	buf.WriteByte('\n')

	if !multi {
		return buf.Bytes()
	}

	for _, line := range lines[1:] {
		buf.WriteString("│ ")
		buf.WriteString(pad(leftBlock))
		buf.WriteString(" │ ")
		buf.WriteString(line)
		buf.WriteString(pad(width - reserved - VisualWidth(line)))
		buf.WriteByte('\n')
	}

	fill := width - 2 - VisualWidth(suffix)
	buf.WriteString("└")
	if fill > 0 {
		buf.WriteString(strings.Repeat("─", fill))
	}
	buf.WriteByte(' ')
	buf.WriteString(r.dim(suffix))
	buf.WriteByte('\n')

	return buf.Bytes()
}

// levelColors orders foreground colors by ascending severity.
var levelColors = [...]termenv.Color{
	core.DebugLevel: termenv.ANSIBrightBlack,
	core.InfoLevel:  termenv.ANSIGreen,
	core.WarnLevel:  termenv.ANSIYellow,
	core.ErrorLevel: termenv.ANSIBrightRed,
}

func (r *ColumnRenderer) styleLevel(cell string, level core.Level) string {
	if !r.color {
		return cell
	}
	if int(level) >= len(levelColors) {
		return cell
	}
	s := r.profile.String(cell).Foreground(r.profile.Convert(levelColors[level]))
	if level == core.ErrorLevel {
		s = s.Bold()
	}
	return s.String()
}

func (r *ColumnRenderer) styleModule(cell, module string) string {
	if !r.color {
		return cell
	}
	bg := r.colors.ColorFor(module)
	return r.profile.String(cell).Background(r.profile.Convert(bg)).String()
}

func (r *ColumnRenderer) dim(s string) string {
	if !r.color {
		return s
	}
	return r.profile.String(s).Faint().String()
}
