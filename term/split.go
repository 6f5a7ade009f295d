package term

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/jmswint/weft/core"
	"github.com/jmswint/weft/render"
)

// Cursor and region control sequences. Emulators without DECSTBM
// scroll-region support will render the split incorrectly; that is a
// documented limitation, not something the controller detects.
const (
	saveCursor    = "\x1b7"
	restoreCursor = "\x1b8"
	hideCursor    = "\x1b[?25l"
	showCursor    = "\x1b[?25h"
	eraseLine     = "\x1b[K"
)

func setScrollRegion(top, bottom int) string {
	return fmt.Sprintf("\x1b[%d;%dr", top, bottom)
}

func moveCursor(row, col int) string {
	return fmt.Sprintf("\x1b[%d;%dH", row, col)
}

// SplitController multiplexes a terminal into a scrolling log region
// on top and a fixed status region below a divider line. Log records
// scroll inside rows 1..splitRow; SetStatus repaints the rows under
// the divider. Every Handle call brackets its output with a
// save-cursor/hide-cursor prologue and a restore epilogue, so the
// shell prompt underneath survives.
//
// Terminal dimensions are sampled exactly once, at construction.
// Resizes afterwards are not tracked. The controller is not safe for
// concurrent writers; interleaved control sequences garble the
// screen, so callers must serialize Handle and SetStatus.
type SplitController struct {
	out      io.Writer
	width    int
	height   int
	splitRow int
	renderer render.Renderer
	minLevel core.Level

	divider     string
	statusStyle lipgloss.Style
}

// SplitConfig holds configuration for the split controller
type SplitConfig struct {
	// Output is the terminal stream (required)
	Output io.Writer
	// Width and Height override the terminal dimensions. When zero
	// they are probed from Output, which must then be a terminal.
	Width  int
	Height int
	// Fraction of the height given to the log region (default: 2/3)
	Fraction float64
	// Renderer for log records (default: an uncolored ColumnRenderer)
	Renderer render.Renderer
	// MinLevel is the lowest level this sink accepts via ShouldLog
	MinLevel core.Level
}

// NewSplitController creates a new split controller and reserves the
// two regions from the terminal dimensions.
func NewSplitController(cfg SplitConfig) (*SplitController, error) {
	if cfg.Output == nil {
		return nil, errors.New("term: split controller output is required")
	}
	if cfg.Fraction == 0 {
		cfg.Fraction = 2.0 / 3.0
	}
	if cfg.Fraction <= 0 || cfg.Fraction >= 1 {
		return nil, fmt.Errorf("term: split fraction must be inside (0,1), got %g", cfg.Fraction)
	}

	width, height := cfg.Width, cfg.Height
	if width == 0 || height == 0 {
		f, ok := cfg.Output.(*os.File)
		if !ok || !IsTerminal(f) {
			return nil, errors.New("term: output is not a terminal, explicit dimensions required")
		}
		var err error
		width, height, err = Size(f)
		if err != nil {
			return nil, err
		}
	}
	if width <= 0 || height < 3 {
		return nil, fmt.Errorf("term: unusable terminal dimensions %dx%d", width, height)
	}

	// Log region, divider row, and at least one status row.
	splitRow := int(float64(height) * cfg.Fraction)
	if splitRow < 1 {
		splitRow = 1
	}
	if splitRow > height-2 {
		splitRow = height - 2
	}

	if cfg.Renderer == nil {
		cfg.Renderer = render.NewColumnRenderer(render.ColumnConfig{})
	}

	lr := lipgloss.NewRenderer(cfg.Output)
	return &SplitController{
		out:         cfg.Output,
		width:       width,
		height:      height,
		splitRow:    splitRow,
		renderer:    cfg.Renderer,
		minLevel:    cfg.MinLevel,
		divider:     lr.NewStyle().Faint(true).Render(strings.Repeat("─", width)),
		statusStyle: lr.NewStyle().Bold(true),
	}, nil
}

// Handle scrolls the rendered record into the log region and repaints
// the divider. The whole frame goes out in a single write; if that
// write fails the error surfaces unmodified, with no retry, because a
// half-emitted control sequence leaves the terminal in an unknown
// state that a blind retry would only worsen.
func (c *SplitController) Handle(rec *core.Record) error {
	rendered := c.renderer.Render(c.width, rec)
	lines := bytes.Split(bytes.TrimRight(rendered, "\n"), []byte("\n"))

	var buf bytes.Buffer
	buf.WriteString(saveCursor)
	buf.WriteString(hideCursor)
	buf.WriteString(setScrollRegion(1, c.splitRow))
	buf.WriteString(moveCursor(c.splitRow, 1))
	for _, line := range lines {
		buf.WriteByte('\n')
		buf.Write(line)
		buf.WriteString(eraseLine)
	}
	buf.WriteString(setScrollRegion(1, c.height))
	buf.WriteString(moveCursor(c.splitRow+1, 1))
	buf.WriteString(eraseLine)
	buf.WriteString(c.divider)
	buf.WriteString(restoreCursor)
	buf.WriteString(showCursor)

	_, err := c.out.Write(buf.Bytes())
	return err
}

// SetStatus repaints the status region below the divider. Rows beyond
// the given lines are cleared; lines beyond the region are dropped.
func (c *SplitController) SetStatus(lines []string) error {
	rows := c.height - c.splitRow - 1

	var buf bytes.Buffer
	buf.WriteString(saveCursor)
	buf.WriteString(hideCursor)
	for i := 0; i < rows; i++ {
		buf.WriteString(moveCursor(c.splitRow+2+i, 1))
		buf.WriteString(eraseLine)
		if i < len(lines) {
			buf.WriteString(c.statusStyle.Render(runewidth.Truncate(lines[i], c.width, "")))
		}
	}
	buf.WriteString(restoreCursor)
	buf.WriteString(showCursor)

	_, err := c.out.Write(buf.Bytes())
	return err
}

// Close releases the scroll region and parks the cursor on the last
// row. Call it before the process gives the terminal back.
func (c *SplitController) Close() error {
	var buf bytes.Buffer
	buf.WriteString(setScrollRegion(1, c.height))
	buf.WriteString(moveCursor(c.height, 1))
	buf.WriteString(showCursor)

	_, err := c.out.Write(buf.Bytes())
	return err
}

// SplitRow returns the last row of the log region.
func (c *SplitController) SplitRow() int {
	return c.splitRow
}

// Width returns the width sampled at construction.
func (c *SplitController) Width() int {
	return c.width
}

// Height returns the height sampled at construction.
func (c *SplitController) Height() int {
	return c.height
}

// ShouldLog reports whether the level passes this sink's gate.
func (c *SplitController) ShouldLog(level core.Level, _ string) bool {
	return level >= c.minLevel
}

// MinLevel returns the configured minimum level.
func (c *SplitController) MinLevel() core.Level {
	return c.minLevel
}

// CatchPanics reports the panic policy; the controller never asks
// producers to swallow panics.
func (c *SplitController) CatchPanics() bool {
	return false
}
