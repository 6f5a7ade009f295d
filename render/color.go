package render

import (
	"github.com/muesli/termenv"
)

// DefaultPalette returns the background palette modules cycle
// through. The standard ANSI colors keep module columns legible on
// both light and dark terminals.
func DefaultPalette() []termenv.Color {
	return []termenv.Color{
		termenv.ANSIBlue,
		termenv.ANSIMagenta,
		termenv.ANSICyan,
		termenv.ANSIGreen,
		termenv.ANSIYellow,
		termenv.ANSIRed,
		termenv.ANSIBrightBlue,
		termenv.ANSIBrightMagenta,
		termenv.ANSIBrightCyan,
		termenv.ANSIBrightGreen,
	}
}

// ColorAssigner maps module names to background colors. The first
// time a module is seen it takes the next color from a cyclic
// palette; that assignment is stable for the lifetime of the
// assigner. The table only grows, it is never reset.
//
// A ColorAssigner is not internally synchronized. Share one instance
// across goroutines only under external mutual exclusion, or confine
// it to the single goroutine driving the sink chain.
type ColorAssigner struct {
	palette  []termenv.Color
	assigned map[string]termenv.Color
	cursor   int
}

// NewColorAssigner creates an assigner over the given palette. A nil
// or empty palette falls back to DefaultPalette.
func NewColorAssigner(palette []termenv.Color) *ColorAssigner {
	if len(palette) == 0 {
		palette = DefaultPalette()
	}
	return &ColorAssigner{
		palette:  palette,
		assigned: make(map[string]termenv.Color),
	}
}

// ColorFor returns the color assigned to the module, assigning the
// next palette color on first sight.
func (a *ColorAssigner) ColorFor(module string) termenv.Color {
	if c, ok := a.assigned[module]; ok {
		return c
	}
	c := a.palette[a.cursor%len(a.palette)]
	a.cursor++
	a.assigned[module] = c
	return c
}
