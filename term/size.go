package term

import (
	"os"

	xterm "github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Size returns the terminal dimensions of f in cells.
func Size(f *os.File) (width, height int, err error) {
	return xterm.GetSize(f.Fd())
}
