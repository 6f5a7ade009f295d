package render

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// VisualWidth returns the display width of s in terminal cells.
// go-runewidth handles East Asian wide characters, emoji, and other
// multi-cell runes. Strings whose width cannot be measured (invalid
// UTF-8) fall back to the byte length; an over-estimate costs a few
// columns of padding, never a failed render.
func VisualWidth(s string) int {
	if !utf8.ValidString(s) {
		return len(s)
	}
	return runewidth.StringWidth(s)
}

// pad returns n spaces. Negative counts clamp to the empty string so
// layout arithmetic can go below zero without panicking.
func pad(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
