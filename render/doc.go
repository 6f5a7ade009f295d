// Package render defines how records are serialized into bytes.
//
// It exposes the Renderer interface plus two implementations: the
// PlainRenderer, an uncolored format for file-backed sinks, and the
// ColumnRenderer, a fixed-column terminal format with ANSI color and
// box-drawing borders for multi-line records.
//
// Column arithmetic is done in terminal cells via go-runewidth, with
// a byte-length fallback for strings that cannot be measured. All
// padding clamps to zero, so any width >= 0 renders without error;
// the failure posture is "degrade, never throw".
//
// Coloring goes through termenv with an explicitly configured
// profile. Styled segments always carry a matching reset, so terminal
// state never leaks past a rendered line. Per-module background
// colors come from a ColorAssigner, an injected first-seen-wins
// cyclic-palette table with caller-controlled lifetime.
package render
