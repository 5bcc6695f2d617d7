package format

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Indent describes the left margin of continuation lines: a block offset
// accumulated by nesting plus an alignment offset for visual alignment under
// an opening token.
type Indent struct {
	Block     int
	Alignment int
}

func (i Indent) Width() int {
	return i.Block + i.Alignment
}

func (i Indent) String() string {
	return strings.Repeat(" ", i.Width())
}

// BlockIndent returns the indent pushed right by n block columns.
func (i Indent) BlockIndent(n int) Indent {
	return Indent{Block: i.Block + n, Alignment: i.Alignment}
}

// AlignTo returns an indent aligning exactly under column col.
func AlignTo(col int) Indent {
	return Indent{Alignment: col}
}

// Shape is the width budget threaded through every layout decision: the
// columns still available on the current line and the indent continuation
// lines start at.
type Shape struct {
	Width     int
	Indent    Indent
	unbounded bool
}

func NewShape(width int, indent Indent) Shape {
	return Shape{Width: width, Indent: indent}
}

// Infinite returns the shape with wrap-forcing by width disabled. Comments
// found in gaps may still force breaks; width alone never does.
func (s Shape) Infinite() Shape {
	s.unbounded = true
	return s
}

// Fits reports whether cells columns fit into the remaining budget.
func (s Shape) Fits(cells int) bool {
	if s.unbounded {
		return true
	}
	return cells <= s.Width
}

// displayWidth measures a single-line string in terminal cells rather than
// bytes, so wide runes do not slip past the budget.
func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// lastLineWidth measures the final line of a possibly multi-line rendering.
func lastLineWidth(s string) int {
	if idx := strings.LastIndexByte(s, '\n'); idx >= 0 {
		return displayWidth(s[idx+1:])
	}
	return displayWidth(s)
}
