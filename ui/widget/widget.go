// Package widget defines the contract between positioned UI elements and the
// layout engine, and the widgets that implement it.
package widget

import (
	"strings"

	"github.com/drake/peek/term"
)

// Widget is the interface for layout-aware UI elements.
//
// A widget renders into a cached draw list: a string of positioned,
// escape-annotated rows that can be written verbatim to the terminal.
type Widget interface {
	Size() Size
	SetSize(size Size)
	Position() Position
	SetPosition(pos Position)
	Coordinates() Coordinates

	// SetCoordinates replaces position and size in one call and
	// synchronously re-renders the draw list.
	SetCoordinates(c Coordinates)

	RenderHeader() string
	Refresh()
	DrawList() string
}

// ClearList returns the sequence that blanks the rectangle c.
// A rectangle with no cells yields an empty string.
func ClearList(c Coordinates) string {
	width, height := c.Size.WH()
	if width == 0 || height == 0 {
		return ""
	}
	x, y := c.Position.XY()
	blank := strings.Repeat(" ", int(width))

	rows := rowsBelow(y, height)
	var b strings.Builder
	b.Grow(rows * (len(blank) + 16))
	for row := 0; row < rows; row++ {
		b.WriteString(term.GotoXY(x, y+uint16(row)))
		b.WriteString(term.Reset())
		b.WriteString(blank)
	}
	return b.String()
}
