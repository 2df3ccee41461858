package widget

import "math"

// Position is the origin cell of a widget on the display surface.
type Position struct {
	X uint16
	Y uint16
}

// XY returns the column and row.
func (p Position) XY() (uint16, uint16) {
	return p.X, p.Y
}

// Size is the number of visible columns and rows a widget may use.
type Size struct {
	Width  uint16
	Height uint16
}

// WH returns the width and height.
func (s Size) WH() (uint16, uint16) {
	return s.Width, s.Height
}

// Empty reports whether the size covers no cells.
func (s Size) Empty() bool {
	return s.Width == 0 || s.Height == 0
}

// Coordinates is the rectangle the layout engine assigns to a widget.
type Coordinates struct {
	Position Position
	Size     Size
}

// NewCoordinates builds a rectangle from origin and size.
func NewCoordinates(x, y, width, height uint16) Coordinates {
	return Coordinates{
		Position: Position{X: x, Y: y},
		Size:     Size{Width: width, Height: height},
	}
}

// rowsBelow returns how many of height rows starting at y are addressable
// without the row index wrapping past math.MaxUint16.
func rowsBelow(y, height uint16) int {
	return min(int(height), math.MaxUint16-int(y)+1)
}
