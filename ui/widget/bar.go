package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/drake/peek/term"
	"github.com/drake/peek/text"
)

// Compile-time check that Bar implements Widget
var _ Widget = (*Bar)(nil)

// Bar renders a single row with left and right aligned sections.
type Bar struct {
	left        string
	right       string
	style       lipgloss.Style
	buffer      string
	coordinates Coordinates
}

// NewBar creates a bar drawn with style.
func NewBar(style lipgloss.Style) *Bar {
	return &Bar{style: style}
}

// SetText updates both sections and re-renders in place.
func (b *Bar) SetText(left, right string) {
	if left == b.left && right == b.right {
		return
	}
	b.left = left
	b.right = right
	b.Refresh()
}

// PreferredHeight returns 1, or 0 when the bar has nothing to show.
func (b *Bar) PreferredHeight() uint16 {
	if b.left == "" && b.right == "" {
		return 0
	}
	return 1
}

// Size implements Widget.
func (b *Bar) Size() Size {
	return b.coordinates.Size
}

// SetSize implements Widget.
func (b *Bar) SetSize(size Size) {
	b.coordinates.Size = size
}

// Position implements Widget.
func (b *Bar) Position() Position {
	return b.coordinates.Position
}

// SetPosition implements Widget.
func (b *Bar) SetPosition(pos Position) {
	b.coordinates.Position = pos
}

// Coordinates implements Widget.
func (b *Bar) Coordinates() Coordinates {
	return b.coordinates
}

// SetCoordinates implements Widget.
func (b *Bar) SetCoordinates(c Coordinates) {
	b.coordinates = c
	b.Refresh()
}

// RenderHeader implements Widget.
func (b *Bar) RenderHeader() string {
	return b.left
}

// Refresh implements Widget.
// Only the first row of the rectangle is drawn.
func (b *Bar) Refresh() {
	width, height := b.coordinates.Size.WH()
	if width == 0 || height == 0 {
		b.buffer = ""
		return
	}
	x, y := b.coordinates.Position.XY()

	leftLen := text.VisibleLen(b.left)
	rightLen := text.VisibleLen(b.right)
	pad := int(width) - leftLen - rightLen
	if pad < 1 {
		pad = 1
	}
	line := term.SizedString(b.left+strings.Repeat(" ", pad)+b.right, width)

	b.buffer = term.GotoXY(x, y) + term.Reset() + b.style.Render(line) + term.Reset()
}

// DrawList implements Widget.
func (b *Bar) DrawList() string {
	return b.buffer
}
