package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/drake/peek/term"
)

// Compile-time check that Separator implements Widget
var _ Widget = (*Separator)(nil)

// Separator renders a horizontal line.
type Separator struct {
	style       lipgloss.Style
	buffer      string
	coordinates Coordinates
}

// NewSeparator creates a new separator widget.
func NewSeparator(style lipgloss.Style) *Separator {
	return &Separator{style: style}
}

// PreferredHeight returns 1.
func (s *Separator) PreferredHeight() uint16 {
	return 1
}

// Size implements Widget.
func (s *Separator) Size() Size { return s.coordinates.Size }

// SetSize implements Widget.
func (s *Separator) SetSize(size Size) { s.coordinates.Size = size }

// Position implements Widget.
func (s *Separator) Position() Position { return s.coordinates.Position }

// SetPosition implements Widget.
func (s *Separator) SetPosition(pos Position) { s.coordinates.Position = pos }

// Coordinates implements Widget.
func (s *Separator) Coordinates() Coordinates { return s.coordinates }

// SetCoordinates implements Widget.
func (s *Separator) SetCoordinates(c Coordinates) {
	s.coordinates = c
	s.Refresh()
}

// RenderHeader implements Widget.
func (s *Separator) RenderHeader() string { return "" }

// Refresh implements Widget.
func (s *Separator) Refresh() {
	if s.coordinates.Size.Empty() {
		s.buffer = ""
		return
	}
	x, y := s.coordinates.Position.XY()
	line := strings.Repeat("─", int(s.coordinates.Size.Width))
	s.buffer = term.GotoXY(x, y) + term.Reset() + s.style.Render(line) + term.Reset()
}

// DrawList implements Widget.
func (s *Separator) DrawList() string { return s.buffer }
