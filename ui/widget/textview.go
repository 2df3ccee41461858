package widget

import (
	"log"
	"strings"

	"github.com/drake/peek/debug"
	"github.com/drake/peek/files"
	"github.com/drake/peek/term"
	"github.com/drake/peek/text"
)

// Compile-time check that TextView implements Widget
var _ Widget = (*TextView)(nil)

// TextView displays the first lines of a text file inside its rectangle.
// The view always starts at the first line; there is no scroll offset.
type TextView struct {
	lines       []string // read-only after construction
	buffer      string
	coordinates Coordinates
	logger      *log.Logger
}

// NewTextView reads f from disk into a new view.
func NewTextView(f files.File) (*TextView, error) {
	return NewTextViewFrom(files.Disk{}, f)
}

// NewTextViewFrom builds a view over the line store src returns for f.
// Lines from a Source are already normalized and are shared, not copied.
func NewTextViewFrom(src files.Source, f files.File) (*TextView, error) {
	lines, err := src.Lines(f)
	if err != nil {
		return nil, err
	}
	return newTextView(lines), nil
}

// NewTextViewFromLines creates a view over raw lines, normalizing each the
// way the file loader does. The input slice is not modified.
func NewTextViewFromLines(lines []string) *TextView {
	normalized := make([]string, len(lines))
	for i, line := range lines {
		normalized[i] = text.Normalize(line)
	}
	return newTextView(normalized)
}

func newTextView(lines []string) *TextView {
	return &TextView{
		lines:  lines,
		logger: debug.Logger(),
	}
}

// Lines returns the number of stored lines.
func (tv *TextView) Lines() int {
	return len(tv.lines)
}

// Line returns stored line i, or "" when out of range.
func (tv *TextView) Line(i int) string {
	if i < 0 || i >= len(tv.lines) {
		return ""
	}
	return tv.lines[i]
}

// Size implements Widget.
func (tv *TextView) Size() Size {
	return tv.coordinates.Size
}

// SetSize implements Widget. It does not re-render.
func (tv *TextView) SetSize(size Size) {
	tv.coordinates.Size = size
}

// Position implements Widget.
func (tv *TextView) Position() Position {
	return tv.coordinates.Position
}

// SetPosition implements Widget. It does not re-render.
func (tv *TextView) SetPosition(pos Position) {
	tv.coordinates.Position = pos
}

// Coordinates implements Widget.
func (tv *TextView) Coordinates() Coordinates {
	return tv.coordinates
}

// SetCoordinates implements Widget.
// The draw list is rebuilt before SetCoordinates returns.
func (tv *TextView) SetCoordinates(c Coordinates) {
	tv.coordinates = c
	tv.Refresh()
}

// RenderHeader implements Widget. A text view has no title bar.
func (tv *TextView) RenderHeader() string {
	return ""
}

// Refresh implements Widget.
func (tv *TextView) Refresh() {
	width, height := tv.coordinates.Size.WH()
	x, y := tv.coordinates.Position.XY()

	clear := ClearList(tv.coordinates)
	if width == 0 || height == 0 {
		tv.buffer = clear
		return
	}

	visible := tv.lines[:min(len(tv.lines), rowsBelow(y, height))]
	rows := parallelMap(len(visible), func(i int) string {
		return formatRow(visible[i], x, y+uint16(i), width)
	})

	var b strings.Builder
	b.Grow(len(clear) + len(rows)*(int(width)+16))
	b.WriteString(clear)
	for _, row := range rows {
		b.WriteString(row)
	}
	tv.buffer = b.String()

	tv.logger.Printf("[DEBUG] textview refresh at %d,%d size %dx%d: %d rows", x, y, width, height, len(rows))
}

// DrawList implements Widget.
func (tv *TextView) DrawList() string {
	return tv.buffer
}

func formatRow(line string, x, y, width uint16) string {
	return term.GotoXY(x, y) + term.Reset() + term.SizedString(line, width)
}
