// Package layout assigns screen rectangles to widgets.
package layout

import (
	"log"

	"github.com/drake/peek/debug"
	"github.com/drake/peek/ui/widget"
)

// Preferrer is implemented by widgets that know how many rows they need.
// Dock members that do not implement it take one row.
type Preferrer interface {
	PreferredHeight() uint16
}

// Dock is an ordered stack of fixed-height widgets (top or bottom).
type Dock struct {
	Widgets []widget.Widget
}

// NewDock creates a dock holding ws in order.
func NewDock(ws ...widget.Widget) *Dock {
	return &Dock{Widgets: ws}
}

// Height returns the total height of all widgets in the dock.
func (d *Dock) Height() uint16 {
	var h uint16
	for _, w := range d.Widgets {
		h += preferredHeight(w)
	}
	return h
}

func preferredHeight(w widget.Widget) uint16 {
	if p, ok := w.(Preferrer); ok {
		return p.PreferredHeight()
	}
	return 1
}

// Engine calculates layout for top dock, fill area, and bottom dock.
type Engine struct {
	width  uint16
	height uint16
	logger *log.Logger
}

// NewEngine creates a new layout engine.
func NewEngine() *Engine {
	return &Engine{logger: debug.Logger()}
}

// SetSize sets the total available size.
func (e *Engine) SetSize(width, height uint16) {
	e.width = width
	e.height = height
}

// Width returns the current width.
func (e *Engine) Width() uint16 {
	return e.width
}

// Height returns the current height.
func (e *Engine) Height() uint16 {
	return e.height
}

// Apply assigns coordinates to every widget and thereby re-renders them.
//
// The top dock stacks down from row 0 and the bottom dock ends on the last
// row. Fill widgets share the rows in between in order: members that
// implement Preferrer keep their preferred height, the rest split what is
// left evenly and the last of them absorbs the remainder. Everything is
// clipped when the screen is too short, top first.
func (e *Engine) Apply(top, bottom *Dock, fill []widget.Widget) {
	topHeight := min(top.Height(), e.height)
	bottomHeight := min(bottom.Height(), e.height-topHeight)

	e.stack(top, 0, topHeight)
	e.stack(bottom, e.height-bottomHeight, bottomHeight)

	avail := e.height - topHeight - bottomHeight
	heights := splitFill(fill, avail)

	y := topHeight
	for i, w := range fill {
		w.SetCoordinates(widget.NewCoordinates(0, y, e.width, heights[i]))
		y += heights[i]
	}

	e.logger.Printf("[DEBUG] layout %dx%d: top=%d fill=%v bottom=%d",
		e.width, e.height, topHeight, heights, bottomHeight)
}

// splitFill returns the height of each fill widget; the sum never exceeds avail.
func splitFill(fill []widget.Widget, avail uint16) []uint16 {
	heights := make([]uint16, len(fill))

	var fixed uint16
	last := -1
	flexible := 0
	for i, w := range fill {
		if p, ok := w.(Preferrer); ok {
			heights[i] = p.PreferredHeight()
			fixed += heights[i]
			continue
		}
		flexible++
		last = i
	}

	if fixed > avail {
		// No room for flexible members; clip fixed ones in order.
		left := avail
		for i := range heights {
			heights[i] = min(heights[i], left)
			left -= heights[i]
		}
		return heights
	}
	if flexible == 0 {
		return heights
	}

	rest := avail - fixed
	share := rest / uint16(flexible)
	for i, w := range fill {
		if _, ok := w.(Preferrer); ok {
			continue
		}
		heights[i] = share
		if i == last {
			heights[i] = rest - share*uint16(flexible-1)
		}
	}
	return heights
}

// stack places d's widgets downward from row y within limit rows.
func (e *Engine) stack(d *Dock, y, limit uint16) {
	end := y + limit
	for _, w := range d.Widgets {
		h := min(preferredHeight(w), end-y)
		w.SetCoordinates(widget.NewCoordinates(0, y, e.width, h))
		y += h
	}
}
