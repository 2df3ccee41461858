package ui

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/drake/peek/term"
	"github.com/drake/peek/ui/layout"
	"github.com/drake/peek/ui/style"
	"github.com/drake/peek/ui/widget"
)

// Screen composes a title bar, one text view per file, and a status bar.
// Consecutive views are divided by separators.
type Screen struct {
	engine *layout.Engine
	styles style.Styles
	title  *widget.Bar
	status *widget.Bar
	views  []*widget.TextView
	names  []string
	fill   []widget.Widget
	label  string
}

// NewScreen creates an empty screen whose title bar shows label.
func NewScreen(styles style.Styles, label string) *Screen {
	return &Screen{
		engine: layout.NewEngine(),
		styles: styles,
		title:  widget.NewBar(styles.TitleBar),
		status: widget.NewBar(styles.StatusBar),
		label:  label,
	}
}

// AddView appends a text view shown under name.
func (s *Screen) AddView(name string, tv *widget.TextView) {
	if len(s.views) > 0 {
		s.fill = append(s.fill, widget.NewSeparator(s.styles.Muted))
	}
	s.fill = append(s.fill, tv)
	s.views = append(s.views, tv)
	s.names = append(s.names, name)
}

// Views returns the number of text views.
func (s *Screen) Views() int {
	return len(s.views)
}

// Resize lays every widget out for a width x height terminal.
// Each widget re-renders as part of the layout pass.
func (s *Screen) Resize(width, height int) {
	w, h := clampDim(width), clampDim(height)
	s.engine.SetSize(w, h)

	s.title.SetText(s.label, strings.Join(s.names, " | "))
	s.status.SetText(s.summary(), fmt.Sprintf("%dx%d  q quit", w, h))

	s.engine.Apply(layout.NewDock(s.title), layout.NewDock(s.status), s.fill)
}

// Frame returns the concatenated draw lists, top to bottom.
func (s *Screen) Frame() string {
	var b strings.Builder
	b.WriteString(s.title.DrawList())
	for _, w := range s.fill {
		b.WriteString(w.DrawList())
	}
	b.WriteString(s.status.DrawList())
	return b.String()
}

// Draw clears the terminal and writes the current frame to w.
func (s *Screen) Draw(w io.Writer) error {
	_, err := io.WriteString(w, term.ClearScreen()+s.Frame())
	return err
}

func (s *Screen) summary() string {
	parts := make([]string, len(s.views))
	for i, tv := range s.views {
		parts[i] = fmt.Sprintf("%s: %d lines", s.names[i], tv.Lines())
	}
	return strings.Join(parts, "  ")
}

func clampDim(n int) uint16 {
	if n < 0 {
		return 0
	}
	if n > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(n)
}
