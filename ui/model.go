package ui

import (
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/drake/peek/debug"
)

// Model adapts a Screen to the Bubble Tea event loop.
// Drawing bypasses Bubble Tea's renderer: each resize writes the
// screen's draw lists straight to out.
type Model struct {
	screen *Screen
	out    io.Writer
	err    error
	logger *log.Logger
}

// NewModel creates a model drawing screen to out.
func NewModel(screen *Screen, out io.Writer) *Model {
	return &Model{screen: screen, out: out, logger: debug.Logger()}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.logger.Printf("[DEBUG] resize %dx%d", msg.Width, msg.Height)
		m.screen.Resize(msg.Width, msg.Height)
		if err := m.screen.Draw(m.out); err != nil {
			m.err = err
			return m, tea.Quit
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model. Output is written in Update instead.
func (m *Model) View() string { return "" }

// Err returns the write error that stopped the model, if any.
func (m *Model) Err() error {
	return m.err
}
