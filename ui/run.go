// Package ui wires the widgets to a live terminal.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	xterm "github.com/charmbracelet/x/term"

	"github.com/drake/peek/term"
)

// ErrNotTerminal is returned when stdin or stdout is not a terminal.
var ErrNotTerminal = errors.New("stdin and stdout must be a terminal")

// Run takes over the terminal and shows screen until the user quits or ctx
// is cancelled. Bubble Tea owns raw mode and delivers the initial size and
// every resize as tea.WindowSizeMsg; its renderer stays off because the
// screen positions its own output.
func Run(ctx context.Context, screen *Screen) error {
	in, out := os.Stdin, os.Stdout
	if !xterm.IsTerminal(in.Fd()) || !xterm.IsTerminal(out.Fd()) {
		return ErrNotTerminal
	}

	io.WriteString(out, term.EnterAltScreen()+term.HideCursor())
	defer io.WriteString(out, term.Reset()+term.ShowCursor()+term.ExitAltScreen())

	model := NewModel(screen, out)
	program := tea.NewProgram(
		model,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithoutRenderer(),
	)

	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		err = nil
	}
	if err != nil {
		return fmt.Errorf("event loop: %w", err)
	}
	return model.Err()
}
