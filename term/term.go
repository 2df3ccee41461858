// Package term builds the raw ANSI control sequences widgets embed in their
// draw lists. Coordinates are 0-based on input and 1-based on the wire.
package term

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const (
	csi = "\x1b["

	resetSeq       = csi + "0m"
	clearScreenSeq = csi + "2J" + csi + "H"
	altScreenEnter = csi + "?1049h"
	altScreenExit  = csi + "?1049l"
	cursorHide     = csi + "?25l"
	cursorShow     = csi + "?25h"
)

// GotoXY returns the cursor positioning sequence for column x, row y.
func GotoXY(x, y uint16) string {
	var b strings.Builder
	b.Grow(12)
	b.WriteString(csi)
	b.WriteString(strconv.Itoa(int(y) + 1))
	b.WriteByte(';')
	b.WriteString(strconv.Itoa(int(x) + 1))
	b.WriteByte('H')
	return b.String()
}

// Reset returns the SGR sequence that clears all display attributes.
func Reset() string {
	return resetSeq
}

// ClearScreen erases the whole screen and homes the cursor.
func ClearScreen() string {
	return clearScreenSeq
}

// EnterAltScreen switches to the alternate screen buffer.
func EnterAltScreen() string {
	return altScreenEnter
}

// ExitAltScreen restores the primary screen buffer.
func ExitAltScreen() string {
	return altScreenExit
}

// HideCursor hides the terminal cursor.
func HideCursor() string {
	return cursorHide
}

// ShowCursor makes the terminal cursor visible again.
func ShowCursor() string {
	return cursorShow
}

// SizedString clamps s to exactly width display cells: longer strings are
// truncated, shorter ones padded with spaces. Escape sequences in s do not
// count toward the width.
func SizedString(s string, width uint16) string {
	w := int(width)
	if w == 0 {
		return ""
	}
	out := ansi.Truncate(s, w, "")
	if pad := w - ansi.StringWidth(out); pad > 0 {
		out += strings.Repeat(" ", pad)
	}
	return out
}
