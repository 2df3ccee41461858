// Package text holds small string helpers shared by the loader and the widgets.
package text

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// TabWidth is the number of spaces a tab character expands to.
const TabWidth = 4

// Placeholder stands in for control characters that must not reach the terminal.
const Placeholder = '�'

var tabSpaces = strings.Repeat(" ", TabWidth)

// ExpandTabs replaces every tab with TabWidth spaces.
// Tab stops are not honored; each tab becomes the same fixed run.
func ExpandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	return strings.ReplaceAll(s, "\t", tabSpaces)
}

// Normalize prepares a source line for display: tabs are expanded, then any
// remaining C0/C1 control character (ESC and CR included) becomes Placeholder.
// The result occupies exactly one cell per visible rune and moves no cursor.
func Normalize(s string) string {
	s = ExpandTabs(s)
	if strings.IndexFunc(s, isControl) < 0 {
		return s
	}
	return strings.Map(func(r rune) rune {
		if isControl(r) {
			return Placeholder
		}
		return r
	}, s)
}

func isControl(r rune) bool {
	return r < 0x20 || (r >= 0x7f && r <= 0x9f)
}

// StripANSI removes ANSI escape codes from a string.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// VisibleLen returns the visible display width of a string (excluding ANSI codes).
func VisibleLen(s string) int {
	return runewidth.StringWidth(StripANSI(s))
}
