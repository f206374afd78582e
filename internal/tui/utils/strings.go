package utils

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
)

// TruncateString truncates a plain string to width cells, adding an
// ellipsis when something was cut.
func TruncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// PadRight pads a plain string with spaces to width cells.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// Wrap word-wraps s to width, keeping ANSI sequences intact.
func Wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return strings.TrimRight(wordwrap.String(s, width), "\n")
}
