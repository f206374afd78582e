package view

import (
	"strings"

	"folio/internal/tui/design"
)

// PrepareLogContent styles activity log lines for the log overlay.
func PrepareLogContent(lines []string, maxWidth int) string {
	// maxWidth is unused; the viewport handles overflow.
	out := make([]string, len(lines))
	for i, rawLine := range lines {
		out[i] = styleLogLine(rawLine)
	}
	return strings.Join(out, "\n")
}

// styleLogLine picks a style from the level marker in the line.
func styleLogLine(l string) string {
	switch {
	case strings.Contains(l, "[ERROR]"):
		return design.LogErrorStyle.Render(l)
	case strings.Contains(l, "[WARN]"):
		return design.LogWarnStyle.Render(l)
	case strings.Contains(l, "[DEBUG]"):
		return design.LogDebugStyle.Render(l)
	default:
		return design.LogInfoStyle.Render(l)
	}
}
