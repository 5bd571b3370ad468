package formatter

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// padRight pads s with spaces to a visible width of w.
func padRight(s string, w int) string {
	if pad := w - lipgloss.Width(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

// padLeft right-aligns s within a visible width of w.
func padLeft(s string, w int) string {
	if pad := w - lipgloss.Width(s); pad > 0 {
		return strings.Repeat(" ", pad) + s
	}
	return s
}

// FormatNumber renders v with the shortest exact representation and the
// decimal separator of lang.
func FormatNumber(v float64, sep byte) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if sep != '.' {
		s = strings.Replace(s, ".", string(sep), 1)
	}
	return s
}

// FormatKelvin renders an optional temperature, "--" when unknown.
func FormatKelvin(v *float64, sep byte) string {
	if v == nil {
		return "--"
	}
	return FormatNumber(*v, sep) + " K"
}

// FormatAbundance renders an optional natural abundance in percent.
func FormatAbundance(v *float64, sep byte) string {
	if v == nil {
		return "--"
	}
	return FormatNumber(*v, sep) + " %"
}
