package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// colGap is the space between table columns.
const colGap = 2

// Column is one table column. Right-aligned columns suit numbers.
type Column struct {
	Title string
	Right bool
}

// Cols builds left-aligned columns from titles.
func Cols(titles ...string) []Column {
	cols := make([]Column, len(titles))
	for i, t := range titles {
		cols[i] = Column{Title: t}
	}
	return cols
}

// RenderColumns renders an aligned table with a header separator line.
// Columns are as wide as their widest visible cell or title; missing
// cells render empty and extra cells are dropped.
func RenderColumns(cols []Column, rows [][]string) string {
	if len(cols) == 0 {
		return ""
	}

	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = lipgloss.Width(c.Title)
	}
	for _, row := range rows {
		for i := range min(len(cols), len(row)) {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	var b strings.Builder
	writeRow := func(cells []string, style func(string) string) {
		parts := make([]string, len(cols))
		for i, c := range cols {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			if c.Right {
				cell = padLeft(cell, widths[i])
			} else if i < len(cols)-1 {
				cell = padRight(cell, widths[i])
			}
			parts[i] = style(cell)
		}
		b.WriteString(strings.TrimRight(strings.Join(parts, strings.Repeat(" ", colGap)), " "))
		b.WriteString("\n")
	}

	titles := make([]string, len(cols))
	rules := make([]string, len(cols))
	for i, c := range cols {
		titles[i] = c.Title
		rules[i] = strings.Repeat("─", widths[i])
	}
	writeRow(titles, func(s string) string { return StyleHeader.Render(s) })
	writeRow(rules, func(s string) string { return StyleDim.Render(s) })
	for _, row := range rows {
		writeRow(row, func(s string) string { return s })
	}

	return b.String()
}
