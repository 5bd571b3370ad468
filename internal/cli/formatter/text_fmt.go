package formatter

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/nuclides/internal/catalog"
	"github.com/charmbracelet/lipgloss"
)

type textColumn struct {
	title string
	width int
	right bool
	value func(catalog.NuclideSummary) string
}

func textColumns(nameWidth, categoryWidth int) []textColumn {
	return []textColumn{
		{"Z", 3, true, func(s catalog.NuclideSummary) string { return strconv.Itoa(s.Z) }},
		{"Sym", 3, false, func(s catalog.NuclideSummary) string { return s.Symbol }},
		{"Name", nameWidth, false, func(s catalog.NuclideSummary) string { return s.Name }},
		{"Per", 3, true, func(s catalog.NuclideSummary) string { return strconv.Itoa(s.Period) }},
		{"Grp", 3, true, func(s catalog.NuclideSummary) string { return strconv.Itoa(s.Group) }},
		{"Blk", 3, false, func(s catalog.NuclideSummary) string { return s.Block }},
		{"Category", categoryWidth, false, func(s catalog.NuclideSummary) string { return s.CategoryName }},
		{"Weight", 8, true, func(s catalog.NuclideSummary) string { return FormatNumber(s.Weight, '.') }},
		{"State", 5, false, func(s catalog.NuclideSummary) string { return s.State }},
		{"Life", 4, false, func(s catalog.NuclideSummary) string { return s.Life }},
		{"Origin", 6, false, func(s catalog.NuclideSummary) string { return s.Origin }},
		{"Era", 3, true, func(s catalog.NuclideSummary) string { return strconv.Itoa(s.Era) }},
		{"Isotopes", 8, true, func(s catalog.NuclideSummary) string { return strconv.Itoa(s.IsotopeCount) }},
		{"Stable", 6, true, func(s catalog.NuclideSummary) string { return strconv.Itoa(s.StableCount) }},
	}
}

// FormatTextTable renders the fixed-width element table. The name column
// is at least nameWidth wide; pass Catalog.MaxNameLength so every language
// lines up the same way regardless of which rows are shown.
func FormatTextTable(rows []catalog.NuclideSummary, nameWidth int) string {
	categoryWidth := 0
	for _, s := range rows {
		nameWidth = max(nameWidth, lipgloss.Width(s.Name))
		categoryWidth = max(categoryWidth, lipgloss.Width(s.CategoryName))
	}
	cols := textColumns(nameWidth, categoryWidth)
	for i := range cols {
		cols[i].width = max(cols[i].width, len(cols[i].title))
	}

	var b strings.Builder
	header := make([]string, len(cols))
	for i, col := range cols {
		header[i] = cell(col.title, col)
	}
	b.WriteString(StyleHeader.Render(strings.TrimRight(strings.Join(header, " "), " ")))
	b.WriteString("\n")

	for _, s := range rows {
		line := make([]string, len(cols))
		for i, col := range cols {
			line[i] = cell(col.value(s), col)
		}
		b.WriteString(strings.TrimRight(strings.Join(line, " "), " "))
		b.WriteString("\n")
	}
	return b.String()
}

func cell(text string, col textColumn) string {
	if col.right {
		return padLeft(text, col.width)
	}
	return padRight(text, col.width)
}
