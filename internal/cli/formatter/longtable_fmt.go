package formatter

import (
	"strings"

	"github.com/alexanderramin/nuclides/internal/catalog"
)

// longCellWidth is the width of one cell of Catalog.GetLongTable.
const longCellWidth = 3

// FormatLongTable renders the 32-column periodic table with each symbol
// colored by its chemical series.
func FormatLongTable(c *catalog.Catalog) string {
	var b strings.Builder
	b.WriteString(Header("Periodic table"))
	b.WriteString("\n")
	for line := range c.GetLongTable() {
		for i := 0; i < len(line); i += longCellWidth {
			cellText := line[i:min(i+longCellWidth, len(line))]
			symbol := strings.TrimSpace(cellText)
			n, ok := c.GetBySymbol(symbol)
			if !ok {
				b.WriteString(Dim(cellText))
				continue
			}
			b.WriteString(CategoryColor(n.Category()).Render(cellText))
		}
		b.WriteString("\n")
	}
	return b.String()
}
