package catalog

import (
	"fmt"
	"iter"
	"strings"
)

const (
	longColumns     = 32
	longPlaceholder = "."
)

// GetLongTable yields one line per period of the 32-column periodic table.
// Empty cells hold a placeholder; each cell is three characters wide and
// trailing blanks are trimmed.
func (c *Catalog) GetLongTable() iter.Seq[string] {
	return func(yield func(string) bool) {
		var row [longColumns]string
		period := 1
		for n := range c.GetElements() {
			if n.Period() != period {
				if !yield(renderLongRow(row)) {
					return
				}
				row = [longColumns]string{}
				period = n.Period()
			}
			row[n.LongColumn()-1] = n.Symbol()
		}
		yield(renderLongRow(row))
	}
}

func renderLongRow(row [longColumns]string) string {
	var b strings.Builder
	for _, cell := range row {
		if cell == "" {
			cell = longPlaceholder
		}
		fmt.Fprintf(&b, "%-3s", cell)
	}
	return strings.TrimRight(b.String(), " ")
}
