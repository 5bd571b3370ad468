package formatter

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTextTable_ColumnsLineUpAcrossLanguages(t *testing.T) {
	c := loadCatalog(t)

	for _, lang := range []string{"en", "de", "fr", "ru"} {
		t.Run(lang, func(t *testing.T) {
			rows := summaries(t, c, lang, "H", "Rf", "Og")
			out := stripANSI(FormatTextTable(rows, c.MaxNameLength(lang)))
			lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
			require.Len(t, lines, 4)

			nameCol := strings.Index(lines[0], "Name")
			perCol := strings.Index(lines[0], "Per")
			require.Positive(t, perCol)
			assert.Equal(t, c.MaxNameLength(lang)+1, lipgloss.Width(lines[0][nameCol:perCol]),
				"name column is padded to the longest name")
			for _, line := range lines {
				assert.Equal(t, line, strings.TrimRight(line, " "))
			}
		})
	}
}

func TestFormatTextTable_WidensForLongerNames(t *testing.T) {
	c := loadCatalog(t)
	rows := summaries(t, c, "en", "H")
	rows[0].Name = "Extraordinarily long"

	out := stripANSI(FormatTextTable(rows, 4))
	assert.Contains(t, out, "Extraordinarily long Per")
}

func TestFormatTextTable_Empty(t *testing.T) {
	out := stripANSI(FormatTextTable(nil, 8))
	assert.Equal(t, 1, strings.Count(out, "\n"))
	assert.True(t, strings.HasPrefix(out, "  Z Sym Name"))
}
