package formatter

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatLongTable_MatchesCatalogLines(t *testing.T) {
	c := loadCatalog(t)

	out := stripANSI(FormatLongTable(c))
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	want := slices.Collect(c.GetLongTable())
	require.Len(t, lines, len(want)+2)
	assert.Equal(t, "PERIODIC TABLE", lines[0])
	assert.Equal(t, want, lines[2:])
}
