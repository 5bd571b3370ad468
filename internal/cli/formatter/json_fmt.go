package formatter

import (
	"encoding/json"
	"strings"

	"github.com/alexanderramin/nuclides/internal/catalog"
)

// FormatJSON renders summaries as an indented JSON array.
func FormatJSON(rows []catalog.NuclideSummary) (string, error) {
	if rows == nil {
		rows = []catalog.NuclideSummary{}
	}
	var b strings.Builder
	enc := json.NewEncoder(&b)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(rows); err != nil {
		return "", err
	}
	return b.String(), nil
}
