package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/nuclides/internal/catalog"
	"github.com/alexanderramin/nuclides/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const shareWidth = 10

// lifeIndex maps a stability code back to its index; unknown codes map to 0.
func lifeIndex(code string) int {
	if code == "" {
		return 0
	}
	return max(strings.IndexByte(domain.StabilityCodes, code[0]), 0)
}

// FormatNuclide renders the detail card of one nuclide: a metadata panel
// followed by its isotope table.
func FormatNuclide(s catalog.NuclideSummary, lang string) string {
	sep := domain.DecimalSeparator(lang)
	var b strings.Builder

	b.WriteString(StyleBold.Render(s.Name) + "  " + Dim(s.Symbol) + "\n")
	b.WriteString(CategoryColor(domain.Category(s.Category)).Render(s.CategoryName) + "\n\n")

	field := func(label, value string) {
		fmt.Fprintf(&b, "%s  %s\n", StyleDim.Render(padRight(label, 6)), value)
	}
	field("Z", strconv.Itoa(s.Z))
	if s.Period > 0 {
		field("PERIOD", strconv.Itoa(s.Period))
	}
	if s.Group > 0 {
		field("GROUP", strconv.Itoa(s.Group))
	}
	if strings.TrimSpace(s.Block) != "" {
		field("BLOCK", s.Block)
	}
	field("WEIGHT", FormatNumber(s.Weight, sep))
	field("STATE", s.StateName)
	field("MELT", FormatKelvin(s.Melt, sep))
	field("BOIL", FormatKelvin(s.Boil, sep))
	field("LIFE", LifeIndicator(lifeIndex(s.Life)))
	field("ORIGIN", s.OriginName)
	field("BIO", s.BioName)
	field("FOUND", formatDiscovery(s.Year, s.Discoverer))
	if s.Etymology != "" {
		field("NAMED", StyleFg.Render(s.Etymology))
	}

	panel := lipgloss.JoinVertical(lipgloss.Left, b.String(), FormatIsotopes(s.Isotopes, lang))
	return RenderBox("", panel)
}

func formatDiscovery(year int, discoverer string) string {
	when := "prehistoric"
	if year > 0 {
		when = strconv.Itoa(year)
	}
	if discoverer == "" {
		return when
	}
	return when + " " + Dim("("+discoverer+")")
}

// FormatIsotopes renders the isotope table of one nuclide.
func FormatIsotopes(isotopes []catalog.IsotopeSummary, lang string) string {
	if len(isotopes) == 0 {
		return Dim("No isotopes")
	}
	sep := domain.DecimalSeparator(lang)

	cols := []Column{
		{Title: "ISOTOPE"},
		{Title: "ABUNDANCE", Right: true},
		{Title: "SHARE"},
		{Title: "HALFLIFE", Right: true},
		{Title: "DECAY"},
		{Title: "LIFE"},
		{Title: "ORIGIN"},
		{Title: "PRODUCTS"},
	}
	rows := make([][]string, 0, len(isotopes))
	for _, iso := range isotopes {
		share := ""
		if iso.Abundance != nil {
			share = RenderShare(*iso.Abundance/100, shareWidth)
		}
		halflife := Dim("stable")
		if iso.Halflife != nil {
			halflife = iso.HalflifeText
		}
		rows = append(rows, []string{
			Bold(iso.Label),
			FormatAbundance(iso.Abundance, sep),
			share,
			halflife,
			iso.Decay,
			LifeColor(lifeIndex(iso.Stability)).Render(iso.Stability),
			iso.Occurrence,
			formatProducts(iso.Products),
		})
	}
	return RenderColumns(cols, rows)
}

func formatProducts(products []catalog.ProductSummary) string {
	parts := make([]string, 0, len(products))
	for _, p := range products {
		text := p.Mode + "→" + p.Label
		if !p.Known {
			text = Dim(text + "?")
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, " ")
}
