package formatter

import (
	"strings"

	"github.com/alexanderramin/nuclides/internal/catalog"
	"github.com/alexanderramin/nuclides/internal/domain"
)

// FormatDecayChain renders a decay series as a tree rooted at its start
// isotope, one branch per step.
func FormatDecayChain(c *catalog.Catalog, chain catalog.Chain, lang string) string {
	start := c.IsotopeLabel(chain.Start)

	items := []TreeItem{{
		Title:  start,
		Stable: chain.Start.IsStable(),
		Known:  true,
		Detail: isotopeDetail(chain.Start, lang),
	}}
	for i, step := range chain.Steps {
		item := TreeItem{
			Title:  c.ProductLabel(step),
			Via:    step.Via.Symbol(),
			Level:  1,
			IsLast: i == len(chain.Steps)-1,
			Known:  step.Known,
			Detail: "not catalogued",
		}
		if step.Known {
			item.Stable = step.Isotope.IsStable()
			item.Detail = isotopeDetail(step.Isotope, lang)
		}
		items = append(items, item)
	}

	var b strings.Builder
	b.WriteString(Header("Decay chain " + start))
	b.WriteString("\n")
	b.WriteString(RenderTree(items))
	if legend := decayLegend(chain, lang); legend != "" {
		b.WriteString(Dim(legend))
		b.WriteString("\n")
	}
	return b.String()
}

// decayLegend names each channel used by the chain, in order of first use,
// e.g. "α Alpha · β− Beta minus".
func decayLegend(chain catalog.Chain, lang string) string {
	var seen domain.DecaySet
	var parts []string
	for _, step := range chain.Steps {
		if seen.Has(step.Via) {
			continue
		}
		seen = seen.With(step.Via)
		parts = append(parts, step.Via.Symbol()+" "+catalog.DecayName(step.Via, lang))
	}
	return strings.Join(parts, " · ")
}

func isotopeDetail(iso domain.Isotope, lang string) string {
	if iso.IsStable() {
		return "stable"
	}
	return iso.HalflifeText(lang)
}
