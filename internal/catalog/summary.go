package catalog

import "github.com/alexanderramin/nuclides/internal/domain"

// NuclideSummary is the flattened field set shared by the text, HTML and
// JSON printers. Field order is the column order of the text table.
type NuclideSummary struct {
	Z            int              `json:"z"`
	Symbol       string           `json:"symbol"`
	Name         string           `json:"name"`
	Period       int              `json:"period"`
	Group        int              `json:"group"`
	Block        string           `json:"block"`
	Category     int              `json:"category"`
	CategoryKey  string           `json:"category_key"`
	CategoryName string           `json:"category_name"`
	Weight       float64          `json:"weight"`
	State        string           `json:"state"`
	StateName    string           `json:"state_name"`
	Life         string           `json:"life"`
	Origin       string           `json:"origin"`
	OriginName   string           `json:"origin_name"`
	Era          int              `json:"era"`
	IsotopeCount int              `json:"isotope_count"`
	StableCount  int              `json:"stable_count"`
	Bio          string           `json:"bio"`
	BioName      string           `json:"bio_name"`
	Year         int              `json:"year"`
	Discoverer   string           `json:"discoverer,omitempty"`
	Etymology    string           `json:"etymology,omitempty"`
	Melt         *float64         `json:"melt,omitempty"`
	Boil         *float64         `json:"boil,omitempty"`
	Isotopes     []IsotopeSummary `json:"isotopes"`
}

// IsotopeSummary is one isotope as the printers see it.
type IsotopeSummary struct {
	Label        string           `json:"label"`
	A            int              `json:"a"`
	Abundance    *float64         `json:"abundance,omitempty"`
	Halflife     *float64         `json:"halflife,omitempty"`
	HalflifeText string           `json:"halflife_text,omitempty"`
	DecayCode    string           `json:"decay_code"`
	Decay        string           `json:"decay"`
	Occurrence   string           `json:"occurrence"`
	Stability    string           `json:"stability"`
	Products     []ProductSummary `json:"products,omitempty"`
}

// ProductSummary names the product of one decay channel.
type ProductSummary struct {
	Mode  string `json:"mode"`
	Label string `json:"label"`
	Known bool   `json:"known"`
}

// Summarize flattens a nuclide for a language and temperature in kelvin.
func (c *Catalog) Summarize(n *domain.Nuclide, lang string, kelvin float64) NuclideSummary {
	state := n.GetState(kelvin)
	s := NuclideSummary{
		Z:            n.Z(),
		Symbol:       n.Symbol(),
		Name:         n.GetName(lang),
		Period:       n.Period(),
		Group:        n.Group(),
		Block:        n.Block().String(),
		Category:     int(n.Category()),
		CategoryKey:  n.Category().Key(),
		CategoryName: CategoryName(n.Category(), lang),
		Weight:       n.Weight(),
		State:        string(state.Code()),
		StateName:    StateName(state, lang),
		Life:         string(domain.StabilityCode(n.StabilityIndex())),
		Origin:       string(n.Origin().Code()),
		OriginName:   n.Origin().String(),
		Era:          n.KnownIndex(),
		IsotopeCount: n.IsotopeCount(),
		StableCount:  n.StableCount(),
		Bio:          string(n.Bio().Code()),
		BioName:      n.Bio().String(),
		Year:         n.Year(),
		Discoverer:   n.Discoverer(),
		Etymology:    n.Etymology(),
		Melt:         ptr(n.MeltingPoint()),
		Boil:         ptr(n.BoilingPoint()),
	}
	for iso := range n.Isotopes() {
		s.Isotopes = append(s.Isotopes, c.summarizeIsotope(iso, lang))
	}
	return s
}

func (c *Catalog) summarizeIsotope(iso domain.Isotope, lang string) IsotopeSummary {
	s := IsotopeSummary{
		Label:        c.IsotopeLabel(iso),
		A:            iso.A(),
		Abundance:    ptr(iso.Abundance()),
		Halflife:     ptr(iso.Halflife()),
		HalflifeText: iso.HalflifeText(lang),
		DecayCode:    iso.DecayCode(),
		Decay:        iso.DecayModes().String(),
		Occurrence:   string(iso.Occurrence().Code()),
		Stability:    string(domain.StabilityCode(iso.StabilityIndex())),
	}
	for kind, ref := range c.Products(iso) {
		s.Products = append(s.Products, ProductSummary{
			Mode:  kind.Symbol(),
			Label: c.ProductLabel(ref),
			Known: ref.Known,
		})
	}
	return s
}

func ptr(v float64, ok bool) *float64 {
	if !ok {
		return nil
	}
	return &v
}
