package catalog

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/alexanderramin/nuclides/internal/domain"
)

const nuclideCount = domain.MaxZ + 1

// Catalog is the immutable, Z-indexed table of every nuclide. It is safe
// for concurrent readers.
type Catalog struct {
	nuclides  [nuclideCount]*domain.Nuclide
	bySymbol  map[string]*domain.Nuclide
	maxName   map[string]int
	canonical int
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := Load()
	if err != nil {
		panic(fmt.Sprintf("compiled-in catalog is invalid: %v", err))
	}
	return c
})

// Default returns the process-wide catalog, building it on first use.
func Default() *Catalog { return defaultCatalog() }

// Load builds a catalog from the compiled-in records. Every invariant
// violation is reported; any violation fails the whole build.
func Load() (*Catalog, error) {
	return build(records[:])
}

func build(recs []nuclideRecord) (*Catalog, error) {
	if len(recs) != nuclideCount {
		return nil, fmt.Errorf("building catalog: %d records, want %d: %w", len(recs), nuclideCount, domain.ErrInvalidArgument)
	}

	var errs []error
	isotopesByZ := make([][]domain.Isotope, nuclideCount)
	for i, rec := range recs {
		if rec.z != i {
			errs = append(errs, fmt.Errorf("record %d has Z=%d: %w", i, rec.z, domain.ErrInvalidArgument))
			continue
		}
		for _, ir := range rec.isotopes {
			iso, err := ir.build(rec.z)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", rec.symbol, err))
				continue
			}
			isotopesByZ[i] = append(isotopesByZ[i], iso)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("building catalog: %w", err)
	}

	classifyOccurrence(isotopesByZ)

	c := &Catalog{
		bySymbol: make(map[string]*domain.Nuclide, nuclideCount),
		maxName:  make(map[string]int),
	}
	for i, rec := range recs {
		n, err := domain.NewNuclide(domain.NuclideAttrs{
			Z:          rec.z,
			Symbol:     rec.symbol,
			Name:       rec.name,
			Period:     rec.period,
			Group:      rec.group,
			Category:   rec.category,
			Melt:       optional(rec.melt),
			Boil:       optional(rec.boil),
			Weight:     rec.weight,
			Origin:     rec.origin,
			Bio:        rec.bio,
			Year:       rec.year,
			Discoverer: rec.discoverer,
			Etymology:  rec.etymology,
			Names:      localizedNames(rec.z, rec.name),
			Isotopes:   isotopesByZ[i],
		})
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if _, dup := c.bySymbol[n.Symbol()]; dup {
			errs = append(errs, fmt.Errorf("duplicate symbol %q: %w", n.Symbol(), domain.ErrInvalidArgument))
			continue
		}
		c.nuclides[i] = n
		c.bySymbol[n.Symbol()] = n
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("building catalog: %w", err)
	}

	c.indexNameLengths()
	return c, nil
}

func (c *Catalog) indexNameLengths() {
	langs := make(map[string]bool)
	for lang := range nameTables {
		langs[domain.NormalizeLanguage(lang)] = true
	}
	for lang := range nameOverrides {
		langs[domain.NormalizeLanguage(lang)] = true
	}
	for _, n := range c.nuclides {
		c.canonical = max(c.canonical, utf8.RuneCountInString(n.Name()))
		for lang := range langs {
			c.maxName[lang] = max(c.maxName[lang], utf8.RuneCountInString(n.GetName(lang)))
		}
	}
}

// Len returns the number of entries, neutron included.
func (c *Catalog) Len() int { return nuclideCount }

// Nuclide returns the entry for atomic number z.
func (c *Catalog) Nuclide(z int) (*domain.Nuclide, error) {
	if z < 0 || z >= nuclideCount {
		return nil, fmt.Errorf("nuclide %d: %w", z, domain.ErrOutOfRange)
	}
	return c.nuclides[z], nil
}

// All yields every entry from the neutron (Z = 0) through Z = 118.
func (c *Catalog) All() iter.Seq[*domain.Nuclide] {
	return slices.Values(c.nuclides[:])
}

// GetElements yields the chemical elements, Z = 1..118.
func (c *Catalog) GetElements() iter.Seq[*domain.Nuclide] {
	return slices.Values(c.nuclides[1:])
}

// GetBySymbol finds a nuclide by its exact, case-sensitive symbol.
func (c *Catalog) GetBySymbol(symbol string) (*domain.Nuclide, bool) {
	n, ok := c.bySymbol[symbol]
	return n, ok
}

// Isotope finds the catalogued isotope (z, a).
func (c *Catalog) Isotope(z, a int) (domain.Isotope, bool) {
	if z < 0 || z >= nuclideCount {
		return domain.Isotope{}, false
	}
	return c.nuclides[z].Isotope(a)
}

// IsotopeLabel renders an isotope as "U-238".
func (c *Catalog) IsotopeLabel(iso domain.Isotope) string {
	return label(c.symbolOf(iso.Z()), iso.A())
}

func (c *Catalog) symbolOf(z int) string {
	if z < 0 || z >= nuclideCount {
		return "?"
	}
	return c.nuclides[z].Symbol()
}

func label(symbol string, a int) string {
	return symbol + "-" + strconv.Itoa(a)
}

// LookupIsotope parses a label such as "U-238" and finds the isotope. The
// symbol part is case-sensitive.
func (c *Catalog) LookupIsotope(text string) (domain.Isotope, bool) {
	symbol, mass, ok := strings.Cut(text, "-")
	if !ok {
		return domain.Isotope{}, false
	}
	a, err := strconv.Atoi(mass)
	if err != nil {
		return domain.Isotope{}, false
	}
	n, ok := c.GetBySymbol(symbol)
	if !ok {
		return domain.Isotope{}, false
	}
	return n.Isotope(a)
}

// MaxNameLength returns the longest nuclide name, in runes, for a language.
// Languages without explicit names use the canonical names.
func (c *Catalog) MaxNameLength(lang string) int {
	if n, ok := c.maxName[domain.NormalizeLanguage(lang)]; ok {
		return n
	}
	return c.canonical
}

// Languages returns every language code with explicit names, sorted.
func (c *Catalog) Languages() []string {
	langs := make([]string, 0, len(nameTables)+len(nameOverrides))
	for lang := range nameTables {
		langs = append(langs, lang)
	}
	for lang := range nameOverrides {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	return langs
}
