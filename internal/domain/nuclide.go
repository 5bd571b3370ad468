package domain

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ZeroCelsius is 0 °C in kelvin, the temperature of the standard phase.
const ZeroCelsius = 273.15

// NuclideAttrs holds the authored attributes of a nuclide. Melt and Boil are
// nil when unknown.
type NuclideAttrs struct {
	Z          int    `validate:"gte=0,lte=118"`
	Symbol     string `validate:"required,min=1,max=3"`
	Name       string `validate:"required"`
	Period     int    `validate:"gte=0,lte=7"`
	Group      int    `validate:"gte=0,lte=18"`
	Category   Category
	Melt       *float64 `validate:"omitempty,gt=0"`
	Boil       *float64 `validate:"omitempty,gt=0"`
	Weight     float64  `validate:"gt=0"`
	Origin     Occurrence
	Bio        BioRole
	Year       int `validate:"gte=0"`
	Discoverer string
	Etymology  string
	Names      map[string]string
	Isotopes   []Isotope
}

// Nuclide is one element (or the neutron at Z = 0) with its isotopes. All
// derived values are computed by NewNuclide and never change afterwards.
type Nuclide struct {
	attrs     NuclideAttrs
	names     map[string]string
	languages []string

	block      Block
	knownIndex int
	stable     int
	stability  int
}

// Discovery era boundaries (inclusive upper years) for KnownIndex 1..6.
var eraBounds = [...]int{1789, 1869, 1923, 1945, 2000, 2012}

// NewNuclide validates the attributes and computes the derived values.
func NewNuclide(attrs NuclideAttrs) (*Nuclide, error) {
	if err := validate.Struct(attrs); err != nil {
		return nil, fmt.Errorf("nuclide %d: %w: %w", attrs.Z, ErrInvalidArgument, err)
	}
	if attrs.Category >= categoryCount {
		return nil, fmt.Errorf("nuclide %d: category %d: %w", attrs.Z, attrs.Category, ErrInvalidArgument)
	}

	n := &Nuclide{attrs: attrs}
	if err := n.indexNames(); err != nil {
		return nil, err
	}
	if err := n.checkIsotopes(); err != nil {
		return nil, err
	}

	n.block = blockOf(attrs.Z, attrs.Group)
	n.knownIndex = knownIndexOf(attrs.Year)
	n.stable, n.stability = stabilityOf(attrs.Isotopes)
	n.attrs.Isotopes = slices.Clone(attrs.Isotopes)
	return n, nil
}

func (n *Nuclide) indexNames() error {
	n.names = make(map[string]string, len(n.attrs.Names))
	for code, name := range n.attrs.Names {
		key := NormalizeLanguage(code)
		if key == "" || name == "" {
			return fmt.Errorf("nuclide %s: empty localized name entry %q: %w", n.attrs.Symbol, code, ErrInvalidArgument)
		}
		if _, dup := n.names[key]; dup {
			return fmt.Errorf("nuclide %s: duplicate language %q: %w", n.attrs.Symbol, code, ErrInvalidArgument)
		}
		if name == n.attrs.Name {
			return fmt.Errorf("nuclide %s: %q name equals the canonical name: %w", n.attrs.Symbol, code, ErrInvalidArgument)
		}
		n.names[key] = name
		n.languages = append(n.languages, code)
	}
	slices.Sort(n.languages)
	n.attrs.Names = nil
	return nil
}

// Abundance sums must be about 0 (nothing natural) or about 100.
const (
	minAbundanceSum = 99.5
	maxAbundanceSum = 101.0
)

func (n *Nuclide) checkIsotopes() error {
	var errs []error
	seen := make(map[int]bool, len(n.attrs.Isotopes))
	sum := 0.0
	for _, iso := range n.attrs.Isotopes {
		if iso.Z() != n.attrs.Z {
			errs = append(errs, fmt.Errorf("nuclide %s: isotope %d/%d belongs to another element: %w",
				n.attrs.Symbol, iso.Z(), iso.A(), ErrInvalidArgument))
		}
		if seen[iso.A()] {
			errs = append(errs, fmt.Errorf("nuclide %s: duplicate isotope A=%d: %w", n.attrs.Symbol, iso.A(), ErrInvalidArgument))
		}
		seen[iso.A()] = true
		if ab, ok := iso.Abundance(); ok {
			sum += ab
		}
	}
	if sum > 1e-9 && (sum < minAbundanceSum || sum > maxAbundanceSum) {
		errs = append(errs, fmt.Errorf("nuclide %s: natural abundances sum to %.4f: %w", n.attrs.Symbol, sum, ErrInvalidArgument))
	}
	return errors.Join(errs...)
}

func blockOf(z, group int) Block {
	switch {
	case z == 0:
		return BlockNone
	case group == 0:
		return BlockF
	case group <= 2 || z == 2:
		return BlockS
	case group >= 13:
		return BlockP
	default:
		return BlockD
	}
}

func knownIndexOf(year int) int {
	if year == 0 {
		return 0
	}
	for i, bound := range eraBounds {
		if year <= bound {
			return i + 1
		}
	}
	return len(eraBounds) + 1
}

func stabilityOf(isotopes []Isotope) (stable, index int) {
	longest := 0.0
	for _, iso := range isotopes {
		hl, ok := iso.Halflife()
		if !ok {
			stable++
			continue
		}
		longest = math.Max(longest, hl)
	}
	switch {
	case stable > 0:
		return stable, 0
	case longest == 0:
		return 0, MaxStabilityIndex
	default:
		return 0, StabilityFromHalflife(longest)
	}
}

func (n *Nuclide) Z() int { return n.attrs.Z }
func (n *Nuclide) Symbol() string { return n.attrs.Symbol }
func (n *Nuclide) Name() string { return n.attrs.Name }
func (n *Nuclide) Period() int { return n.attrs.Period }
func (n *Nuclide) Group() int { return n.attrs.Group }
func (n *Nuclide) Category() Category { return n.attrs.Category }
func (n *Nuclide) Weight() float64 { return n.attrs.Weight }
func (n *Nuclide) Origin() Occurrence { return n.attrs.Origin }
func (n *Nuclide) Bio() BioRole { return n.attrs.Bio }
func (n *Nuclide) Year() int { return n.attrs.Year }
func (n *Nuclide) Discoverer() string { return n.attrs.Discoverer }
func (n *Nuclide) Etymology() string { return n.attrs.Etymology }
func (n *Nuclide) Block() Block { return n.block }
func (n *Nuclide) KnownIndex() int { return n.knownIndex }
func (n *Nuclide) StableCount() int { return n.stable }
func (n *Nuclide) StabilityIndex() int { return n.stability }
func (n *Nuclide) IsotopeCount() int { return len(n.attrs.Isotopes) }
func (n *Nuclide) Languages() []string { return slices.Clone(n.languages) }
func (n *Nuclide) StateAt0C() State { return n.GetState(ZeroCelsius) }
func (n *Nuclide) MeltingPoint() (float64, bool) { return deref(n.attrs.Melt) }
func (n *Nuclide) BoilingPoint() (float64, bool) { return deref(n.attrs.Boil) }

func deref(p *float64) (float64, bool) {
	if p == nil {
		return 0, false
	}
	return *p, true
}

// Isotopes yields the isotopes in authored (ascending mass) order.
func (n *Nuclide) Isotopes() iter.Seq[Isotope] {
	return slices.Values(n.attrs.Isotopes)
}

// Isotope finds the isotope with mass number a.
func (n *Nuclide) Isotope(a int) (Isotope, bool) {
	for _, iso := range n.attrs.Isotopes {
		if iso.A() == a {
			return iso, true
		}
	}
	return Isotope{}, false
}

// FirstIsotope returns the first authored isotope.
func (n *Nuclide) FirstIsotope() (Isotope, bool) {
	if len(n.attrs.Isotopes) == 0 {
		return Isotope{}, false
	}
	return n.attrs.Isotopes[0], true
}

// GetState returns the phase at the given temperature in kelvin.
func (n *Nuclide) GetState(kelvin float64) State {
	melt, hasMelt := n.MeltingPoint()
	boil, hasBoil := n.BoilingPoint()
	switch {
	case hasMelt && kelvin < melt:
		return StateSolid
	case hasBoil && kelvin >= boil:
		return StateGas
	case hasMelt && hasBoil:
		return StateLiquid
	default:
		return StateUnknown
	}
}

// LongColumn returns the 1-based column in the 32-column long-form table.
// The f-block fills columns 3..17 of periods 6 and 7.
func (n *Nuclide) LongColumn() int {
	g := n.attrs.Group
	switch {
	case n.attrs.Z == 0:
		return 0
	case g > 2:
		return g + 14
	case g > 0:
		return g
	case n.attrs.Z >= 89:
		return n.attrs.Z - 86
	default:
		return n.attrs.Z - 54
	}
}

// GetName returns the name for an exact (case-insensitive) language code,
// or the canonical name. Region codes do not fall back to their base
// language: "en-AU" yields the canonical name even when "en" is present.
func (n *Nuclide) GetName(lang string) string {
	if name, ok := n.names[NormalizeLanguage(lang)]; ok {
		return name
	}
	return n.attrs.Name
}

// HasName reports whether an explicit localized name exists for lang.
func (n *Nuclide) HasName(lang string) bool {
	_, ok := n.names[NormalizeLanguage(lang)]
	return ok
}
