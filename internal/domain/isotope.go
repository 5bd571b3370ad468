package domain

import (
	"fmt"
	"iter"
	"math"
)

// Isotope is one mass-number variant of a nuclide. The owning nuclide is
// identified by Z only; resolve it through the catalog.
type Isotope struct {
	z, a       int
	abundance  float64
	natural    bool
	halflife   float64
	modes      DecaySet
	occurrence Occurrence
}

// NewStableIsotope builds a stable, naturally occurring isotope.
func NewStableIsotope(z, a int, abundance float64) (Isotope, error) {
	iso := Isotope{z: z, a: a, abundance: abundance, natural: true}
	if err := iso.validate(); err != nil {
		return Isotope{}, err
	}
	iso.occurrence = Primordial
	return iso, nil
}

// NewUnstableIsotope builds a radioactive isotope. abundance is nil when the
// isotope does not occur naturally.
func NewUnstableIsotope(z, a int, abundance *float64, halflife float64, modes DecaySet) (Isotope, error) {
	if modes.IsEmpty() {
		return Isotope{}, fmt.Errorf("isotope %d/%d: halflife given without a decay mode: %w", z, a, ErrInvalidArgument)
	}
	if halflife <= 0 || math.IsNaN(halflife) || math.IsInf(halflife, 0) {
		return Isotope{}, fmt.Errorf("isotope %d/%d: halflife %g must be positive: %w", z, a, halflife, ErrInvalidArgument)
	}
	iso := Isotope{z: z, a: a, halflife: halflife, modes: modes}
	if abundance != nil {
		iso.abundance = *abundance
		iso.natural = true
	}
	if err := iso.validate(); err != nil {
		return Isotope{}, err
	}
	return iso, nil
}

func (i Isotope) validate() error {
	if i.z < 0 || i.z > MaxZ {
		return fmt.Errorf("isotope %d/%d: Z: %w", i.z, i.a, ErrOutOfRange)
	}
	if i.a < i.z || i.a < 1 {
		return fmt.Errorf("isotope %d/%d: mass number below atomic number: %w", i.z, i.a, ErrInvalidArgument)
	}
	if i.natural && (i.abundance < 0 || i.abundance > 100 || math.IsNaN(i.abundance)) {
		return fmt.Errorf("isotope %d/%d: abundance %g outside [0, 100]: %w", i.z, i.a, i.abundance, ErrInvalidArgument)
	}
	return nil
}

// WithOccurrence returns a copy of the isotope carrying the given origin.
// The catalog assigns it once while building.
func (i Isotope) WithOccurrence(o Occurrence) Isotope {
	i.occurrence = o
	return i
}

// Z returns the atomic number of the owning nuclide.
func (i Isotope) Z() int { return i.z }

// A returns the mass number.
func (i Isotope) A() int { return i.a }

// Abundance returns the natural abundance in percent; ok is false when the
// isotope does not occur naturally.
func (i Isotope) Abundance() (float64, bool) { return i.abundance, i.natural }

// Halflife returns the halflife in seconds; ok is false for stable isotopes.
func (i Isotope) Halflife() (float64, bool) { return i.halflife, !i.IsStable() }

// DecayModes returns the set of decay channels; empty when stable.
func (i Isotope) DecayModes() DecaySet { return i.modes }

// IsNatural reports whether the isotope has a natural abundance.
func (i Isotope) IsNatural() bool { return i.natural }

// IsStable reports whether the isotope has no halflife.
func (i Isotope) IsStable() bool { return i.modes.IsEmpty() }

// Occurrence returns how the isotope is found in nature.
func (i Isotope) Occurrence() Occurrence { return i.occurrence }

// DecayCode concatenates the channel codes in canonical order; "" when stable.
func (i Isotope) DecayCode() string { return i.modes.Code() }

// StabilityIndex is 0 for stable isotopes, otherwise 1..5 by halflife.
func (i Isotope) StabilityIndex() int {
	if i.IsStable() {
		return 0
	}
	return StabilityFromHalflife(i.halflife)
}

// HalflifeText renders the halflife for a language; "" when stable.
func (i Isotope) HalflifeText(lang string) string {
	if i.IsStable() {
		return ""
	}
	return FormatHalflife(i.halflife, lang)
}

// Transmute returns the (Z, A) produced when this isotope decays through
// channel k.
func (i Isotope) Transmute(k DecayKind) (z, a int, err error) {
	if !i.modes.Has(k) {
		return 0, 0, fmt.Errorf("isotope %d/%d does not decay by %s: %w", i.z, i.a, k, ErrInvalidArgument)
	}
	dz, da, ok := k.Delta()
	if !ok {
		return 0, 0, fmt.Errorf("decay by %s has no product nuclide: %w", k, ErrInvalidArgument)
	}
	z, a = i.z+dz, i.a+da
	if z < 0 || z > MaxZ || a < 1 || a < z {
		return 0, 0, fmt.Errorf("product %d/%d of %d/%d: %w", z, a, i.z, i.a, ErrOutOfRange)
	}
	return z, a, nil
}

// GetDecayIndexes yields the canonical index of every channel that produces
// a nuclide, skipping gamma, isomeric transition, internal conversion and
// fission.
func (i Isotope) GetDecayIndexes() iter.Seq[int] {
	return func(yield func(int) bool) {
		for k := range i.modes.Kinds() {
			if _, _, ok := k.Delta(); !ok {
				continue
			}
			if !yield(k.Index()) {
				return
			}
		}
	}
}
