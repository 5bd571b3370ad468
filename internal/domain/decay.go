package domain

import (
	"fmt"
	"iter"
	"strings"
)

// DecayKind is one decay channel. The constant order is the canonical
// enumeration order used for code strings and index iteration.
type DecayKind uint8

const (
	Alpha DecayKind = iota
	BetaPlus
	BetaMinus
	DoubleBeta
	ElectronCapture
	DoubleElectronCapture
	NeutronEmission
	Gamma
	IsomericTransition
	InternalConversion
	SpontaneousFission

	decayKindCount
)

// DecayCodes is the one-character code alphabet, positionally aligned with
// the DecayKind constants.
const DecayCodes = "apbBeEngTCF"

type decayEntry struct {
	symbol string
	dz, da int
	// transmutes is false for channels without a single defined product.
	transmutes bool
}

var decayTable = [decayKindCount]decayEntry{
	Alpha:                 {symbol: "α", dz: -2, da: -4, transmutes: true},
	BetaPlus:              {symbol: "β+", dz: -1, transmutes: true},
	BetaMinus:             {symbol: "β−", dz: 1, transmutes: true},
	DoubleBeta:            {symbol: "β−β−", dz: 2, transmutes: true},
	ElectronCapture:       {symbol: "ε", dz: -1, transmutes: true},
	DoubleElectronCapture: {symbol: "εε", dz: -2, transmutes: true},
	NeutronEmission:       {symbol: "n", da: -1, transmutes: true},
	Gamma:                 {symbol: "γ"},
	IsomericTransition:    {symbol: "IT"},
	InternalConversion:    {symbol: "IC"},
	SpontaneousFission:    {symbol: "SF"},
}

// AllDecayKinds returns every channel in canonical order.
func AllDecayKinds() iter.Seq[DecayKind] {
	return func(yield func(DecayKind) bool) {
		for k := DecayKind(0); k < decayKindCount; k++ {
			if !yield(k) {
				return
			}
		}
	}
}

// DecayKindAt returns the channel at a canonical index.
func DecayKindAt(index int) (DecayKind, error) {
	if index < 0 || index >= int(decayKindCount) {
		return 0, fmt.Errorf("decay index %d: %w", index, ErrOutOfRange)
	}
	return DecayKind(index), nil
}

func (k DecayKind) valid() bool { return k < decayKindCount }

// Index returns the canonical position of the channel.
func (k DecayKind) Index() int { return int(k) }

// Code returns the one-character code of the channel.
func (k DecayKind) Code() byte {
	if !k.valid() {
		return '?'
	}
	return DecayCodes[k]
}

// Symbol returns the display symbol, e.g. "β−".
func (k DecayKind) Symbol() string {
	if !k.valid() {
		return "?"
	}
	return decayTable[k].symbol
}

// Delta returns the (ΔZ, ΔA) a single decay through this channel causes.
// ok is false for electromagnetic relaxation and fission, which have no
// single product nuclide.
func (k DecayKind) Delta() (dz, da int, ok bool) {
	if !k.valid() {
		return 0, 0, false
	}
	e := decayTable[k]
	return e.dz, e.da, e.transmutes
}

func (k DecayKind) String() string { return k.Symbol() }

// DecaySet is an unordered set of simultaneously possible channels. The
// zero value is the empty set, i.e. stable.
type DecaySet struct {
	bits uint16
}

// NewDecaySet returns a set holding the given channels.
func NewDecaySet(kinds ...DecayKind) DecaySet {
	return DecaySet{}.With(kinds...)
}

// With returns a copy of s with the given channels added.
func (s DecaySet) With(kinds ...DecayKind) DecaySet {
	for _, k := range kinds {
		if k.valid() {
			s.bits |= 1 << k
		}
	}
	return s
}

// Has reports whether channel k is in the set.
func (s DecaySet) Has(k DecayKind) bool {
	return k.valid() && s.bits&(1<<k) != 0
}

// IsEmpty reports whether the set holds no channel.
func (s DecaySet) IsEmpty() bool { return s.bits == 0 }

// Len returns the number of channels in the set.
func (s DecaySet) Len() int {
	n := 0
	for range s.Kinds() {
		n++
	}
	return n
}

// Kinds yields the channels of the set in canonical order.
func (s DecaySet) Kinds() iter.Seq[DecayKind] {
	return func(yield func(DecayKind) bool) {
		for k := range AllDecayKinds() {
			if s.Has(k) && !yield(k) {
				return
			}
		}
	}
}

// Code concatenates the one-character codes of the set in canonical order.
// The empty set yields "".
func (s DecaySet) Code() string {
	var b strings.Builder
	for k := range s.Kinds() {
		b.WriteByte(k.Code())
	}
	return b.String()
}

// String joins the display symbols, e.g. "α, SF".
func (s DecaySet) String() string {
	if s.IsEmpty() {
		return "stable"
	}
	parts := make([]string, 0, 4)
	for k := range s.Kinds() {
		parts = append(parts, k.Symbol())
	}
	return strings.Join(parts, ", ")
}

// ParseDecayCode is the inverse of DecaySet.Code. Codes may appear in any
// order; an unknown character is an error.
func ParseDecayCode(code string) (DecaySet, error) {
	var s DecaySet
	for i := 0; i < len(code); i++ {
		idx := strings.IndexByte(DecayCodes, code[i])
		if idx < 0 {
			return DecaySet{}, fmt.Errorf("decay code %q: unknown channel %q: %w", code, code[i], ErrInvalidArgument)
		}
		s = s.With(DecayKind(idx))
	}
	return s, nil
}
