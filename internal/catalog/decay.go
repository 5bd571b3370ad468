package catalog

import (
	"fmt"
	"iter"

	"github.com/alexanderramin/nuclides/internal/domain"
)

type isotopeKey struct{ z, a int }

// Isotopes produced continuously by cosmic rays.
var cosmogenicIsotopes = map[isotopeKey]bool{
	{0, 1}: true, {1, 3}: true, {4, 7}: true, {4, 10}: true, {6, 14}: true,
	{11, 22}: true, {13, 26}: true, {14, 32}: true, {15, 32}: true, {15, 33}: true,
	{16, 35}: true, {17, 36}: true, {18, 39}: true, {36, 81}: true,
}

// primordialHalflife is the shortest halflife counted as having survived
// since nucleosynthesis.
const primordialHalflife = 1e8 * domain.Year

func isPrimordial(iso domain.Isotope) bool {
	if !iso.IsNatural() {
		return false
	}
	hl, unstable := iso.Halflife()
	return !unstable || hl >= primordialHalflife
}

// classifyOccurrence assigns every isotope its origin, in priority order:
// primordial, cosmogenic, decay product, synthetic.
func classifyOccurrence(isotopesByZ [][]domain.Isotope) {
	index := make(map[isotopeKey]domain.Isotope)
	var queue []domain.Isotope
	for _, isos := range isotopesByZ {
		for _, iso := range isos {
			index[isotopeKey{iso.Z(), iso.A()}] = iso
			if isPrimordial(iso) && !iso.IsStable() {
				queue = append(queue, iso)
			}
		}
	}

	reachable := make(map[isotopeKey]bool)
	for len(queue) > 0 {
		iso := queue[0]
		queue = queue[1:]
		for idx := range iso.GetDecayIndexes() {
			kind, _ := domain.DecayKindAt(idx)
			z, a, err := iso.Transmute(kind)
			if err != nil {
				continue
			}
			key := isotopeKey{z, a}
			product, ok := index[key]
			if !ok || reachable[key] {
				continue
			}
			reachable[key] = true
			queue = append(queue, product)
		}
	}

	for _, isos := range isotopesByZ {
		for i, iso := range isos {
			key := isotopeKey{iso.Z(), iso.A()}
			var o domain.Occurrence
			switch {
			case isPrimordial(iso):
				o = domain.Primordial
			case cosmogenicIsotopes[key]:
				o = domain.Cosmogenic
			case reachable[key] || iso.IsNatural():
				o = domain.FromDecay
			default:
				o = domain.Synthetic
			}
			isos[i] = iso.WithOccurrence(o)
		}
	}
}

// ProductRef is the result of one decay channel. Known is false when the
// product nuclide is in range but the isotope is not catalogued.
type ProductRef struct {
	Via     domain.DecayKind
	Z, A    int
	Isotope domain.Isotope
	Known   bool
}

// Product resolves the isotope produced by decaying iso through kind.
func (c *Catalog) Product(iso domain.Isotope, kind domain.DecayKind) (ProductRef, error) {
	z, a, err := iso.Transmute(kind)
	if err != nil {
		return ProductRef{}, err
	}
	ref := ProductRef{Via: kind, Z: z, A: a}
	ref.Isotope, ref.Known = c.Isotope(z, a)
	return ref, nil
}

// Products yields the product of every channel of iso that has one, in
// canonical channel order. Channels whose product is out of range are
// skipped.
func (c *Catalog) Products(iso domain.Isotope) iter.Seq2[domain.DecayKind, ProductRef] {
	return func(yield func(domain.DecayKind, ProductRef) bool) {
		for idx := range iso.GetDecayIndexes() {
			kind, err := domain.DecayKindAt(idx)
			if err != nil {
				continue
			}
			ref, err := c.Product(iso, kind)
			if err != nil {
				continue
			}
			if !yield(kind, ref) {
				return
			}
		}
	}
}

// ProductLabel renders a product as "Th-234".
func (c *Catalog) ProductLabel(ref ProductRef) string {
	return label(c.symbolOf(ref.Z), ref.A)
}

// maxChainLength bounds DecayChain; no natural series is longer.
const maxChainLength = 64

// Chain is a decay series starting at Start. Each step follows the first
// channel, in canonical order, whose product is catalogued. When no product
// is catalogued the first in-range product ends the chain with Known false.
type Chain struct {
	Start domain.Isotope
	Steps []ProductRef
}

// End returns the last isotope reached and whether it is catalogued.
func (ch Chain) End() (domain.Isotope, bool) {
	if len(ch.Steps) == 0 {
		return ch.Start, true
	}
	last := ch.Steps[len(ch.Steps)-1]
	return last.Isotope, last.Known
}

// DecayChain follows isotope (z, a) until a stable or uncatalogued product.
func (c *Catalog) DecayChain(z, a int) (Chain, error) {
	start, ok := c.Isotope(z, a)
	if !ok {
		return Chain{}, fmt.Errorf("isotope %d/%d is not catalogued: %w", z, a, domain.ErrInvalidArgument)
	}
	ch := Chain{Start: start}
	cur := start
	for range maxChainLength {
		if cur.IsStable() {
			break
		}
		next, ok := c.nextLink(cur)
		if !ok {
			break
		}
		ch.Steps = append(ch.Steps, next)
		if !next.Known {
			break
		}
		cur = next.Isotope
	}
	return ch, nil
}

func (c *Catalog) nextLink(iso domain.Isotope) (ProductRef, bool) {
	var fallback ProductRef
	found := false
	for _, ref := range c.Products(iso) {
		if ref.Known {
			return ref, true
		}
		if !found {
			fallback, found = ref, true
		}
	}
	return fallback, found
}
