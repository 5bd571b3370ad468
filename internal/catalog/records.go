package catalog

import "github.com/alexanderramin/nuclides/internal/domain"

// nuclideRecord is one authored row of the catalog. Melting and boiling
// points of 0 mean unknown.
type nuclideRecord struct {
	z          int
	symbol     string
	name       string
	period     int
	group      int
	category   domain.Category
	melt, boil float64
	weight     float64
	origin     domain.Occurrence
	bio        domain.BioRole
	year       int
	discoverer string
	etymology  string
	isotopes   []isotopeRecord
}

// isotopeRecord is one authored isotope. A negative abundance means the
// isotope is not found in nature; a zero halflife means stable.
type isotopeRecord struct {
	a         int
	abundance float64
	halflife  float64
	modes     []domain.DecayKind
}

func stable(a int, abundance float64) isotopeRecord {
	return isotopeRecord{a: a, abundance: abundance}
}

func natural(a int, abundance, halflife float64, modes ...domain.DecayKind) isotopeRecord {
	return isotopeRecord{a: a, abundance: abundance, halflife: halflife, modes: modes}
}

func unstable(a int, halflife float64, modes ...domain.DecayKind) isotopeRecord {
	return isotopeRecord{a: a, abundance: -1, halflife: halflife, modes: modes}
}

func isotopes(recs ...isotopeRecord) []isotopeRecord { return recs }

func (r isotopeRecord) build(z int) (domain.Isotope, error) {
	if r.halflife == 0 && len(r.modes) == 0 {
		return domain.NewStableIsotope(z, r.a, r.abundance)
	}
	var abundance *float64
	if r.abundance >= 0 {
		ab := r.abundance
		abundance = &ab
	}
	return domain.NewUnstableIsotope(z, r.a, abundance, r.halflife, domain.NewDecaySet(r.modes...))
}

func optional(v float64) *float64 {
	if v == 0 {
		return nil
	}
	return &v
}

// Short names used by the data tables.
const (
	alpha  = domain.Alpha
	bplus  = domain.BetaPlus
	bminus = domain.BetaMinus
	bb     = domain.DoubleBeta
	ec     = domain.ElectronCapture
	ecec   = domain.DoubleElectronCapture
	sf     = domain.SpontaneousFission

	us   = domain.Microsecond
	ms   = domain.Millisecond
	sec  = domain.Second
	mins = domain.Minute
	hr   = domain.Hour
	days = domain.Day
	yr   = domain.Year

	alkali     = domain.AlkaliMetal
	alkaline   = domain.AlkalineEarthMetal
	lanthanoid = domain.Lanthanoid
	actinoid   = domain.Actinoid
	transition = domain.TransitionMetal
	post       = domain.PostTransitionMetal
	metalloid  = domain.Metalloid
	nonmetal   = domain.Nonmetal
	halogen    = domain.Halogen
	noble      = domain.NobleGas

	synthetic  = domain.Synthetic
	primordial = domain.Primordial
	decay      = domain.FromDecay
	cosmogenic = domain.Cosmogenic

	none       = domain.BioNone
	bulk       = domain.BioBulk
	trace      = domain.BioTrace
	beneficial = domain.BioBeneficial
	absorbed   = domain.BioAbsorbed
)
