package domain

// Category is the chemical series of an element.
type Category uint8

const (
	AlkaliMetal Category = iota
	AlkalineEarthMetal
	Lanthanoid
	Actinoid
	TransitionMetal
	PostTransitionMetal
	Metalloid
	Nonmetal
	Halogen
	NobleGas

	categoryCount
)

// CategoryCount is the number of chemical series.
const CategoryCount = int(categoryCount)

var categoryKeys = [categoryCount]string{
	"alkali-metal", "alkaline-earth-metal", "lanthanoid", "actinoid",
	"transition-metal", "post-transition-metal", "metalloid", "nonmetal",
	"halogen", "noble-gas",
}

// Key returns a stable machine-readable identifier, e.g. "noble-gas".
func (c Category) Key() string {
	if c >= categoryCount {
		return "unknown"
	}
	return categoryKeys[c]
}

// Occurrence classifies how a nuclide or isotope is found in nature.
type Occurrence uint8

const (
	Synthetic Occurrence = iota
	Primordial
	FromDecay
	Cosmogenic

	occurrenceCount
)

// OccurrenceCodes holds one character per Occurrence, in constant order.
const OccurrenceCodes = "SPDC"

func (o Occurrence) Code() byte {
	if o >= occurrenceCount {
		return '?'
	}
	return OccurrenceCodes[o]
}

func (o Occurrence) String() string {
	switch o {
	case Synthetic:
		return "synthetic"
	case Primordial:
		return "primordial"
	case FromDecay:
		return "decay"
	case Cosmogenic:
		return "cosmogenic"
	default:
		return "unknown"
	}
}

// BioRole is the biological role of an element.
type BioRole uint8

const (
	BioNone BioRole = iota
	BioBulk
	BioTrace
	BioBeneficial
	BioAbsorbed

	bioRoleCount
)

// BioRoleCodes holds one character per BioRole, in constant order.
const BioRoleCodes = "-BTbA"

func (r BioRole) Code() byte {
	if r >= bioRoleCount {
		return '?'
	}
	return BioRoleCodes[r]
}

func (r BioRole) String() string {
	switch r {
	case BioNone:
		return "none"
	case BioBulk:
		return "bulk-essential"
	case BioTrace:
		return "trace-essential"
	case BioBeneficial:
		return "beneficial"
	case BioAbsorbed:
		return "absorbed"
	default:
		return "unknown"
	}
}

// State is a phase of matter at a given temperature.
type State uint8

const (
	StateUnknown State = iota
	StateSolid
	StateLiquid
	StateGas

	stateCount
)

// StateCodes holds one character per State, in constant order.
const StateCodes = "?slg"

func (s State) Code() byte {
	if s >= stateCount {
		return '?'
	}
	return StateCodes[s]
}

func (s State) String() string {
	switch s {
	case StateSolid:
		return "solid"
	case StateLiquid:
		return "liquid"
	case StateGas:
		return "gas"
	default:
		return "unknown"
	}
}

// Block is the periodic-table block letter. BlockNone is used for the neutron.
type Block uint8

const (
	BlockNone Block = iota
	BlockS
	BlockP
	BlockD
	BlockF
)

// BlockCodes holds one character per Block, in constant order.
const BlockCodes = " spdf"

func (b Block) Code() byte {
	if int(b) >= len(BlockCodes) {
		return '?'
	}
	return BlockCodes[b]
}

func (b Block) String() string { return string(b.Code()) }

// StabilityCodes holds one character per stability index 0..5: Stable,
// then Low, Moderate, High, Very high, eXtreme radioactivity.
const StabilityCodes = "SLMHVX"

// MaxStabilityIndex is the most radioactive bucket.
const MaxStabilityIndex = 5

// StabilityCode returns the code character for a stability index.
func StabilityCode(index int) byte {
	if index < 0 || index >= len(StabilityCodes) {
		return '?'
	}
	return StabilityCodes[index]
}
