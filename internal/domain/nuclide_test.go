package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func aluminiumAttrs(t *testing.T) NuclideAttrs {
	t.Helper()
	al27, err := NewStableIsotope(13, 27, 100)
	require.NoError(t, err)
	al26 := mustUnstable(t, 13, 26, 7.17e5*Year, BetaPlus)
	melt, boil := 933.47, 2743.0
	return NuclideAttrs{
		Z:        13,
		Symbol:   "Al",
		Name:     "Aluminium",
		Period:   3,
		Group:    13,
		Category: PostTransitionMetal,
		Melt:     &melt,
		Boil:     &boil,
		Weight:   26.982,
		Origin:   Primordial,
		Year:     1825,
		Names:    map[string]string{"en-US": "Aluminum", "de-DE": "Aluminium-DE", "ru": "Алюминий"},
		Isotopes: []Isotope{al26, al27},
	}
}

func TestNewNuclide_Derived(t *testing.T) {
	n, err := NewNuclide(aluminiumAttrs(t))
	require.NoError(t, err)

	assert.Equal(t, BlockP, n.Block())
	assert.Equal(t, 2, n.KnownIndex())
	assert.Equal(t, 1, n.StableCount())
	assert.Equal(t, 0, n.StabilityIndex())
	assert.Equal(t, 2, n.IsotopeCount())
	assert.Equal(t, 27, n.LongColumn())
	assert.Equal(t, StateSolid, n.StateAt0C())

	first, ok := n.FirstIsotope()
	require.True(t, ok)
	assert.Equal(t, 26, first.A())
	_, ok = n.Isotope(28)
	assert.False(t, ok)
}

func TestNuclide_GetName(t *testing.T) {
	n, err := NewNuclide(aluminiumAttrs(t))
	require.NoError(t, err)

	tests := []struct {
		lang string
		want string
	}{
		{"en-US", "Aluminum"},
		{"EN-us", "Aluminum"},
		{"en-AU", "Aluminium"},
		{"en", "Aluminium"},
		{"ru", "Алюминий"},
		{"ru-RU", "Aluminium"},
		{"", "Aluminium"},
		{"xx", "Aluminium"},
	}
	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			assert.Equal(t, tt.want, n.GetName(tt.lang))
		})
	}
	assert.Equal(t, []string{"de-DE", "en-US", "ru"}, n.Languages())
	assert.True(t, n.HasName("EN-US"))
	assert.False(t, n.HasName("en"))
}

func TestNewNuclide_RejectsRedundantName(t *testing.T) {
	attrs := aluminiumAttrs(t)
	attrs.Names = map[string]string{"de": "Aluminium"}
	_, err := NewNuclide(attrs)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNewNuclide_RejectsDuplicateLanguageAfterFolding(t *testing.T) {
	attrs := aluminiumAttrs(t)
	attrs.Names = map[string]string{"en-US": "Aluminum", "EN-US": "Aluminum"}
	_, err := NewNuclide(attrs)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNewNuclide_RejectsBadAttributes(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*NuclideAttrs)
	}{
		{"empty symbol", func(a *NuclideAttrs) { a.Symbol = "" }},
		{"long symbol", func(a *NuclideAttrs) { a.Symbol = "Alum" }},
		{"Z too large", func(a *NuclideAttrs) { a.Z = 119 }},
		{"negative Z", func(a *NuclideAttrs) { a.Z = -1 }},
		{"no name", func(a *NuclideAttrs) { a.Name = "" }},
		{"zero weight", func(a *NuclideAttrs) { a.Weight = 0 }},
		{"group 19", func(a *NuclideAttrs) { a.Group = 19 }},
		{"bad category", func(a *NuclideAttrs) { a.Category = Category(42) }},
		{"negative melting point", func(a *NuclideAttrs) { m := -3.0; a.Melt = &m }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := aluminiumAttrs(t)
			tt.mutate(&attrs)
			_, err := NewNuclide(attrs)
			require.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestNewNuclide_RejectsForeignIsotope(t *testing.T) {
	attrs := aluminiumAttrs(t)
	si28, err := NewStableIsotope(14, 28, 0)
	require.NoError(t, err)
	attrs.Isotopes = append(attrs.Isotopes, si28)

	_, err = NewNuclide(attrs)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNewNuclide_RejectsDuplicateMassNumber(t *testing.T) {
	attrs := aluminiumAttrs(t)
	attrs.Isotopes = append(attrs.Isotopes, attrs.Isotopes[1])

	_, err := NewNuclide(attrs)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNewNuclide_AbundanceSum(t *testing.T) {
	iso := func(a int, ab float64) Isotope {
		i, err := NewStableIsotope(13, a, ab)
		require.NoError(t, err)
		return i
	}
	tests := []struct {
		name    string
		isos    []Isotope
		wantErr bool
	}{
		{"exactly 100", []Isotope{iso(27, 100)}, false},
		{"rounding low", []Isotope{iso(27, 60), iso(28, 39.6)}, false},
		{"rounding high", []Isotope{iso(27, 60), iso(28, 40.9)}, false},
		{"too low", []Isotope{iso(27, 60), iso(28, 39)}, true},
		{"too high", []Isotope{iso(27, 60), iso(28, 41.5)}, true},
		{"none natural", []Isotope{mustUnstable(t, 13, 26, Year, BetaPlus)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := aluminiumAttrs(t)
			attrs.Isotopes = tt.isos
			_, err := NewNuclide(attrs)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestBlockOf(t *testing.T) {
	tests := []struct {
		name     string
		z, group int
		want     Block
	}{
		{"neutron", 0, 0, BlockNone},
		{"hydrogen", 1, 1, BlockS},
		{"helium", 2, 18, BlockS},
		{"barium", 56, 2, BlockS},
		{"iron", 26, 8, BlockD},
		{"zinc", 30, 12, BlockD},
		{"carbon", 6, 14, BlockP},
		{"neon", 10, 18, BlockP},
		{"cerium", 58, 0, BlockF},
		{"uranium", 92, 0, BlockF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, blockOf(tt.z, tt.group))
		})
	}
}

func TestKnownIndexOf(t *testing.T) {
	tests := []struct {
		year int
		want int
	}{
		{0, 0},
		{1250, 1},
		{1789, 1},
		{1790, 2},
		{1869, 2},
		{1870, 3},
		{1923, 3},
		{1924, 4},
		{1945, 4},
		{1946, 5},
		{2000, 5},
		{2001, 6},
		{2012, 6},
		{2013, 7},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, knownIndexOf(tt.year), "year %d", tt.year)
	}
}

func TestStabilityOf(t *testing.T) {
	stableIso, err := NewStableIsotope(43, 97, 0)
	require.NoError(t, err)

	stable, index := stabilityOf([]Isotope{mustUnstable(t, 43, 98, 4.2e6*Year, BetaMinus), stableIso})
	assert.Equal(t, 1, stable)
	assert.Equal(t, 0, index)

	stable, index = stabilityOf([]Isotope{
		mustUnstable(t, 43, 97, 4.21e6*Year, ElectronCapture),
		mustUnstable(t, 43, 99, 2.111e5*Year, BetaMinus),
	})
	assert.Equal(t, 0, stable)
	assert.Equal(t, 1, index, "driven by the longest halflife")

	stable, index = stabilityOf([]Isotope{mustUnstable(t, 118, 294, 0.58*Millisecond, Alpha)})
	assert.Equal(t, 0, stable)
	assert.Equal(t, 5, index)
}

func TestNuclide_GetState(t *testing.T) {
	f := func(v float64) *float64 { return &v }
	tests := []struct {
		name       string
		melt, boil *float64
		kelvin     float64
		want       State
	}{
		{"below melting", f(933), f(2743), 300, StateSolid},
		{"at melting", f(933), f(2743), 933, StateLiquid},
		{"between", f(933), f(2743), 1500, StateLiquid},
		{"at boiling", f(933), f(2743), 2743, StateGas},
		{"sublimes", f(887), f(887), 887, StateGas},
		{"no melting point, hot", nil, f(4.222), 10, StateGas},
		{"no melting point, cold", nil, f(4.222), 1, StateUnknown},
		{"no boiling point, cold", f(1133), nil, 300, StateSolid},
		{"no boiling point, hot", f(1133), nil, 2000, StateUnknown},
		{"no data", nil, nil, 300, StateUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := aluminiumAttrs(t)
			attrs.Melt, attrs.Boil = tt.melt, tt.boil
			n, err := NewNuclide(attrs)
			require.NoError(t, err)
			assert.Equal(t, tt.want, n.GetState(tt.kelvin))
		})
	}
}

func TestNuclide_GetState_Monotonic(t *testing.T) {
	n, err := NewNuclide(aluminiumAttrs(t))
	require.NoError(t, err)

	prev := StateSolid
	for k := 0.0; k < 5000; k += 7.5 {
		s := n.GetState(k)
		require.NotEqual(t, StateUnknown, s)
		require.GreaterOrEqual(t, int(s), int(prev), "state went backwards at %g K", k)
		prev = s
	}
}

func TestNuclide_LongColumn(t *testing.T) {
	tests := []struct {
		name     string
		z, group int
		want     int
	}{
		{"hydrogen", 1, 1, 1},
		{"barium", 56, 2, 2},
		{"hafnium", 72, 4, 18},
		{"oganesson", 118, 18, 32},
		{"lanthanum", 57, 0, 3},
		{"lutetium", 71, 0, 17},
		{"actinium", 89, 0, 3},
		{"lawrencium", 103, 0, 17},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := &Nuclide{attrs: NuclideAttrs{Z: tt.z, Group: tt.group}}
			assert.Equal(t, tt.want, n.LongColumn())
		})
	}
}
