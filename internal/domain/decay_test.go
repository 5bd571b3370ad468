package domain

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecayKind_CodesFollowCanonicalOrder(t *testing.T) {
	seen := make(map[byte]bool)
	i := 0
	for k := range AllDecayKinds() {
		assert.Equal(t, i, k.Index())
		assert.Equal(t, DecayCodes[i], k.Code())
		assert.False(t, seen[k.Code()], "duplicate code %q", k.Code())
		seen[k.Code()] = true
		i++
	}
	assert.Equal(t, len(DecayCodes), i)
}

func TestDecayKind_Delta(t *testing.T) {
	tests := []struct {
		kind   DecayKind
		dz, da int
		ok     bool
	}{
		{Alpha, -2, -4, true},
		{BetaPlus, -1, 0, true},
		{BetaMinus, 1, 0, true},
		{DoubleBeta, 2, 0, true},
		{ElectronCapture, -1, 0, true},
		{DoubleElectronCapture, -2, 0, true},
		{NeutronEmission, 0, -1, true},
		{Gamma, 0, 0, false},
		{IsomericTransition, 0, 0, false},
		{InternalConversion, 0, 0, false},
		{SpontaneousFission, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.kind.Symbol(), func(t *testing.T) {
			dz, da, ok := tt.kind.Delta()
			assert.Equal(t, tt.dz, dz)
			assert.Equal(t, tt.da, da)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestDecayKindAt_OutOfRange(t *testing.T) {
	for _, idx := range []int{-1, len(DecayCodes)} {
		_, err := DecayKindAt(idx)
		require.ErrorIs(t, err, ErrOutOfRange)
	}
	k, err := DecayKindAt(2)
	require.NoError(t, err)
	assert.Equal(t, BetaMinus, k)
}

func TestDecaySet_CodeIsCanonicalRegardlessOfInsertion(t *testing.T) {
	a := NewDecaySet(SpontaneousFission, Alpha)
	b := NewDecaySet(Alpha).With(SpontaneousFission)
	assert.Equal(t, "aF", a.Code())
	assert.Equal(t, a, b)
	assert.Equal(t, 2, a.Len())
	assert.True(t, a.Has(Alpha))
	assert.False(t, a.Has(BetaMinus))
}

func TestDecaySet_Empty(t *testing.T) {
	var s DecaySet
	assert.True(t, s.IsEmpty())
	assert.Equal(t, "", s.Code())
	assert.Equal(t, "stable", s.String())
	assert.Equal(t, 0, s.Len())
}

func TestDecaySet_String(t *testing.T) {
	assert.Equal(t, "α, β−, SF", NewDecaySet(SpontaneousFission, BetaMinus, Alpha).String())
	assert.Equal(t, "ε", NewDecaySet(ElectronCapture).String())
}

func TestDecaySet_KindsStopsEarly(t *testing.T) {
	s := NewDecaySet(Alpha, BetaMinus, Gamma)
	var got []DecayKind
	for k := range s.Kinds() {
		got = append(got, k)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []DecayKind{Alpha, BetaMinus}, got)
}

func TestParseDecayCode_InvertsCode(t *testing.T) {
	kinds := slices.Collect(AllDecayKinds())
	for mask := 0; mask < 1<<len(kinds); mask++ {
		var s DecaySet
		for i, k := range kinds {
			if mask&(1<<i) != 0 {
				s = s.With(k)
			}
		}
		got, err := ParseDecayCode(s.Code())
		require.NoError(t, err)
		require.Equal(t, s, got, "mask %b", mask)
	}
}

func TestParseDecayCode_AnyOrder(t *testing.T) {
	s, err := ParseDecayCode("Fba")
	require.NoError(t, err)
	assert.Equal(t, "abF", s.Code())
}

func TestParseDecayCode_UnknownCharacter(t *testing.T) {
	_, err := ParseDecayCode("ax")
	require.ErrorIs(t, err, ErrInvalidArgument)
}
