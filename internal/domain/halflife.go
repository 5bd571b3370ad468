package domain

import (
	"math"
	"strconv"
	"strings"
)

// Time spans in seconds. A year is the Julian year.
const (
	Nanosecond  = 1e-9
	Microsecond = 1e-6
	Millisecond = 1e-3
	Second      = 1.0
	Minute      = 60 * Second
	Hour        = 60 * Minute
	Day         = 24 * Hour
	Year        = 365.25 * Day
)

// HalflifeDigits is the number of significant digits kept when a halflife
// is rendered as text.
const HalflifeDigits = 4

// Lower bounds of stability buckets 1..4; anything shorter is 5.
var stabilityBounds = [...]float64{
	2_000_000 * Year,
	800 * Year,
	24 * Hour,
	10 * Minute,
}

// StabilityFromHalflife buckets an unstable halflife into 1 (slightly
// radioactive) .. 5 (extremely radioactive).
func StabilityFromHalflife(seconds float64) int {
	for i, bound := range stabilityBounds {
		if seconds >= bound {
			return i + 1
		}
	}
	return MaxStabilityIndex
}

// TimeUnit is a halflife display unit.
type TimeUnit uint8

const (
	UnitNanosecond TimeUnit = iota
	UnitMicrosecond
	UnitMillisecond
	UnitSecond
	UnitMinute
	UnitHour
	UnitDay
	UnitYear
)

var unitSeconds = [...]float64{
	UnitNanosecond:  Nanosecond,
	UnitMicrosecond: Microsecond,
	UnitMillisecond: Millisecond,
	UnitSecond:      Second,
	UnitMinute:      Minute,
	UnitHour:        Hour,
	UnitDay:         Day,
	UnitYear:        Year,
}

// Seconds returns the length of one unit in seconds.
func (u TimeUnit) Seconds() float64 { return unitSeconds[u] }

// UnitFor picks the largest unit of which seconds is at least one whole unit.
func UnitFor(seconds float64) TimeUnit {
	for u := UnitYear; u > UnitNanosecond; u-- {
		if seconds >= unitSeconds[u] {
			return u
		}
	}
	return UnitNanosecond
}

var unitNames = map[string][8]string{
	"en": {"ns", "μs", "ms", "s", "min", "h", "d", "y"},
	"de": {"ns", "μs", "ms", "s", "min", "h", "d", "a"},
	"fr": {"ns", "μs", "ms", "s", "min", "h", "j", "a"},
	"ru": {"нс", "мкс", "мс", "с", "мин", "ч", "сут", "г"},
}

// Abbrev returns the unit abbreviation for a language, falling back to English.
func (u TimeUnit) Abbrev(lang string) string {
	names, ok := unitNames[BaseLanguage(lang)]
	if !ok {
		names = unitNames["en"]
	}
	return names[u]
}

// FormatHalflife renders a halflife in seconds using the largest sensible
// unit, rounded to HalflifeDigits significant digits, e.g. "12.32 y" for
// English and "12,32 a" for German. A value that rounds up to a whole next
// unit is shown in that unit: 59.99999 s is "1 min".
func FormatHalflife(seconds float64, lang string) string {
	if seconds <= 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return ""
	}
	unit := UnitFor(seconds)
	value := roundSignificant(seconds/unit.Seconds(), HalflifeDigits)
	for unit < UnitYear && value*unit.Seconds() >= (unit+1).Seconds() {
		unit++
		value = roundSignificant(seconds/unit.Seconds(), HalflifeDigits)
	}
	return formatSignificant(value, HalflifeDigits, DecimalSeparator(lang)) + " " + unit.Abbrev(lang)
}

// decimalExponent returns the power of ten of the leading digit of v (> 0).
func decimalExponent(v float64) int {
	exp := int(math.Floor(math.Log10(v)))
	switch {
	case math.Pow10(exp+1) <= v:
		exp++
	case math.Pow10(exp) > v:
		exp--
	}
	return exp
}

// roundSignificant rounds v (> 0) to digits significant digits.
func roundSignificant(v float64, digits int) float64 {
	shift := digits - 1 - decimalExponent(v)
	if shift >= 0 {
		scale := math.Pow10(shift)
		return math.Round(v*scale) / scale
	}
	scale := math.Pow10(-shift)
	return math.Round(v/scale) * scale
}

// formatSignificant rounds v (> 0) to digits significant digits. Values that
// round to a million or more switch to "4.468e9" notation.
func formatSignificant(v float64, digits int, sep byte) string {
	v = roundSignificant(v, digits)
	exp := decimalExponent(v)
	if exp >= 6 {
		mant := v / math.Pow10(exp)
		return withSeparator(trimZeros(strconv.FormatFloat(mant, 'f', digits-1, 64)), sep) +
			"e" + strconv.Itoa(exp)
	}
	decimals := max(digits-1-exp, 0)
	return withSeparator(trimZeros(strconv.FormatFloat(v, 'f', decimals, 64)), sep)
}

func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

func withSeparator(s string, sep byte) string {
	if sep == '.' {
		return s
	}
	return strings.Replace(s, ".", string(sep), 1)
}
