package domain

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is the language of canonical names and the fallback for
// every localized lookup.
const DefaultLanguage = "en"

// BaseLanguage returns the ISO 639 base of a language code, e.g. "de" for
// "de-AT". Malformed or empty codes resolve to DefaultLanguage.
func BaseLanguage(code string) string {
	if code == "" {
		return DefaultLanguage
	}
	tag, err := language.Parse(code)
	if err != nil {
		return DefaultLanguage
	}
	base, conf := tag.Base()
	if conf == language.No || base.String() == "und" {
		return DefaultLanguage
	}
	return base.String()
}

// Bases whose number formatting uses a decimal comma.
var commaDecimal = map[string]bool{
	"de": true, "fr": true, "ru": true, "es": true, "it": true, "pt": true,
	"nl": true, "pl": true, "cs": true, "sk": true, "sv": true, "da": true,
	"fi": true, "nb": true, "tr": true, "uk": true, "ro": true, "hu": true,
}

// DecimalSeparator returns '.' or ',' for a language code.
func DecimalSeparator(code string) byte {
	if commaDecimal[BaseLanguage(code)] {
		return ','
	}
	return '.'
}

// NormalizeLanguage folds a language code for exact, case-insensitive
// matching. It does not strip regions: "en-US" stays distinct from "en".
func NormalizeLanguage(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}
