package catalog

import "github.com/alexanderramin/nuclides/internal/domain"

var categoryNames = map[string][domain.CategoryCount]string{
	"en": {"Alkali metal", "Alkaline earth metal", "Lanthanoid", "Actinoid", "Transition metal",
		"Post-transition metal", "Metalloid", "Nonmetal", "Halogen", "Noble gas"},
	"de": {"Alkalimetall", "Erdalkalimetall", "Lanthanoid", "Actinoid", "Übergangsmetall",
		"Metall", "Halbmetall", "Nichtmetall", "Halogen", "Edelgas"},
	"fr": {"Métal alcalin", "Métal alcalino-terreux", "Lanthanide", "Actinide", "Métal de transition",
		"Métal pauvre", "Métalloïde", "Non-métal", "Halogène", "Gaz noble"},
	"ru": {"Щелочной металл", "Щёлочноземельный металл", "Лантаноид", "Актиноид", "Переходный металл",
		"Постпереходный металл", "Полуметалл", "Неметалл", "Галоген", "Благородный газ"},
}

var decayNames = map[string][]string{
	"en": {"Alpha", "Beta plus", "Beta minus", "Double beta", "Electron capture", "Double electron capture",
		"Neutron emission", "Gamma", "Isomeric transition", "Internal conversion", "Spontaneous fission"},
	"de": {"Alpha", "Beta plus", "Beta minus", "Doppelter Betazerfall", "Elektroneneinfang", "Doppelter Elektroneneinfang",
		"Neutronenemission", "Gamma", "Isomerieübergang", "Innere Konversion", "Spontanspaltung"},
	"fr": {"Alpha", "Bêta plus", "Bêta moins", "Double bêta", "Capture électronique", "Double capture électronique",
		"Émission de neutron", "Gamma", "Transition isomérique", "Conversion interne", "Fission spontanée"},
	"ru": {"Альфа", "Бета-плюс", "Бета-минус", "Двойной бета", "Электронный захват", "Двойной электронный захват",
		"Испускание нейтрона", "Гамма", "Изомерный переход", "Внутренняя конверсия", "Спонтанное деление"},
}

var stateNames = map[string][4]string{
	"en": {"unknown", "solid", "liquid", "gas"},
	"de": {"unbekannt", "fest", "flüssig", "gasförmig"},
	"fr": {"inconnu", "solide", "liquide", "gaz"},
	"ru": {"неизвестно", "твёрдое", "жидкое", "газ"},
}

// CategoryName returns the display name of a category, in English when
// lang has no table.
func CategoryName(cat domain.Category, lang string) string {
	names, ok := categoryNames[domain.BaseLanguage(lang)]
	if !ok {
		names = categoryNames[domain.DefaultLanguage]
	}
	if int(cat) >= len(names) {
		return cat.Key()
	}
	return names[cat]
}

// DecayName returns the display name of a decay channel.
func DecayName(kind domain.DecayKind, lang string) string {
	names, ok := decayNames[domain.BaseLanguage(lang)]
	if !ok {
		names = decayNames[domain.DefaultLanguage]
	}
	if kind.Index() >= len(names) {
		return kind.Symbol()
	}
	return names[kind.Index()]
}

// StateName returns the display name of a phase.
func StateName(state domain.State, lang string) string {
	names, ok := stateNames[domain.BaseLanguage(lang)]
	if !ok {
		names = stateNames[domain.DefaultLanguage]
	}
	if int(state) >= len(names) {
		return state.String()
	}
	return names[state]
}
