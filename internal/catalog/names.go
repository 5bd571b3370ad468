package catalog

// nameTables holds full localized name lists indexed by Z. Entries equal to
// the canonical name are skipped while building.
var nameTables = map[string][nuclideCount]string{
	"de": {
		"Neutron", "Wasserstoff", "Helium", "Lithium", "Beryllium", "Bor", "Kohlenstoff", "Stickstoff", "Sauerstoff", "Fluor",
		"Neon", "Natrium", "Magnesium", "Aluminium", "Silicium", "Phosphor", "Schwefel", "Chlor", "Argon", "Kalium",
		"Calcium", "Scandium", "Titan", "Vanadium", "Chrom", "Mangan", "Eisen", "Cobalt", "Nickel", "Kupfer",
		"Zink", "Gallium", "Germanium", "Arsen", "Selen", "Brom", "Krypton", "Rubidium", "Strontium", "Yttrium",
		"Zirconium", "Niob", "Molybdän", "Technetium", "Ruthenium", "Rhodium", "Palladium", "Silber", "Cadmium", "Indium",
		"Zinn", "Antimon", "Tellur", "Iod", "Xenon", "Caesium", "Barium", "Lanthan", "Cer", "Praseodym",
		"Neodym", "Promethium", "Samarium", "Europium", "Gadolinium", "Terbium", "Dysprosium", "Holmium", "Erbium", "Thulium",
		"Ytterbium", "Lutetium", "Hafnium", "Tantal", "Wolfram", "Rhenium", "Osmium", "Iridium", "Platin", "Gold",
		"Quecksilber", "Thallium", "Blei", "Bismut", "Polonium", "Astat", "Radon", "Francium", "Radium", "Actinium",
		"Thorium", "Protactinium", "Uran", "Neptunium", "Plutonium", "Americium", "Curium", "Berkelium", "Californium", "Einsteinium",
		"Fermium", "Mendelevium", "Nobelium", "Lawrencium", "Rutherfordium", "Dubnium", "Seaborgium", "Bohrium", "Hassium", "Meitnerium",
		"Darmstadtium", "Roentgenium", "Copernicium", "Nihonium", "Flerovium", "Moscovium", "Livermorium", "Tenness", "Oganesson",
	},
	"fr": {
		"Neutron", "Hydrogène", "Hélium", "Lithium", "Béryllium", "Bore", "Carbone", "Azote", "Oxygène", "Fluor",
		"Néon", "Sodium", "Magnésium", "Aluminium", "Silicium", "Phosphore", "Soufre", "Chlore", "Argon", "Potassium",
		"Calcium", "Scandium", "Titane", "Vanadium", "Chrome", "Manganèse", "Fer", "Cobalt", "Nickel", "Cuivre",
		"Zinc", "Gallium", "Germanium", "Arsenic", "Sélénium", "Brome", "Krypton", "Rubidium", "Strontium", "Yttrium",
		"Zirconium", "Niobium", "Molybdène", "Technétium", "Ruthénium", "Rhodium", "Palladium", "Argent", "Cadmium", "Indium",
		"Étain", "Antimoine", "Tellure", "Iode", "Xénon", "Césium", "Baryum", "Lanthane", "Cérium", "Praséodyme",
		"Néodyme", "Prométhium", "Samarium", "Europium", "Gadolinium", "Terbium", "Dysprosium", "Holmium", "Erbium", "Thulium",
		"Ytterbium", "Lutécium", "Hafnium", "Tantale", "Tungstène", "Rhénium", "Osmium", "Iridium", "Platine", "Or",
		"Mercure", "Thallium", "Plomb", "Bismuth", "Polonium", "Astate", "Radon", "Francium", "Radium", "Actinium",
		"Thorium", "Protactinium", "Uranium", "Neptunium", "Plutonium", "Américium", "Curium", "Berkélium", "Californium", "Einsteinium",
		"Fermium", "Mendélévium", "Nobélium", "Lawrencium", "Rutherfordium", "Dubnium", "Seaborgium", "Bohrium", "Hassium", "Meitnérium",
		"Darmstadtium", "Roentgenium", "Copernicium", "Nihonium", "Flérovium", "Moscovium", "Livermorium", "Tennesse", "Oganesson",
	},
	"ru": {
		"Нейтрон", "Водород", "Гелий", "Литий", "Бериллий", "Бор", "Углерод", "Азот", "Кислород", "Фтор",
		"Неон", "Натрий", "Магний", "Алюминий", "Кремний", "Фосфор", "Сера", "Хлор", "Аргон", "Калий",
		"Кальций", "Скандий", "Титан", "Ванадий", "Хром", "Марганец", "Железо", "Кобальт", "Никель", "Медь",
		"Цинк", "Галлий", "Германий", "Мышьяк", "Селен", "Бром", "Криптон", "Рубидий", "Стронций", "Иттрий",
		"Цирконий", "Ниобий", "Молибден", "Технеций", "Рутений", "Родий", "Палладий", "Серебро", "Кадмий", "Индий",
		"Олово", "Сурьма", "Теллур", "Иод", "Ксенон", "Цезий", "Барий", "Лантан", "Церий", "Празеодим",
		"Неодим", "Прометий", "Самарий", "Европий", "Гадолиний", "Тербий", "Диспрозий", "Гольмий", "Эрбий", "Тулий",
		"Иттербий", "Лютеций", "Гафний", "Тантал", "Вольфрам", "Рений", "Осмий", "Иридий", "Платина", "Золото",
		"Ртуть", "Таллий", "Свинец", "Висмут", "Полоний", "Астат", "Радон", "Франций", "Радий", "Актиний",
		"Торий", "Протактиний", "Уран", "Нептуний", "Плутоний", "Америций", "Кюрий", "Берклий", "Калифорний", "Эйнштейний",
		"Фермий", "Менделевий", "Нобелий", "Лоуренсий", "Резерфордий", "Дубний", "Сиборгий", "Борий", "Хассий", "Мейтнерий",
		"Дармштадтий", "Рентгений", "Коперниций", "Нихоний", "Флеровий", "Московий", "Ливерморий", "Теннессин", "Оганесон",
	},
}

// nameOverrides holds regional spellings that differ from the canonical
// name. Region codes never fall back to their base language.
var nameOverrides = map[string]map[int]string{
	"en-US": {13: "Aluminum", 55: "Cesium"},
	"en-GB": {16: "Sulphur"},
}

// localizedNames collects the explicit names of nuclide z, omitting entries
// equal to canonical.
func localizedNames(z int, canonical string) map[string]string {
	names := make(map[string]string)
	for lang, table := range nameTables {
		if name := table[z]; name != "" && name != canonical {
			names[lang] = name
		}
	}
	for lang, overrides := range nameOverrides {
		if name, ok := overrides[z]; ok && name != canonical {
			names[lang] = name
		}
	}
	return names
}
