package relevance

import "strings"

// Intent is a coarse topical tag detected from the raw query. Intents are
// non-exclusive: zero, one, or many may hold for a single message.
type Intent string

const (
	IntentSleep     Intent = "sleep"
	IntentImmunity  Intent = "immunity"
	IntentStress    Intent = "stress"
	IntentEnergy    Intent = "energy"
	IntentFocus     Intent = "focus"
	IntentDigestion Intent = "digestion"
)

// Intents lists all known intents in detection order. Detection iterates this
// slice, not the fragment map, so output order is deterministic.
var Intents = []Intent{
	IntentSleep,
	IntentImmunity,
	IntentStress,
	IntentEnergy,
	IntentFocus,
	IntentDigestion,
}

// intentFragments maps each intent to keyword fragments searched as
// substrings of the normalized query. Fragments deliberately span partial
// words ("енерг" catches енергія, энергии, енергійний...), which is why
// detection runs on the normalized string rather than on tokens.
var intentFragments = map[Intent][]string{
	IntentSleep: {
		"сон", "сну", "спат", "спит", "засып", "засин",
		"безсон", "бессон", "sleep", "insomnia",
	},
	IntentImmunity: {
		"имун", "иммун", "захист", "защит", "простуд", "застуд",
		"грип", "вирус", "immun",
	},
	IntentStress: {
		"стрес", "тревог", "тривог", "нерв", "заспоко", "успоко",
		"спокой", "stress", "anxiety",
	},
	IntentEnergy: {
		"енерг", "энерг", "втом", "устал", "бадьор", "бодрост",
		"витривал", "выносл", "energy", "fatigue",
	},
	IntentFocus: {
		"концентр", "памят", "пам'ят", "фокус", "уваг", "вниман", "мозк", "мозг",
		"focus", "memory", "brain",
	},
	IntentDigestion: {
		"травлен", "пищевар", "шлунк", "шлунок", "желуд", "кишк",
		"кишеч", "здутт", "вздут", "digest",
	},
}

// DetectIntents reports every intent whose fragment list has at least one
// substring hit in the normalized query. The caller is expected to pass text
// already run through Normalize; detection is independent of tokenization.
func DetectIntents(normalizedQuery string) []Intent {
	var active []Intent
	for _, intent := range Intents {
		for _, fragment := range intentFragments[intent] {
			if strings.Contains(normalizedQuery, fragment) {
				active = append(active, intent)
				break
			}
		}
	}
	return active
}
