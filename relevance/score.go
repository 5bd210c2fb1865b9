package relevance

import (
	"regexp"
	"strings"

	"github.com/mycostore/poradnyk/core"
)

// Weights holds the additive scoring constants. The magnitudes were tuned by
// hand against live shop traffic; changing them shifts the recall/precision
// trade-off, so override only deliberately.
type Weights struct {
	NameWord        float64 // whole-word match in the product name
	NameSubstring   float64 // plain substring match in the name (when no word match)
	CategoryWord    float64
	UsageWord       float64
	DescriptionWord float64
	CompositionWord float64
	PhraseInName    float64 // adjacent token pair found verbatim in the name
	PhraseInText    float64 // adjacent token pair found in description or usage
	GenericPenalty  float64 // subtracted once for overly vague queries
}

// DefaultWeights returns the production scoring constants.
func DefaultWeights() Weights {
	return Weights{
		NameWord:        9,
		NameSubstring:   7,
		CategoryWord:    4,
		UsageWord:       3,
		DescriptionWord: 2,
		CompositionWord: 1.5,
		PhraseInName:    8,
		PhraseInText:    4,
		GenericPenalty:  4,
	}
}

// IntentBoost adds Bonus to a product whose name contains any of Fragments.
// Fragments are in normalized form.
type IntentBoost struct {
	Fragments []string
	Bonus     float64
}

// defaultIntentBoosts ties detected intents to the product families the shop
// actually recommends for them. A single product may collect several boosts.
var defaultIntentBoosts = map[Intent][]IntentBoost{
	IntentEnergy: {
		{Fragments: []string{"кордицеп", "cordyceps"}, Bonus: 14},
		{Fragments: []string{"женьшен", "ginseng"}, Bonus: 10},
	},
	IntentSleep: {
		{Fragments: []string{"рейши", "reishi"}, Bonus: 12},
		{Fragments: []string{"мухомор", "amanita"}, Bonus: 10},
	},
	IntentStress: {
		{Fragments: []string{"рейши", "reishi"}, Bonus: 12},
		{Fragments: []string{"мухомор", "amanita"}, Bonus: 8},
	},
	IntentFocus: {
		{Fragments: []string{"ижовик", "ежовик", "hericium", "львин"}, Bonus: 14},
	},
	IntentImmunity: {
		{Fragments: []string{"чага", "chaga"}, Bonus: 12},
		{Fragments: []string{"шиитаке", "shiitake"}, Bonus: 8},
		{Fragments: []string{"агарик", "agaric"}, Bonus: 6},
	},
	IntentDigestion: {
		{Fragments: []string{"ижовик", "ежовик", "hericium"}, Bonus: 8},
		{Fragments: []string{"чага", "chaga"}, Bonus: 6},
	},
}

// genericTerms are tokens too vague to discriminate between items. When a
// query carries two or more of them and they show up in a product's combined
// text, the product is penalized once. Both spellings of організм are listed
// even though folding makes them identical.
var genericTerms = []string{"здоров", "организм", "організм", "тонус", "сила"}

// tokenPattern pairs a stemmed token with its precompiled whole-word matcher.
// Patterns are compiled once per query and reused for every catalog item.
type tokenPattern struct {
	token string
	word  *regexp.Regexp
}

// compilePatterns builds per-token matchers. Go's \b is ASCII-only, so word
// boundaries are expressed with explicit Unicode letter/digit classes.
func compilePatterns(tokens []string) []tokenPattern {
	patterns := make([]tokenPattern, len(tokens))
	for i, token := range tokens {
		expr := `(?i)(?:^|[^\p{L}\p{N}])` + regexp.QuoteMeta(token) + `(?:[^\p{L}\p{N}]|$)`
		patterns[i] = tokenPattern{
			token: token,
			word:  regexp.MustCompile(expr),
		}
	}
	return patterns
}

// itemText carries the normalized text fields of one product, plus the
// concatenation used for cross-field checks.
type itemText struct {
	name        string
	category    string
	description string
	usage       string
	composition string
	full        string
}

func newItemText(p *core.Product) itemText {
	t := itemText{
		name:        Normalize(p.Name),
		category:    Normalize(p.Category),
		description: Normalize(p.Description),
		usage:       Normalize(p.Usage),
		composition: Normalize(p.Composition),
	}
	t.full = t.name + " " + t.category + " " + t.description + " " + t.usage + " " + t.composition
	return t
}

// scoreProduct computes the additive relevance score of one product. Pure:
// one call per catalog item, no side effects, no shared state.
func (e *Engine) scoreProduct(text itemText, patterns []tokenPattern, tokens []string, intents []Intent) float64 {
	var score float64

	for _, pattern := range patterns {
		// Name matches are mutually exclusive; the word match wins.
		switch {
		case pattern.word.MatchString(text.name):
			score += e.weights.NameWord
		case strings.Contains(text.name, pattern.token):
			score += e.weights.NameSubstring
		}
		if pattern.word.MatchString(text.category) {
			score += e.weights.CategoryWord
		}
		if pattern.word.MatchString(text.usage) {
			score += e.weights.UsageWord
		}
		if pattern.word.MatchString(text.description) {
			score += e.weights.DescriptionWord
		}
		if pattern.word.MatchString(text.composition) {
			score += e.weights.CompositionWord
		}
	}

	// Phrase bonus for adjacent token pairs in their original query order.
	for i := 0; i+1 < len(tokens); i++ {
		phrase := tokens[i] + " " + tokens[i+1]
		if strings.Contains(text.name, phrase) {
			score += e.weights.PhraseInName
		} else if strings.Contains(text.description, phrase) || strings.Contains(text.usage, phrase) {
			score += e.weights.PhraseInText
		}
	}

	// Intent boosts look only at the product name.
	for _, intent := range intents {
		for _, boost := range e.boosts[intent] {
			for _, fragment := range boost.Fragments {
				if strings.Contains(text.name, fragment) {
					score += boost.Bonus
					break
				}
			}
		}
	}

	if e.genericPenaltyApplies(tokens, text.full) {
		score -= e.weights.GenericPenalty
	}

	return score
}

// genericPenaltyApplies reports whether the vague-query penalty fires: at
// least two query tokens carry a generic term and are themselves present in
// the item's combined text. Applied once per item, not per occurrence.
func (e *Engine) genericPenaltyApplies(tokens []string, full string) bool {
	matched := 0
	for _, token := range tokens {
		for _, generic := range e.genericTerms {
			if strings.Contains(token, generic) {
				if strings.Contains(full, token) {
					matched++
				}
				break
			}
		}
	}
	return matched >= 2
}
