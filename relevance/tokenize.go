package relevance

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// stopwords are common UA/RU function words, politeness fillers, and modal
// verbs that carry no product signal. Entries are stored in normalized form
// (see Normalize), so lookups happen after folding. Single-letter words are
// omitted: the minimum token length drops them anyway.
var stopwords = map[string]struct{}{
	// pronouns and determiners
	"мене": {}, "мени": {}, "меня": {}, "мне": {}, "тебе": {}, "тоби": {},
	"тебя": {}, "вас": {}, "вам": {}, "нам": {}, "нас": {}, "вин": {},
	"вона": {}, "воно": {}, "вони": {}, "она": {}, "оно": {}, "они": {},
	"це": {}, "цей": {}, "ця": {}, "этот": {}, "эта": {}, "это": {},
	"ты": {}, "вы": {}, "ви": {}, "мы": {}, "ми": {},
	// conjunctions, particles, short prepositions
	"що": {}, "что": {}, "как": {}, "як": {}, "так": {}, "или": {},
	"або": {}, "чи": {}, "але": {}, "для": {}, "при": {}, "про": {},
	"без": {}, "под": {}, "над": {}, "по": {}, "на": {}, "не": {},
	"ни": {}, "да": {}, "ну": {}, "же": {}, "ли": {}, "бы": {}, "би": {},
	"вот": {}, "ось": {}, "есть": {}, "нет": {}, "немае": {},
	"там": {}, "тут": {}, "еще": {}, "ще": {}, "уже": {}, "вже": {},
	// politeness fillers
	"будь": {}, "ласка": {}, "пожалуйста": {}, "дякую": {}, "спасибо": {},
	"привит": {}, "привет": {}, "здравствуйте": {}, "добрый": {},
	"добрий": {}, "доброго": {}, "день": {}, "дня": {},
	// modal verbs and request fillers
	"хочу": {}, "хочеться": {}, "хочется": {}, "нужно": {}, "надо": {},
	"треба": {}, "можно": {}, "можна": {}, "може": {}, "может": {},
	"можете": {}, "буде": {}, "будет": {}, "подскажите": {},
	"пидкажить": {}, "допоможить": {}, "допоможи": {}, "помогите": {},
	"дайте": {}, "скажить": {}, "скажите": {},
}

// minTokenLen is the shortest token, in runes, that survives tokenization.
const minTokenLen = 2

func isTokenRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\''
}

// Tokenize normalizes the text and extracts candidate word tokens: maximal
// runs of letters, digits, and apostrophes, with leading/trailing apostrophes
// stripped, shorter-than-two runs and stopwords discarded. Output preserves
// source order and may contain duplicates; deduplication is the caller's job
// so that first-occurrence order stays observable for phrase pairing.
func Tokenize(text string) []string {
	norm := Normalize(text)
	var tokens []string

	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		run := strings.Trim(norm[start:end], "'")
		start = -1
		if utf8.RuneCountInString(run) < minTokenLen {
			return
		}
		if _, stop := stopwords[run]; stop {
			return
		}
		tokens = append(tokens, run)
	}

	for i, r := range norm {
		if isTokenRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		flush(i)
	}
	flush(len(norm))

	return tokens
}

// DedupeTokens filters tokens to their first occurrence, preserving order.
func DedupeTokens(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}
