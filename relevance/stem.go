package relevance

import (
	"strings"
	"unicode/utf8"
)

// Stemmer reduces an inflected token to a stem so that declined forms of the
// same word match each other. Implementations must be deterministic and safe
// for concurrent use.
type Stemmer interface {
	Stem(token string) string
}

// defaultSuffixes are common UA/RU case, plural, and gender endings, checked
// in order. Both the raw and the folded spelling of і-suffixes are listed so
// the stemmer behaves the same on normalized and raw input.
var defaultSuffixes = []string{
	"ями", "ами", "ими",
	"ого", "ому",
	"ах", "ях", "ів", "ив", "ей", "ий", "ая",
	"у", "ю", "а", "я", "і", "и", "е", "о",
}

// SuffixStemmer is a dictionary-free rule stemmer: it strips the first listed
// suffix whose removal leaves at least four runes. Tokens shorter than five
// runes are returned unchanged, and stripping never iterates.
type SuffixStemmer struct {
	suffixes []string
}

// NewSuffixStemmer creates a stemmer with the default UA/RU suffix table.
func NewSuffixStemmer() *SuffixStemmer {
	return &SuffixStemmer{suffixes: defaultSuffixes}
}

// NewSuffixStemmerWithTable creates a stemmer with a custom ordered suffix
// table. The table is used as given; order decides which suffix wins.
func NewSuffixStemmerWithTable(suffixes []string) *SuffixStemmer {
	return &SuffixStemmer{suffixes: suffixes}
}

var _ Stemmer = (*SuffixStemmer)(nil)

// Stem strips one suffix at most and returns the token otherwise unchanged.
func (s *SuffixStemmer) Stem(token string) string {
	runes := []rune(token)
	if len(runes) < 5 {
		return token
	}
	for _, suffix := range s.suffixes {
		suffixLen := utf8.RuneCountInString(suffix)
		if len(runes)-suffixLen < 4 {
			continue
		}
		if strings.HasSuffix(token, suffix) {
			return string(runes[:len(runes)-suffixLen])
		}
	}
	return token
}
