package relevance

import "strings"

// foldReplacer collapses orthographic variants that Ukrainian and Russian
// users interchange when typing casually. Folding і/ї into и lets one token
// match both the Ukrainian and Russian spelling of most product words.
var foldReplacer = strings.NewReplacer(
	"ё", "е",
	"ґ", "г",
	"є", "е",
	"і", "и",
	"ї", "и",
	"’", "'",
	"ʼ", "'",
	"`", "'",
)

// Normalize canonicalizes raw text to a locale-neutral form: lowercase plus
// the fixed folding table above. Deterministic, total, pure. No whitespace
// handling happens here; tokenization takes care of that.
func Normalize(text string) string {
	return foldReplacer.Replace(strings.ToLower(text))
}
