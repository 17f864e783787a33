// Package matcher holds the text-matching core: query normalization,
// concept-keyword scoring and tone classification. Everything here is pure
// and deterministic; the catalog order is the only tie-breaker.
package matcher

import (
	"strings"
	"unicode"
)

// spanishStopWords are common function words removed from queries before
// scoring.
var spanishStopWords = map[string]bool{
	"de": true, "la": true, "que": true, "el": true, "en": true, "y": true,
	"a": true, "los": true, "del": true, "se": true, "las": true, "por": true,
	"un": true, "para": true, "con": true, "no": true, "una": true, "su": true,
	"al": true, "lo": true, "como": true, "más": true, "pero": true,
	"sus": true, "le": true, "ya": true, "o": true, "este": true, "ha": true,
	"me": true, "si": true, "porque": true, "esta": true, "cuando": true,
	"muy": true, "sin": true, "sobre": true, "también": true, "mi": true,
	"hasta": true, "hay": true, "donde": true, "quien": true, "desde": true,
	"todo": true, "nos": true, "durante": true, "todos": true, "uno": true,
	"les": true, "ni": true, "contra": true, "otros": true, "ese": true,
	"eso": true, "ante": true, "ellos": true, "esto": true, "mí": true,
	"antes": true, "algunos": true, "qué": true, "entre": true, "ser": true,
	"era": true, "está": true, "puedo": true, "ayuda": true,
}

// Normalize lowercases the text, strips punctuation, splits on whitespace
// and removes stop words. An empty result means no match is possible.
func Normalize(text string) map[string]bool {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, strings.ToLower(text))

	tokens := make(map[string]bool)
	for _, w := range strings.Fields(cleaned) {
		if !spanishStopWords[w] {
			tokens[w] = true
		}
	}
	return tokens
}
