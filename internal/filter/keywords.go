package filter

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var spaceRegex = regexp.MustCompile(`\s+`)

// normalizeText strips diacritics and lowercases, so "Entry-Level" and
// "Éntry-level" compare equal.
func normalizeText(str string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, str)
	if err != nil {
		result = str
	}
	return strings.ToLower(strings.ReplaceAll(result, "\u00a0", " "))
}

// compileAny builds a whole-word alternation over words that also accepts a
// plural "s"/"es" ending. Internal spaces match any run of whitespace.
// Returns nil for an empty vocabulary.
func compileAny(words []string) *regexp.Regexp {
	var alts []string
	for _, w := range words {
		w = strings.TrimSpace(normalizeText(w))
		if w == "" {
			continue
		}
		alts = append(alts, spaceRegex.ReplaceAllString(regexp.QuoteMeta(w), `\s+`))
	}
	if len(alts) == 0 {
		return nil
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(alts, "|") + `)(?:s|es)?\b`)
}
