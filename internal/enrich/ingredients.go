package enrich

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// ingredientDelims splits on commas and parentheses.
	ingredientDelims = regexp.MustCompile(`[,()]`)
	// ingredientAnd splits on the word "and" bounded by whitespace or a
	// fragment edge, so "(cane) and salt" still separates "salt".
	ingredientAnd = regexp.MustCompile(`(?:^|\s+)and(?:\s+|$)`)
)

// ParseIngredients lower-cases raw ingredient text and splits it into trimmed,
// non-empty phrases in their original order. Duplicates are kept.
func ParseIngredients(s string) []string {
	if s == "" {
		return []string{}
	}

	// A Caser is stateful; build one per call.
	lower := cases.Lower(language.Und)

	out := []string{}
	for _, frag := range ingredientDelims.Split(lower.String(s), -1) {
		for _, part := range ingredientAnd.Split(strings.TrimSpace(frag), -1) {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
