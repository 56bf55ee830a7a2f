// Package roles classifies target job titles and selects the weight profile
// used to aggregate stage scores.
package roles

import "strings"

// productTitleFragments are product-management title fragments matched by
// substring against the normalized title.
var productTitleFragments = []string{
	"product manager",
	"product owner",
	"chief product officer",
	"head of product",
	"vp of product",
	"vp product",
	"director of product",
	"product lead",
	"product management",
}

// shortProductTitles are acronyms too short for substring matching; they
// must appear as a whole word ("pm" inside "rpm" is not a product role).
var shortProductTitles = map[string]bool{
	"pm":  true,
	"cpo": true,
	"tpm": true,
	"gpm": true,
	"apm": true,
}

// IsProductRole reports whether a free-text job title denotes a
// product-management role. Matching is case-insensitive and tolerant of
// surrounding whitespace; the empty title is not a product role.
func IsProductRole(title string) bool {
	normalized := strings.ToLower(strings.TrimSpace(title))
	if normalized == "" {
		return false
	}

	for _, fragment := range productTitleFragments {
		if strings.Contains(normalized, fragment) {
			return true
		}
	}

	for _, word := range strings.Fields(normalized) {
		word = strings.Trim(word, ".,;:()")
		if shortProductTitles[word] {
			return true
		}
	}

	return false
}
