package analysis

import (
	"strings"
	"unicode"
)

// strongVerbs are past-tense action verbs that open a high-signal bullet
// (heuristic check, same spirit as an ATS keyword scanner).
var strongVerbs = map[string]bool{
	"accelerated": true, "achieved": true, "architected": true, "boosted": true,
	"built": true, "created": true, "cut": true, "decreased": true,
	"delivered": true, "designed": true, "developed": true, "directed": true,
	"doubled": true, "drove": true, "engineered": true, "generated": true,
	"grew": true, "implemented": true, "improved": true, "increased": true,
	"launched": true, "led": true, "managed": true, "optimized": true,
	"owned": true, "reduced": true, "redesigned": true, "saved": true,
	"scaled": true, "shipped": true, "spearheaded": true, "streamlined": true,
	"transformed": true, "tripled": true,
}

// normalizeText lowercases the text and collapses runs of whitespace so
// multi-word phrase matching tolerates irregular spacing.
func normalizeText(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// wordSet returns the set of lowercased words with surrounding punctuation
// trimmed, used for whole-word lexicon matching.
func wordSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.TrimFunc(word, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if word != "" {
			set[word] = true
		}
	}
	return set
}

// containsPhrase reports whether phrase occurs in the text. Multi-word
// phrases (and hyphenated terms) match by substring on the normalized text;
// single words match whole words only, so "led" does not fire on "coupled".
func containsPhrase(normalized string, set map[string]bool, phrase string) bool {
	if strings.ContainsAny(phrase, " -") {
		return strings.Contains(normalized, phrase)
	}
	return set[phrase]
}

// isStrongVerb reports whether word reads as a strong past-tense action verb.
func isStrongVerb(word string) bool {
	word = strings.TrimRight(strings.ToLower(word), ".,!?;:")
	if strongVerbs[word] {
		return true
	}
	// Past-tense fallback: most -ed words in opening position are action verbs.
	return strings.HasSuffix(word, "ed") && len(word) > 3
}

// firstWord returns the first whitespace-delimited token of text.
func firstWord(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// clampScore bounds a raw stage score to the 0-100 scale.
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
