// Package metrics detects quantifiable achievement tokens in bullet text.
package metrics

import "regexp"

// Patterns for quantifiable achievements. Order matters: earlier patterns
// claim their span of text so later patterns cannot re-count the same token
// (e.g. the "10K" inside "10K users" is not also a standalone count).
var patterns = []*regexp.Regexp{
	// Currency amounts: $2M, $1,500, $3.5B
	regexp.MustCompile(`(?i)\$\d[\d,.]*[KMB]?`),
	// Counts tied to people or users: 10K users, 500 customers, 2M people
	regexp.MustCompile(`(?i)\b\d[\d,.]*[KMB]?\+?\s+(?:users|customers|patients|people|employees|stakeholders|clients|members|subscribers)\b`),
	// Percentages: 40%, 3.5%
	regexp.MustCompile(`\d+(?:\.\d+)?%`),
	// Multipliers: 3x, 2.5x
	regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?x\b`),
}

// Count returns the number of non-overlapping quantifiable-achievement
// tokens in text: percentages, currency amounts, multipliers, and explicit
// counts of people or users. The value is meaningful only as a relative
// comparator between two versions of the same bullet, never as an absolute
// quality score.
func Count(text string) int {
	if text == "" {
		return 0
	}

	remaining := []byte(text)
	total := 0

	for _, p := range patterns {
		spans := p.FindAllIndex(remaining, -1)
		total += len(spans)

		// Blank out matched spans so later patterns cannot overlap them.
		for _, span := range spans {
			for i := span[0]; i < span[1]; i++ {
				remaining[i] = ' '
			}
		}
	}

	return total
}
