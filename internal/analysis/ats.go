package analysis

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/bullet-arbiter/internal/metrics"
	"github.com/jonathan/bullet-arbiter/internal/types"
)

// ATS sub-score allocation and penalties. A missing metric forfeits
// atsMetricPoints outright, which caps the stage well below a passing score
// and is what makes discarding a quantified achievement expensive downstream.
const (
	atsVerbPoints     = 35
	atsMetricPoints   = 35
	atsBaselinePoints = 30

	atsDecorationPenalty = 15
	atsPassivePenalty    = 15
	atsLengthPenaltyStep = 3
	atsLengthPenaltyCap  = 24

	atsMinWords = 8
	atsMaxWords = 35
)

// decorationPattern matches non-alphanumeric decoration that commonly breaks
// automated resume parsers.
var decorationPattern = regexp.MustCompile(`[{}<>|]`)

// passiveMarkers are diffuse phrasings that keyword scanners and recruiters
// alike discount.
var passiveMarkers = []string{
	"was responsible for",
	"were responsible for",
	"responsible for",
	"helped with",
	"assisted in",
	"participated in",
	"was involved in",
	"worked on",
}

// AnalyzeATS estimates how an automated applicant-tracking parser would score
// the bullet: strong action-verb opener, at least one quantifiable metric,
// clean formatting, bounded length, and active phrasing.
func AnalyzeATS(text string) types.StageResult {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return types.StageResult{Score: 0, Details: []string{"empty bullet text"}}
	}

	score := atsBaselinePoints
	details := []string{}

	if opener := firstWord(trimmed); isStrongVerb(opener) {
		score += atsVerbPoints
		details = append(details, fmt.Sprintf("opens with strong action verb %q", strings.ToLower(strings.TrimRight(opener, ".,!?;:"))))
	} else {
		details = append(details, "does not open with a strong past-tense action verb")
	}

	if n := metrics.Count(trimmed); n > 0 {
		score += atsMetricPoints
		details = append(details, fmt.Sprintf("contains %d quantifiable metric(s)", n))
	} else {
		details = append(details, "no quantifiable metric found; scanners rank unquantified bullets poorly")
	}

	if decorationPattern.MatchString(trimmed) {
		score -= atsDecorationPenalty
		details = append(details, "contains decoration characters that break resume parsers")
	}

	wordCount := len(strings.Fields(trimmed))
	switch {
	case wordCount < atsMinWords:
		penalty := min((atsMinWords-wordCount)*atsLengthPenaltyStep, atsLengthPenaltyCap)
		score -= penalty
		details = append(details, fmt.Sprintf("%d words is below the %d-word scannable minimum", wordCount, atsMinWords))
	case wordCount > atsMaxWords:
		penalty := min((wordCount-atsMaxWords)*atsLengthPenaltyStep, atsLengthPenaltyCap)
		score -= penalty
		details = append(details, fmt.Sprintf("%d words exceeds the %d-word scannable maximum", wordCount, atsMaxWords))
	default:
		details = append(details, fmt.Sprintf("length of %d words is within scannable range", wordCount))
	}

	normalized := normalizeText(trimmed)
	for _, marker := range passiveMarkers {
		if strings.Contains(normalized, marker) {
			score -= atsPassivePenalty
			details = append(details, fmt.Sprintf("passive phrasing %q weakens keyword signal", marker))
			break
		}
	}

	return types.StageResult{Score: clampScore(score), Details: details}
}
