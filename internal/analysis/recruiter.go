package analysis

import (
	"fmt"
	"strings"

	"github.com/jonathan/bullet-arbiter/internal/types"
)

// Recruiter UX scoring parameters, calibrated to the 5-10 seconds a human
// reviewer spends per bullet.
const (
	uxBasePoints      = 40
	uxConcisePoints   = 30
	uxLongPoints      = 15
	uxOverlongPenalty = 10
	uxFrontLoadPoints = 30

	uxConciseMaxWords = 30
	uxLongMaxWords    = 45

	uxJargonPenaltyStep = 5
	uxJargonPenaltyCap  = 20
)

// pmJargon terms read as noise to a generalist reviewer when stacked up.
// Product-role readers are compensated at aggregation time through the PM
// specialist weight profile, so the stage itself stays role-agnostic.
var pmJargon = []string{
	"roadmap",
	"stakeholder alignment",
	"cross-functional",
	"cross functional",
	"north star",
	"okr",
	"okrs",
	"sprint",
	"backlog",
	"rice",
}

// AnalyzeRecruiterUX estimates human scanability: bounded length, a
// front-loaded outcome statement, and restrained jargon density.
func AnalyzeRecruiterUX(text string) types.StageResult {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return types.StageResult{Score: 0, Details: []string{"empty bullet text"}}
	}

	score := uxBasePoints
	details := []string{"single scannable statement"}

	fields := strings.Fields(trimmed)
	wordCount := len(fields)
	switch {
	case wordCount <= uxConciseMaxWords:
		score += uxConcisePoints
		details = append(details, fmt.Sprintf("concise at %d words", wordCount))
	case wordCount <= uxLongMaxWords:
		score += uxLongPoints
		details = append(details, fmt.Sprintf("%d words strains a quick scan", wordCount))
	default:
		score -= uxOverlongPenalty
		details = append(details, fmt.Sprintf("%d words is too long for a recruiter pass", wordCount))
	}

	if frontLoadedOutcome(fields) {
		score += uxFrontLoadPoints
		details = append(details, "outcome is front-loaded in the first half of the sentence")
	} else {
		details = append(details, "no metric or strong verb in the first half of the sentence")
	}

	if penalty, matched := jargonPenalty(trimmed); penalty > 0 {
		score -= penalty
		details = append(details, fmt.Sprintf("dense PM jargon reads as noise to generalist reviewers: %s", strings.Join(matched, ", ")))
	}

	return types.StageResult{Score: clampScore(score), Details: details}
}

// frontLoadedOutcome reports whether a metric token or strong action verb
// appears within the first half of the sentence.
func frontLoadedOutcome(fields []string) bool {
	half := (len(fields) + 1) / 2
	for _, word := range fields[:half] {
		if isStrongVerb(word) {
			return true
		}
		if strings.ContainsAny(word, "0123456789") || strings.Contains(word, "%") || strings.Contains(word, "$") {
			return true
		}
	}
	return false
}

// jargonPenalty counts distinct PM jargon terms; a single term is free, each
// additional term costs uxJargonPenaltyStep points up to the cap.
func jargonPenalty(text string) (int, []string) {
	normalized := normalizeText(text)
	set := wordSet(text)

	matched := make([]string, 0, len(pmJargon))
	for _, term := range pmJargon {
		if containsPhrase(normalized, set, term) {
			matched = append(matched, term)
		}
	}
	if len(matched) < 2 {
		return 0, nil
	}

	penalty := min((len(matched)-1)*uxJargonPenaltyStep, uxJargonPenaltyCap)
	return penalty, matched
}
