package analysis

import (
	"fmt"
	"strings"

	"github.com/jonathan/bullet-arbiter/internal/metrics"
	"github.com/jonathan/bullet-arbiter/internal/types"
)

// PM intelligence signal allocation. The non-zero base keeps legitimately
// terse but accurate bullets from being zeroed out.
const (
	pmBasePoints          = 15
	pmOwnershipPoints     = 25
	pmCollaborationPoints = 20
	pmOutcomePoints       = 25
	pmFramingPoints       = 15
)

// ownershipVerbs signal that the writer drove the work rather than observing it.
var ownershipVerbs = []string{"led", "drove", "spearheaded", "owned", "launched", "headed", "championed", "initiated"}

// collaborationPhrases signal cross-team reach.
var collaborationPhrases = []string{
	"cross-functional", "cross functional", "partnered with", "partnered",
	"aligned stakeholders", "stakeholder", "stakeholders", "collaborated",
	"in collaboration with",
}

// problemPhrases and resultPhrases together detect problem-to-solution framing.
var problemPhrases = []string{"problem", "challenge", "bottleneck", "pain point", "gap", "inefficiency", "inefficiencies", "inefficient", "friction", "issue"}

var resultPhrases = []string{"resulting in", "leading to", "which increased", "which reduced", "increasing", "reducing", "improving", "cutting", "driving"}

// AnalyzePMIntelligence estimates outcome-oriented, ownership-driven,
// data-informed narrative structure, independent of the target role. Each
// present signal category contributes a bounded share of the scale.
func AnalyzePMIntelligence(text string) types.StageResult {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return types.StageResult{Score: 0, Details: []string{"empty bullet text"}}
	}

	normalized := normalizeText(trimmed)
	set := wordSet(trimmed)

	score := pmBasePoints
	details := []string{}

	if phrase, ok := matchAny(normalized, set, ownershipVerbs); ok {
		score += pmOwnershipPoints
		details = append(details, fmt.Sprintf("ownership language: %q", phrase))
	}
	if phrase, ok := matchAny(normalized, set, collaborationPhrases); ok {
		score += pmCollaborationPoints
		details = append(details, fmt.Sprintf("collaboration language: %q", phrase))
	}
	if n := metrics.Count(trimmed); n > 0 {
		score += pmOutcomePoints
		details = append(details, fmt.Sprintf("quantified business outcome (%d metric(s))", n))
	}
	if problem, ok := matchAny(normalized, set, problemPhrases); ok {
		if result, resOK := matchAny(normalized, set, resultPhrases); resOK || metrics.Count(trimmed) > 0 {
			score += pmFramingPoints
			if resOK {
				details = append(details, fmt.Sprintf("problem-to-solution framing: %q ... %q", problem, result))
			} else {
				details = append(details, fmt.Sprintf("problem-to-solution framing: %q resolved with a quantified result", problem))
			}
		}
	}

	if len(details) == 0 {
		details = append(details, "no outcome-oriented narrative signals; scored at terse-bullet baseline")
	}

	return types.StageResult{Score: clampScore(score), Details: details}
}

// matchAny returns the first phrase from the lexicon present in the text.
func matchAny(normalized string, set map[string]bool, phrases []string) (string, bool) {
	for _, phrase := range phrases {
		if containsPhrase(normalized, set, phrase) {
			return phrase, true
		}
	}
	return "", false
}
