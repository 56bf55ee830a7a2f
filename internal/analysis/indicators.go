// Package analysis implements the four-stage content analysis pipeline for
// resume bullets: cold indicators, ATS compatibility, recruiter UX, and PM
// intelligence. Every analyzer is a pure function of its text input and
// reports its evidence alongside the score.
package analysis

import (
	"fmt"

	"github.com/jonathan/bullet-arbiter/internal/types"
)

// indicatorSaturation is the number of distinct competency categories at
// which the cold-indicators score saturates at 100.
const indicatorSaturation = 4

// competencyCategory is one of the ten canonical professional competency
// dimensions with its keyword lexicon.
type competencyCategory struct {
	name    string
	phrases []string
}

// competencyLexicon covers the ten canonical competency categories.
// Matching is case-insensitive and whitespace-tolerant.
var competencyLexicon = []competencyCategory{
	{"job knowledge", []string{"architected", "engineered", "implemented", "developed", "built", "technical", "expertise", "programmed", "configured"}},
	{"problem-solving", []string{"solved", "resolved", "diagnosed", "troubleshot", "optimized", "streamlined", "improved", "fixed", "debugged", "eliminated"}},
	{"communication", []string{"presented", "communicated", "documented", "reported", "negotiated", "wrote", "authored", "briefed"}},
	{"social skill", []string{"collaborated", "partnered", "mentored", "coached", "facilitated", "cross-functional", "cross functional", "team"}},
	{"integrity", []string{"compliance", "audit", "audited", "ethical", "transparent", "accountable", "governance", "regulatory"}},
	{"adaptability", []string{"adapted", "pivoted", "transitioned", "migrated", "adjusted", "restructured"}},
	{"learning agility", []string{"learned", "mastered", "certified", "upskilled", "self-taught", "adopted", "researched"}},
	{"leadership", []string{"led", "managed", "directed", "supervised", "spearheaded", "drove", "owned", "headed", "oversaw"}},
	{"creativity", []string{"created", "designed", "redesigned", "redesign", "innovated", "launched", "pioneered", "invented", "conceived", "prototyped"}},
	{"motivation", []string{"achieved", "delivered", "exceeded", "surpassed", "increased", "increasing", "grew", "boosted", "initiated", "championed", "proactively"}},
}

// AnalyzeIndicators estimates the breadth of demonstrated professional
// competency language in the bullet, role-independent. The score rises with
// the number of distinct competency categories matched and saturates at 100
// once four or more are hit.
func AnalyzeIndicators(text string) types.StageResult {
	normalized := normalizeText(text)
	set := wordSet(text)

	matched := 0
	details := make([]string, 0, len(competencyLexicon))
	for _, category := range competencyLexicon {
		for _, phrase := range category.phrases {
			if containsPhrase(normalized, set, phrase) {
				matched++
				details = append(details, fmt.Sprintf("%s: matched %q", category.name, phrase))
				break
			}
		}
	}

	score := matched * 100 / indicatorSaturation
	if score > 100 {
		score = 100
	}
	if len(details) == 0 {
		details = append(details, "no competency categories matched")
	}

	return types.StageResult{Score: score, Details: details}
}
