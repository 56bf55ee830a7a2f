package analysis

import (
	"math"

	"github.com/jonathan/bullet-arbiter/internal/roles"
	"github.com/jonathan/bullet-arbiter/internal/types"
)

// AnalyzeContent runs all four stage analyzers against the bullet text and
// aggregates them under the weight profile selected for the target role.
// The stage analyzers are role-agnostic: the same text yields identical
// stage scores for every role, and only the weighted TotalScore differs.
func AnalyzeContent(text, roleTitle string) types.ContentAnalysis {
	indicators := AnalyzeIndicators(text)
	ats := AnalyzeATS(text)
	recruiterUX := AnalyzeRecruiterUX(text)
	pmIntelligence := AnalyzePMIntelligence(text)

	profile := roles.ProfileForRole(roleTitle)
	weighted := float64(indicators.Score)*profile.Indicators +
		float64(ats.Score)*profile.ATS +
		float64(recruiterUX.Score)*profile.RecruiterUX +
		float64(pmIntelligence.Score)*profile.PMIntelligence

	return types.ContentAnalysis{
		Indicators:     indicators,
		ATS:            ats,
		RecruiterUX:    recruiterUX,
		PMIntelligence: pmIntelligence,
		TotalScore:     clampScore(int(math.Round(weighted))),
	}
}
