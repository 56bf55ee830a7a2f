package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/bullet-arbiter/internal/types"
)

func TestAnalyzeContent_TotalScoreBounds(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"x",
		"Improved the onboarding process",
		"Led cross-functional team to redesign onboarding using RICE prioritization, increasing activation by 35% for 10K users",
		strings.Repeat("increased revenue by 40% ", 200),
		"emoji ✨ and unicode ünïcode content — still fine",
	}
	titles := []string{"", "Senior Product Manager", "Registered Nurse"}

	for _, input := range inputs {
		for _, title := range titles {
			result := AnalyzeContent(input, title)
			assert.GreaterOrEqual(t, result.TotalScore, 0)
			assert.LessOrEqual(t, result.TotalScore, 100)
			assert.NotEmpty(t, result.Indicators.Details)
			assert.NotEmpty(t, result.ATS.Details)
			assert.NotEmpty(t, result.RecruiterUX.Details)
			assert.NotEmpty(t, result.PMIntelligence.Details)
		}
	}
}

func TestAnalyzeContent_StageScoresRoleIndependent(t *testing.T) {
	text := "Led cross-functional team to redesign onboarding using RICE prioritization, increasing activation by 35% for 10K users"

	base := AnalyzeContent(text, "")
	pm := AnalyzeContent(text, "Senior Product Manager")
	nurse := AnalyzeContent(text, "Registered Nurse")

	for _, stage := range types.Stages {
		assert.Equal(t, base.StageScore(stage), pm.StageScore(stage), "stage %s must not vary by role", stage)
		assert.Equal(t, base.StageScore(stage), nurse.StageScore(stage), "stage %s must not vary by role", stage)
	}
}

func TestAnalyzeContent_TotalScoreVariesByProfile(t *testing.T) {
	// PM-heavy text scores higher under the PM specialist profile than under
	// the general professional profile, because only the weights differ.
	text := "Led cross-functional team to redesign onboarding using RICE prioritization, increasing activation by 35% for 10K users"

	pm := AnalyzeContent(text, "Senior Product Manager")
	nurse := AnalyzeContent(text, "Registered Nurse")

	assert.NotEqual(t, pm.TotalScore, nurse.TotalScore)
}

func TestAnalyzeContent_Deterministic(t *testing.T) {
	text := "Increased user retention by 40% through targeted onboarding improvements"

	first := AnalyzeContent(text, "Product Manager")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, AnalyzeContent(text, "Product Manager"))
	}
}

func TestAnalyzeContent_WeightedAggregation(t *testing.T) {
	// "Improved the onboarding process" has known stage scores:
	// indicators 25, ats 53, recruiterUX 100, pmIntelligence 15.
	result := AnalyzeContent("Improved the onboarding process", "Senior Product Manager")

	assert.Equal(t, 25, result.Indicators.Score)
	assert.Equal(t, 53, result.ATS.Score)
	assert.Equal(t, 100, result.RecruiterUX.Score)
	assert.Equal(t, 15, result.PMIntelligence.Score)
	// 25*0.20 + 53*0.25 + 100*0.20 + 15*0.35 = 43.5, rounded to 44
	assert.Equal(t, 44, result.TotalScore)
}
