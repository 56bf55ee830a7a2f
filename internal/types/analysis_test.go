package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeightProfile_Validate(t *testing.T) {
	valid := WeightProfile{Name: "valid", Indicators: 0.25, ATS: 0.25, RecruiterUX: 0.25, PMIntelligence: 0.25}
	assert.NoError(t, valid.Validate())

	invalid := WeightProfile{Name: "invalid", Indicators: 0.5, ATS: 0.5, RecruiterUX: 0.5, PMIntelligence: 0.5}
	assert.Error(t, invalid.Validate())
}

func TestWeightProfile_ValidateTolerance(t *testing.T) {
	// Representation error within 1e-10 is not an invariant violation
	profile := WeightProfile{Name: "fp", Indicators: 0.1, ATS: 0.2, RecruiterUX: 0.3, PMIntelligence: 0.4}
	assert.NoError(t, profile.Validate())
}

func TestWeightProfile_Weight(t *testing.T) {
	profile := WeightProfile{Indicators: 0.1, ATS: 0.2, RecruiterUX: 0.3, PMIntelligence: 0.4}

	assert.InDelta(t, 0.1, profile.Weight(StageIndicators), 1e-12)
	assert.InDelta(t, 0.2, profile.Weight(StageATS), 1e-12)
	assert.InDelta(t, 0.3, profile.Weight(StageRecruiterUX), 1e-12)
	assert.InDelta(t, 0.4, profile.Weight(StagePMIntelligence), 1e-12)
}

func TestStage_Label(t *testing.T) {
	assert.Equal(t, "Cold Indicators", StageIndicators.Label())
	assert.Equal(t, "ATS Compatibility", StageATS.Label())
	assert.Equal(t, "Recruiter UX", StageRecruiterUX.Label())
	assert.Equal(t, "PM Intelligence", StagePMIntelligence.Label())
}

func TestContentAnalysis_StageScore(t *testing.T) {
	analysis := ContentAnalysis{
		Indicators:     StageResult{Score: 10},
		ATS:            StageResult{Score: 20},
		RecruiterUX:    StageResult{Score: 30},
		PMIntelligence: StageResult{Score: 40},
	}

	assert.Equal(t, 10, analysis.StageScore(StageIndicators))
	assert.Equal(t, 20, analysis.StageScore(StageATS))
	assert.Equal(t, 30, analysis.StageScore(StageRecruiterUX))
	assert.Equal(t, 40, analysis.StageScore(StagePMIntelligence))
}

func TestArbiterDecision_WinningAnalysis(t *testing.T) {
	decision := ArbiterDecision{
		Winner:           WinnerTailored,
		OriginalAnalysis: ContentAnalysis{TotalScore: 50},
		TailoredAnalysis: ContentAnalysis{TotalScore: 80},
	}
	assert.Equal(t, 80, decision.WinningAnalysis().TotalScore)

	decision.Winner = WinnerOriginal
	assert.Equal(t, 50, decision.WinningAnalysis().TotalScore)
}
