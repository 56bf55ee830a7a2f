// Package types provides type definitions for structured data used throughout the bullet-arbiter system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "fmt"

// Stage identifies one of the four scoring dimensions of the content analysis pipeline.
type Stage string

// The four analysis stages, in pipeline order.
const (
	StageIndicators     Stage = "indicators"
	StageATS            Stage = "ats"
	StageRecruiterUX    Stage = "recruiterUX"
	StagePMIntelligence Stage = "pmIntelligence"
)

// Stages lists all four stages in pipeline order.
var Stages = []Stage{StageIndicators, StageATS, StageRecruiterUX, StagePMIntelligence}

// Label returns the human-readable name for the stage.
func (s Stage) Label() string {
	switch s {
	case StageIndicators:
		return "Cold Indicators"
	case StageATS:
		return "ATS Compatibility"
	case StageRecruiterUX:
		return "Recruiter UX"
	case StagePMIntelligence:
		return "PM Intelligence"
	default:
		return string(s)
	}
}

// StageResult holds a single stage analyzer's score and its supporting evidence.
// Details is always non-empty: every stage reports at least one piece of
// evidence, even for weak input.
type StageResult struct {
	Score   int      `json:"score"`
	Details []string `json:"details"`
}

// ContentAnalysis is the full four-stage analysis of a single bullet text.
// TotalScore is the weight-profile-weighted sum of the four stage scores,
// rounded to the nearest integer, always within [0, 100].
type ContentAnalysis struct {
	Indicators     StageResult `json:"indicators"`
	ATS            StageResult `json:"ats"`
	RecruiterUX    StageResult `json:"recruiter_ux"`
	PMIntelligence StageResult `json:"pm_intelligence"`
	TotalScore     int         `json:"total_score"`
}

// StageScore returns the score recorded for the given stage.
func (a *ContentAnalysis) StageScore(s Stage) int {
	switch s {
	case StageIndicators:
		return a.Indicators.Score
	case StageATS:
		return a.ATS.Score
	case StageRecruiterUX:
		return a.RecruiterUX.Score
	case StagePMIntelligence:
		return a.PMIntelligence.Score
	default:
		return 0
	}
}

// WeightProfile is a named set of four fractional stage weights summing to 1.0.
// The three process-wide instances live in the roles package; profiles are
// immutable after construction.
type WeightProfile struct {
	Name           string  `json:"name"`
	Indicators     float64 `json:"indicators"`
	ATS            float64 `json:"ats"`
	RecruiterUX    float64 `json:"recruiter_ux"`
	PMIntelligence float64 `json:"pm_intelligence"`
}

// weightSumTolerance is the floating-point tolerance for the sum-to-one invariant.
const weightSumTolerance = 1e-10

// Weight returns the fraction assigned to the given stage.
func (w WeightProfile) Weight(s Stage) float64 {
	switch s {
	case StageIndicators:
		return w.Indicators
	case StageATS:
		return w.ATS
	case StageRecruiterUX:
		return w.RecruiterUX
	case StagePMIntelligence:
		return w.PMIntelligence
	default:
		return 0
	}
}

// Validate checks the sum-to-one invariant. A failure is a programming error
// in the profile constants, not a runtime condition.
func (w WeightProfile) Validate() error {
	sum := w.Indicators + w.ATS + w.RecruiterUX + w.PMIntelligence
	diff := sum - 1.0
	if diff < 0 {
		diff = -diff
	}
	if diff > weightSumTolerance {
		return fmt.Errorf("weight profile %q components sum to %v, want 1.0", w.Name, sum)
	}
	return nil
}
