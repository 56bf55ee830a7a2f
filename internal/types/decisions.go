package types

// Winner identifies which side of an (original, tailored) pair the arbiter chose.
type Winner string

// The two possible arbitration outcomes.
const (
	WinnerOriginal Winner = "original"
	WinnerTailored Winner = "tailored"
)

// StageDropDetail records a per-stage score regression from original to
// tailored text. Generated only when the original outscored the tailored
// version on that stage, so Drop is always positive.
type StageDropDetail struct {
	Stage         Stage  `json:"stage"`
	StageName     string `json:"stage_name"`
	OriginalScore int    `json:"original_score"`
	TailoredScore int    `json:"tailored_score"`
	Drop          int    `json:"drop"`
}

// ArbiterDecision is the outcome of arbitrating a single bullet pair.
// ScoreDelta reflects the raw score comparison (tailored minus original)
// even when the metric-preservation guard overrode the winner.
type ArbiterDecision struct {
	Bullet           string            `json:"bullet"`
	Winner           Winner            `json:"winner"`
	ScoreDelta       int               `json:"score_delta"`
	OriginalAnalysis ContentAnalysis   `json:"original_analysis"`
	TailoredAnalysis ContentAnalysis   `json:"tailored_analysis"`
	RejectionReasons []StageDropDetail `json:"rejection_reasons"`
}

// WinningAnalysis returns the analysis of whichever side the decision kept.
func (d *ArbiterDecision) WinningAnalysis() ContentAnalysis {
	if d.Winner == WinnerTailored {
		return d.TailoredAnalysis
	}
	return d.OriginalAnalysis
}

// ArbiterResult aggregates the decisions for a whole bullet list.
// MethodologyPreserved is the batch-level guarantee that the chosen set
// never scores below the original set in aggregate.
type ArbiterResult struct {
	Decisions            []ArbiterDecision `json:"decisions"`
	OptimizedBullets     []string          `json:"optimized_bullets"`
	OriginalTotalScore   int               `json:"original_total_score"`
	OptimizedTotalScore  int               `json:"optimized_total_score"`
	MethodologyPreserved bool              `json:"methodology_preserved"`
}
