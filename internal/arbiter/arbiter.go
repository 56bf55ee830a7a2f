// Package arbiter decides whether a tailored bullet may replace its
// original, guaranteeing that optimization never silently discards a
// quantifiable achievement.
package arbiter

import (
	"github.com/jonathan/bullet-arbiter/internal/analysis"
	"github.com/jonathan/bullet-arbiter/internal/metrics"
	"github.com/jonathan/bullet-arbiter/internal/types"
)

// ArbitrateBullet compares the original and tailored versions of a bullet
// under the given target role and picks the version to keep. The
// metric-preservation guard forces the original whenever the tailored text
// carries fewer quantifiable achievements, regardless of stage scores; ties
// on total score favor the tailored candidate. ScoreDelta always reflects
// the raw score comparison, not the guard's override.
func ArbitrateBullet(original, tailored, roleTitle string) types.ArbiterDecision {
	oa := analysis.AnalyzeContent(original, roleTitle)
	ta := analysis.AnalyzeContent(tailored, roleTitle)

	winner := types.WinnerTailored
	switch {
	case metrics.Count(tailored) < metrics.Count(original):
		winner = types.WinnerOriginal
	case ta.TotalScore < oa.TotalScore:
		winner = types.WinnerOriginal
	}

	bullet := tailored
	if winner == types.WinnerOriginal {
		bullet = original
	}

	return types.ArbiterDecision{
		Bullet:           bullet,
		Winner:           winner,
		ScoreDelta:       ta.TotalScore - oa.TotalScore,
		OriginalAnalysis: oa,
		TailoredAnalysis: ta,
		RejectionReasons: stageDrops(&oa, &ta),
	}
}

// stageDrops records every stage where the original outscored the tailored
// text. The list documents localized regressions even when the tailored
// text wins overall, and is empty exactly when no stage score decreased.
func stageDrops(oa, ta *types.ContentAnalysis) []types.StageDropDetail {
	drops := make([]types.StageDropDetail, 0, len(types.Stages))
	for _, stage := range types.Stages {
		origScore := oa.StageScore(stage)
		tailScore := ta.StageScore(stage)
		if origScore > tailScore {
			drops = append(drops, types.StageDropDetail{
				Stage:         stage,
				StageName:     stage.Label(),
				OriginalScore: origScore,
				TailoredScore: tailScore,
				Drop:          origScore - tailScore,
			})
		}
	}
	return drops
}
