package arbiter

import (
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/bullet-arbiter/internal/types"
)

// maxConcurrentPairs bounds the worker count for batch arbitration. Pairs
// are independent, so the only ordering requirement is that results land at
// their input index.
const maxConcurrentPairs = 8

// ScoreArbiter arbitrates two parallel bullet lists pair by pair and
// aggregates the batch-level preservation guarantee. When the lists differ
// in length, the missing side of a pair is mirrored from the present side,
// so an unmatched bullet arbitrates against itself as a no-op baseline.
func ScoreArbiter(originals, tailored []string, roleTitle string) types.ArbiterResult {
	n := max(len(originals), len(tailored))
	decisions := make([]types.ArbiterDecision, n)

	var g errgroup.Group
	g.SetLimit(maxConcurrentPairs)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			orig, tail := pairAt(originals, tailored, i)
			decisions[i] = ArbitrateBullet(orig, tail, roleTitle)
			return nil
		})
	}
	// Arbitration is a total function; the group never carries an error.
	_ = g.Wait()

	result := types.ArbiterResult{
		Decisions:        decisions,
		OptimizedBullets: make([]string, 0, n),
	}
	for i := range decisions {
		result.OptimizedBullets = append(result.OptimizedBullets, decisions[i].Bullet)
		result.OriginalTotalScore += decisions[i].OriginalAnalysis.TotalScore
		result.OptimizedTotalScore += decisions[i].WinningAnalysis().TotalScore
	}

	// Holds by construction since every decision keeps the higher-or-equal
	// scoring side, but it is computed rather than assumed so a malformed
	// stage analyzer cannot silently break the guarantee.
	result.MethodologyPreserved = result.OptimizedTotalScore >= result.OriginalTotalScore

	return result
}

// pairAt returns the (original, tailored) texts at index i, mirroring the
// present side when one list is shorter.
func pairAt(originals, tailored []string, i int) (string, string) {
	var orig, tail string
	if i < len(originals) {
		orig = originals[i]
	} else if i < len(tailored) {
		orig = tailored[i]
	}
	if i < len(tailored) {
		tail = tailored[i]
	} else if i < len(originals) {
		tail = originals[i]
	}
	return orig, tail
}
