package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeRecruiterUX_ConciseFrontLoaded(t *testing.T) {
	result := AnalyzeRecruiterUX("Increased retention by 40% through onboarding improvements")

	assert.Equal(t, 100, result.Score)
	assert.NotEmpty(t, result.Details)
}

func TestAnalyzeRecruiterUX_LengthPenalties(t *testing.T) {
	concise := AnalyzeRecruiterUX("Increased retention by 40% through onboarding improvements")
	long := AnalyzeRecruiterUX("Increased retention " + strings.Repeat("across many different product areas ", 8))
	overlong := AnalyzeRecruiterUX("Increased retention " + strings.Repeat("across many different product areas ", 12))

	assert.Greater(t, concise.Score, long.Score)
	assert.Greater(t, long.Score, overlong.Score)
}

func TestAnalyzeRecruiterUX_FrontLoadedOutcome(t *testing.T) {
	frontLoaded := AnalyzeRecruiterUX("Reduced checkout latency sharply after profiling the hot paths in the service")
	buried := AnalyzeRecruiterUX("After a season of profiling work on the service, checkout latency finally improved")

	assert.Greater(t, frontLoaded.Score, buried.Score)
}

func TestAnalyzeRecruiterUX_JargonDensityPenalty(t *testing.T) {
	plain := AnalyzeRecruiterUX("Launched the redesigned onboarding flow with the platform team")
	dense := AnalyzeRecruiterUX("Launched roadmap sprint with OKR backlog alignment for the platform team")

	assert.Greater(t, plain.Score, dense.Score)

	found := false
	for _, detail := range dense.Details {
		if strings.Contains(detail, "jargon") {
			found = true
		}
	}
	assert.True(t, found, "jargon density should be reported in details")
}

func TestAnalyzeRecruiterUX_SingleJargonTermIsFree(t *testing.T) {
	single := AnalyzeRecruiterUX("Launched the redesigned onboarding flow ahead of the sprint")
	none := AnalyzeRecruiterUX("Launched the redesigned onboarding flow ahead of the deadline")

	assert.Equal(t, none.Score, single.Score)
}

func TestAnalyzeRecruiterUX_EmptyString(t *testing.T) {
	result := AnalyzeRecruiterUX("")

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, []string{"empty bullet text"}, result.Details)
}
