package roles

import (
	"strings"

	"github.com/jonathan/bullet-arbiter/internal/types"
)

// The three process-wide weight profiles. They are fixed configuration data:
// constructed once at package initialization and never mutated.
var (
	// DefaultProfile applies when no target role is declared.
	DefaultProfile = types.WeightProfile{
		Name:           "default",
		Indicators:     0.20,
		ATS:            0.30,
		RecruiterUX:    0.20,
		PMIntelligence: 0.30,
	}

	// PMSpecialistProfile applies to product-management roles, shifting
	// weight from ATS parsing toward PM narrative intelligence.
	PMSpecialistProfile = types.WeightProfile{
		Name:           "pm_specialist",
		Indicators:     0.20,
		ATS:            0.25,
		RecruiterUX:    0.20,
		PMIntelligence: 0.35,
	}

	// GeneralProfessionalProfile applies to all other declared roles, where
	// PM narrative framing carries only marginal weight.
	GeneralProfessionalProfile = types.WeightProfile{
		Name:           "general_professional",
		Indicators:     0.30,
		ATS:            0.35,
		RecruiterUX:    0.30,
		PMIntelligence: 0.05,
	}
)

func init() {
	// A profile that fails the sum-to-one invariant is a programming error;
	// fail fast rather than skew every score computed from it.
	for _, profile := range []types.WeightProfile{DefaultProfile, PMSpecialistProfile, GeneralProfessionalProfile} {
		if err := profile.Validate(); err != nil {
			panic(err)
		}
	}
}

// ProfileForRole maps a (possibly empty) target job title to the weight
// profile used to aggregate stage scores. Absent or blank titles select the
// default profile; product roles select the PM specialist profile; every
// other title selects the general professional profile.
func ProfileForRole(title string) types.WeightProfile {
	if strings.TrimSpace(title) == "" {
		return DefaultProfile
	}
	if IsProductRole(title) {
		return PMSpecialistProfile
	}
	return GeneralProfessionalProfile
}
