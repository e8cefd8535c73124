// Package ranking scores individual fit dimensions and combines them into an
// overall candidate-requisition compatibility verdict.
package ranking

import (
	"math"

	"github.com/jonathan/talent-matcher/internal/types"
)

// Experience band names.
const (
	ExpNoRequirement  = "no-requirement"
	ExpPerfect        = "perfect"
	ExpExcellent      = "excellent"
	ExpGood           = "good"
	ExpAcceptable     = "acceptable"
	ExpClose          = "close"
	ExpOverQualified  = "over-qualified"
	ExpUnderQualified = "under-qualified"
)

// ScoreExperience maps the candidate's decimal years of experience against
// the required band into a graduated 0-100 score. Bands widen step by step
// around [min, max]; falling above the band decays the score, falling far
// below earns partial credit proportional to coverage.
func ScoreExperience(candidate *types.Candidate, requirement *types.JobRequirement) types.ExperienceMatch {
	years := candidate.Experience.DecimalYears()
	band := requirement.ExperienceRequired
	min := band.MinYears

	if min == 0 && band.MaxYears == nil {
		return types.ExperienceMatch{Score: 50, Level: ExpNoRequirement}
	}

	// effectiveMax bounds the upper side of the graduated bands for
	// open-ended requirements.
	effectiveMax := 2 * min
	if band.MaxYears != nil {
		effectiveMax = *band.MaxYears
	}
	acceptableMax := 3 * min
	if band.MaxYears != nil {
		acceptableMax = *band.MaxYears
	}

	switch {
	case years >= min && (band.MaxYears == nil || years <= *band.MaxYears):
		return types.ExperienceMatch{Score: 100, Level: ExpPerfect}
	case years >= 0.9*min && years <= 1.1*effectiveMax:
		return types.ExperienceMatch{Score: 90, Level: ExpExcellent}
	case years >= 0.8*min && years <= 1.3*effectiveMax:
		return types.ExperienceMatch{Score: 75, Level: ExpGood}
	case years >= 0.6*min && years <= 1.5*acceptableMax:
		return types.ExperienceMatch{Score: 60, Level: ExpAcceptable}
	case years > effectiveMax:
		ratio := years / effectiveMax
		score := 100 - (ratio-1)*40
		if score < 30 {
			score = 30
		}
		return types.ExperienceMatch{Score: clampRound(score), Level: ExpOverQualified}
	case years < 0.6*min:
		score := years / min * 80
		if score < 20 {
			score = 20
		}
		return types.ExperienceMatch{Score: clampRound(score), Level: ExpUnderQualified}
	default:
		return types.ExperienceMatch{Score: 65, Level: ExpClose}
	}
}

// clampRound rounds a score and clamps it to [0,100].
func clampRound(score float64) int {
	rounded := int(math.Round(score))
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}
