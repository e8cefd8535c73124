package ranking

import (
	"math"

	"github.com/jonathan/talent-matcher/internal/location"
	"github.com/jonathan/talent-matcher/internal/skills"
	"github.com/jonathan/talent-matcher/internal/types"
)

// Canonical component weights, summing to 1.0. Declared once; every caller
// shares them.
const (
	weightSkills     = 0.45
	weightExperience = 0.25
	weightLocation   = 0.15
	weightEducation  = 0.10
	weightSalary     = 0.05
)

// Penalty gates, mutually exclusive, first match wins. A critically low
// sub-score drags the composite down beyond its weighted share.
const (
	skillGateThreshold      = 60
	skillGateMultiplier     = 0.70
	experienceGateThreshold = 40
	experienceGateMultiplier = 0.80
	locationGateThreshold   = 50
	locationGateMultiplier  = 0.90
)

// Fit tier thresholds over the final composite score.
const (
	fitExcellentMin = 85
	fitGoodMin      = 70
	fitAverageMin   = 55
)

// Composite holds the five sub-scores and the final weighted verdict.
type Composite struct {
	Skills     types.SkillScore
	Experience types.ExperienceMatch
	Location   types.LocationMatch
	Education  types.EducationMatch
	Salary     types.SalaryMatch
	Overall    int
	Fit        types.FitTier
}

// ScoreComposite runs every sub-scorer, blends the clamped sub-scores with
// the canonical weights, applies the penalty gates, and classifies the fit.
func ScoreComposite(candidate *types.Candidate, requirement *types.JobRequirement) Composite {
	c := Composite{
		Skills:     skills.Score(candidate, requirement),
		Experience: ScoreExperience(candidate, requirement),
		Location:   location.Score(candidate, requirement),
		Education:  ScoreEducation(candidate, requirement),
		Salary:     ScoreSalary(candidate, requirement),
	}

	base := weightSkills*clamp01(c.Skills.Score) +
		weightExperience*clamp01(c.Experience.Score) +
		weightLocation*clamp01(c.Location.Score) +
		weightEducation*clamp01(c.Education.Score) +
		weightSalary*clamp01(c.Salary.Score)
	score := math.Round(base)

	switch {
	case c.Skills.Score < skillGateThreshold:
		score *= skillGateMultiplier
	case c.Experience.Score < experienceGateThreshold:
		score *= experienceGateMultiplier
	case c.Location.Score < locationGateThreshold && !requirement.IsRemoteFriendly():
		score *= locationGateMultiplier
	}

	c.Overall = clampRound(score)
	c.Fit = FitFor(c.Overall)
	return c
}

// FitFor classifies a composite score into its fit tier.
func FitFor(score int) types.FitTier {
	switch {
	case score >= fitExcellentMin:
		return types.FitExcellent
	case score >= fitGoodMin:
		return types.FitGood
	case score >= fitAverageMin:
		return types.FitAverage
	default:
		return types.FitPoor
	}
}

// clamp01 clamps an integer sub-score to [0,100] as a float for weighting.
func clamp01(score int) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return float64(score)
}
