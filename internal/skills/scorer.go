package skills

import (
	"math"

	"github.com/jonathan/talent-matcher/internal/types"
)

// Half-weighted point values for preferred-skill matches. Preferred skills
// add to the accumulator but never to the possible-points denominator.
const (
	preferredExactPoints   = 50
	preferredStrongPoints  = 35
	preferredWeakPoints    = 20
	technologyBonusPoints  = 30
	pointsPerRequiredSkill = 100
)

// Score aggregates per-skill matches across required skills, preferred
// skills, and declared technologies into one 0-100 skill score.
//
// Required skills set the denominator (100 points each); preferred matches
// and technology bonuses only add to the numerator. With no required skills
// the requisition is unscored and the result is 0.
func Score(candidate *types.Candidate, requirement *types.JobRequirement) types.SkillScore {
	candidateSkills := NormalizeAll(candidate.Skills)
	required := NormalizeAll(requirement.RequiredSkills)
	preferred := NormalizeAll(requirement.PreferredSkills)
	technologies := NormalizeAll(requirement.Technologies)

	result := types.SkillScore{RequiredTotal: len(required)}

	accumulated := 0
	matchedRequired := make(map[string]bool, len(required))
	for _, req := range required {
		m := FindBestMatch(req, candidateSkills)
		if m == nil {
			continue
		}
		accumulated += m.Points
		matchedRequired[req] = true
		result.RequiredMatched++
		result.Details = append(result.Details, types.SkillMatchDetail{
			RequiredSkill:  req,
			CandidateSkill: m.CandidateSkill,
			MatchTier:      m.Tier,
			Points:         m.Points,
		})
	}

	for _, pref := range preferred {
		if matchedRequired[pref] {
			continue
		}
		m := FindBestMatch(pref, candidateSkills)
		if m == nil {
			continue
		}
		points := preferredPoints(m.Tier)
		accumulated += points
		result.PreferredMatched++
		result.Details = append(result.Details, types.SkillMatchDetail{
			RequiredSkill:  pref,
			CandidateSkill: m.CandidateSkill,
			MatchTier:      m.Tier,
			Points:         points,
			IsPreferred:    true,
		})
	}

	candidateSet := make(map[string]bool, len(candidateSkills))
	for _, s := range candidateSkills {
		candidateSet[s] = true
	}
	for _, tech := range technologies {
		if !candidateSet[tech] {
			continue
		}
		accumulated += technologyBonusPoints
		result.TechnologyMatched++
		result.Details = append(result.Details, types.SkillMatchDetail{
			RequiredSkill:  tech,
			CandidateSkill: tech,
			MatchTier:      types.TierExact,
			Points:         technologyBonusPoints,
			IsTechnology:   true,
		})
	}

	possible := len(required) * pointsPerRequiredSkill
	if possible == 0 {
		return result
	}
	score := int(math.Round(100 * float64(accumulated) / float64(possible)))
	if score > 100 {
		score = 100
	}
	result.Score = score
	return result
}

func preferredPoints(tier types.MatchTier) int {
	switch tier {
	case types.TierExact:
		return preferredExactPoints
	case types.TierSynonym, types.TierCategory:
		return preferredStrongPoints
	default:
		return preferredWeakPoints
	}
}
