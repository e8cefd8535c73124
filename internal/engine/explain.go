package engine

import (
	"fmt"
	"strings"

	"github.com/jonathan/talent-matcher/internal/types"
)

// maxExplainedSkills caps how many matched skill names an explanation lists.
const maxExplainedSkills = 5

// explain synthesizes the human-readable relevance summary for a result:
// short clauses covering fit, skill counts, experience, location, and
// education, each ending in a period.
func explain(r *types.MatchResult) string {
	var parts []string

	parts = append(parts, fmt.Sprintf("%s fit (%d/100)", titleFit(r.OverallFit), r.OverallScore))

	skillClause := fmt.Sprintf("Matched %d of %d required skills", r.Skills.RequiredMatched, r.Skills.RequiredTotal)
	if names := matchedSkillNames(r.Skills.Details); len(names) > 0 {
		skillClause += " (" + strings.Join(names, ", ") + ")"
	}
	if r.Skills.PreferredMatched > 0 {
		skillClause += fmt.Sprintf(", %d preferred", r.Skills.PreferredMatched)
	}
	if r.Skills.TechnologyMatched > 0 {
		skillClause += fmt.Sprintf(", %d technologies", r.Skills.TechnologyMatched)
	}
	parts = append(parts, skillClause)

	parts = append(parts, fmt.Sprintf("Experience: %s", r.Experience.Level))
	parts = append(parts, fmt.Sprintf("Location: %s", r.Location.Level))

	switch {
	case r.Education.Unrestricted:
		parts = append(parts, "No education requirements")
	case r.Education.Matched == r.Education.Total:
		parts = append(parts, "Education requirements met")
	case r.Education.Matched > 0:
		parts = append(parts, fmt.Sprintf("Education partially met (%d of %d)", r.Education.Matched, r.Education.Total))
	default:
		parts = append(parts, "Education requirements not met")
	}

	return strings.Join(parts, ". ") + "."
}

// matchedSkillNames collects required-skill names from the details, capped
// for display.
func matchedSkillNames(details []types.SkillMatchDetail) []string {
	var names []string
	for _, d := range details {
		if d.IsPreferred || d.IsTechnology {
			continue
		}
		names = append(names, d.RequiredSkill)
		if len(names) == maxExplainedSkills {
			break
		}
	}
	return names
}

// titleFit capitalizes a fit tier for sentence position.
func titleFit(fit types.FitTier) string {
	s := string(fit)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
