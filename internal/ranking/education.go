package ranking

import (
	"math"
	"strings"

	"github.com/jonathan/talent-matcher/internal/types"
)

// degreeFamilies absorbs the common degree abbreviations into four families
// so that "B.Tech" satisfies a "Bachelor" requirement and vice versa.
var degreeFamilies = map[string][]string{
	"bachelor": {"bachelor", "bachelors", "btech", "be", "bsc", "bca", "ba", "bcom", "bba", "beng"},
	"master":   {"master", "masters", "mtech", "me", "msc", "mca", "ma", "mcom", "mba", "pgdm", "meng", "ms"},
	"phd":      {"phd", "doctorate", "dphil"},
	"diploma":  {"diploma", "polytechnic", "pgd"},
}

var degreeFamilyIndex = buildDegreeFamilyIndex()

func buildDegreeFamilyIndex() map[string]string {
	idx := make(map[string]string)
	for family, members := range degreeFamilies {
		for _, m := range members {
			idx[m] = family
		}
	}
	return idx
}

// normalizeDegree lowercases a degree name and strips dots and spaces, so
// "B.Tech", "b tech" and "BTech" all key the family index the same way.
func normalizeDegree(degree string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(degree) {
		if r == '.' || r == ' ' || r == '-' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// degreeFamily returns the family for a degree name, or the normalized name
// itself when it belongs to no known family.
func degreeFamily(degree string) string {
	n := normalizeDegree(degree)
	if family, ok := degreeFamilyIndex[n]; ok {
		return family
	}
	return n
}

// ScoreEducation matches candidate degrees against the requisition's
// education requirements. A requisition with no listed degrees is trivially
// satisfied; otherwise the score is the fraction of requirements matched.
func ScoreEducation(candidate *types.Candidate, requirement *types.JobRequirement) types.EducationMatch {
	reqs := requirement.EducationRequirements
	if len(reqs) == 0 {
		return types.EducationMatch{Score: 100, Unrestricted: true}
	}

	matched := 0
	for _, req := range reqs {
		if hasMatchingDegree(candidate.Education, req) {
			matched++
		}
	}

	score := int(math.Round(100 * float64(matched) / float64(len(reqs))))
	return types.EducationMatch{Score: score, Matched: matched, Total: len(reqs)}
}

func hasMatchingDegree(education []types.Education, req types.EducationRequirement) bool {
	reqFamily := degreeFamily(req.Degree)
	for _, edu := range education {
		if degreeFamily(edu.Degree) != reqFamily {
			continue
		}
		if specializationMatches(edu.Specialization, req.Specialization) {
			return true
		}
	}
	return false
}

// specializationMatches is case-insensitive substring containment in either
// direction; an unspecified required specialization matches anything.
func specializationMatches(have, want string) bool {
	if strings.TrimSpace(want) == "" {
		return true
	}
	h := strings.ToLower(strings.TrimSpace(have))
	w := strings.ToLower(strings.TrimSpace(want))
	if h == "" {
		return false
	}
	return strings.Contains(h, w) || strings.Contains(w, h)
}
