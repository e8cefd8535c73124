package skills

import (
	"math"
	"strings"

	"github.com/jonathan/talent-matcher/internal/types"
)

// Point values per match tier.
const (
	pointsExact    = 100
	pointsSynonym  = 95
	pointsCategory = 80
	pointsPartial  = 40
	pointsFamily   = 30

	// fuzzyThreshold is the minimum Jaro-Winkler similarity for a fuzzy hit.
	fuzzyThreshold = 0.6
	// fuzzyScale converts similarity to points: round(similarity * fuzzyScale).
	fuzzyScale = 70
	// partialMinLen: substring containment only counts when both strings
	// are longer than this, to keep short tokens from matching everything.
	partialMinLen = 3
)

// synonymGroups lists skills treated as interchangeable for matching.
// Membership is checked after normalization, so variants collapsed by the
// synonym table never reach here; these are distinct-but-equivalent skills.
var synonymGroups = [][]string{
	{"javascript", "ecmascript"},
	{"postgresql", "mysql", "mariadb"},
	{"angular", "angular 2"},
	{"rest", "web services"},
	{"automation testing", "selenium"},
	{"machine learning", "deep learning"},
	{"amazon web services", "aws cloud"},
	{"continuous integration", "continuous deployment", "ci cd"},
	{"sql", "structured query language"},
}

// categories groups skills by discipline or language ecosystem; sharing a
// category is a weaker signal than a synonym but still meaningful. Server-side
// stacks are split per ecosystem: knowing Python says nothing about Java.
var categories = map[string][]string{
	"frontend": {"react", "angular", "vue", "javascript", "typescript", "html", "css", "nextjs", "redux", "jquery", "bootstrap", "tailwind"},
	"java":     {"java", "spring", "hibernate", "maven", "gradle"},
	"python":   {"python", "django", "flask", "fastapi"},
	"node":     {"node", "express", "nestjs"},
	"dotnet":   {"c#", ".net", "visual basic"},
	"ruby":     {"ruby", "rails"},
	"php":      {"php", "laravel"},
	"database": {"postgresql", "mysql", "mongodb", "redis", "oracle", "sql server", "cassandra", "elasticsearch", "dynamodb", "sqlite"},
	"cloud":    {"amazon web services", "google cloud platform", "azure", "kubernetes", "docker", "terraform", "openshift"},
	"tools":    {"git", "jenkins", "jira", "maven", "gradle", "webpack", "ansible"},
	"testing":  {"testing", "selenium", "cypress", "junit", "pytest", "automation testing", "jest", "mocha"},
	"mobile":   {"android", "ios", "react native", "flutter", "swift", "kotlin"},
}

// families groups skills by technology stack; the weakest non-zero signal.
var families = map[string][]string{
	"jvm":        {"java", "kotlin", "scala", "groovy", "spring", "maven", "gradle"},
	"microsoft":  {"c#", ".net", "sql server", "azure", "visual basic"},
	"javascript": {"javascript", "typescript", "node", "react", "angular", "vue", "express", "nextjs"},
	"python":     {"python", "django", "flask", "pandas", "numpy", "scikit-learn", "tensorflow", "pytorch"},
	"mobile":     {"android", "ios", "swift", "kotlin", "flutter", "react native"},
}

var (
	synonymIndex  = buildGroupIndex(synonymGroups)
	categoryIndex = buildNamedIndex(categories)
	familyIndex   = buildNamedIndex(families)
)

func buildGroupIndex(groups [][]string) map[string]int {
	idx := make(map[string]int)
	for i, group := range groups {
		for _, s := range group {
			idx[s] = i
		}
	}
	return idx
}

func buildNamedIndex(named map[string][]string) map[string][]string {
	idx := make(map[string][]string)
	for name, members := range named {
		for _, s := range members {
			idx[s] = append(idx[s], name)
		}
	}
	return idx
}

// Match is the outcome of matching one required skill against a candidate's
// skill list: the best candidate skill, the tier it hit, and its points.
type Match struct {
	CandidateSkill string
	Tier           types.MatchTier
	Points         int
}

// FindBestMatch evaluates a normalized required skill against normalized
// candidate skills and returns the single best match, or nil when no tier
// applies. An exact hit wins outright without scanning further candidates;
// otherwise the highest-scoring tier across all candidate skills wins.
func FindBestMatch(required string, candidateSkills []string) *Match {
	if required == "" {
		return nil
	}

	var best *Match
	for _, cand := range candidateSkills {
		if cand == required {
			return &Match{CandidateSkill: cand, Tier: types.TierExact, Points: pointsExact}
		}
		m := classify(required, cand)
		if m != nil && (best == nil || m.Points > best.Points) {
			best = m
		}
	}
	return best
}

// classify evaluates the non-exact tiers in strict priority order and
// returns the first that applies.
func classify(required, cand string) *Match {
	if sharesGroup(required, cand) {
		return &Match{CandidateSkill: cand, Tier: types.TierSynonym, Points: pointsSynonym}
	}
	if sharesName(required, cand, categoryIndex) {
		return &Match{CandidateSkill: cand, Tier: types.TierCategory, Points: pointsCategory}
	}
	if sim := jaroWinkler(required, cand); sim >= fuzzyThreshold {
		return &Match{CandidateSkill: cand, Tier: types.TierFuzzy, Points: int(math.Round(sim * fuzzyScale))}
	}
	if len(required) > partialMinLen && len(cand) > partialMinLen &&
		(strings.Contains(required, cand) || strings.Contains(cand, required)) {
		return &Match{CandidateSkill: cand, Tier: types.TierPartial, Points: pointsPartial}
	}
	if sharesName(required, cand, familyIndex) {
		return &Match{CandidateSkill: cand, Tier: types.TierFamily, Points: pointsFamily}
	}
	return nil
}

func sharesGroup(a, b string) bool {
	ga, ok := synonymIndex[a]
	if !ok {
		return false
	}
	gb, ok := synonymIndex[b]
	return ok && ga == gb
}

func sharesName(a, b string, idx map[string][]string) bool {
	for _, na := range idx[a] {
		for _, nb := range idx[b] {
			if na == nb {
				return true
			}
		}
	}
	return false
}
