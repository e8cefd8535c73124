package skills

import (
	"testing"

	"github.com/jonathan/talent-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindBestMatch_ExactWinsOutright(t *testing.T) {
	// "javascript" would score via fuzzy against "java", but the exact hit
	// must win and short-circuit.
	m := FindBestMatch("java", []string{"javascript", "java", "python"})

	require.NotNil(t, m)
	assert.Equal(t, types.TierExact, m.Tier)
	assert.Equal(t, 100, m.Points)
	assert.Equal(t, "java", m.CandidateSkill)
}

func TestFindBestMatch_SynonymGroup(t *testing.T) {
	m := FindBestMatch("postgresql", []string{"mariadb"})

	require.NotNil(t, m)
	assert.Equal(t, types.TierSynonym, m.Tier)
	assert.Equal(t, 95, m.Points)
}

func TestFindBestMatch_SharedCategory(t *testing.T) {
	m := FindBestMatch("react", []string{"angular"})

	require.NotNil(t, m)
	assert.Equal(t, types.TierCategory, m.Tier)
	assert.Equal(t, 80, m.Points)
}

func TestFindBestMatch_SameEcosystemCategory(t *testing.T) {
	m := FindBestMatch("python", []string{"django"})

	require.NotNil(t, m)
	assert.Equal(t, types.TierCategory, m.Tier)
	assert.Equal(t, 80, m.Points)
}

func TestFindBestMatch_CrossEcosystemNoMatch(t *testing.T) {
	// Knowing Python is no signal for a Java or Spring requirement.
	assert.Nil(t, FindBestMatch("java", []string{"python"}))
	assert.Nil(t, FindBestMatch("spring", []string{"python"}))
	assert.Nil(t, FindBestMatch("mysql", []string{"python"}))
}

func TestFindBestMatch_SynonymGroupsUseNormalizedTokens(t *testing.T) {
	// Group members are post-normalization tokens; variants the normalizer
	// collapses ("rest api", "test automation") are not listed separately.
	m := FindBestMatch("rest", []string{"web services"})
	require.NotNil(t, m)
	assert.Equal(t, types.TierSynonym, m.Tier)

	m = FindBestMatch("automation testing", []string{"selenium"})
	require.NotNil(t, m)
	assert.Equal(t, types.TierSynonym, m.Tier)
}

func TestFindBestMatch_FuzzySimilarity(t *testing.T) {
	// Misspelled skill close enough for a Jaro-Winkler hit.
	m := FindBestMatch("terraform", []string{"terafom"})

	require.NotNil(t, m)
	assert.Equal(t, types.TierFuzzy, m.Tier)
	// Points are round(similarity * 70) at similarity >= 0.6.
	assert.GreaterOrEqual(t, m.Points, 42)
	assert.LessOrEqual(t, m.Points, 70)
}

func TestFindBestMatch_PartialContainment(t *testing.T) {
	m := FindBestMatch("react native", []string{"native"})

	require.NotNil(t, m)
	assert.Equal(t, types.TierPartial, m.Tier)
	assert.Equal(t, 40, m.Points)
}

func TestFindBestMatch_PartialRequiresLength(t *testing.T) {
	// Both strings must be longer than 3 characters for containment.
	m := FindBestMatch("go", []string{"django"})
	if m != nil {
		assert.NotEqual(t, types.TierPartial, m.Tier)
	}
}

func TestFindBestMatch_TechnologyFamily(t *testing.T) {
	m := FindBestMatch("kotlin", []string{"groovy"})

	require.NotNil(t, m)
	assert.Equal(t, types.TierFamily, m.Tier)
	assert.Equal(t, 30, m.Points)
}

func TestFindBestMatch_NoTierApplies(t *testing.T) {
	m := FindBestMatch("java", []string{"photoshop"})
	assert.Nil(t, m)
}

func TestFindBestMatch_HighestPointsAcrossCandidates(t *testing.T) {
	// mariadb is a synonym (95), sql server only shares the database
	// category (80); the synonym must win.
	m := FindBestMatch("mysql", []string{"sql server", "mariadb"})

	require.NotNil(t, m)
	assert.Equal(t, types.TierSynonym, m.Tier)
	assert.Equal(t, "mariadb", m.CandidateSkill)
}

func TestFindBestMatch_EmptyInputs(t *testing.T) {
	assert.Nil(t, FindBestMatch("", []string{"java"}))
	assert.Nil(t, FindBestMatch("java", nil))
}

func TestJaroWinkler_IdenticalStrings(t *testing.T) {
	assert.Equal(t, 1.0, jaroWinkler("kubernetes", "kubernetes"))
}

func TestJaroWinkler_CompletelyDifferent(t *testing.T) {
	assert.Equal(t, 0.0, jaroWinkler("xyz", "abc"))
}

func TestJaroWinkler_PrefixBoost(t *testing.T) {
	// Shared prefixes score higher than the same edits elsewhere.
	withPrefix := jaroWinkler("python", "python3")
	assert.Greater(t, withPrefix, 0.9)
}

func TestJaroWinkler_EmptyString(t *testing.T) {
	assert.Equal(t, 0.0, jaroWinkler("", "java"))
	assert.Equal(t, 0.0, jaroWinkler("java", ""))
}
