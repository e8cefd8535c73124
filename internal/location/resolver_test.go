package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_KnownCity(t *testing.T) {
	got := Resolve("Noida")

	assert.Equal(t, "noida", got.City)
	assert.Equal(t, "uttar pradesh", got.State)
	assert.Equal(t, "india", got.Country)
}

func TestResolve_AliasSpelling(t *testing.T) {
	got := Resolve("Bengaluru")

	assert.Equal(t, "bangalore", got.City)
	assert.Equal(t, "karnataka", got.State)
}

func TestResolve_KnownCityWithDecoration(t *testing.T) {
	// Extra qualifiers around a known city must not hide it.
	got := Resolve("Noida, NCR")
	assert.Equal(t, "noida", got.City)

	got = Resolve("Sector 5, Gurugram")
	assert.Equal(t, "gurgaon", got.City)
}

func TestResolve_UnknownSinglePart(t *testing.T) {
	got := Resolve("Shimla")

	assert.Equal(t, "shimla", got.City)
	assert.Equal(t, "", got.State)
	assert.Equal(t, "india", got.Country)
}

func TestResolve_UnknownCityStatePair(t *testing.T) {
	got := Resolve("Shimla, Himachal Pradesh")

	assert.Equal(t, "shimla", got.City)
	assert.Equal(t, "himachal pradesh", got.State)
	assert.Equal(t, "india", got.Country)
}

func TestResolve_ForeignCityWithCountry(t *testing.T) {
	got := Resolve("London, England, UK")

	assert.Equal(t, "london", got.City)
	assert.Equal(t, "england", got.State)
	assert.Equal(t, "uk", got.Country)
}

func TestResolve_EmptyInput(t *testing.T) {
	assert.True(t, Resolve("").IsZero())
	assert.True(t, Resolve("   ").IsZero())
}

func TestNormalizeName_FoldsSeparators(t *testing.T) {
	assert.Equal(t, "navimumbai", normalizeName("Navi Mumbai"))
	assert.Equal(t, "navimumbai", normalizeName("navi-mumbai"))
	assert.Equal(t, "newdelhi", normalizeName("New Delhi"))
}

func TestCanonicalCity_UnknownReturnsFalse(t *testing.T) {
	_, ok := canonicalCity("atlantis")
	assert.False(t, ok)
}
