package location

import (
	"testing"

	"github.com/jonathan/talent-matcher/internal/types"
	"github.com/stretchr/testify/assert"
)

func locMatch(t *testing.T, candidateLoc, jobLoc string, remote types.RemoteWork) types.LocationMatch {
	t.Helper()
	candidate := &types.Candidate{CurrentLocation: candidateLoc}
	requirement := &types.JobRequirement{JobLocation: jobLoc, RemoteWork: remote}
	return Score(candidate, requirement)
}

func TestScore_ExactCity(t *testing.T) {
	got := locMatch(t, "Noida", "Noida", types.RemoteOnSite)

	assert.Equal(t, 100, got.Score)
	assert.Equal(t, LevelExactCity, got.Level)
}

func TestScore_ExactCityThroughAlias(t *testing.T) {
	got := locMatch(t, "Bengaluru", "Bangalore", types.RemoteOnSite)

	assert.Equal(t, 100, got.Score)
	assert.Equal(t, LevelExactCity, got.Level)
}

func TestScore_MetroArea(t *testing.T) {
	got := locMatch(t, "Gurgaon", "Noida", types.RemoteOnSite)

	assert.Equal(t, 95, got.Score)
	assert.Equal(t, LevelMetroArea, got.Level)
}

func TestScore_SameState(t *testing.T) {
	got := locMatch(t, "Lucknow", "Noida", types.RemoteOnSite)

	assert.Equal(t, 85, got.Score)
	assert.Equal(t, LevelSameState, got.Level)
}

func TestScore_JobPrefersCandidateCity(t *testing.T) {
	candidate := &types.Candidate{CurrentLocation: "Chennai"}
	requirement := &types.JobRequirement{
		JobLocation:        "Noida",
		RemoteWork:         types.RemoteOnSite,
		PreferredLocations: []string{"Chennai", "Hyderabad"},
	}

	got := Score(candidate, requirement)

	assert.Equal(t, 90, got.Score)
	assert.Equal(t, LevelPreferred, got.Level)
}

func TestScore_CandidatePrefersJobCity(t *testing.T) {
	candidate := &types.Candidate{
		CurrentLocation:    "Chennai",
		PreferredLocations: []string{"Noida"},
	}
	requirement := &types.JobRequirement{JobLocation: "Noida", RemoteWork: types.RemoteOnSite}

	got := Score(candidate, requirement)

	assert.Equal(t, 85, got.Score)
	assert.Equal(t, LevelCandidatePreference, got.Level)
}

func TestScore_RemoteFriendlyIgnoresGeography(t *testing.T) {
	for _, policy := range []types.RemoteWork{types.RemoteRemote, types.RemoteHybrid} {
		got := locMatch(t, "Chennai", "Noida", policy)

		assert.Equal(t, 70, got.Score)
		assert.Equal(t, LevelRemoteFriendly, got.Level)
	}
}

func TestScore_FlexiblePolicy(t *testing.T) {
	got := locMatch(t, "Chennai", "Noida", types.RemoteFlexible)

	assert.Equal(t, 50, got.Score)
	assert.Equal(t, LevelFlexible, got.Level)
}

func TestScore_NearbyCrossState(t *testing.T) {
	got := locMatch(t, "Jaipur", "Delhi", types.RemoteOnSite)

	// 80 minus 5 per travel unit at distance 5.
	assert.Equal(t, 55, got.Score)
	assert.Equal(t, LevelNearby, got.Level)
}

func TestScore_SameCountryFallback(t *testing.T) {
	got := locMatch(t, "Chennai", "Noida", types.RemoteOnSite)

	assert.Equal(t, 30, got.Score)
	assert.Equal(t, LevelSameCountry, got.Level)
}

func TestScore_ForeignCandidateNoMatch(t *testing.T) {
	got := locMatch(t, "London, England, UK", "Noida", types.RemoteOnSite)

	assert.Equal(t, 0, got.Score)
	assert.Equal(t, LevelNoMatch, got.Level)
}

func TestScore_ExactCityBeatsRemotePolicy(t *testing.T) {
	// Geography tiers outrank the remote-friendly floor when they apply.
	got := locMatch(t, "Noida", "Noida", types.RemoteRemote)

	assert.Equal(t, 100, got.Score)
	assert.Equal(t, LevelExactCity, got.Level)
}

func TestScore_TierOrdering(t *testing.T) {
	exact := locMatch(t, "Noida", "Noida", types.RemoteOnSite)
	metro := locMatch(t, "Gurgaon", "Noida", types.RemoteOnSite)
	state := locMatch(t, "Lucknow", "Noida", types.RemoteOnSite)
	nearby := locMatch(t, "Jaipur", "Delhi", types.RemoteOnSite)
	country := locMatch(t, "Chennai", "Noida", types.RemoteOnSite)

	assert.Greater(t, exact.Score, metro.Score)
	assert.Greater(t, metro.Score, state.Score)
	assert.Greater(t, state.Score, nearby.Score)
	assert.Greater(t, nearby.Score, country.Score)
}
