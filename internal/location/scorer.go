package location

import (
	"github.com/jonathan/talent-matcher/internal/types"
)

// Relationship tiers between a candidate's location and a job's location.
const (
	LevelExactCity           = "exact-city"
	LevelMetroArea           = "metro-area"
	LevelSameState           = "same-state"
	LevelPreferred           = "preferred"
	LevelCandidatePreference = "candidate-preference"
	LevelRemoteFriendly      = "remote-friendly"
	LevelFlexible            = "flexible"
	LevelNearby              = "nearby"
	LevelSameCountry         = "same-country"
	LevelNoMatch             = "no-match"
)

// Score classifies the relationship between the candidate's current location
// and the job's location into one tier and scores it. Rules are evaluated in
// priority order; the first that applies wins. A no-match implies the
// candidate would have to relocate.
func Score(candidate *types.Candidate, requirement *types.JobRequirement) types.LocationMatch {
	cand := Resolve(candidate.CurrentLocation)
	job := Resolve(requirement.JobLocation)

	if cand.City != "" && job.City != "" {
		if cand.City == job.City {
			return types.LocationMatch{Score: 100, Level: LevelExactCity}
		}
		if sameMetro(cand.City, job.City) {
			return types.LocationMatch{Score: 95, Level: LevelMetroArea}
		}
		if cand.State != "" && cand.State == job.State {
			return types.LocationMatch{Score: 85, Level: LevelSameState}
		}
	}

	if cand.City != "" && containsCity(requirement.PreferredLocations, cand.City) {
		return types.LocationMatch{Score: 90, Level: LevelPreferred}
	}
	if job.City != "" && containsCity(candidate.PreferredLocations, job.City) {
		return types.LocationMatch{Score: 85, Level: LevelCandidatePreference}
	}

	if requirement.IsRemoteFriendly() {
		return types.LocationMatch{Score: 70, Level: LevelRemoteFriendly}
	}
	if requirement.RemoteWork == types.RemoteFlexible {
		return types.LocationMatch{Score: 50, Level: LevelFlexible}
	}

	if cand.City != "" && job.City != "" {
		if dist, ok := nearbyDistance(cand.City, job.City); ok {
			score := 80 - dist*5
			if score < 40 {
				score = 40
			}
			return types.LocationMatch{Score: score, Level: LevelNearby}
		}
		if cand.Country != "" && cand.Country == job.Country {
			return types.LocationMatch{Score: 30, Level: LevelSameCountry}
		}
	}

	return types.LocationMatch{Score: 0, Level: LevelNoMatch}
}

// containsCity reports whether any entry in a preferred-location list
// resolves to the given gazetteer city.
func containsCity(locations []string, city string) bool {
	for _, loc := range locations {
		if resolved, ok := canonicalCity(loc); ok {
			if resolved == city {
				return true
			}
			continue
		}
		if normalizeName(loc) == normalizeName(city) {
			return true
		}
	}
	return false
}
