package ranking

import (
	"testing"

	"github.com/jonathan/talent-matcher/internal/types"
	"github.com/stretchr/testify/assert"
)

func strongRequirement() *types.JobRequirement {
	return &types.JobRequirement{
		Title:              "Backend Developer",
		RequiredSkills:     []string{"java", "spring", "mysql"},
		ExperienceRequired: types.ExperienceBand{MinYears: 3, MaxYears: yearsPtr(6)},
		JobLocation:        "Noida",
		RemoteWork:         types.RemoteOnSite,
		EducationRequirements: []types.EducationRequirement{
			{Degree: "Bachelor", Specialization: "Computer Science"},
		},
	}
}

func strongCandidate() *types.Candidate {
	return &types.Candidate{
		Name:            "Asha Verma",
		Skills:          []string{"Java", "Spring Boot", "MySQL", "Git"},
		Experience:      types.Experience{Years: 4},
		CurrentLocation: "Noida",
		Education: []types.Education{
			{Degree: "B.Tech", Specialization: "Computer Science"},
		},
	}
}

func TestScoreComposite_StrongMatch(t *testing.T) {
	got := ScoreComposite(strongCandidate(), strongRequirement())

	assert.Equal(t, 100, got.Skills.Score)
	assert.Equal(t, 100, got.Experience.Score)
	assert.Equal(t, 100, got.Location.Score)
	assert.Equal(t, 100, got.Education.Score)
	assert.Equal(t, 50, got.Salary.Score)
	assert.Equal(t, 98, got.Overall)
	assert.Equal(t, types.FitExcellent, got.Fit)
}

func TestScoreComposite_SkillGate(t *testing.T) {
	candidate := strongCandidate()
	candidate.Skills = []string{"Photoshop"}

	got := ScoreComposite(candidate, strongRequirement())

	// Weighted base 53 dragged to 37 by the low-skill multiplier.
	assert.Less(t, got.Skills.Score, 60)
	assert.Equal(t, 37, got.Overall)
	assert.Equal(t, types.FitPoor, got.Fit)
}

func TestScoreComposite_ExperienceGate(t *testing.T) {
	candidate := strongCandidate()
	candidate.Experience = types.Experience{Years: 1}
	requirement := strongRequirement()
	requirement.ExperienceRequired = types.ExperienceBand{MinYears: 15}

	got := ScoreComposite(candidate, requirement)

	// Base 78 scaled by 0.80 for the experience shortfall.
	assert.Equal(t, 20, got.Experience.Score)
	assert.Equal(t, 62, got.Overall)
	assert.Equal(t, types.FitAverage, got.Fit)
}

func TestScoreComposite_LocationGateOnSite(t *testing.T) {
	candidate := strongCandidate()
	candidate.CurrentLocation = "Chennai"

	got := ScoreComposite(candidate, strongRequirement())

	// Base 87 scaled by 0.90 for an on-site role far from the candidate.
	assert.Equal(t, 30, got.Location.Score)
	assert.Equal(t, 78, got.Overall)
	assert.Equal(t, types.FitGood, got.Fit)
}

func TestScoreComposite_NoLocationGateWhenRemote(t *testing.T) {
	candidate := strongCandidate()
	candidate.CurrentLocation = "Chennai"
	requirement := strongRequirement()
	requirement.RemoteWork = types.RemoteRemote

	got := ScoreComposite(candidate, requirement)

	assert.Equal(t, 70, got.Location.Score)
	assert.Equal(t, 93, got.Overall)
	assert.Equal(t, types.FitExcellent, got.Fit)
}

func TestScoreComposite_SkillGateTakesPrecedence(t *testing.T) {
	// Both the skill and experience gates apply; only the skill multiplier
	// (the harsher one) fires.
	candidate := strongCandidate()
	candidate.Skills = []string{"Photoshop"}
	candidate.Experience = types.Experience{Years: 1}
	requirement := strongRequirement()
	requirement.ExperienceRequired = types.ExperienceBand{MinYears: 15}

	got := ScoreComposite(candidate, requirement)

	// Base 33 with the 0.70 multiplier, not 0.70*0.80.
	assert.Equal(t, 23, got.Overall)
}

func TestFitFor_Thresholds(t *testing.T) {
	assert.Equal(t, types.FitExcellent, FitFor(85))
	assert.Equal(t, types.FitGood, FitFor(84))
	assert.Equal(t, types.FitGood, FitFor(70))
	assert.Equal(t, types.FitAverage, FitFor(69))
	assert.Equal(t, types.FitAverage, FitFor(55))
	assert.Equal(t, types.FitPoor, FitFor(54))
}
