package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func maxPtr(v float64) *float64 { return &v }

func TestIsRemoteFriendly_Policies(t *testing.T) {
	assert.True(t, (&JobRequirement{RemoteWork: RemoteRemote}).IsRemoteFriendly())
	assert.True(t, (&JobRequirement{RemoteWork: RemoteHybrid}).IsRemoteFriendly())
	assert.False(t, (&JobRequirement{RemoteWork: RemoteOnSite}).IsRemoteFriendly())
	assert.False(t, (&JobRequirement{RemoteWork: RemoteFlexible}).IsRemoteFriendly())
	assert.False(t, (&JobRequirement{}).IsRemoteFriendly())
}

func TestRequirementValidate_WellFormed(t *testing.T) {
	r := &JobRequirement{
		Title:              "Backend Developer",
		RequiredSkills:     []string{"go"},
		ExperienceRequired: ExperienceBand{MinYears: 2, MaxYears: maxPtr(5)},
		SalaryRange:        &SalaryRange{Min: 10, Max: 20},
	}
	assert.NoError(t, r.Validate())
}

func TestRequirementValidate_InvertedExperienceBand(t *testing.T) {
	r := &JobRequirement{
		ExperienceRequired: ExperienceBand{MinYears: 6, MaxYears: maxPtr(3)},
	}

	err := r.Validate()

	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "experience_required", verr.Field)
}

func TestRequirementValidate_InvertedSalaryRange(t *testing.T) {
	r := &JobRequirement{
		SalaryRange: &SalaryRange{Min: 20, Max: 10},
	}

	err := r.Validate()

	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "salary_range", verr.Field)
}

func TestRequirementValidate_OpenEndedBand(t *testing.T) {
	r := &JobRequirement{
		ExperienceRequired: ExperienceBand{MinYears: 5},
	}
	assert.NoError(t, r.Validate())
}
