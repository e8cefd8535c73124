package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// RemoteWork describes a job's remote-work policy.
type RemoteWork string

const (
	RemoteOnSite   RemoteWork = "on-site"
	RemoteRemote   RemoteWork = "remote"
	RemoteHybrid   RemoteWork = "hybrid"
	RemoteFlexible RemoteWork = "flexible"
)

// ExperienceBand represents the required experience range in years.
// MaxYears is nil when the requirement is open-ended above MinYears.
type ExperienceBand struct {
	MinYears float64  `json:"min_years" validate:"min=0"`
	MaxYears *float64 `json:"max_years,omitempty"`
}

// EducationRequirement represents one required degree/specialization pair.
type EducationRequirement struct {
	Degree         string `json:"degree"`
	Specialization string `json:"specialization,omitempty"`
	IsMandatory    bool   `json:"is_mandatory,omitempty"`
}

// SalaryRange represents the compensation a job offers.
type SalaryRange struct {
	Min      float64 `json:"min" validate:"min=0"`
	Max      float64 `json:"max" validate:"min=0"`
	Currency string  `json:"currency,omitempty"`
}

// JobRequirement represents a structured job requisition that drives matching.
type JobRequirement struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title,omitempty"`

	RequiredSkills  []string `json:"required_skills"`
	PreferredSkills []string `json:"preferred_skills,omitempty"`
	Technologies    []string `json:"technologies,omitempty"`

	ExperienceRequired    ExperienceBand         `json:"experience_required"`
	JobLocation           string                 `json:"job_location,omitempty"`
	PreferredLocations    []string               `json:"preferred_locations,omitempty"`
	RemoteWork            RemoteWork             `json:"remote_work,omitempty"`
	EducationRequirements []EducationRequirement `json:"education_requirements,omitempty"`
	SalaryRange           *SalaryRange           `json:"salary_range,omitempty"`
}

// IsRemoteFriendly reports whether the job can be done away from its location.
func (r *JobRequirement) IsRemoteFriendly() bool {
	return r.RemoteWork == RemoteRemote || r.RemoteWork == RemoteHybrid
}

// Validate checks the requisition for a non-well-formed experience band or
// salary range. A requisition that fails here must not be scored.
func (r *JobRequirement) Validate() error {
	if err := validator.New().Struct(r); err != nil {
		return &ValidationError{Field: "experience_required", Message: err.Error()}
	}
	if max := r.ExperienceRequired.MaxYears; max != nil && *max < r.ExperienceRequired.MinYears {
		return &ValidationError{Field: "experience_required", Message: "max_years is below min_years"}
	}
	if sr := r.SalaryRange; sr != nil && sr.Max < sr.Min {
		return &ValidationError{Field: "salary_range", Message: "max is below min"}
	}
	return nil
}
