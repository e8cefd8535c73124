// Package types provides type definitions for structured data used throughout the talent-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Experience represents a candidate's total tenure.
type Experience struct {
	Years  int `json:"years" validate:"min=0"`
	Months int `json:"months" validate:"min=0,max=11"`
}

// DecimalYears converts the tenure to decimal years (months folded in).
func (e Experience) DecimalYears() float64 {
	return float64(e.Years) + float64(e.Months)/12.0
}

// Education represents one degree held by a candidate.
type Education struct {
	Degree         string `json:"degree"`
	Specialization string `json:"specialization,omitempty"`
}

// Candidate represents a structured candidate profile.
// Identity fields are carried through to results but never influence scoring.
type Candidate struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name,omitempty"`
	Email string    `json:"email,omitempty"`

	Skills             []string    `json:"skills"`
	Experience         Experience  `json:"experience"`
	CurrentLocation    string      `json:"current_location,omitempty"`
	PreferredLocations []string    `json:"preferred_locations,omitempty"`
	Education          []Education `json:"education,omitempty"`
	CurrentCTC         *float64    `json:"current_ctc,omitempty"`
	ExpectedCTC        *float64    `json:"expected_ctc,omitempty"`
}

// Validate checks the candidate for fields that would make scoring nonsensical.
// Missing optional fields are fine (they degrade to neutral scores); negative
// tenure is not.
func (c *Candidate) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return &ValidationError{Field: "experience", Message: err.Error()}
	}
	if c.CurrentCTC != nil && *c.CurrentCTC < 0 {
		return &ValidationError{Field: "current_ctc", Message: "must be non-negative"}
	}
	if c.ExpectedCTC != nil && *c.ExpectedCTC < 0 {
		return &ValidationError{Field: "expected_ctc", Message: "must be non-negative"}
	}
	return nil
}
