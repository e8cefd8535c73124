package types

import "github.com/google/uuid"

// MatchTier classifies how a required skill relates to a candidate skill.
type MatchTier string

const (
	TierExact    MatchTier = "exact"
	TierSynonym  MatchTier = "synonym"
	TierCategory MatchTier = "category"
	TierFuzzy    MatchTier = "fuzzy"
	TierPartial  MatchTier = "partial"
	TierFamily   MatchTier = "family"
)

// FitTier classifies the overall compatibility of a candidate.
type FitTier string

const (
	FitExcellent FitTier = "excellent"
	FitGood      FitTier = "good"
	FitAverage   FitTier = "average"
	FitPoor      FitTier = "poor"
)

// SkillMatchDetail records one matched required/preferred skill pair.
// Instances are immutable once produced by the skill scorer.
type SkillMatchDetail struct {
	RequiredSkill  string    `json:"required_skill"`
	CandidateSkill string    `json:"candidate_skill"`
	MatchTier      MatchTier `json:"match_tier"`
	Points         int       `json:"points"`
	IsPreferred    bool      `json:"is_preferred,omitempty"`
	IsTechnology   bool      `json:"is_technology,omitempty"`
}

// SkillScore is the aggregated skill sub-score with per-skill details.
type SkillScore struct {
	Score             int                `json:"score"`
	RequiredMatched   int                `json:"required_matched"`
	RequiredTotal     int                `json:"required_total"`
	PreferredMatched  int                `json:"preferred_matched"`
	TechnologyMatched int                `json:"technology_matched"`
	Details           []SkillMatchDetail `json:"details,omitempty"`
}

// ExperienceMatch is the experience sub-score with its named band.
type ExperienceMatch struct {
	Score int    `json:"score"`
	Level string `json:"level"`
}

// LocationMatch is the location sub-score with its relationship tier.
type LocationMatch struct {
	Score int    `json:"score"`
	Level string `json:"level"`
}

// EducationMatch is the education sub-score.
type EducationMatch struct {
	Score        int  `json:"score"`
	Matched      int  `json:"matched"`
	Total        int  `json:"total"`
	Unrestricted bool `json:"unrestricted,omitempty"`
}

// SalaryMatch is the salary sub-score with its named band.
type SalaryMatch struct {
	Score int    `json:"score"`
	Level string `json:"level"`
}

// MatchResult is the compatibility verdict for one candidate against one
// requisition. Created fresh per scoring call and never mutated afterwards.
type MatchResult struct {
	CandidateID          uuid.UUID       `json:"candidate_id"`
	CandidateName        string          `json:"candidate_name,omitempty"`
	OverallScore         int             `json:"overall_score"`
	OverallFit           FitTier         `json:"overall_fit"`
	Skills               SkillScore      `json:"skills"`
	Experience           ExperienceMatch `json:"experience"`
	Location             LocationMatch   `json:"location"`
	Education            EducationMatch  `json:"education"`
	Salary               SalaryMatch     `json:"salary"`
	RelevanceExplanation string          `json:"relevance_explanation"`
}

// SkippedCandidate reports a candidate that could not be scored in a batch.
type SkippedCandidate struct {
	CandidateID uuid.UUID `json:"candidate_id"`
	Reason      string    `json:"reason"`
}

// MatchSet is the output of a batch matching run: results sorted by overall
// score (descending, ties keep input order) plus any skipped candidates.
type MatchSet struct {
	Results []MatchResult      `json:"results"`
	Skipped []SkippedCandidate `json:"skipped,omitempty"`
}
