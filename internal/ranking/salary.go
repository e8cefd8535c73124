package ranking

import "github.com/jonathan/talent-matcher/internal/types"

// Salary band names.
const (
	SalaryUnknown          = "unknown"
	SalaryPerfect          = "perfect"
	SalaryOverExpectation  = "over-expectation"
	SalaryUnderExpectation = "under-expectation"
)

// ScoreSalary scores the candidate's compensation expectation against the
// job's offered range. Expectation over budget decays the score; coming in
// under budget is rewarded with a capped bonus. Missing figures on either
// side score neutral.
func ScoreSalary(candidate *types.Candidate, requirement *types.JobRequirement) types.SalaryMatch {
	ctc := candidateCTC(candidate)
	sr := requirement.SalaryRange
	if ctc == nil || sr == nil {
		return types.SalaryMatch{Score: 50, Level: SalaryUnknown}
	}

	switch {
	case *ctc >= sr.Min && *ctc <= sr.Max:
		return types.SalaryMatch{Score: 100, Level: SalaryPerfect}
	case *ctc > sr.Max:
		score := 100.0
		if sr.Max > 0 {
			score = 100 - 50*(*ctc-sr.Max)/sr.Max
		} else {
			score = 20
		}
		if score < 20 {
			score = 20
		}
		return types.SalaryMatch{Score: clampRound(score), Level: SalaryOverExpectation}
	default:
		score := 100.0
		if sr.Min > 0 {
			score = 80 + 20*(sr.Min-*ctc)/sr.Min
		}
		if score > 100 {
			score = 100
		}
		return types.SalaryMatch{Score: clampRound(score), Level: SalaryUnderExpectation}
	}
}

// candidateCTC picks the figure to score: the stated expectation, falling
// back to current compensation when no expectation is given.
func candidateCTC(c *types.Candidate) *float64 {
	if c.ExpectedCTC != nil {
		return c.ExpectedCTC
	}
	return c.CurrentCTC
}
