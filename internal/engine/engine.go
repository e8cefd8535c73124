// Package engine exposes the two matching entry points: scoring one candidate
// against a requisition and ranking a whole candidate pool.
package engine

import (
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/talent-matcher/internal/ranking"
	"github.com/jonathan/talent-matcher/internal/types"
)

const (
	// DefaultMaxResults bounds a batch result when the caller does not.
	DefaultMaxResults = 50
	// defaultConcurrency bounds the worker pool for batch evaluation.
	defaultConcurrency = 8
)

// Options control batch matching.
type Options struct {
	// MinScore drops results scoring below it. Zero keeps everything.
	MinScore int
	// MaxResults truncates the ranked list. Zero means DefaultMaxResults.
	MaxResults int
	// Concurrency bounds parallel candidate evaluation. Zero picks a default.
	Concurrency int
}

// Validate rejects option values that would silently produce nothing.
func (o Options) Validate() error {
	if o.MinScore < 0 || o.MinScore > 100 {
		return &types.ValidationError{Field: "min_score", Message: "must be in [0,100]"}
	}
	if o.MaxResults < 0 {
		return &types.ValidationError{Field: "max_results", Message: "must be non-negative"}
	}
	if o.Concurrency < 0 {
		return &types.ValidationError{Field: "concurrency", Message: "must be non-negative"}
	}
	return nil
}

// ScoreOne computes the full compatibility verdict for one candidate.
// Both records are validated first; a malformed record surfaces a
// *types.ValidationError instead of a nonsense score.
func ScoreOne(candidate *types.Candidate, requirement *types.JobRequirement) (*types.MatchResult, error) {
	if err := requirement.Validate(); err != nil {
		return nil, fmt.Errorf("invalid requirement: %w", err)
	}
	result, err := scoreValidated(candidate, requirement)
	if err != nil {
		return nil, fmt.Errorf("invalid candidate %s: %w", candidate.ID, err)
	}
	return result, nil
}

// MatchAll scores every candidate in the pool against the requisition,
// filters by minimum score, sorts descending (stable, so equal scores keep
// their input order), and truncates. Candidate evaluations are independent
// and run concurrently; malformed candidates are skipped and reported in
// the Skipped list, never retried.
func MatchAll(requirement *types.JobRequirement, candidates []types.Candidate, opts Options) (*types.MatchSet, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := requirement.Validate(); err != nil {
		return nil, fmt.Errorf("invalid requirement: %w", err)
	}

	maxResults := opts.MaxResults
	if maxResults == 0 {
		maxResults = DefaultMaxResults
	}
	concurrency := opts.Concurrency
	if concurrency == 0 {
		concurrency = defaultConcurrency
	}

	type slot struct {
		result *types.MatchResult
		err    error
	}
	slots := make([]slot, len(candidates))

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i := range candidates {
		i := i
		g.Go(func() error {
			r, err := scoreValidated(&candidates[i], requirement)
			slots[i] = slot{result: r, err: err}
			return nil
		})
	}
	// Workers never return errors; per-candidate failures land in slots.
	_ = g.Wait()

	set := &types.MatchSet{}
	for i := range slots {
		if slots[i].err != nil {
			set.Skipped = append(set.Skipped, types.SkippedCandidate{
				CandidateID: candidates[i].ID,
				Reason:      slots[i].err.Error(),
			})
			continue
		}
		if slots[i].result.OverallScore >= opts.MinScore {
			set.Results = append(set.Results, *slots[i].result)
		}
	}

	sort.SliceStable(set.Results, func(i, j int) bool {
		return set.Results[i].OverallScore > set.Results[j].OverallScore
	})
	if len(set.Results) > maxResults {
		set.Results = set.Results[:maxResults]
	}
	return set, nil
}

// scoreValidated is ScoreOne minus the requirement re-validation, which
// MatchAll performs once for the whole batch.
func scoreValidated(candidate *types.Candidate, requirement *types.JobRequirement) (*types.MatchResult, error) {
	if err := candidate.Validate(); err != nil {
		return nil, err
	}
	composite := ranking.ScoreComposite(candidate, requirement)
	result := &types.MatchResult{
		CandidateID:   candidate.ID,
		CandidateName: candidate.Name,
		OverallScore:  composite.Overall,
		OverallFit:    composite.Fit,
		Skills:        composite.Skills,
		Experience:    composite.Experience,
		Location:      composite.Location,
		Education:     composite.Education,
		Salary:        composite.Salary,
	}
	result.RelevanceExplanation = explain(result)
	return result, nil
}
