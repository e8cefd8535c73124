// Package main implements the matcher CLI for candidate-requisition matching.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-matcher/internal/config"
	"github.com/jonathan/talent-matcher/internal/engine"
	"github.com/jonathan/talent-matcher/internal/observability"
	"github.com/jonathan/talent-matcher/internal/schemas"
	"github.com/jonathan/talent-matcher/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank a candidate pool against a job requisition",
	Long:  "Scores every candidate in the pool against the requisition, filters by minimum score, and writes the ranked results as JSON.",
	RunE:  runMatch,
}

var (
	matchRequirement string
	matchCandidates  string
	matchOutput      string
	matchConfig      string
	matchMinScore    int
	matchMaxResults  int
	matchVerbose     bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchRequirement, "requirement", "r", "", "Path to input JobRequirement JSON file (required)")
	matchCmd.Flags().StringVarP(&matchCandidates, "candidates", "c", "", "Path to input candidates JSON file, single object or array (required)")
	matchCmd.Flags().StringVarP(&matchOutput, "out", "o", "", "Path to output match results JSON file (required)")
	matchCmd.Flags().StringVar(&matchConfig, "config", "", "Path to optional JSON config file")
	matchCmd.Flags().IntVar(&matchMinScore, "min-score", 0, "Drop results scoring below this value")
	matchCmd.Flags().IntVar(&matchMaxResults, "max-results", engine.DefaultMaxResults, "Maximum number of results to keep")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print requisition and result summaries")

	if err := matchCmd.MarkFlagRequired("requirement"); err != nil {
		panic(fmt.Sprintf("failed to mark requirement flag as required: %v", err))
	}
	if err := matchCmd.MarkFlagRequired("candidates"); err != nil {
		panic(fmt.Sprintf("failed to mark candidates flag as required: %v", err))
	}
	if err := matchCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(matchCmd)
}

// matchOutputDoc is the on-disk shape of a batch run.
type matchOutputDoc struct {
	Results     []types.MatchResult      `json:"results"`
	Skipped     []types.SkippedCandidate `json:"skipped,omitempty"`
	GeneratedAt time.Time                `json:"generated_at"`
}

func runMatch(_ *cobra.Command, _ []string) error {
	opts := engine.Options{MinScore: matchMinScore, MaxResults: matchMaxResults}

	// Config file values apply where flags were left at defaults.
	if matchConfig != "" {
		cfg, err := config.LoadConfig(matchConfig)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if opts.MinScore == 0 && cfg.MinScore != 0 {
			opts.MinScore = cfg.MinScore
		}
		if opts.MaxResults == engine.DefaultMaxResults && cfg.MaxResults != 0 {
			opts.MaxResults = cfg.MaxResults
		}
		opts.Concurrency = cfg.Concurrency
		if cfg.Verbose {
			matchVerbose = true
		}
	}

	requirement, err := loadRequirement(matchRequirement)
	if err != nil {
		return err
	}

	candidates, err := loadCandidates(matchCandidates)
	if err != nil {
		return err
	}

	set, err := engine.MatchAll(requirement, candidates, opts)
	if err != nil {
		return fmt.Errorf("matching failed: %w", err)
	}

	doc := matchOutputDoc{
		Results:     set.Results,
		Skipped:     set.Skipped,
		GeneratedAt: time.Now().UTC(),
	}
	jsonOutput, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal match results to JSON: %w", err)
	}

	outputDir := filepath.Dir(matchOutput)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(matchOutput, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write match results to output file %s: %w", matchOutput, err)
	}

	// Validate output against schema (optional - non-fatal)
	schemaPath := schemas.ResolveSchemaPath("schemas/match_results.schema.json")
	if schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, matchOutput); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Output validation failed: %v\n", err)
		}
	}

	if matchVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintRequirement(requirement)
		printer.PrintMatchSet(set)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Ranked %d of %d candidates to %s\n", len(set.Results), len(candidates), matchOutput)

	return nil
}

// loadRequirement reads and schema-checks a JobRequirement JSON file.
func loadRequirement(path string) (*types.JobRequirement, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read requirement file %s: %w", path, err)
	}

	if schemaPath := schemas.ResolveSchemaPath("schemas/job_requirement.schema.json"); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			return nil, fmt.Errorf("requirement file %s: %w", path, err)
		}
	}

	var requirement types.JobRequirement
	if err := json.Unmarshal(content, &requirement); err != nil {
		return nil, fmt.Errorf("failed to unmarshal requirement JSON: %w", err)
	}
	return &requirement, nil
}

// loadCandidates reads a candidates JSON file holding either a single
// candidate object or an array of them.
func loadCandidates(path string) ([]types.Candidate, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidates file %s: %w", path, err)
	}

	var candidates []types.Candidate
	if err := json.Unmarshal(content, &candidates); err == nil {
		return candidates, nil
	}

	var single types.Candidate
	if err := json.Unmarshal(content, &single); err != nil {
		return nil, fmt.Errorf("failed to unmarshal candidates JSON (expected object or array): %w", err)
	}
	return []types.Candidate{single}, nil
}
