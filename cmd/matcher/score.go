package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-matcher/internal/engine"
	"github.com/jonathan/talent-matcher/internal/observability"
	"github.com/jonathan/talent-matcher/internal/schemas"
	"github.com/jonathan/talent-matcher/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one candidate against a job requisition",
	Long:  "Computes the full compatibility verdict for a single candidate and prints it as JSON.",
	RunE:  runScore,
}

var (
	scoreRequirement string
	scoreCandidate   string
	scoreVerbose     bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreRequirement, "requirement", "r", "", "Path to input JobRequirement JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreCandidate, "candidate", "c", "", "Path to input Candidate JSON file (required)")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print a formatted result summary")

	if err := scoreCmd.MarkFlagRequired("requirement"); err != nil {
		panic(fmt.Sprintf("failed to mark requirement flag as required: %v", err))
	}
	if err := scoreCmd.MarkFlagRequired("candidate"); err != nil {
		panic(fmt.Sprintf("failed to mark candidate flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	requirement, err := loadRequirement(scoreRequirement)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(scoreCandidate)
	if err != nil {
		return fmt.Errorf("failed to read candidate file %s: %w", scoreCandidate, err)
	}

	if schemaPath := schemas.ResolveSchemaPath("schemas/candidate.schema.json"); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, scoreCandidate); err != nil {
			return fmt.Errorf("candidate file %s: %w", scoreCandidate, err)
		}
	}

	var candidate types.Candidate
	if err := json.Unmarshal(content, &candidate); err != nil {
		return fmt.Errorf("failed to unmarshal candidate JSON: %w", err)
	}

	result, err := engine.ScoreOne(&candidate, requirement)
	if err != nil {
		return fmt.Errorf("scoring failed: %w", err)
	}

	jsonOutput, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal match result to JSON: %w", err)
	}
	_, _ = fmt.Fprintln(os.Stdout, string(jsonOutput))

	if scoreVerbose {
		observability.NewPrinter(os.Stderr).PrintResult(result)
	}

	return nil
}
