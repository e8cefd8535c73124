// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/talent-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRequirement outputs a human-readable summary of the requisition being matched.
func (p *Printer) PrintRequirement(req *types.JobRequirement) {
	var sb strings.Builder

	if req.Title != "" {
		sb.WriteString(fmt.Sprintf("Title: %s\n", req.Title))
	}
	sb.WriteString(fmt.Sprintf("Required skills: %s\n", joinCapped(req.RequiredSkills)))
	if len(req.PreferredSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Preferred skills: %s\n", joinCapped(req.PreferredSkills)))
	}
	if len(req.Technologies) > 0 {
		sb.WriteString(fmt.Sprintf("Technologies: %s\n", joinCapped(req.Technologies)))
	}
	band := req.ExperienceRequired
	if band.MaxYears != nil {
		sb.WriteString(fmt.Sprintf("Experience: %.1f-%.1f years\n", band.MinYears, *band.MaxYears))
	} else {
		sb.WriteString(fmt.Sprintf("Experience: %.1f+ years\n", band.MinYears))
	}
	if req.JobLocation != "" {
		sb.WriteString(fmt.Sprintf("Location: %s", req.JobLocation))
		if req.RemoteWork != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", req.RemoteWork))
		}
		sb.WriteString("\n")
	}

	p.printBox("JOB REQUIREMENT", strings.TrimRight(sb.String(), "\n"))
}

// PrintMatchSet outputs the top results of a batch run, one line per candidate,
// plus any skipped candidates.
func (p *Printer) PrintMatchSet(set *types.MatchSet) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Results: %d", len(set.Results)))
	if len(set.Skipped) > 0 {
		sb.WriteString(fmt.Sprintf(" (skipped %d)", len(set.Skipped)))
	}
	sb.WriteString("\n")

	for i, r := range set.Results {
		if i == maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more\n", len(set.Results)-maxItemsToShow))
			break
		}
		name := r.CandidateName
		if name == "" {
			name = r.CandidateID.String()
		}
		sb.WriteString(fmt.Sprintf("%d. %s  %d/100 (%s)\n", i+1, name, r.OverallScore, r.OverallFit))
	}

	for _, s := range set.Skipped {
		sb.WriteString(fmt.Sprintf("skipped %s: %s\n", s.CandidateID, s.Reason))
	}

	p.printBox("MATCH RESULTS", strings.TrimRight(sb.String(), "\n"))
}

// PrintResult outputs one candidate's full verdict with sub-scores.
func (p *Printer) PrintResult(r *types.MatchResult) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall: %d/100 (%s)\n", r.OverallScore, r.OverallFit))
	sb.WriteString(fmt.Sprintf("Skills: %d (%d/%d required)\n", r.Skills.Score, r.Skills.RequiredMatched, r.Skills.RequiredTotal))
	sb.WriteString(fmt.Sprintf("Experience: %d (%s)\n", r.Experience.Score, r.Experience.Level))
	sb.WriteString(fmt.Sprintf("Location: %d (%s)\n", r.Location.Score, r.Location.Level))
	sb.WriteString(fmt.Sprintf("Education: %d\n", r.Education.Score))
	sb.WriteString(fmt.Sprintf("Salary: %d (%s)\n", r.Salary.Score, r.Salary.Level))

	p.printBox("MATCH RESULT", strings.TrimRight(sb.String(), "\n"))
}

// joinCapped joins list items, truncating long lists for display.
func joinCapped(items []string) string {
	if len(items) <= maxItemsToShow {
		return strings.Join(items, ", ")
	}
	return strings.Join(items[:maxItemsToShow], ", ") + fmt.Sprintf(" (+%d more)", len(items)-maxItemsToShow)
}
