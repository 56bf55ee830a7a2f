// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/bullet-arbiter/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// maxDetailsToShow is the default number of evidence lines to display per stage
	maxDetailsToShow = 3
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

	for _, line := range strings.Split(content, "\n") {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAnalysis outputs a human-readable per-stage breakdown of a content analysis.
func (p *Printer) PrintAnalysis(title string, analysis *types.ContentAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	for _, stage := range types.Stages {
		sb.WriteString(fmt.Sprintf("%-18s %3d\n", stage.Label()+":", analysis.StageScore(stage)))
		details := stageDetails(analysis, stage)
		count := min(len(details), maxDetailsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", details[i]))
		}
		if len(details) > maxDetailsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(details)-maxDetailsToShow))
		}
	}
	sb.WriteString(fmt.Sprintf("\nTotal score: %d", analysis.TotalScore))

	p.printBox(title, sb.String())
}

// PrintDecision outputs a summary of a single arbitration decision.
func (p *Printer) PrintDecision(index int, decision *types.ArbiterDecision) {
	if decision == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Winner:      %s\n", decision.Winner))
	sb.WriteString(fmt.Sprintf("Score delta: %+d\n", decision.ScoreDelta))
	sb.WriteString(fmt.Sprintf("Kept text:   %s\n", decision.Bullet))

	if len(decision.RejectionReasons) > 0 {
		sb.WriteString("\nStage regressions:\n")
		for _, drop := range decision.RejectionReasons {
			sb.WriteString(fmt.Sprintf("  • %s dropped %d (%d → %d)\n",
				drop.StageName, drop.Drop, drop.OriginalScore, drop.TailoredScore))
		}
	}

	p.printBox(fmt.Sprintf("Bullet %d", index+1), sb.String())
}

// PrintResult outputs the batch-level aggregation summary.
func (p *Printer) PrintResult(result *types.ArbiterResult) {
	if result == nil {
		return
	}

	tailoredWins := 0
	for i := range result.Decisions {
		if result.Decisions[i].Winner == types.WinnerTailored {
			tailoredWins++
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Bullets arbitrated:     %d\n", len(result.Decisions)))
	sb.WriteString(fmt.Sprintf("Tailored versions kept: %d\n", tailoredWins))
	sb.WriteString(fmt.Sprintf("Original total score:   %d\n", result.OriginalTotalScore))
	sb.WriteString(fmt.Sprintf("Optimized total score:  %d\n", result.OptimizedTotalScore))
	sb.WriteString(fmt.Sprintf("Methodology preserved:  %t", result.MethodologyPreserved))

	p.printBox("Arbitration Summary", sb.String())
}

// stageDetails returns the evidence list recorded for the given stage.
func stageDetails(analysis *types.ContentAnalysis, stage types.Stage) []string {
	switch stage {
	case types.StageIndicators:
		return analysis.Indicators.Details
	case types.StageATS:
		return analysis.ATS.Details
	case types.StageRecruiterUX:
		return analysis.RecruiterUX.Details
	case types.StagePMIntelligence:
		return analysis.PMIntelligence.Details
	default:
		return nil
	}
}
