package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/bullet-arbiter/internal/analysis"
	"github.com/jonathan/bullet-arbiter/internal/observability"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [bullet text]",
	Short: "Analyze a single bullet through the four-stage pipeline",
	Long:  "Runs the content analyzer on a single bullet and prints the per-stage scores with their supporting evidence. Useful for calibrating rewrites before arbitration.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAnalyze,
}

var (
	analyzeRole string
	analyzeJSON bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeRole, "role", "r", "", "Target job title used to select the scoring weight profile")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Emit the ContentAnalysis as JSON instead of the formatted breakdown")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	result := analysis.AnalyzeContent(text, analyzeRole)

	if analyzeJSON {
		jsonOutput, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal analysis to JSON: %w", err)
		}
		_, _ = fmt.Fprintln(os.Stdout, string(jsonOutput))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintAnalysis("Content Analysis", &result)
	return nil
}
