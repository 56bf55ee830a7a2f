package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/bullet-arbiter/internal/arbiter"
	"github.com/jonathan/bullet-arbiter/internal/config"
	"github.com/jonathan/bullet-arbiter/internal/observability"
	"github.com/jonathan/bullet-arbiter/internal/schemas"
	"github.com/jonathan/bullet-arbiter/internal/types"
)

var arbitrateCmd = &cobra.Command{
	Use:   "arbitrate",
	Short: "Arbitrate a batch of original/tailored bullet pairs",
	Long:  "Loads a bullet-pairs JSON document, arbitrates each original/tailored pair through the content analysis pipeline, and writes an ArbiterResult JSON with the chosen bullet set and the batch preservation guarantee.",
	RunE:  runArbitrate,
}

var (
	arbitrateInput          string
	arbitrateOutput         string
	arbitrateRole           string
	arbitrateConfig         string
	arbitrateVerbose        bool
	arbitrateSkipValidation bool
)

func init() {
	arbitrateCmd.Flags().StringVarP(&arbitrateInput, "input", "i", "", "Path to input BulletPairs JSON file (required)")
	arbitrateCmd.Flags().StringVarP(&arbitrateOutput, "out", "o", "", "Path to output ArbiterResult JSON file")
	arbitrateCmd.Flags().StringVarP(&arbitrateRole, "role", "r", "", "Target job title used to select the scoring weight profile")
	arbitrateCmd.Flags().StringVarP(&arbitrateConfig, "config", "c", "", "Path to JSON config file with flag defaults")
	arbitrateCmd.Flags().BoolVarP(&arbitrateVerbose, "verbose", "v", false, "Print per-decision analysis breakdowns")
	arbitrateCmd.Flags().BoolVar(&arbitrateSkipValidation, "skip-validation", false, "Skip JSON Schema validation of the input document")

	rootCmd.AddCommand(arbitrateCmd)
}

func runArbitrate(_ *cobra.Command, _ []string) error {
	// 1. Merge config file defaults under the CLI flags
	if arbitrateConfig != "" {
		cfg, err := config.LoadConfig(arbitrateConfig)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		flags := config.Config{Input: arbitrateInput, Output: arbitrateOutput, RoleTitle: arbitrateRole}
		merged := flags.MergeWithDefaults(*cfg)
		arbitrateInput, arbitrateOutput, arbitrateRole = merged.Input, merged.Output, merged.RoleTitle
	}
	if arbitrateInput == "" {
		return fmt.Errorf("no input file: provide --input or set 'input' in the config file")
	}

	// 2. Load and validate the bullet-pairs document
	content, err := os.ReadFile(arbitrateInput)
	if err != nil {
		return fmt.Errorf("failed to read input file %s: %w", arbitrateInput, err)
	}

	if !arbitrateSkipValidation {
		if err := schemas.ValidateBulletPairs(content); err != nil {
			return fmt.Errorf("input document is not a valid bullet-pairs file: %w", err)
		}
	}

	var pairs types.BulletPairs
	if err := json.Unmarshal(content, &pairs); err != nil {
		return fmt.Errorf("failed to unmarshal bullet pairs JSON: %w", err)
	}

	role := arbitrateRole
	if role == "" {
		role = pairs.RoleTitle
	}

	// 3. Arbitrate
	result := arbiter.ScoreArbiter(pairs.Originals, pairs.Tailored, role)

	// 4. Report
	printer := observability.NewPrinter(os.Stdout)
	if arbitrateVerbose {
		for i := range result.Decisions {
			printer.PrintDecision(i, &result.Decisions[i])
		}
	}
	printer.PrintResult(&result)

	// 5. Write output JSON if requested
	if arbitrateOutput != "" {
		jsonOutput, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal arbitration result to JSON: %w", err)
		}

		outputDir := filepath.Dir(arbitrateOutput)
		if outputDir != "" && outputDir != "." {
			if err := os.MkdirAll(outputDir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
			}
		}

		if err := os.WriteFile(arbitrateOutput, jsonOutput, 0644); err != nil {
			return fmt.Errorf("failed to write arbitration result to %s: %w", arbitrateOutput, err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Wrote %d decisions to %s\n", len(result.Decisions), arbitrateOutput)
	}

	return nil
}
