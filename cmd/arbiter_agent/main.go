// Package main provides the entry point for the bullet arbiter CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "arbiter_agent",
	Short: "Resume bullet arbitration tool",
	Long:  "Bullet Arbiter compares original resume bullets against tailored rewrites, scores both through the four-stage content analysis pipeline, and keeps whichever version wins without ever discarding a quantifiable achievement.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
