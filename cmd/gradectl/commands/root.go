// Package commands provides the complete command tree implementation for gradectl.
//
// This package defines the hierarchical command structure for the GradeFlow CLI
// tool, implementing a resource-based command architecture similar to kubectl.
// Commands are organized into logical groups that match the evaluation service's
// capabilities.
//
// COMMAND STRUCTURE:
//   - evaluate: Essay submission and batch evaluation (files or pasted text)
//   - report: Evaluation report retrieval (get, zip)
//   - rubric: Rubric utilities (extract)
//   - key: API key management (verify)
//
// All commands follow consistent patterns with standardized flag handling, error
// messages, and output formatting for reliable evaluation workflows.
package commands

import (
	"github.com/gradeflow-dev/gradeflow/internal/config"
	"github.com/spf13/cobra"
)

// Root command
var RootCmd = &cobra.Command{
	Use:   "gradectl",
	Short: "CLI tool for batch essay evaluation through the GradeFlow grading service",
	Long: `GradeFlow CLI (gradectl) is a command-line tool for submitting student
essays to an AI-powered evaluation service and retrieving graded reports.

Similar to kubectl for Kubernetes, gradectl lets you submit essay files or
pasted text, track per-essay results across rate-limited batches, and
download the generated evaluation reports.`,
	SilenceUsage: true,
	Example: `  # Evaluate essay files
  gradectl evaluate essay1.txt essay2.docx

  # Evaluate a whole class pasted as one blob (split on Student Name: markers)
  cat class_submissions.txt | gradectl evaluate --stdin

  # Evaluate with an uploaded rubric and strict grading
  gradectl evaluate --rubric-file=rubric.pdf --generosity=strict essay.txt

  # Evaluate and download every report afterwards
  gradectl evaluate --download --reports-dir=./reports essay1.txt essay2.txt

  # Download one report from an earlier session
  gradectl report get 3f2a9c1e "Alice_Evaluation_Report.pdf"

  # Download a whole session as a ZIP archive
  gradectl report zip 3f2a9c1e

  # Connect to a remote evaluation service
  gradectl --api-url=https://grader.example.com evaluate essay.txt

  # Output in JSON format
  gradectl --output=json evaluate essay.txt
  gradectl -o json key verify`,
}

// SetupCommands initializes all commands and their relationships
func SetupCommands() {
	// Add all top-level commands to root
	RootCmd.AddCommand(evaluateCmd)
	RootCmd.AddCommand(reportCmd)
	RootCmd.AddCommand(rubricCmd)
	RootCmd.AddCommand(keyCmd)
}

// SetupGlobalFlags configures all global persistent flags
func SetupGlobalFlags(rootCmd *cobra.Command, apiURLPtr *string, apiKeyPtr *string,
	logLevelPtr *string, timeoutPtr *int, verbosePtr *bool, outputPtr *string) {
	rootCmd.PersistentFlags().StringVar(apiURLPtr, "api-url", "",
		"Evaluation service base URL (defaults to $GRADEFLOW_API_URL or http://127.0.0.1:8000)")
	rootCmd.PersistentFlags().StringVar(apiKeyPtr, "api-key", "",
		"API key for the evaluation service (defaults to $GRADEFLOW_API_KEY)")
	rootCmd.PersistentFlags().StringVar(logLevelPtr, "log-level", config.DefaultLogLevel,
		"Log level: DEBUG, INFO, WARN, ERROR")
	rootCmd.PersistentFlags().IntVar(timeoutPtr, "timeout", config.DefaultTimeout,
		"Request timeout in seconds")
	rootCmd.PersistentFlags().BoolVarP(verbosePtr, "verbose", "v", false,
		"Show verbose output")
	rootCmd.PersistentFlags().StringVarP(outputPtr, "output", "o", "table",
		"Output format: table, json")
}
