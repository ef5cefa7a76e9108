// Package main provides the entry point for the GradeFlow CLI tool (gradectl).
//
// This package implements the main executable for the essay evaluation CLI
// that enables teachers to submit student essays to an AI-powered grading
// service. The CLI provides commands for batch essay evaluation, report
// retrieval, rubric inspection, and API key management.
//
// CLI ARCHITECTURE:
// The main package orchestrates the complete CLI system including:
//   - Command Structure: Hierarchical resource-based commands (evaluate, report, rubric, key)
//   - Handler Integration: Command execution with evaluation service communication
//   - Flag Management: Global and command-specific configuration options
//   - Configuration Binding: CLI state management and validation pipeline
//
// COMMAND CATEGORIES:
//   - Evaluate Commands: Essay submission from files or pasted text with batch pacing
//   - Report Commands: Single report and whole-session ZIP archive downloads
//   - Rubric Commands: Rubric document text extraction
//   - Key Commands: API key verification against the service
//
// INITIALIZATION FLOW:
// 1. Command structure setup with hierarchical organization
// 2. Flag configuration for global and command-specific options
// 3. Handler assignment linking commands to service operations
// 4. Configuration validation and CLI state management
// 5. Command execution with proper error handling and exit codes
//
// The CLI follows kubectl-style patterns for intuitive evaluation workflows
// with consistent interfaces, comprehensive help text, and predictable
// rate-limit-friendly batch behavior.
package main

import (
	"os"

	"github.com/gradeflow-dev/gradeflow/cmd/gradectl/commands"
	"github.com/gradeflow-dev/gradeflow/cmd/gradectl/config"
	"github.com/gradeflow-dev/gradeflow/cmd/gradectl/handlers"
)

func init() {
	// Get root command from commands package
	rootCmd := commands.RootCmd

	// Set version and validation
	rootCmd.Version = config.Version
	rootCmd.PersistentPreRunE = config.ValidateGlobalFlags

	// Setup all command structures
	commands.SetupCommands()
	commands.SetupEvaluateCommands()
	commands.SetupReportCommands()
	commands.SetupRubricCommands()
	commands.SetupKeyCommands()

	// Setup global flags
	commands.SetupGlobalFlags(rootCmd, &config.Global.APIURL, &config.Global.APIKey,
		&config.Global.LogLevel, &config.Global.Timeout, &config.Global.Verbose,
		&config.Global.Output)

	// Setup evaluate command flags
	evaluateCmd := commands.GetEvaluateCommand()
	commands.SetupEvaluateFlags(evaluateCmd,
		&config.Evaluate.Text, &config.Evaluate.Stdin,
		&config.Evaluate.RubricFile, &config.Evaluate.RubricID,
		&config.Evaluate.RubricText, &config.Evaluate.Generosity,
		&config.Evaluate.IncludeCriteria, &config.Evaluate.IncludeSuggestions,
		&config.Evaluate.IncludeHighlights, &config.Evaluate.IncludeMiniLessons,
		&config.Evaluate.Download, &config.Evaluate.ReportsDir)

	// Setup report command flags
	reportGetCmd, reportZipCmd := commands.GetReportCommands()
	commands.SetupReportFlags(reportGetCmd, reportZipCmd, &config.Report.Dir)

	// Setup command handlers
	setupCommandHandlers()
}

// setupCommandHandlers assigns RunE functions to commands
func setupCommandHandlers() {
	// Get command references
	evaluateCmd := commands.GetEvaluateCommand()
	reportGetCmd, reportZipCmd := commands.GetReportCommands()
	rubricExtractCmd := commands.GetRubricCommands()
	keyVerifyCmd := commands.GetKeyCommands()

	// Assign handlers
	evaluateCmd.RunE = handlers.HandleEvaluate
	reportGetCmd.RunE = handlers.HandleReportGet
	reportZipCmd.RunE = handlers.HandleReportZip
	rubricExtractCmd.RunE = handlers.HandleRubricExtract
	keyVerifyCmd.RunE = handlers.HandleKeyVerify
}

// main is the main entry point
func main() {
	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
