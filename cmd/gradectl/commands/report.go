// Package commands provides report command definitions for gradectl.
//
// This file implements the report command tree for retrieving evaluation
// reports generated by the grading service. Reports belong to an evaluation
// session and are addressed by session id plus the filename shown in the
// evaluate result table.
//
// REPORT COMMANDS:
//   - get: Download a single report by session id and filename
//   - zip: Download a whole session's reports as one ZIP archive
package commands

import (
	"fmt"

	"github.com/gradeflow-dev/gradeflow/internal/config"
	"github.com/gradeflow-dev/gradeflow/internal/logging"
	"github.com/spf13/cobra"
)

// Report command (parent command for report operations)
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Retrieve evaluation reports",
	Long: `Commands for retrieving evaluation reports from the grading service.

This command group provides operations for downloading individual reports
and whole-session ZIP archives generated by earlier evaluate runs.`,
}

// Report get command
var reportGetCmd = &cobra.Command{
	Use:   "get <session-id> <filename>",
	Short: "Download a single evaluation report",
	Long: `Download one evaluation report from a session.

The session id and report filename are shown in the evaluate result table.
The saved filename is sanitized for filesystem safety; the service-side
name is used for the request as-is.`,
	Example: `  # Download one report
  gradectl report get 3f2a9c1e "Alice_Evaluation_Report.pdf"

  # Download into a specific directory
  gradectl report get 3f2a9c1e "Alice_Evaluation_Report.pdf" --dir=./reports`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			cmd.Help()
			fmt.Println()
			logging.Error("Invalid arguments: expected session id and report filename, got %d arguments", len(args))
			return fmt.Errorf("requires exactly 2 arguments (session id and report filename)")
		}
		return nil
	},
	// RunE will be set by the main package that imports this
}

// Report zip command
var reportZipCmd = &cobra.Command{
	Use:   "zip <session-id>",
	Short: "Download all session reports as a ZIP archive",
	Long: `Download every report of an evaluation session bundled into one ZIP
archive.

The archive is generated by the service on demand and saved locally as
evaluation_reports_<session-id>.zip.`,
	Example: `  # Download a session archive
  gradectl report zip 3f2a9c1e

  # Download into a specific directory
  gradectl report zip 3f2a9c1e --dir=./reports`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			cmd.Help()
			fmt.Println()
			logging.Error("Invalid arguments: expected 1 session id, got %d", len(args))
			return fmt.Errorf("requires exactly 1 argument (session id)")
		}
		return nil
	},
	// RunE will be set by the main package that imports this
}

// SetupReportCommands initializes report commands and their relationships
func SetupReportCommands() {
	// Add subcommands to report command
	reportCmd.AddCommand(reportGetCmd)
	reportCmd.AddCommand(reportZipCmd)
}

// GetReportCommands returns the report command structures for handler assignment
func GetReportCommands() (*cobra.Command, *cobra.Command) {
	return reportGetCmd, reportZipCmd
}

// SetupReportFlags configures flags for report commands
func SetupReportFlags(reportGetCmd, reportZipCmd *cobra.Command, dirPtr *string) {
	reportGetCmd.Flags().StringVar(dirPtr, "dir", config.DefaultReportsDir,
		"Destination directory for the downloaded report")
	reportZipCmd.Flags().StringVar(dirPtr, "dir", config.DefaultReportsDir,
		"Destination directory for the downloaded archive")
}
