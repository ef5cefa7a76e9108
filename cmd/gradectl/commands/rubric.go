// Package commands provides rubric command definitions for gradectl.
//
// This file implements the rubric command tree for working with grading
// rubrics ahead of an evaluate run. Extraction lets a teacher check what
// text the service will actually grade against before committing a batch
// to it.
//
// RUBRIC COMMANDS:
//   - extract: Upload a rubric document and print the extracted text
package commands

import (
	"fmt"

	"github.com/gradeflow-dev/gradeflow/internal/logging"
	"github.com/spf13/cobra"
)

// Rubric command (parent command for rubric operations)
var rubricCmd = &cobra.Command{
	Use:   "rubric",
	Short: "Work with grading rubrics",
	Long: `Commands for working with grading rubrics.

This command group provides operations for inspecting rubric documents
before using them in an evaluate run.`,
}

// Rubric extract command
var rubricExtractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Extract the text of a rubric document",
	Long: `Upload a rubric document to the evaluation service and print the text
it extracts.

Useful for verifying that a PDF rubric converts to the criteria text you
expect before submitting essays against it.`,
	Example: `  # Extract text from a PDF rubric
  gradectl rubric extract rubric.pdf

  # Extract text from a plain-text rubric
  gradectl rubric extract rubric.txt`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			cmd.Help()
			fmt.Println()
			logging.Error("Invalid arguments: expected 1 rubric file, got %d", len(args))
			return fmt.Errorf("requires exactly 1 argument (rubric file)")
		}
		return nil
	},
	// RunE will be set by the main package that imports this
}

// SetupRubricCommands initializes rubric commands and their relationships
func SetupRubricCommands() {
	// Add subcommands to rubric command
	rubricCmd.AddCommand(rubricExtractCmd)
}

// GetRubricCommands returns the rubric command structures for handler assignment
func GetRubricCommands() *cobra.Command {
	return rubricExtractCmd
}
