// Package commands provides evaluation command definitions for gradectl.
//
// This file implements the evaluate command, the primary entry point for
// submitting essays to the grading service. Essays come from file arguments
// or from one pasted text blob that is segmented into individual essays
// before submission.
//
// EVALUATE COMMAND:
//   - evaluate: Submit essay files or pasted text for batch evaluation
//
// The command supports rubric selection by upload, preset identifier, or
// inline text, report content flags, grading generosity levels, and an
// optional post-run download of every generated report.
package commands

import (
	"github.com/gradeflow-dev/gradeflow/internal/config"
	"github.com/spf13/cobra"
)

// Evaluate command
var evaluateCmd = &cobra.Command{
	Use:   "evaluate [file ...]",
	Short: "Submit essays for evaluation",
	Long: `Submit one or more essays to the evaluation service and display the
graded results.

Essays are supplied either as file arguments (.txt, .docx, or a single .pdf)
or as one pasted text blob via --text or --stdin. Pasted text containing
several essays is split on student name markers before submission.

Large submissions are processed in small sequential batches with pauses in
between to respect the service's rate limits; per-essay failures are reported
in the result table without aborting the rest of the run.`,
	Example: `  # Evaluate essay files
  gradectl evaluate essay1.txt essay2.docx

  # Evaluate one PDF (PDFs must be submitted on their own)
  gradectl evaluate class_scans.pdf

  # Evaluate pasted text from stdin
  cat submissions.txt | gradectl evaluate --stdin

  # Evaluate inline text
  gradectl evaluate --text="Student Name: Alice\nHer essay body..."

  # Use an uploaded rubric file with generous grading
  gradectl evaluate --rubric-file=rubric.pdf --generosity=generous essay.txt

  # Use a preset rubric and include suggestions in reports
  gradectl evaluate --rubric-id=persuasive-grade-8 --include-suggestions essay.txt

  # Download all reports once the run completes
  gradectl evaluate --download --reports-dir=./reports essay1.txt essay2.txt`,
	// Args validated by the handler: file args and --text/--stdin are
	// mutually exclusive, which cobra's builtin validators cannot express
	// RunE will be set by the main package that imports this
}

// SetupEvaluateCommands initializes the evaluate command
func SetupEvaluateCommands() {
	// evaluate is a leaf command; nothing to wire beyond flags and handler
}

// GetEvaluateCommand returns the evaluate command structure for handler assignment
func GetEvaluateCommand() *cobra.Command {
	return evaluateCmd
}

// SetupEvaluateFlags configures flags for the evaluate command
func SetupEvaluateFlags(evaluateCmd *cobra.Command,
	textPtr *string, stdinPtr *bool,
	rubricFilePtr, rubricIDPtr, rubricTextPtr, generosityPtr *string,
	criteriaPtr, suggestionsPtr, highlightsPtr, miniLessonsPtr *bool,
	downloadPtr *bool, reportsDirPtr *string) {
	evaluateCmd.Flags().StringVar(textPtr, "text", "",
		"Pasted essay text (split on student name markers)")
	evaluateCmd.Flags().BoolVar(stdinPtr, "stdin", false,
		"Read pasted essay text from stdin")

	evaluateCmd.Flags().StringVar(rubricFilePtr, "rubric-file", "",
		"Rubric file to upload (.txt or .pdf)")
	evaluateCmd.Flags().StringVar(rubricIDPtr, "rubric-id", "",
		"Preset rubric identifier")
	evaluateCmd.Flags().StringVar(rubricTextPtr, "rubric-text", "",
		"Inline rubric text")
	evaluateCmd.MarkFlagsMutuallyExclusive("rubric-file", "rubric-id")

	evaluateCmd.Flags().StringVar(generosityPtr, "generosity", "standard",
		"Grading generosity: strict, standard, generous")

	evaluateCmd.Flags().BoolVar(criteriaPtr, "include-criteria", false,
		"Include per-criterion score breakdown in reports")
	evaluateCmd.Flags().BoolVar(suggestionsPtr, "include-suggestions", false,
		"Include improvement suggestions in reports")
	evaluateCmd.Flags().BoolVar(highlightsPtr, "include-highlights", false,
		"Include annotated text highlights in reports")
	evaluateCmd.Flags().BoolVar(miniLessonsPtr, "include-mini-lessons", false,
		"Include targeted mini lessons in reports")

	evaluateCmd.Flags().BoolVar(downloadPtr, "download", false,
		"Download all generated reports after the run")
	evaluateCmd.Flags().StringVar(reportsDirPtr, "reports-dir", config.DefaultReportsDir,
		"Destination directory for downloaded reports")
}
