// Package display provides output formatting and display functions for gradectl.
//
// This package handles all user-facing output formatting including table and
// JSON output for evaluation results, report downloads, and rubric text. It
// provides consistent formatting across all gradectl commands with support for
// verbose mode and different output formats.
//
// The display functions handle:
// - Mixed-outcome evaluation result tables with per-essay errors inline
// - Session identity and report filename visibility for later downloads
// - Consistent table formatting using text/tabwriter
// - JSON output with proper indentation and error handling
//
// All display functions respect global configuration for output format,
// verbosity, and other user preferences while maintaining clean separation
// from business logic.
package display

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/gradeflow-dev/gradeflow/cmd/gradectl/config"
	"github.com/gradeflow-dev/gradeflow/cmd/gradectl/utils"
	"github.com/gradeflow-dev/gradeflow/internal/grader"
	"github.com/gradeflow-dev/gradeflow/internal/logging"
)

// DisplayResults displays aggregated evaluation results in tabular or JSON
// format. Successes and per-essay failures appear in the same ordered table so
// a partially failed batch is visible at a glance; the session id is printed
// alongside for follow-up report downloads.
func DisplayResults(results []grader.EvaluationResult, sessionID string) {
	if len(results) == 0 {
		if config.Global.Output == "json" {
			fmt.Println("[]")
		} else {
			fmt.Println("No evaluation results")
		}
		return
	}

	if config.Global.Output == "json" {
		// JSON output
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(results); err != nil {
			logging.Error("Failed to encode JSON: %v", err)
			fmt.Println("Error encoding JSON output")
		}
		return
	}

	// Table output
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	// Header - show SESSION column only in verbose mode
	if config.Global.Verbose {
		fmt.Fprintln(w, "ID\tFILENAME\tSTUDENT\tSCORE\tSTATUS\tSESSION")
	} else {
		fmt.Fprintln(w, "ID\tFILENAME\tSTUDENT\tSCORE\tSTATUS")
	}

	// Display each result
	for _, result := range results {
		status := "graded"
		if result.Error != nil {
			status = fmt.Sprintf("%s: %s", result.Error.Kind, result.Error.Message)
		}
		score := utils.FormatScore(result.Score, result.MaxScore)

		if config.Global.Verbose {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				utils.TruncateID(result.ID), result.Filename, result.StudentName,
				score, status, result.SessionID)
		} else {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				utils.TruncateID(result.ID), result.Filename, result.StudentName,
				score, status)
		}
	}
	w.Flush()

	if sessionID != "" {
		fmt.Printf("\nSession: %s\n", sessionID)
	}
}

// DisplaySavedReports displays the local paths of downloaded reports in
// tabular or JSON format.
func DisplaySavedReports(paths []string) {
	if len(paths) == 0 {
		if config.Global.Output == "json" {
			fmt.Println("[]")
		} else {
			fmt.Println("No reports downloaded")
		}
		return
	}

	if config.Global.Output == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(paths); err != nil {
			logging.Error("Failed to encode JSON: %v", err)
			fmt.Println("Error encoding JSON output")
		}
		return
	}

	fmt.Println("Saved reports:")
	for _, path := range paths {
		fmt.Printf("  %s\n", path)
	}
}

// DisplayRubricText displays extracted rubric text in plain or JSON format.
func DisplayRubricText(filename, text string) {
	if config.Global.Output == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		payload := map[string]string{"filename": filename, "text": text}
		if err := encoder.Encode(payload); err != nil {
			logging.Error("Failed to encode JSON: %v", err)
			fmt.Println("Error encoding JSON output")
		}
		return
	}

	fmt.Println(text)
}
