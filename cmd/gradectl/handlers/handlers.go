// Package handlers provides command handler functions for gradectl.
//
// This package contains all the command execution logic for gradectl commands,
// organized by resource type for maintainability and clean separation of concerns.
// Each handler file corresponds to a specific resource type and contains all
// related command handlers and helper functions.
//
// The package is organized as follows:
// - evaluate.go: Essay submission, segmentation, and batch evaluation
// - report.go: Report retrieval (single files and session ZIP archives)
// - rubric.go: Rubric text extraction
// - key.go: API key verification
//
// All handlers follow consistent patterns:
// - cobra.Command RunE function signature for CLI integration
// - Standardized error handling and logging using the logging package
// - Consistent output formatting through the display package
// - Clean separation between API communication and presentation logic
// - Signal-aware contexts so long batch runs can be interrupted cleanly
//
// The handlers coordinate between the grader client, the batch scheduler, and
// display functions while maintaining clean architectural boundaries and a
// consistent user experience across all gradectl commands.
package handlers

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gradeflow-dev/gradeflow/cmd/gradectl/config"
	"github.com/gradeflow-dev/gradeflow/internal/grader"
)

// newAPIClient creates a grader client from the validated global configuration.
func newAPIClient() *grader.Client {
	return grader.NewClient(config.Global.APIURL, config.Global.Timeout, config.Global.APIKey)
}

// signalContext returns a context canceled by SIGINT or SIGTERM, letting a
// Ctrl-C interrupt an in-flight batch run or a multi-second inter-chunk pause
// without waiting it out.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
