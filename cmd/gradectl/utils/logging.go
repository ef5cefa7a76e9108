// Package utils provides utility functions for the gradectl CLI.
// This file contains logging setup utilities.
package utils

import (
	"os"

	"github.com/gradeflow-dev/gradeflow/cmd/gradectl/config"
	"github.com/gradeflow-dev/gradeflow/internal/logging"
)

// SetupLogging configures CLI logging behavior based on environment and config.
// Enables debug output when DEBUG=true, otherwise suppresses verbose logs.
// Essential for maintaining clean CLI output while allowing detailed debugging.
func SetupLogging() {
	// Capture standard library log output from dependencies and route it
	// through structured logging at DEBUG level, so it obeys the same
	// level filtering as everything else
	logging.RedirectStandardLog(logging.NewLevelWriter("DEBUG", "stdlib"))

	// Check for DEBUG environment variable for debug logging
	if os.Getenv("DEBUG") == "true" {
		// Show debug output - restore normal logging and enable DEBUG level
		logging.RestoreOutput()
		logging.SetLevel("DEBUG")
	} else if config.Global.Verbose {
		// Verbose mode keeps progress and status logs visible
		logging.RestoreOutput()
		logging.SetLevel("INFO")
	} else {
		// Configure our application logging level first
		logging.SetLevel(config.Global.LogLevel)
		// Suppress debug/info logs by default (only show errors)
		logging.SuppressOutput()
	}
}
