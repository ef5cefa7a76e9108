// Package config provides configuration management for the gradectl CLI.
package config

import (
	"os"

	internalconfig "github.com/gradeflow-dev/gradeflow/internal/config"
	"github.com/gradeflow-dev/gradeflow/internal/version"
	"github.com/joho/godotenv"
)

// Version returns the current gradectl CLI version from the centralized version package
var Version = version.GradectlVersion

// Global holds the global CLI configuration
var Global struct {
	APIURL   string // Base URL of the evaluation service
	APIKey   string // API key forwarded to the evaluation service
	LogLevel string // Log level for CLI operations
	Timeout  int    // Request timeout in seconds
	Verbose  bool   // Show verbose output
	Output   string // Output format: table, json
}

// Evaluate holds the evaluate command configuration
var Evaluate struct {
	Text               string // Pasted essay text, segmented into individual essays
	Stdin              bool   // Read pasted essay text from stdin
	RubricFile         string // Path of a rubric file to upload
	RubricID           string // Identifier of a preset rubric
	RubricText         string // Inline rubric text
	Generosity         string // Grading generosity: strict, standard, generous
	IncludeCriteria    bool   // Include per-criterion breakdown in reports
	IncludeSuggestions bool   // Include improvement suggestions in reports
	IncludeHighlights  bool   // Include text highlights in reports
	IncludeMiniLessons bool   // Include mini lessons in reports
	Download           bool   // Download all reports after the run
	ReportsDir         string // Destination directory for downloaded reports
}

// Report holds the report command configuration
var Report struct {
	Dir string // Destination directory for downloaded reports
}

// LoadEnvironment loads a .env file when present and fills unset global
// fields from the environment. Flag values always win; the .env file never
// overrides variables already exported in the shell.
func LoadEnvironment() {
	godotenv.Load()

	if Global.APIURL == "" {
		Global.APIURL = os.Getenv(internalconfig.EnvServiceURL)
	}
	if Global.APIURL == "" {
		Global.APIURL = internalconfig.DefaultServiceURL
	}
	if Global.APIKey == "" {
		Global.APIKey = os.Getenv(internalconfig.EnvAPIKey)
	}
}
