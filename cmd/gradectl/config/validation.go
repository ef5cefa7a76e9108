// Package config provides configuration management for the gradectl CLI.
package config

import (
	"fmt"

	"github.com/gradeflow-dev/gradeflow/internal/logging"
	"github.com/gradeflow-dev/gradeflow/internal/validate"
	"github.com/spf13/cobra"
)

// ValidateGlobalFlags validates all global flags before running any command
func ValidateGlobalFlags(cmd *cobra.Command, args []string) error {
	LoadEnvironment()

	if err := ValidateServiceURL(); err != nil {
		return err
	}

	if err := ValidateOutputFormat(); err != nil {
		return err
	}

	return nil
}

// ValidateServiceURL validates the --api-url flag (or its environment fallback)
func ValidateServiceURL() error {
	parsed, err := validate.ParseServiceURL(Global.APIURL)
	if err != nil {
		logging.Error("Invalid service URL '%s': %v", Global.APIURL, err)
		return fmt.Errorf("invalid service URL - expected format: http(s)://host[:port] (e.g., http://127.0.0.1:8000)")
	}

	// Reject unroutable 0.0.0.0 target for client connections. The
	// comparison uses the hostname alone since Host carries the port.
	if parsed.Hostname == "0.0.0.0" {
		logging.Error("Unroutable service URL '%s' - cannot connect to 0.0.0.0", Global.APIURL)
		return fmt.Errorf("unroutable service URL - use 127.0.0.1 or a specific hostname")
	}

	// Keep the normalized form so every request shares one base URL shape
	Global.APIURL = parsed.Base
	return nil
}

// ValidateOutputFormat validates the --output flag
func ValidateOutputFormat() error {
	validOutputs := map[string]bool{
		"table": true,
		"json":  true,
	}
	if !validOutputs[Global.Output] {
		logging.Error("Invalid output format '%s' - valid formats are: table, json", Global.Output)
		return fmt.Errorf("invalid output format - valid: table, json")
	}
	return nil
}

// ValidateGenerosity validates the evaluate command's --generosity flag
func ValidateGenerosity() error {
	validLevels := map[string]bool{
		"strict":   true,
		"standard": true,
		"generous": true,
	}
	if !validLevels[Evaluate.Generosity] {
		logging.Error("Invalid generosity level '%s' - valid levels are: strict, standard, generous", Evaluate.Generosity)
		return fmt.Errorf("invalid generosity level - valid: strict, standard, generous")
	}
	return nil
}
