// Package commands provides API key command definitions for gradectl.
//
// This file implements the key command tree for managing the API key that
// accompanies every evaluation request.
//
// KEY COMMANDS:
//   - verify: Check the configured API key against the service
package commands

import (
	"github.com/spf13/cobra"
)

// Key command (parent command for API key operations)
var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage the evaluation service API key",
	Long: `Commands for managing the API key used with the evaluation service.

This command group provides operations for checking that the configured
key is accepted before starting a batch run.`,
}

// Key verify command
var keyVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify the configured API key",
	Long: `Verify that the configured API key is accepted by the evaluation
service.

The key comes from --api-key, the GRADEFLOW_API_KEY environment variable,
or a local .env file, in that order.`,
	Example: `  # Verify the key from the environment
  gradectl key verify

  # Verify an explicit key
  gradectl --api-key=sk-... key verify`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// SetupKeyCommands initializes key commands and their relationships
func SetupKeyCommands() {
	// Add subcommands to key command
	keyCmd.AddCommand(keyVerifyCmd)
}

// GetKeyCommands returns the key command structures for handler assignment
func GetKeyCommands() *cobra.Command {
	return keyVerifyCmd
}
