// Package handlers provides command handler functions for gradectl API key operations.
//
// This file contains the API key verification handler. Verifying before a
// batch run catches a bad or missing key up front instead of after burning
// rate-limit budget on doomed submissions.
package handlers

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gradeflow-dev/gradeflow/cmd/gradectl/config"
	"github.com/gradeflow-dev/gradeflow/cmd/gradectl/utils"
	"github.com/gradeflow-dev/gradeflow/internal/logging"
	"github.com/spf13/cobra"
)

// HandleKeyVerify handles the key verify subcommand for checking the
// configured API key against the evaluation service.
func HandleKeyVerify(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	if config.Global.APIKey == "" {
		return fmt.Errorf("no API key configured - set --api-key or GRADEFLOW_API_KEY")
	}

	logging.Info("Verifying API key against %s", config.Global.APIURL)

	ctx, cancel := signalContext()
	defer cancel()

	if err := newAPIClient().VerifyAPIKey(ctx); err != nil {
		return err
	}

	if config.Global.Output == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(map[string]string{"status": "valid"}); err != nil {
			logging.Error("Failed to encode JSON: %v", err)
			return fmt.Errorf("failed to encode response")
		}
	} else {
		fmt.Println("API key is valid")
	}

	logging.Success("Successfully verified API key")
	return nil
}
