// Package handlers provides command handler functions for gradectl rubric operations.
//
// This file contains the rubric extraction handler, which uploads a rubric
// document to the evaluation service and prints the text the service extracts
// from it. Lets a teacher confirm what criteria text a PDF rubric actually
// yields before grading a whole class against it.
package handlers

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gradeflow-dev/gradeflow/cmd/gradectl/config"
	"github.com/gradeflow-dev/gradeflow/cmd/gradectl/display"
	"github.com/gradeflow-dev/gradeflow/cmd/gradectl/utils"
	"github.com/gradeflow-dev/gradeflow/internal/logging"
	"github.com/gradeflow-dev/gradeflow/internal/validate"
	"github.com/spf13/cobra"
)

// HandleRubricExtract handles the rubric extract subcommand for uploading a
// rubric document and displaying the extracted criteria text.
func HandleRubricExtract(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	path := args[0]
	name := filepath.Base(path)
	if err := validate.RubricFilename(name); err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read rubric file '%s': %w", path, err)
	}

	logging.Info("Extracting rubric text from '%s' via %s", name, config.Global.APIURL)

	ctx, cancel := signalContext()
	defer cancel()

	text, err := newAPIClient().ExtractRubricText(ctx, name, data)
	if err != nil {
		return err
	}

	display.DisplayRubricText(name, text)
	logging.Success("Successfully extracted rubric text from '%s'", name)
	return nil
}
