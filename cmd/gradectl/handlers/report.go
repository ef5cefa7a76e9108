// Package handlers provides command handler functions for gradectl report operations.
//
// This file contains the report retrieval handlers for downloading evaluation
// reports generated by earlier evaluate runs. Reports are addressed by session
// id plus the filename shown in the result table; whole sessions can be
// fetched as one ZIP archive.
//
// The report handlers manage:
// - Single report download with filesystem-safe local naming
// - Session ZIP archive generation and download
// - Destination directory handling for both operations
package handlers

import (
	"fmt"

	"github.com/gradeflow-dev/gradeflow/cmd/gradectl/config"
	"github.com/gradeflow-dev/gradeflow/cmd/gradectl/utils"
	"github.com/gradeflow-dev/gradeflow/internal/logging"
	"github.com/gradeflow-dev/gradeflow/internal/report"
	"github.com/spf13/cobra"
)

// HandleReportGet handles the report get subcommand for downloading one
// evaluation report by session id and filename. The service-side filename is
// requested as-is; the local copy is sanitized for filesystem safety.
func HandleReportGet(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	sessionID, filename := args[0], args[1]
	logging.Info("Downloading report '%s' from session %s on %s",
		filename, sessionID, config.Global.APIURL)

	ctx, cancel := signalContext()
	defer cancel()

	downloader := report.New(newAPIClient(), config.Report.Dir)
	path, err := downloader.Save(ctx, sessionID, filename)
	if err != nil {
		return err
	}

	fmt.Printf("Saved report to %s\n", path)
	logging.Success("Successfully downloaded report '%s'", filename)
	return nil
}

// HandleReportZip handles the report zip subcommand for downloading every
// report of a session as one ZIP archive generated by the service on demand.
func HandleReportZip(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	sessionID := args[0]
	logging.Info("Downloading report archive for session %s from %s",
		sessionID, config.Global.APIURL)

	ctx, cancel := signalContext()
	defer cancel()

	downloader := report.New(newAPIClient(), config.Report.Dir)
	path, err := downloader.SaveArchive(ctx, sessionID)
	if err != nil {
		return err
	}

	fmt.Printf("Saved archive to %s\n", path)
	logging.Success("Successfully downloaded session archive for %s", sessionID)
	return nil
}
