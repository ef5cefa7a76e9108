// Package handlers provides command handler functions for gradectl essay evaluation.
//
// This file contains the evaluate command handler, the core workflow of the
// CLI: building the essay queue from file arguments or pasted text, resolving
// the rubric selection, driving the rate-limit-aware batch scheduler, and
// rendering the aggregated mixed-outcome results.
//
// The evaluate handler manages:
// - Queue construction from files or segmented pasted text
// - Rubric resolution with upload, preset, and inline text sources
// - Sequential batch dispatch with per-essay failure capture
// - Result aggregation under one session identity
// - Optional post-run download of every generated report
//
// Preconditions (no essays, mixed PDF submissions, bad rubric files) abort
// before any network activity so a misconfigured run never burns rate-limit
// budget on the service side.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gradeflow-dev/gradeflow/cmd/gradectl/config"
	"github.com/gradeflow-dev/gradeflow/cmd/gradectl/display"
	"github.com/gradeflow-dev/gradeflow/cmd/gradectl/utils"
	"github.com/gradeflow-dev/gradeflow/internal/batch"
	"github.com/gradeflow-dev/gradeflow/internal/grader"
	"github.com/gradeflow-dev/gradeflow/internal/logging"
	"github.com/gradeflow-dev/gradeflow/internal/report"
	"github.com/gradeflow-dev/gradeflow/internal/results"
	"github.com/gradeflow-dev/gradeflow/internal/rubric"
	"github.com/gradeflow-dev/gradeflow/internal/segment"
	"github.com/gradeflow-dev/gradeflow/internal/validate"
	"github.com/spf13/cobra"
)

// HandleEvaluate handles the evaluate command, the primary workflow for
// submitting essays to the evaluation service. Builds the essay queue from
// file arguments or pasted text, resolves the rubric selection, drives the
// batch scheduler through the grader client, and renders the aggregated
// results.
//
// Large queues are processed in small sequential batches with randomized
// pauses to respect the service's rate limits; a failed essay becomes an
// error row in the result table rather than aborting the remaining essays.
func HandleEvaluate(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	if err := config.ValidateGenerosity(); err != nil {
		return err
	}

	items, err := buildQueue(args)
	if err != nil {
		return err
	}

	selection, err := buildRubricSelection()
	if err != nil {
		return err
	}
	// Freeze the resolved rubric so nothing can alter it mid-run
	selection.Lock()
	resolved := selection.Resolve()

	opts := grader.SubmitOptions{
		IncludeCriteria:    config.Evaluate.IncludeCriteria,
		IncludeSuggestions: config.Evaluate.IncludeSuggestions,
		IncludeHighlights:  config.Evaluate.IncludeHighlights,
		IncludeMiniLessons: config.Evaluate.IncludeMiniLessons,
		Generosity:         grader.Generosity(config.Evaluate.Generosity),
	}

	logging.Info("Submitting %d essays to evaluation service: %s", len(items), config.Global.APIURL)

	ctx, cancel := signalContext()
	defer cancel()

	apiClient := newAPIClient()
	agg := results.New()
	scheduler := batch.New()

	dispatch := func(ctx context.Context, item grader.EssayItem) ([]grader.EvaluationResult, error) {
		return apiClient.Evaluate(ctx, item, resolved, opts)
	}

	if err := scheduler.Run(ctx, items, dispatch, agg); err != nil {
		if errors.Is(err, context.Canceled) {
			// Show whatever completed before the interrupt
			display.DisplayResults(agg.Results(), agg.SessionID())
			return fmt.Errorf("evaluation run interrupted")
		}
		return err
	}

	display.DisplayResults(agg.Results(), agg.SessionID())

	failed := agg.Failed()
	if len(failed) > 0 {
		logging.Warn("%d of %d essays failed evaluation", len(failed), agg.Len())
	}
	logging.Success("Successfully evaluated %d of %d essays", len(agg.Succeeded()), agg.Len())

	if config.Evaluate.Download {
		return downloadRunReports(ctx, apiClient, agg)
	}
	return nil
}

// buildQueue constructs the ordered essay queue from file arguments or from
// one pasted text blob. File mode and paste mode are mutually exclusive;
// pasted text is segmented into individual essays before enqueueing.
func buildQueue(args []string) ([]grader.EssayItem, error) {
	pasteMode := config.Evaluate.Text != "" || config.Evaluate.Stdin
	if pasteMode && len(args) > 0 {
		return nil, fmt.Errorf("cannot combine file arguments with --text or --stdin")
	}
	if config.Evaluate.Text != "" && config.Evaluate.Stdin {
		return nil, fmt.Errorf("--text and --stdin are mutually exclusive")
	}

	if pasteMode {
		text := config.Evaluate.Text
		if config.Evaluate.Stdin {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return nil, fmt.Errorf("failed to read pasted text from stdin: %w", err)
			}
			text = string(data)
		}

		essays := segment.Split(text)
		if len(essays) == 0 {
			return nil, fmt.Errorf("no gradable text found in pasted input")
		}
		logging.Info("Segmented pasted text into %d essays", len(essays))

		items := make([]grader.EssayItem, 0, len(essays))
		for i, essay := range essays {
			items = append(items, grader.NewTextItem(fmt.Sprintf("pasted_essay_%d.txt", i+1), essay))
		}
		return items, nil
	}

	if len(args) == 0 {
		return nil, fmt.Errorf("no essays supplied - pass file arguments or use --text/--stdin")
	}

	items := make([]grader.EssayItem, 0, len(args))
	for _, path := range args {
		name := filepath.Base(path)
		if err := validate.EssayFilename(name); err != nil {
			return nil, err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read essay file '%s': %w", path, err)
		}
		items = append(items, grader.NewFileItem(name, data))
	}
	return items, nil
}

// buildRubricSelection converts the rubric flags into a selection. Flag
// precedence mirrors the selection's own resolution order: uploaded file,
// then preset id, then inline text, then none (the service falls back to its
// default rubric).
func buildRubricSelection() (*rubric.Selection, error) {
	var selection rubric.Selection

	if config.Evaluate.RubricFile != "" {
		name := filepath.Base(config.Evaluate.RubricFile)
		if err := validate.RubricFilename(name); err != nil {
			return nil, err
		}
		data, err := os.ReadFile(config.Evaluate.RubricFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read rubric file '%s': %w", config.Evaluate.RubricFile, err)
		}
		selection.SetFile(name, data)
		return &selection, nil
	}

	if config.Evaluate.RubricID != "" {
		selection.SetPreset(config.Evaluate.RubricID)
		return &selection, nil
	}

	if config.Evaluate.RubricText != "" {
		selection.SetCustomText(config.Evaluate.RubricText)
	}
	return &selection, nil
}

// downloadRunReports saves the report of every successfully evaluated essay
// after a run completes. Download failures are reported but leave the result
// table untouched.
func downloadRunReports(ctx context.Context, apiClient *grader.Client, agg *results.Aggregator) error {
	if agg.SessionID() == "" {
		logging.Warn("No session established - nothing to download")
		return nil
	}

	downloader := report.New(apiClient, config.Evaluate.ReportsDir)
	paths, err := downloader.DownloadAll(ctx, agg.SessionID(), agg.Results())
	display.DisplaySavedReports(paths)
	if err != nil {
		return err
	}

	logging.Success("Successfully downloaded %d reports to %s", len(paths), config.Evaluate.ReportsDir)
	return nil
}
