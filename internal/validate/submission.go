// Package validate provides input validation utilities for Gradeflow submission
// operations. This file contains the file-type allow-lists and queue-level
// precondition checks that must all pass before any network dispatch begins.

package validate

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Essay file extensions accepted by the evaluation service. The service also
// validates content types server-side; checking extensions here keeps obvious
// mistakes local and preserves the "no partial results on precondition
// failure" guarantee.
var essayExtensions = map[string]bool{
	".pdf":  true,
	".txt":  true,
	".docx": true,
}

// Rubric uploads are restricted to plain text and PDF documents.
var rubricExtensions = map[string]bool{
	".txt": true,
	".pdf": true,
}

// EssayFilename validates a single essay filename against the accepted
// extension list. Case-insensitive, matching the service's own handling.
func EssayFilename(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("essay filename cannot be empty")
	}
	ext := strings.ToLower(filepath.Ext(name))
	if !essayExtensions[ext] {
		return fmt.Errorf("unsupported essay file '%s': allowed extensions are .pdf, .txt, .docx", name)
	}
	return nil
}

// RubricFilename validates a rubric filename against the accepted extension
// list. Only .txt and .pdf rubric documents are supported by the service.
func RubricFilename(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("rubric filename cannot be empty")
	}
	ext := strings.ToLower(filepath.Ext(name))
	if !rubricExtensions[ext] {
		return fmt.Errorf("unsupported rubric file '%s': allowed extensions are .txt, .pdf", name)
	}
	return nil
}

// SubmissionFiles validates a full set of essay filenames before scheduling
// begins. Enforces the queue-level preconditions: at least one file, every
// extension allowed, and at most one PDF per run since PDFs are restricted
// to single-file submission.
//
// A failure here aborts the entire run with no partial results, per the
// error-handling contract: precondition errors are raised before any network
// activity starts.
func SubmissionFiles(names []string) error {
	if len(names) == 0 {
		return fmt.Errorf("no essay files provided")
	}

	pdfCount := 0
	for _, name := range names {
		if err := EssayFilename(name); err != nil {
			return err
		}
		if strings.ToLower(filepath.Ext(name)) == ".pdf" {
			pdfCount++
		}
	}

	if pdfCount > 1 || (pdfCount == 1 && len(names) > 1) {
		return fmt.Errorf("only one PDF file allowed: PDF essays must be submitted on their own")
	}

	return nil
}
