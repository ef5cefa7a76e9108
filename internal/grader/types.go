// Package grader provides the HTTP client and response normalization layer
// for the remote essay evaluation service.
//
// This package implements the complete client side of the evaluation API
// including multipart request assembly, error classification, retry policy,
// and structured logging for reliable batch submission runs.
//
// RESPONSE NORMALIZATION:
// The service answers an evaluation request with one of three shapes: a
// single-essay result, a multiple-essay result (the service may re-split
// ambiguous text on its own), or an empty result when no gradable content was
// found. All three are flattened here into a uniform []EvaluationResult so
// callers never branch on response shape. Items the service flags as failed
// carry a classified ErrorInfo while their siblings stay valid, which is what
// lets one rate-limited essay coexist with nine graded ones in a batch.
//
// SUPPORTED OPERATIONS:
//   - Evaluate: Submit one essay (file bytes or text) with rubric and options
//   - DownloadReport: Fetch a generated PDF report by session and filename
//   - DownloadSessionArchive: Fetch the ZIP archive of a whole session
//   - ExtractRubricText: Extract text from an uploaded rubric document
//   - VerifyAPIKey: Check an evaluation API key against the service
package grader

import (
	"github.com/google/uuid"
)

// Generosity controls how strictly the AI grades an essay.
type Generosity string

const (
	GenerosityStrict   Generosity = "strict"
	GenerosityStandard Generosity = "standard"
	GenerosityGenerous Generosity = "generous"
)

// ErrorKind classifies a per-item evaluation failure. The distinction matters
// downstream: rate_limit errors are expected under load and rendered alongside
// successful results, while server errors usually point at the service itself.
type ErrorKind string

const (
	ErrorRateLimit  ErrorKind = "rate_limit"
	ErrorValidation ErrorKind = "validation"
	ErrorServer     ErrorKind = "server"
)

// ErrorInfo describes a per-item evaluation failure carried as data rather
// than as a thrown error, so a mixed-outcome result list renders in one pass.
type ErrorInfo struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// EssayItem is one unit of gradable content enqueued for evaluation: either
// the bytes of an uploaded file or a text segment from a pasted blob.
// Immutable once enqueued.
type EssayItem struct {
	ID       string // locally unique id for queue management
	Filename string // original filename, or synthesized name for text items
	Data     []byte // file bytes; nil for text items
	Text     string // text content; empty for file items
}

// IsText reports whether the item carries pasted text rather than file bytes.
func (e EssayItem) IsText() bool {
	return e.Data == nil
}

// NewFileItem creates an essay item from an uploaded file's name and bytes.
func NewFileItem(filename string, data []byte) EssayItem {
	return EssayItem{
		ID:       uuid.NewString(),
		Filename: filename,
		Data:     data,
	}
}

// NewTextItem creates an essay item from one segmented text blob. The
// synthesized filename is what the service sees as the upload name and what
// error results fall back to.
func NewTextItem(filename, text string) EssayItem {
	return EssayItem{
		ID:       uuid.NewString(),
		Filename: filename,
		Text:     text,
	}
}

// SubmitOptions carries the per-run feedback flags and generosity setting
// attached to every evaluation request.
type SubmitOptions struct {
	IncludeCriteria    bool
	IncludeSuggestions bool
	IncludeHighlights  bool
	IncludeMiniLessons bool
	Generosity         Generosity
}

// EvaluationResult is the uniform, normalized outcome for one essay. Exactly
// one of (Score, MaxScore) being populated and Error being nil distinguishes
// success; failed items carry Error and null scores. Appended, never mutated,
// to the aggregator's ordered list.
type EvaluationResult struct {
	ID          string     `json:"id"`
	Filename    string     `json:"filename"`
	StudentName string     `json:"studentName"`
	Score       *float64   `json:"score"`
	MaxScore    *float64   `json:"maxScore"`
	Error       *ErrorInfo `json:"error"`
	SessionID   string     `json:"sessionId"`
}

// Failed reports whether this result represents a per-item failure.
func (r EvaluationResult) Failed() bool {
	return r.Error != nil
}
