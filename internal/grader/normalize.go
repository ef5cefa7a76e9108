// Package grader response normalization. This file converts the service's
// tagged response variants (single / multiple / empty) and HTTP error
// statuses into the uniform EvaluationResult shape, once, at the boundary.

package grader

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// evaluationResponse mirrors the service's evaluation response JSON. The
// single and multiple variants share the envelope; which fields are populated
// depends on evaluation_status.
type evaluationResponse struct {
	EvaluationStatus string `json:"evaluation_status"`
	SessionID        string `json:"session_id"`
	Count            int    `json:"count,omitempty"`

	// Single-essay variant fields
	Filename     string   `json:"filename,omitempty"`
	StudentName  string   `json:"student_name,omitempty"`
	OverallScore *float64 `json:"overall_score,omitempty"`
	MaxScore     *float64 `json:"max_score,omitempty"`
	Error        any      `json:"error,omitempty"`

	// Multiple-essay variant fields
	Results []evaluationItem `json:"results,omitempty"`
}

// evaluationItem is one entry of a multiple-essay response.
type evaluationItem struct {
	Index        *int     `json:"id,omitempty"`
	Filename     string   `json:"filename"`
	StudentName  string   `json:"student_name"`
	OverallScore *float64 `json:"overall_score"`
	MaxScore     *float64 `json:"max_score"`
	Status       string   `json:"status,omitempty"`
	Error        any      `json:"error,omitempty"`
}

// normalizeResponse flattens any evaluation response variant into the uniform
// result list. An "empty" status yields zero results (no gradable content is
// not a failure); unknown statuses become a single server-error result so the
// caller still gets the uniform shape. Every result shares the response's
// session id.
func normalizeResponse(resp evaluationResponse, fallbackFilename string) []EvaluationResult {
	switch resp.EvaluationStatus {
	case "empty":
		return nil

	case "single":
		result := EvaluationResult{
			ID:          uuid.NewString(),
			Filename:    resp.Filename,
			StudentName: studentNameOr(resp.StudentName),
			Score:       resp.OverallScore,
			MaxScore:    resp.MaxScore,
			SessionID:   resp.SessionID,
		}
		if result.Filename == "" {
			result.Filename = fallbackFilename
		}
		if info := errorInfoFrom(resp.Error, ""); info != nil {
			result.Error = info
			result.Score = nil
			result.MaxScore = nil
		}
		return []EvaluationResult{result}

	case "multiple":
		results := make([]EvaluationResult, 0, len(resp.Results))
		for _, item := range resp.Results {
			result := EvaluationResult{
				ID:          uuid.NewString(),
				Filename:    item.Filename,
				StudentName: studentNameOr(item.StudentName),
				Score:       item.OverallScore,
				MaxScore:    item.MaxScore,
				SessionID:   resp.SessionID,
			}
			if result.Filename == "" {
				result.Filename = fallbackFilename
			}
			if info := errorInfoFrom(item.Error, item.Status); info != nil {
				result.Error = info
				result.Score = nil
				result.MaxScore = nil
			}
			results = append(results, result)
		}
		return results

	default:
		return []EvaluationResult{{
			ID:          uuid.NewString(),
			Filename:    fallbackFilename,
			StudentName: "Unknown",
			SessionID:   resp.SessionID,
			Error: &ErrorInfo{
				Kind:    ErrorServer,
				Message: fmt.Sprintf("unrecognized evaluation status %q", resp.EvaluationStatus),
			},
		}}
	}
}

// errorResult converts an HTTP error status into a single error-tagged
// result carrying the item's original filename, so the batch keeps running.
func errorResult(filename string, statusCode int, body []byte) EvaluationResult {
	return EvaluationResult{
		ID:          uuid.NewString(),
		Filename:    filename,
		StudentName: "Unknown",
		Error: &ErrorInfo{
			Kind:    classifyStatus(statusCode),
			Message: detailFrom(body),
		},
	}
}

// DispatchFailure converts a transport-level dispatch error (connection
// refused, timeout) into an error-tagged result for the item, so the
// scheduler can record the failure as data and keep the batch running.
func DispatchFailure(item EssayItem, err error) EvaluationResult {
	return EvaluationResult{
		ID:          uuid.NewString(),
		Filename:    item.Filename,
		StudentName: "Unknown",
		Error: &ErrorInfo{
			Kind:    ErrorServer,
			Message: err.Error(),
		},
	}
}

// errorInfoFrom interprets the loosely-typed error field the service attaches
// to failed items. Single results carry a boolean, multiple results carry
// either an error string (e.g. "rate_limit") or a status of "Error". Returns
// nil when the item succeeded.
func errorInfoFrom(raw any, status string) *ErrorInfo {
	switch v := raw.(type) {
	case bool:
		if v {
			return &ErrorInfo{Kind: ErrorServer, Message: "evaluation failed"}
		}
	case string:
		if v != "" {
			return &ErrorInfo{Kind: classifyDetail(v), Message: v}
		}
	}
	if strings.EqualFold(status, "error") {
		return &ErrorInfo{Kind: ErrorServer, Message: "evaluation failed"}
	}
	return nil
}

// classifyStatus maps an HTTP error status to a per-item error kind.
func classifyStatus(code int) ErrorKind {
	switch {
	case code == 429:
		return ErrorRateLimit
	case code >= 400 && code < 500:
		return ErrorValidation
	default:
		return ErrorServer
	}
}

// classifyDetail maps a service error string to a per-item error kind.
// Rate-limit failures are the common case under batch load and must keep
// their distinguished kind so the UI can render them as retryable.
func classifyDetail(detail string) ErrorKind {
	lower := strings.ToLower(detail)
	switch {
	case strings.Contains(lower, "rate_limit"), strings.Contains(lower, "rate limit"), strings.Contains(lower, "429"):
		return ErrorRateLimit
	case strings.Contains(lower, "validation"), strings.Contains(lower, "invalid"), strings.Contains(lower, "empty"):
		return ErrorValidation
	default:
		return ErrorServer
	}
}

// studentNameOr applies the "Unknown" fallback for missing student names.
func studentNameOr(name string) string {
	if strings.TrimSpace(name) == "" {
		return "Unknown"
	}
	return name
}
