// Package grader provides the HTTP client layer for the evaluation service.
// This file contains the Resty client construction and all endpoint methods.

package grader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/gradeflow-dev/gradeflow/internal/logging"
	"github.com/gradeflow-dev/gradeflow/internal/rubric"
	"github.com/gradeflow-dev/gradeflow/internal/version"
)

// restyLogger implements resty.Logger and routes Resty's internal log output
// through the structured logging system.
type restyLogger struct{}

func (restyLogger) Errorf(format string, v ...interface{}) {
	logging.Error(format, v...)
}

func (restyLogger) Warnf(format string, v ...interface{}) {
	logging.Warn(format, v...)
}

func (restyLogger) Debugf(format string, v ...interface{}) {
	logging.Debug(format, v...)
}

// errorDetail is the service's error body shape for non-2xx responses.
type errorDetail struct {
	Detail string `json:"detail"`
}

// Client wraps the Resty HTTP client with evaluation-service specific
// functionality. Provides a configured client with retry logic, structured
// logging, and proper timeout handling for all submission operations.
//
// The evaluation service can legitimately take tens of seconds per essay, so
// timeouts are generous and retries apply only to connection failures, never
// to HTTP error statuses: a 429 must surface as a rate_limit result, not be
// hammered again by the transport layer.
type Client struct {
	client  *resty.Client
	baseURL string
	apiKey  string
}

// NewClient creates a new evaluation service client with comprehensive Resty
// configuration. Configures timeout handling, connection-error retry logic,
// structured logging integration, and proper headers.
//
// baseURL is the validated service base URL (no trailing slash), timeout is
// the per-request limit in seconds, and apiKey accompanies every evaluation
// and verification request as a form field per the service contract.
func NewClient(baseURL string, timeout int, apiKey string) *Client {
	client := resty.New()

	// Route Resty's internal logging through our structured logging system
	client.SetLogger(restyLogger{})

	// Configure client with timeouts, headers, and retry logic
	client.
		SetTimeout(time.Duration(timeout)*time.Second).
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", fmt.Sprintf("gradectl/%s", version.GradectlVersion))

	// Add retry mechanism with custom retry conditions
	client.
		SetRetryCount(3).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			// Only retry on connection errors, not HTTP errors
			return err != nil
		})

	// Custom request logging using structured logging
	client.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		logging.Debug("Making API request: %s %s", req.Method, req.URL)
		return nil
	})

	// Custom response logging using structured logging
	client.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logging.Debug("API response: %d %s (took %v)",
			resp.StatusCode(), resp.Status(), resp.Time())
		return nil
	})

	// Custom error logging using structured logging
	client.OnError(func(req *resty.Request, err error) {
		logging.Debug("API request failed: %s %s - %v", req.Method, req.URL, err)
	})

	return &Client{
		client:  client,
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// BaseURL returns the configured service base URL for logging and display.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Evaluate submits one essay item plus its resolved rubric and option flags
// to the evaluation service and returns the normalized result list.
//
// The service may answer with a single-essay or multiple-essay result; both
// are normalized so callers never branch on response shape. HTTP error
// statuses are converted into a single error-tagged EvaluationResult using
// the item's original filename, so one bad item cannot abort its batch.
// Transport failures (connection refused, timeout) are returned as errors for
// the scheduler to catch and record per item.
func (c *Client) Evaluate(ctx context.Context, item EssayItem, rub rubric.Rubric, opts SubmitOptions) ([]EvaluationResult, error) {
	essayData := item.Data
	if item.IsText() {
		essayData = []byte(item.Text)
	}

	req := c.client.R().
		SetContext(ctx).
		SetFileReader("essay", item.Filename, bytes.NewReader(essayData)).
		SetFormData(map[string]string{
			"api_key":              c.apiKey,
			"include_criteria":     strconv.FormatBool(opts.IncludeCriteria),
			"include_suggestions":  strconv.FormatBool(opts.IncludeSuggestions),
			"include_highlights":   strconv.FormatBool(opts.IncludeHighlights),
			"include_mini_lessons": strconv.FormatBool(opts.IncludeMiniLessons),
			"generosity":           string(opts.Generosity),
		})

	switch rub.Kind {
	case rubric.KindFile:
		req.SetFileReader("rubric_file", rub.Filename, bytes.NewReader(rub.FileData))
	case rubric.KindPreset:
		req.SetFormData(map[string]string{"rubric_id": rub.PresetID})
	case rubric.KindText:
		req.SetFormData(map[string]string{"rubric_text": rub.Text})
	}

	resp, err := req.Post("/evaluate/")
	if err != nil {
		return nil, fmt.Errorf("failed to connect to evaluation service at %s: %w", c.baseURL, err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		// Converted to a single error result rather than returned as an
		// error, so sibling items in the batch keep running.
		return []EvaluationResult{errorResult(item.Filename, resp.StatusCode(), resp.Body())}, nil
	}

	var evalResp evaluationResponse
	if err := json.Unmarshal(resp.Body(), &evalResp); err != nil {
		return nil, fmt.Errorf("unexpected response format from evaluation service: %w", err)
	}

	return normalizeResponse(evalResp, item.Filename), nil
}

// DownloadReport fetches the generated report bytes for one evaluated essay.
// The filename is percent-encoded into the request path because service-side
// filenames are derived from student names and may contain spaces.
func (c *Client) DownloadReport(ctx context.Context, sessionID, filename string) ([]byte, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/download-report/%s/%s", url.PathEscape(sessionID), url.PathEscape(filename)))

	if err != nil {
		return nil, fmt.Errorf("failed to connect to evaluation service at %s: %w", c.baseURL, err)
	}

	if resp.StatusCode() == 404 {
		return nil, fmt.Errorf("report '%s' not found in session '%s'", filename, sessionID)
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("report download failed with status %d: %s", resp.StatusCode(), detailFrom(resp.Body()))
	}

	return resp.Body(), nil
}

// DownloadSessionArchive fetches a ZIP archive containing every report
// generated for the session.
func (c *Client) DownloadSessionArchive(ctx context.Context, sessionID string) ([]byte, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"session_id": sessionID}).
		Post("/generate-zip/")

	if err != nil {
		return nil, fmt.Errorf("failed to connect to evaluation service at %s: %w", c.baseURL, err)
	}

	if resp.StatusCode() == 404 {
		return nil, fmt.Errorf("session '%s' not found", sessionID)
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("archive download failed with status %d: %s", resp.StatusCode(), detailFrom(resp.Body()))
	}

	return resp.Body(), nil
}

// ExtractRubricText uploads a rubric document and returns the text the
// service extracted from it. Used to preview rubric content before attaching
// it to a submission.
func (c *Client) ExtractRubricText(ctx context.Context, filename string, data []byte) (string, error) {
	var result struct {
		Text     string `json:"text"`
		Filename string `json:"filename"`
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetFileReader("file", filename, bytes.NewReader(data)).
		SetResult(&result).
		Post("/upload-rubric-file/")

	if err != nil {
		return "", fmt.Errorf("failed to connect to evaluation service at %s: %w", c.baseURL, err)
	}

	if resp.StatusCode() == 400 {
		return "", fmt.Errorf("invalid rubric file '%s': %s", filename, detailFrom(resp.Body()))
	}

	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("rubric upload failed with status %d: %s", resp.StatusCode(), detailFrom(resp.Body()))
	}

	return result.Text, nil
}

// VerifyAPIKey checks the configured API key against the service. A nil
// return means the key is valid; an invalid key returns a descriptive error.
func (c *Client) VerifyAPIKey(ctx context.Context) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{"api_key": c.apiKey}).
		Post("/verify_api_key/")

	if err != nil {
		return fmt.Errorf("failed to connect to evaluation service at %s: %w", c.baseURL, err)
	}

	if resp.StatusCode() == 400 {
		return fmt.Errorf("invalid API key: %s", detailFrom(resp.Body()))
	}

	if resp.StatusCode() != 200 {
		return fmt.Errorf("key verification failed with status %d: %s", resp.StatusCode(), detailFrom(resp.Body()))
	}

	return nil
}

// detailFrom extracts the service's {"detail": ...} error message from a
// response body, falling back to the raw body when it isn't JSON.
func detailFrom(body []byte) string {
	var d errorDetail
	if err := json.Unmarshal(body, &d); err == nil && d.Detail != "" {
		return d.Detail
	}
	return string(body)
}
