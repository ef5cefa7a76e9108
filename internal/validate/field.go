// Package validate provides input validation utilities for Gradeflow submission
// operations, ensuring bad input is rejected before any network activity.
//
// Implements validation rules for service URLs, essay and rubric file types, and
// submission preconditions. Prevents malformed requests from reaching the
// evaluation service and keeps precondition failures clearly separated from
// per-item evaluation errors.
//
// VALIDATION COVERAGE:
//   - Service URL: Base URL format for the evaluation service endpoint
//   - File Types: Extension allow-lists for essay and rubric uploads
//   - Submission Preconditions: Queue-level rules checked before scheduling
//
// Used throughout the CLI, configuration processing, and the batch scheduler
// to ensure consistent input validation across all system entry points.
package validate

import (
	"fmt"
	"net/url"

	"github.com/go-playground/validator/v10"
)

var (
	// Global validator instance using built-in validations
	validate *validator.Validate
)

func init() {
	validate = validator.New()
	// Using built-in validators: url, min, max, required - no custom registration needed
}

// ValidateField validates individual values against specified validation rules using
// the go-playground/validator library. Provides flexible validation for single fields
// without requiring struct definitions, useful for dynamic validation scenarios.
//
// Supports all built-in validation tags including URLs, numeric ranges, string
// patterns, and required field validation. Essential for validating individual
// configuration parameters and user inputs throughout the submission pipeline.
//
// Example: ValidateField("https://grader.example.com", "required,url")
func ValidateField(value interface{}, tag string) error {
	return validate.Var(value, tag)
}

// ServiceURL represents a validated evaluation service base URL with its parsed
// components. Provides a standardized structure for the single remote endpoint
// the client talks to, validated once at startup instead of per request.
type ServiceURL struct {
	Scheme   string // http or https
	Host     string // host[:port]
	Hostname string // host without the port
	Base     string // normalized base URL without trailing slash
}

// String returns the normalized base URL suitable for configuring the HTTP
// client and for logging.
func (su ServiceURL) String() string {
	return su.Base
}

// ParseServiceURL parses and validates an evaluation service base URL from
// configuration or CLI flags. Provides comprehensive validation including
// scheme checking, host presence, and overall URL well-formedness.
//
// Essential for processing user-provided endpoints from environment variables
// and CLI arguments. Ensures the base URL is usable before any submission
// starts, preventing runtime failures mid-batch and providing clear error
// messages for troubleshooting configuration issues.
func ParseServiceURL(raw string) (*ServiceURL, error) {
	if raw == "" {
		return nil, fmt.Errorf("service URL cannot be empty")
	}

	if err := ValidateField(raw, "required,url"); err != nil {
		return nil, fmt.Errorf("invalid service URL '%s': %w", raw, err)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid service URL '%s': %w", raw, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("service URL '%s' must use http or https", raw)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("service URL '%s' is missing a host", raw)
	}

	base := u.Scheme + "://" + u.Host
	if u.Path != "" && u.Path != "/" {
		base += u.Path
	}
	for len(base) > 0 && base[len(base)-1] == '/' {
		base = base[:len(base)-1]
	}

	return &ServiceURL{
		Scheme:   u.Scheme,
		Host:     u.Host,
		Hostname: u.Hostname(),
		Base:     base,
	}, nil
}
