// Package utils provides utility functions for the gradectl CLI.
package utils

import (
	"fmt"
)

// TruncateID shortens locally generated result identifiers for table display.
// Full UUIDs overwhelm the result table; the first 8 characters are unique
// enough within one run to address a result for removal or debugging.
func TruncateID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// FormatScore renders a score pair for CLI output display. Missing scores
// (failed evaluations) render as a dash rather than a misleading zero.
func FormatScore(score, maxScore *float64) string {
	if score == nil || maxScore == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f/%.1f", *score, *maxScore)
}
