package commands

import (
	"strconv"
	"testing"

	"github.com/gradeflow-dev/gradeflow/internal/config"
	"github.com/spf13/cobra"
)

// TestGlobalFlagDefaults tests that the global flag defaults come from the
// shared configuration constants rather than drifting copies.
func TestGlobalFlagDefaults(t *testing.T) {
	var apiURL, apiKey, logLevel, output string
	var timeout int
	var verbose bool

	cmd := &cobra.Command{Use: "test"}
	SetupGlobalFlags(cmd, &apiURL, &apiKey, &logLevel, &timeout, &verbose, &output)

	tests := []struct {
		name     string
		flag     string
		expected string
	}{
		{
			name:     "log level default",
			flag:     "log-level",
			expected: config.DefaultLogLevel,
		},
		{
			name:     "timeout default",
			flag:     "timeout",
			expected: strconv.Itoa(config.DefaultTimeout),
		},
		{
			name:     "output default",
			flag:     "output",
			expected: "table",
		},
		{
			name:     "api url default empty for env fallback",
			flag:     "api-url",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := cmd.PersistentFlags().Lookup(tt.flag)
			if flag == nil {
				t.Fatalf("flag --%s not registered", tt.flag)
			}
			if flag.DefValue != tt.expected {
				t.Errorf("--%s default = %q, want %q", tt.flag, flag.DefValue, tt.expected)
			}
		})
	}
}

// TestEvaluateFlagDefaults tests the evaluate command's directory and
// generosity defaults against the shared constants.
func TestEvaluateFlagDefaults(t *testing.T) {
	var text, rubricFile, rubricID, rubricText, generosity, reportsDir string
	var stdin, criteria, suggestions, highlights, miniLessons, download bool

	cmd := &cobra.Command{Use: "evaluate"}
	SetupEvaluateFlags(cmd, &text, &stdin, &rubricFile, &rubricID, &rubricText,
		&generosity, &criteria, &suggestions, &highlights, &miniLessons,
		&download, &reportsDir)

	if flag := cmd.Flags().Lookup("reports-dir"); flag == nil || flag.DefValue != config.DefaultReportsDir {
		t.Errorf("--reports-dir default should be %q", config.DefaultReportsDir)
	}
	if flag := cmd.Flags().Lookup("generosity"); flag == nil || flag.DefValue != "standard" {
		t.Error("--generosity default should be standard")
	}
}
