package logging

import (
	"bytes"
	"os"
	"strings"
	"testing"

	stdlog "log"

	"github.com/charmbracelet/log"
)

// swapLoggers replaces both package loggers with buffer-backed instances for
// the duration of fn and returns everything written to them.
func swapLoggers(level log.Level, fn func()) string {
	var buf bytes.Buffer

	origStdout := stdoutLogger
	origStderr := stderrLogger

	testLogger := log.NewWithOptions(&buf, log.Options{
		ReportTimestamp: false, // Disable timestamps for easier testing
	})
	testLogger.SetLevel(level)

	stdoutLogger = testLogger
	stderrLogger = testLogger

	fn()

	stdoutLogger = origStdout
	stderrLogger = origStderr

	return strings.TrimSpace(buf.String())
}

// TestLogLevels tests that logging functions emit their messages
func TestLogLevels(t *testing.T) {
	tests := []struct {
		name     string
		logFunc  func()
		expected string
	}{
		{
			name: "Info level",
			logFunc: func() {
				Info("test info message")
			},
			expected: "test info message",
		},
		{
			name: "Warn level",
			logFunc: func() {
				Warn("test warn message")
			},
			expected: "test warn message",
		},
		{
			name: "Error level",
			logFunc: func() {
				Error("test error message")
			},
			expected: "test error message",
		},
		{
			name: "Formatted message",
			logFunc: func() {
				Info("chunk %d of %d complete", 2, 5)
			},
			expected: "chunk 2 of 5 complete",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := swapLoggers(log.DebugLevel, tt.logFunc)
			if !strings.Contains(output, tt.expected) {
				t.Errorf("expected output to contain %q, got %q", tt.expected, output)
			}
		})
	}
}

// TestLevelFiltering tests that messages below the configured level are dropped
func TestLevelFiltering(t *testing.T) {
	output := swapLoggers(log.ErrorLevel, func() {
		Debug("debug message")
		Info("info message")
		Warn("warn message")
		Error("error message")
	})

	if strings.Contains(output, "debug message") {
		t.Error("debug message should be filtered at ERROR level")
	}
	if strings.Contains(output, "info message") {
		t.Error("info message should be filtered at ERROR level")
	}
	if strings.Contains(output, "warn message") {
		t.Error("warn message should be filtered at ERROR level")
	}
	if !strings.Contains(output, "error message") {
		t.Error("error message should pass at ERROR level")
	}
}

// TestSetLevel tests level string parsing including the fallback default
func TestSetLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected log.Level
	}{
		{"debug level", "DEBUG", log.DebugLevel},
		{"info level", "INFO", log.InfoLevel},
		{"warn level", "WARN", log.WarnLevel},
		{"error level", "ERROR", log.ErrorLevel},
		{"unknown defaults to info", "VERBOSE", log.InfoLevel},
		{"empty defaults to info", "", log.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetLevel(tt.level)
			if got := stdoutLogger.GetLevel(); got != tt.expected {
				t.Errorf("SetLevel(%q): stdout logger level = %v, want %v", tt.level, got, tt.expected)
			}
			if got := stderrLogger.GetLevel(); got != tt.expected {
				t.Errorf("SetLevel(%q): stderr logger level = %v, want %v", tt.level, got, tt.expected)
			}
		})
	}

	// Restore a quiet default for other tests
	SetLevel("ERROR")
}

// TestLevelWriter tests the io.Writer bridge used for third-party library logs
func TestLevelWriter(t *testing.T) {
	output := swapLoggers(log.DebugLevel, func() {
		w := NewLevelWriter("INFO", "resty")
		w.Write([]byte("request sent\nresponse received\n\n"))
	})

	if !strings.Contains(output, "resty: request sent") {
		t.Errorf("expected prefixed first line, got %q", output)
	}
	if !strings.Contains(output, "resty: response received") {
		t.Errorf("expected prefixed second line, got %q", output)
	}
}

// TestRedirectStandardLog tests that standard library log output routes
// through a LevelWriter into the unified logging pipeline, the wiring the CLI
// performs during logging setup.
func TestRedirectStandardLog(t *testing.T) {
	stdFlags := stdlog.Flags()
	defer func() {
		stdlog.SetOutput(os.Stderr)
		stdlog.SetFlags(stdFlags)
	}()
	stdlog.SetFlags(0)

	output := swapLoggers(log.DebugLevel, func() {
		RedirectStandardLog(NewLevelWriter("DEBUG", "stdlib"))
		stdlog.Print("dependency chatter")
	})

	if !strings.Contains(output, "stdlib: dependency chatter") {
		t.Errorf("expected redirected standard log line, got %q", output)
	}

	// nil discards standard log output entirely
	output = swapLoggers(log.DebugLevel, func() {
		RedirectStandardLog(nil)
		stdlog.Print("should vanish")
	})

	if strings.Contains(output, "should vanish") {
		t.Errorf("nil redirection must discard standard log output, got %q", output)
	}
}

// TestLevelWriterNoPrefix tests that lines pass through unprefixed when no prefix is set
func TestLevelWriterNoPrefix(t *testing.T) {
	output := swapLoggers(log.DebugLevel, func() {
		w := NewLevelWriter("WARN", "")
		w.Write([]byte("bare line"))
	})

	if !strings.Contains(output, "bare line") {
		t.Errorf("expected bare line in output, got %q", output)
	}
	if strings.Contains(output, ": bare line") {
		t.Errorf("unexpected prefix in output %q", output)
	}
}
