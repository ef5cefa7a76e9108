package config

import (
	"testing"
)

// TestValidateServiceURL tests service URL validation and normalization for
// the --api-url flag and its environment fallback.
func TestValidateServiceURL(t *testing.T) {
	tests := []struct {
		name        string
		url         string
		expectError bool
		wantBase    string
		description string
	}{
		{
			name:        "plain http URL",
			url:         "http://127.0.0.1:8000",
			expectError: false,
			wantBase:    "http://127.0.0.1:8000",
			description: "Default-style local service URL should validate",
		},
		{
			name:        "https with hostname",
			url:         "https://grader.example.com",
			expectError: false,
			wantBase:    "https://grader.example.com",
			description: "Remote HTTPS endpoints should validate",
		},
		{
			name:        "trailing slash normalized",
			url:         "http://127.0.0.1:8000/",
			expectError: false,
			wantBase:    "http://127.0.0.1:8000",
			description: "Trailing slashes should be stripped so request paths join cleanly",
		},
		{
			name:        "unroutable bind address",
			url:         "http://0.0.0.0:8000",
			expectError: true,
			description: "Clients cannot connect to 0.0.0.0",
		},
		{
			name:        "missing scheme",
			url:         "127.0.0.1:8000",
			expectError: true,
			description: "Bare host:port is not a usable base URL",
		},
		{
			name:        "unsupported scheme",
			url:         "ftp://grader.example.com",
			expectError: true,
			description: "Only http and https are supported",
		},
		{
			name:        "empty URL",
			url:         "",
			expectError: true,
			description: "Empty URL should be rejected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := Global.APIURL
			defer func() { Global.APIURL = original }()

			Global.APIURL = tt.url
			err := ValidateServiceURL()

			if tt.expectError && err == nil {
				t.Errorf("expected error but got none. %s", tt.description)
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v. %s", err, tt.description)
			}
			if !tt.expectError && Global.APIURL != tt.wantBase {
				t.Errorf("normalized URL = %q, want %q", Global.APIURL, tt.wantBase)
			}
		})
	}
}

// TestValidateOutputFormat tests the --output flag values.
func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name        string
		output      string
		expectError bool
	}{
		{name: "table format", output: "table", expectError: false},
		{name: "json format", output: "json", expectError: false},
		{name: "invalid format", output: "yaml", expectError: true},
		{name: "empty format", output: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := Global.Output
			defer func() { Global.Output = original }()

			Global.Output = tt.output
			err := ValidateOutputFormat()

			if tt.expectError && err == nil {
				t.Errorf("expected error for output format %q", tt.output)
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error for output format %q: %v", tt.output, err)
			}
		})
	}
}

// TestValidateGenerosity tests the evaluate command's --generosity flag values.
func TestValidateGenerosity(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		expectError bool
	}{
		{name: "strict level", level: "strict", expectError: false},
		{name: "standard level", level: "standard", expectError: false},
		{name: "generous level", level: "generous", expectError: false},
		{name: "invalid level", level: "harsh", expectError: true},
		{name: "empty level", level: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := Evaluate.Generosity
			defer func() { Evaluate.Generosity = original }()

			Evaluate.Generosity = tt.level
			err := ValidateGenerosity()

			if tt.expectError && err == nil {
				t.Errorf("expected error for generosity %q", tt.level)
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error for generosity %q: %v", tt.level, err)
			}
		})
	}
}
