// Package config provides common default configuration values shared across
// Gradeflow components (submission scheduling, report downloads, HTTP client).
// This centralizes configuration management and ensures the CLI, scheduler,
// and downloader all agree on rate-limit and timeout behavior.
package config

import "time"

const (
	// DefaultServiceURL is the default base URL of the evaluation service.
	// Matches the service's local development default; production deployments
	// override it via the GRADEFLOW_API_URL environment variable or --api-url.
	DefaultServiceURL = "http://127.0.0.1:8000"

	// EnvServiceURL is the environment variable consulted for the evaluation
	// service base URL when --api-url is not provided.
	EnvServiceURL = "GRADEFLOW_API_URL"

	// EnvAPIKey is the environment variable consulted for the evaluation
	// service API key when --api-key is not provided.
	EnvAPIKey = "GRADEFLOW_API_KEY"

	// DefaultLogLevel is the default log level for all components
	// ERROR keeps CLI output clean; DEBUG=true or --log-level override it.
	DefaultLogLevel = "ERROR"

	// DefaultTimeout is the default per-request timeout in seconds.
	// Essay evaluation calls can take a while on the AI side, so this is
	// considerably more generous than a typical REST client timeout.
	DefaultTimeout = 120

	// DefaultReportsDir is the default directory for downloaded report files.
	DefaultReportsDir = "."
)

const (
	// BatchThreshold is the queue size above which submissions are chunked.
	// At or below this count, items are dispatched back to back with no delay.
	BatchThreshold = 5

	// BatchSize is the number of items dispatched per chunk once the queue
	// exceeds BatchThreshold. The final chunk may be smaller.
	BatchSize = 3

	// BatchDelayMin and BatchDelayMax bound the randomized pause inserted
	// between chunks. The pause exists to stay under the evaluation service's
	// rate limiter, so the window is intentionally wide and never zero.
	BatchDelayMin = 5 * time.Second
	BatchDelayMax = 8 * time.Second

	// DownloadStagger is the pause between successive report downloads in
	// download-all mode.
	DownloadStagger = 200 * time.Millisecond
)
