// Package report saves evaluation reports from the grading service to the
// local filesystem.
//
// Report filenames come back from the service with student names embedded, so
// they routinely contain spaces and can contain characters the local
// filesystem rejects. Every write goes through a sanitizer that maps the name
// onto a portable character set. Bulk downloads are staggered with a short
// fixed pause between fetches so a run's worth of report requests does not
// arrive at the service as a burst.
package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gradeflow-dev/gradeflow/internal/config"
	"github.com/gradeflow-dev/gradeflow/internal/grader"
	"github.com/gradeflow-dev/gradeflow/internal/logging"
)

// Fetcher retrieves report bytes for a session. The grader client satisfies
// this; tests substitute a stub.
type Fetcher interface {
	DownloadReport(ctx context.Context, sessionID, filename string) ([]byte, error)
	DownloadSessionArchive(ctx context.Context, sessionID string) ([]byte, error)
}

// Downloader fetches reports through a Fetcher and writes them under Dir.
type Downloader struct {
	fetcher Fetcher

	// Dir is the destination directory for saved reports. Created on first
	// save if missing.
	Dir string

	// Stagger is the pause inserted between consecutive fetches in
	// DownloadAll. Injectable sleep for tests.
	Stagger time.Duration
	Sleep   func(d time.Duration)
}

// New creates a downloader writing into dir with the default stagger.
func New(fetcher Fetcher, dir string) *Downloader {
	if dir == "" {
		dir = config.DefaultReportsDir
	}
	return &Downloader{
		fetcher: fetcher,
		Dir:     dir,
		Stagger: config.DownloadStagger,
		Sleep:   time.Sleep,
	}
}

var (
	unsafeChars       = regexp.MustCompile(`[^a-zA-Z0-9._\- ]`)
	repeatUnderscores = regexp.MustCompile(`_+`)
)

// SanitizeFilename maps a service-provided report filename onto the portable
// character set [a-zA-Z0-9._- ]: anything outside it becomes an underscore,
// and runs of underscores collapse to one. Path separators are unsafe
// characters too, so the result never escapes the destination directory.
func SanitizeFilename(name string) string {
	sanitized := unsafeChars.ReplaceAllString(name, "_")
	sanitized = repeatUnderscores.ReplaceAllString(sanitized, "_")
	sanitized = strings.TrimSpace(sanitized)
	if sanitized == "" || sanitized == "." || sanitized == ".." {
		return "report.pdf"
	}
	return sanitized
}

// Save fetches one report and writes it under the destination directory,
// returning the local path. Fetch failures surface the service's error detail
// and write nothing.
func (d *Downloader) Save(ctx context.Context, sessionID, filename string) (string, error) {
	data, err := d.fetcher.DownloadReport(ctx, sessionID, filename)
	if err != nil {
		return "", fmt.Errorf("failed to download report '%s': %w", filename, err)
	}

	path := filepath.Join(d.Dir, SanitizeFilename(filename))
	if err := d.write(path, data); err != nil {
		return "", err
	}

	logging.Debug("Saved report %s (%d bytes)", path, len(data))
	return path, nil
}

// SaveArchive fetches the session's ZIP archive of all reports and writes it
// as evaluation_reports_<sessionID>.zip under the destination directory.
func (d *Downloader) SaveArchive(ctx context.Context, sessionID string) (string, error) {
	data, err := d.fetcher.DownloadSessionArchive(ctx, sessionID)
	if err != nil {
		return "", fmt.Errorf("failed to download session archive: %w", err)
	}

	name := SanitizeFilename(fmt.Sprintf("evaluation_reports_%s.zip", sessionID))
	path := filepath.Join(d.Dir, name)
	if err := d.write(path, data); err != nil {
		return "", err
	}

	logging.Debug("Saved session archive %s (%d bytes)", path, len(data))
	return path, nil
}

// DownloadAll saves the report for every non-error result, in order, with a
// fixed stagger between fetches (never after the last). Failed downloads are
// collected and reported together; they never remove the result from the
// aggregate, and the remaining reports still download.
func (d *Downloader) DownloadAll(ctx context.Context, sessionID string, results []grader.EvaluationResult) ([]string, error) {
	eligible := make([]grader.EvaluationResult, 0, len(results))
	for _, r := range results {
		if r.Error == nil {
			eligible = append(eligible, r)
		}
	}

	var paths []string
	var failures []string
	for i, r := range eligible {
		if err := ctx.Err(); err != nil {
			return paths, err
		}

		path, err := d.Save(ctx, sessionID, r.Filename)
		if err != nil {
			logging.Warn("Report download failed for '%s': %v", r.Filename, err)
			failures = append(failures, r.Filename)
		} else {
			paths = append(paths, path)
		}

		if i < len(eligible)-1 {
			d.Sleep(d.Stagger)
		}
	}

	if len(failures) > 0 {
		return paths, fmt.Errorf("failed to download %d of %d reports: %s",
			len(failures), len(eligible), strings.Join(failures, ", "))
	}
	return paths, nil
}

// write ensures the destination directory exists and writes the file.
func (d *Downloader) write(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create reports directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}
	return nil
}
