// Package version provides centralized version information for Gradeflow projects.
// The gradectl CLI is versioned here so that build metadata, User-Agent headers,
// and --version output all come from a single source of truth.
// All versions follow semantic versioning (semver) conventions.

package version

// GradectlVersion holds the current gradectl CLI version.
// Format: major.minor.patch[-prerelease][+build]
const GradectlVersion = "0.1.0-dev"
