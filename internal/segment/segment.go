// Package segment implements the text segmentation heuristic that splits one
// pasted blob of text into multiple candidate essays.
//
// Teachers frequently paste a whole class's essays into a single text box.
// The segmenter recovers the individual essays using a priority-ordered chain
// of heuristics where the first strategy that produces at least two segments
// wins:
//
//  1. Student name marker lines ("Student Name:", "Student:", "Name:")
//  2. Runs of three or more consecutive blank lines
//  3. Explicit separator lines (---, ***, ___) for very large blobs
//
// When no strategy finds a plausible boundary, the whole blob is returned as
// a single essay, so non-empty input never yields zero essays.
package segment

import (
	"regexp"
	"strings"
)

// markerLine matches a line that starts a new essay. Matching is
// case-insensitive and anchored to the start of the line, with optional
// leading whitespace tolerated the way real pasted documents have it.
var markerLine = regexp.MustCompile(`(?i)^[ \t]*(?:student name|student|name):`)

// blankRun matches a run of three or more blank lines (whitespace-only lines
// count as blank) used as an essay boundary by the second heuristic.
var blankRun = regexp.MustCompile(`\n(?:[ \t]*\n){3,}`)

// separatorLine matches an explicit separator line consisting solely of three
// or more hyphens, asterisks, or underscores.
var separatorLine = regexp.MustCompile(`(?m)^[ \t]*(?:-{3,}|\*{3,}|_{3,})[ \t]*$`)

const (
	// minFragmentLen filters stray fragments produced by the blank-line and
	// separator heuristics: segments at or under this trimmed length are
	// discarded rather than submitted as essays.
	minFragmentLen = 100

	// separatorBlobLen is the minimum blob size before the separator-line
	// heuristic is attempted. Short blobs with separator lines are far more
	// likely to be a single essay with horizontal rules in it.
	separatorBlobLen = 10000
)

// Split converts one pasted text blob into an ordered list of essay texts.
//
// The input must be non-empty: empty or whitespace-only input is a caller
// precondition failure and yields nil. For any other input the result has at
// least one entry and no entry is empty or whitespace-only. When none of the
// heuristics find two or more segments, the result is exactly one entry
// holding the trimmed original blob.
func Split(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	if essays := splitByMarkers(text); len(essays) >= 2 {
		return essays
	}

	if essays := splitByBlankRuns(text); len(essays) >= 2 {
		return essays
	}

	if len(text) > separatorBlobLen {
		if essays := splitBySeparators(text); len(essays) >= 2 {
			return essays
		}
	}

	return []string{strings.TrimSpace(text)}
}

// splitByMarkers scans lines and starts a new essay at every student name
// marker line, provided the accumulator already holds non-whitespace content.
// The guard means the very first marker never creates an empty leading essay.
func splitByMarkers(text string) []string {
	var essays []string
	var acc strings.Builder

	flush := func() {
		segment := strings.TrimSpace(acc.String())
		if segment != "" {
			essays = append(essays, segment)
		}
		acc.Reset()
	}

	for _, line := range strings.Split(text, "\n") {
		if markerLine.MatchString(line) && strings.TrimSpace(acc.String()) != "" {
			flush()
		}
		acc.WriteString(line)
		acc.WriteString("\n")
	}
	flush()

	return essays
}

// splitByBlankRuns splits on runs of 3+ consecutive blank lines, keeping only
// segments long enough to plausibly be an essay.
func splitByBlankRuns(text string) []string {
	var essays []string
	for _, chunk := range blankRun.Split(text, -1) {
		chunk = strings.TrimSpace(chunk)
		if len(chunk) > minFragmentLen {
			essays = append(essays, chunk)
		}
	}
	return essays
}

// splitBySeparators splits on explicit separator lines (---, ***, ___ with 3+
// repeats), again filtering fragments that are too short to be essays.
func splitBySeparators(text string) []string {
	var essays []string
	for _, chunk := range separatorLine.Split(text, -1) {
		chunk = strings.TrimSpace(chunk)
		if len(chunk) > minFragmentLen {
			essays = append(essays, chunk)
		}
	}
	return essays
}
