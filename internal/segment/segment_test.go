package segment

import (
	"strings"
	"testing"
)

// TestSplitByNameMarkers tests the highest-priority heuristic: student name
// marker lines starting new essays.
func TestSplitByNameMarkers(t *testing.T) {
	input := "Student Name: Alice\nGreat essay body.\n\n\n\nStudent Name: Bob\n" +
		"Another essay body that is long enough to pass filtering thresholds for this test case."

	essays := Split(input)
	if len(essays) != 2 {
		t.Fatalf("expected 2 essays, got %d: %v", len(essays), essays)
	}
	if !strings.HasPrefix(essays[0], "Student Name: Alice") {
		t.Errorf("first essay should start with Alice marker, got %q", essays[0])
	}
	if !strings.HasPrefix(essays[1], "Student Name: Bob") {
		t.Errorf("second essay should start with Bob marker, got %q", essays[1])
	}
}

// TestSplitMarkerVariants tests the alternative marker spellings and
// case-insensitive matching.
func TestSplitMarkerVariants(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{
			name:     "Student prefix",
			input:    "Student: Alice\nbody one\nStudent: Bob\nbody two",
			expected: 2,
		},
		{
			name:     "Name prefix",
			input:    "Name: Alice\nbody one\nName: Bob\nbody two",
			expected: 2,
		},
		{
			name:     "lowercase markers",
			input:    "name: alice\nbody one\nstudent name: bob\nbody two",
			expected: 2,
		},
		{
			name:     "indented markers",
			input:    "  Name: Alice\nbody one\n\tName: Bob\nbody two",
			expected: 2,
		},
		{
			name:     "three essays",
			input:    "Name: A\none\nName: B\ntwo\nName: C\nthree",
			expected: 3,
		},
		{
			name:     "marker mid-line is not a boundary",
			input:    "The form asked for Student Name: Alice\nand the rest of a single essay",
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			essays := Split(tt.input)
			if len(essays) != tt.expected {
				t.Errorf("expected %d essays, got %d: %v", tt.expected, len(essays), essays)
			}
			for i, e := range essays {
				if strings.TrimSpace(e) == "" {
					t.Errorf("essay %d is empty or whitespace-only", i)
				}
			}
		})
	}
}

// TestSplitFirstMarkerNoEmptyLeading tests that a marker on the very first
// line does not produce an empty leading essay.
func TestSplitFirstMarkerNoEmptyLeading(t *testing.T) {
	input := "Student Name: Alice\nonly one essay here"
	essays := Split(input)
	if len(essays) != 1 {
		t.Fatalf("expected 1 essay, got %d: %v", len(essays), essays)
	}
	if essays[0] != strings.TrimSpace(input) {
		t.Errorf("single essay should equal trimmed input, got %q", essays[0])
	}
}

// TestSplitByBlankRuns tests the second heuristic: runs of 3+ blank lines
// with short-fragment filtering.
func TestSplitByBlankRuns(t *testing.T) {
	long1 := strings.Repeat("first essay sentence. ", 10)  // > 100 chars
	long2 := strings.Repeat("second essay sentence. ", 10) // > 100 chars

	input := long1 + "\n\n\n\n" + long2
	essays := Split(input)
	if len(essays) != 2 {
		t.Fatalf("expected 2 essays from blank-line split, got %d", len(essays))
	}
	if essays[0] != strings.TrimSpace(long1) {
		t.Errorf("first essay mismatch: %q", essays[0])
	}
	if essays[1] != strings.TrimSpace(long2) {
		t.Errorf("second essay mismatch: %q", essays[1])
	}
}

// TestSplitBlankRunsFilterShortFragments tests that fragments at or under the
// length threshold do not survive the blank-line heuristic.
func TestSplitBlankRunsFilterShortFragments(t *testing.T) {
	long := strings.Repeat("real essay content here. ", 10)
	input := long + "\n\n\n\n" + "stray note"

	essays := Split(input)
	// Only one substantial segment remains, so the blank-line heuristic does
	// not win and the whole blob is returned as a single essay.
	if len(essays) != 1 {
		t.Fatalf("expected fallback to single essay, got %d: %v", len(essays), essays)
	}
	if essays[0] != strings.TrimSpace(input) {
		t.Errorf("fallback essay should be the trimmed original blob")
	}
}

// TestSplitTwoBlankLinesNotABoundary tests that short blank runs are kept
// inside a single essay.
func TestSplitTwoBlankLinesNotABoundary(t *testing.T) {
	long1 := strings.Repeat("first paragraph text. ", 10)
	long2 := strings.Repeat("second paragraph text. ", 10)
	input := long1 + "\n\n\n" + long2 // only two blank lines

	essays := Split(input)
	if len(essays) != 1 {
		t.Fatalf("two blank lines should not split, got %d essays", len(essays))
	}
}

// TestSplitBySeparatorLines tests the third heuristic: explicit separator
// lines, which only applies to blobs over the size threshold.
func TestSplitBySeparatorLines(t *testing.T) {
	half := strings.Repeat("padding sentence for a very long essay body. ", 150) // ~6750 chars each

	tests := []struct {
		name      string
		separator string
	}{
		{"hyphen separator", "---"},
		{"asterisk separator", "*****"},
		{"underscore separator", "___"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := half + "\n" + tt.separator + "\n" + half
			if len(input) <= separatorBlobLen {
				t.Fatalf("test input too short to exercise separator heuristic: %d", len(input))
			}
			essays := Split(input)
			if len(essays) != 2 {
				t.Fatalf("expected 2 essays from separator split, got %d", len(essays))
			}
		})
	}
}

// TestSplitSeparatorIgnoredForSmallBlobs tests that separator lines inside a
// small blob do not split it.
func TestSplitSeparatorIgnoredForSmallBlobs(t *testing.T) {
	long1 := strings.Repeat("short document first part. ", 10)
	long2 := strings.Repeat("short document second part. ", 10)
	input := long1 + "\n---\n" + long2

	essays := Split(input)
	if len(essays) != 1 {
		t.Fatalf("separator heuristic should be skipped under size threshold, got %d essays", len(essays))
	}
}

// TestSplitDegenerateCases tests the single-essay fallback and the empty
// input precondition.
func TestSplitDegenerateCases(t *testing.T) {
	t.Run("plain text yields one trimmed essay", func(t *testing.T) {
		input := "  \n just one ordinary essay with no boundaries \n"
		essays := Split(input)
		if len(essays) != 1 {
			t.Fatalf("expected 1 essay, got %d", len(essays))
		}
		if essays[0] != strings.TrimSpace(input) {
			t.Errorf("expected trimmed input, got %q", essays[0])
		}
	})

	t.Run("empty input returns nil", func(t *testing.T) {
		if got := Split(""); got != nil {
			t.Errorf("expected nil for empty input, got %v", got)
		}
	})

	t.Run("whitespace input returns nil", func(t *testing.T) {
		if got := Split(" \n\t\n "); got != nil {
			t.Errorf("expected nil for whitespace input, got %v", got)
		}
	})
}
