package results

import (
	"testing"

	"github.com/gradeflow-dev/gradeflow/internal/grader"
)

func okResult(id, filename, session string) grader.EvaluationResult {
	score := 8.0
	max := 10.0
	return grader.EvaluationResult{
		ID:          id,
		Filename:    filename,
		StudentName: "Student",
		Score:       &score,
		MaxScore:    &max,
		SessionID:   session,
	}
}

func errResult(id, filename, session string) grader.EvaluationResult {
	return grader.EvaluationResult{
		ID:          id,
		Filename:    filename,
		StudentName: "Unknown",
		SessionID:   session,
		Error:       &grader.ErrorInfo{Kind: grader.ErrorRateLimit, Message: "rate_limit"},
	}
}

// TestAppendPreservesOrder tests that two appends A then B yield A ++ B.
func TestAppendPreservesOrder(t *testing.T) {
	agg := New()

	a := []grader.EvaluationResult{okResult("1", "a.txt", "s1"), okResult("2", "b.txt", "s1")}
	b := []grader.EvaluationResult{errResult("3", "c.txt", "s1"), okResult("4", "d.txt", "s1")}

	agg.Append(a)
	agg.Append(b)

	got := agg.Results()
	want := []string{"1", "2", "3", "4"}
	if len(got) != len(want) {
		t.Fatalf("expected %d results, got %d", len(want), len(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d: id = %q, want %q", i, got[i].ID, id)
		}
	}
}

// TestSessionFirstWins tests that the first non-error result establishes the
// session id and later divergent ids are overridden.
func TestSessionFirstWins(t *testing.T) {
	agg := New()

	// An error result arriving first must not claim the session.
	agg.Append([]grader.EvaluationResult{errResult("1", "a.txt", "sX")})
	if agg.SessionID() != "" {
		t.Errorf("error result should not establish session, got %q", agg.SessionID())
	}

	agg.Append([]grader.EvaluationResult{okResult("2", "b.txt", "s1")})
	if agg.SessionID() != "s1" {
		t.Fatalf("session = %q, want s1", agg.SessionID())
	}

	// A later batch reporting a different session id is stamped with s1.
	agg.Append([]grader.EvaluationResult{okResult("3", "c.txt", "s2")})
	for _, r := range agg.Results() {
		if r.SessionID != "" && r.SessionID != "s1" && r.Error == nil {
			t.Errorf("result %s carries session %q, want s1", r.ID, r.SessionID)
		}
	}
	if got := agg.Results()[2].SessionID; got != "s1" {
		t.Errorf("divergent session id should be overridden, got %q", got)
	}
}

// TestRemoveIsIdempotent tests that removing the same id twice leaves the
// list unchanged after the first call.
func TestRemoveIsIdempotent(t *testing.T) {
	agg := New()
	agg.Append([]grader.EvaluationResult{
		okResult("1", "a.txt", "s1"),
		okResult("2", "b.txt", "s1"),
		okResult("3", "c.txt", "s1"),
	})

	agg.Remove("2")
	if agg.Len() != 2 {
		t.Fatalf("after first remove: len = %d, want 2", agg.Len())
	}

	agg.Remove("2") // no-op
	if agg.Len() != 2 {
		t.Errorf("second remove changed the list: len = %d, want 2", agg.Len())
	}

	got := agg.Results()
	if got[0].ID != "1" || got[1].ID != "3" {
		t.Errorf("remaining order = [%s %s], want [1 3]", got[0].ID, got[1].ID)
	}

	agg.Remove("nonexistent") // also a no-op
	if agg.Len() != 2 {
		t.Errorf("removing absent id changed the list")
	}
}

// TestReset tests that reset clears both the list and the session id.
func TestReset(t *testing.T) {
	agg := New()
	agg.Append([]grader.EvaluationResult{okResult("1", "a.txt", "s1")})

	agg.Reset()
	if agg.Len() != 0 {
		t.Errorf("len after reset = %d, want 0", agg.Len())
	}
	if agg.SessionID() != "" {
		t.Errorf("session after reset = %q, want empty", agg.SessionID())
	}

	// A fresh run can establish a new session.
	agg.Append([]grader.EvaluationResult{okResult("2", "b.txt", "s9")})
	if agg.SessionID() != "s9" {
		t.Errorf("new run session = %q, want s9", agg.SessionID())
	}
}

// TestSucceededAndFailed tests the mixed-outcome partitions used by the
// download-all path and the failure summary.
func TestSucceededAndFailed(t *testing.T) {
	agg := New()
	agg.Append([]grader.EvaluationResult{
		okResult("1", "a.txt", "s1"),
		errResult("2", "b.txt", "s1"),
		okResult("3", "c.txt", "s1"),
	})

	ok := agg.Succeeded()
	if len(ok) != 2 || ok[0].ID != "1" || ok[1].ID != "3" {
		t.Errorf("Succeeded() = %v", ok)
	}

	failed := agg.Failed()
	if len(failed) != 1 || failed[0].ID != "2" {
		t.Errorf("Failed() = %v", failed)
	}
}

// TestResultsReturnsCopy tests that callers cannot mutate run state through
// the returned slice.
func TestResultsReturnsCopy(t *testing.T) {
	agg := New()
	agg.Append([]grader.EvaluationResult{okResult("1", "a.txt", "s1")})

	snapshot := agg.Results()
	snapshot[0].ID = "tampered"

	if agg.Results()[0].ID != "1" {
		t.Error("mutating the returned slice altered aggregator state")
	}
}
