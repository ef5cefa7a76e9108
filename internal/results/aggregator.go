// Package results maintains the ordered result list and session identity for
// one evaluation run.
//
// The aggregator is the single owner of run state: an append-only (except
// explicit per-id removal) list of normalized results and the session id the
// service assigned to the run. Result order always follows submission order
// because dispatch is strictly sequential; the aggregator never reorders.
//
// SESSION OWNERSHIP:
// The session id is write-once per run. The first non-error result to arrive
// establishes it, and every later result is stamped with that id even if the
// service nominally returned a different one — the client treats the first id
// as authoritative for report retrieval within a run. Reset clears both the
// list and the session at the start of a new run.
package results

import (
	"github.com/gradeflow-dev/gradeflow/internal/grader"
	"github.com/gradeflow-dev/gradeflow/internal/logging"
)

// Aggregator accumulates normalized evaluation results across all batches of
// a run under one session identifier. Not safe for concurrent use; the
// submission pipeline is strictly sequential by design.
type Aggregator struct {
	results   []grader.EvaluationResult
	sessionID string
}

// New creates an empty aggregator for a fresh evaluation run.
func New() *Aggregator {
	return &Aggregator{}
}

// Append adds results to the tail of the list in the given order. The first
// non-error result with a session id establishes the run's session; results
// carrying a different session id are stamped with the established one.
func (a *Aggregator) Append(results []grader.EvaluationResult) {
	for _, r := range results {
		if a.sessionID == "" && r.Error == nil && r.SessionID != "" {
			a.sessionID = r.SessionID
			logging.Debug("Session established: %s", a.sessionID)
		}
		if a.sessionID != "" && r.SessionID != a.sessionID {
			if r.SessionID != "" {
				logging.Debug("Ignoring divergent session id %s (run session is %s)", r.SessionID, a.sessionID)
			}
			r.SessionID = a.sessionID
		}
		a.results = append(a.results, r)
	}
}

// Remove deletes exactly one result by id. Removing an absent id is a no-op,
// which makes removal idempotent.
func (a *Aggregator) Remove(id string) {
	for i, r := range a.results {
		if r.ID == id {
			a.results = append(a.results[:i], a.results[i+1:]...)
			return
		}
	}
}

// Reset clears the result list and the session id. Invoked at the start of
// every new evaluation run.
func (a *Aggregator) Reset() {
	a.results = nil
	a.sessionID = ""
}

// SessionID returns the run's established session id, or empty if no
// successful result has arrived yet.
func (a *Aggregator) SessionID() string {
	return a.sessionID
}

// Results returns a copy of the ordered result list. The copy keeps callers
// from mutating run state through the returned slice.
func (a *Aggregator) Results() []grader.EvaluationResult {
	out := make([]grader.EvaluationResult, len(a.results))
	copy(out, a.results)
	return out
}

// Len returns the number of aggregated results.
func (a *Aggregator) Len() int {
	return len(a.results)
}

// Succeeded returns the non-error results in submission order, which is the
// set eligible for report download.
func (a *Aggregator) Succeeded() []grader.EvaluationResult {
	var out []grader.EvaluationResult
	for _, r := range a.results {
		if r.Error == nil {
			out = append(out, r)
		}
	}
	return out
}

// Failed returns the error-tagged results in submission order.
func (a *Aggregator) Failed() []grader.EvaluationResult {
	var out []grader.EvaluationResult
	for _, r := range a.results {
		if r.Error != nil {
			out = append(out, r)
		}
	}
	return out
}
