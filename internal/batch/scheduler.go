// Package batch implements the rate-limit-aware submission scheduler that
// drives an evaluation run.
//
// The external grading API sits on top of an AI provider with an aggressive
// rate limiter, so the scheduler's whole job is to NOT be fast: items are
// dispatched strictly sequentially (never concurrently), large queues are
// partitioned into small chunks, and a randomized multi-second pause is
// inserted between chunks. Parallel dispatch is deliberately excluded — the
// pacing is the feature, not an optimization target.
//
// SCHEDULING POLICY:
//   - Queues of 5 or fewer items: dispatched back to back, no delay
//   - Larger queues: chunks of 3, processed sequentially, with a uniform
//     random 5-8 second pause between chunks (never after the last)
//   - Progress reported as completedChunks/totalChunks*100, rounded
//
// FAILURE POLICY:
// A dispatch failure for one item is converted into an error-tagged result
// and the run continues; precondition failures (empty queue, more than one
// PDF) abort the whole run before any network activity. Cancellation via
// context is checked between items and interrupts inter-chunk delays.
package batch

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/gradeflow-dev/gradeflow/internal/config"
	"github.com/gradeflow-dev/gradeflow/internal/grader"
	"github.com/gradeflow-dev/gradeflow/internal/logging"
	"github.com/gradeflow-dev/gradeflow/internal/results"
	"github.com/gradeflow-dev/gradeflow/internal/validate"
)

// DispatchFunc submits one essay item and returns its normalized results.
// In production this is the grader client's Evaluate method.
type DispatchFunc func(ctx context.Context, item grader.EssayItem) ([]grader.EvaluationResult, error)

// SleepFunc pauses for the given duration or until the context is canceled.
// Injectable so tests can run the delay policy deterministically.
type SleepFunc func(ctx context.Context, d time.Duration) error

// ProgressFunc receives the rounded percentage of completed chunks after
// each chunk finishes.
type ProgressFunc func(percent int)

// Scheduler partitions an ordered queue of essay items into bounded-size
// chunks and drives sequential dispatch with inter-chunk backoff. The zero
// value is not usable; construct with New.
type Scheduler struct {
	Threshold  int           // queue size above which chunking applies
	ChunkSize  int           // items per chunk once chunking applies
	DelayMin   time.Duration // lower bound of the inter-chunk pause
	DelayMax   time.Duration // upper bound of the inter-chunk pause
	Sleep      SleepFunc     // delay implementation, injectable for tests
	Rand       *rand.Rand    // randomness source, injectable for tests
	OnProgress ProgressFunc  // optional progress callback
}

// New creates a scheduler with the shared default policy: chunks of 3 above
// a 5-item threshold and a 5-8 second randomized pause between chunks.
func New() *Scheduler {
	return &Scheduler{
		Threshold: config.BatchThreshold,
		ChunkSize: config.BatchSize,
		DelayMin:  config.BatchDelayMin,
		DelayMax:  config.BatchDelayMax,
		Sleep:     sleepContext,
		Rand:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Chunks partitions items into chunks of at most size elements, preserving
// order. The final chunk may be smaller.
func Chunks(items []grader.EssayItem, size int) [][]grader.EssayItem {
	if size <= 0 || len(items) == 0 {
		return nil
	}
	var chunks [][]grader.EssayItem
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[start:end])
	}
	return chunks
}

// Run drives submission of the queued items through dispatch, appending
// every normalized result to the aggregator in strict submission order.
//
// Preconditions (empty queue, invalid file types, more than one PDF) are
// checked before any dispatch and abort the run with no partial results.
// After the first dispatch starts, Run only returns an error on context
// cancellation: per-item failures become error-tagged results and the run
// continues through the remaining items and chunks.
func (s *Scheduler) Run(ctx context.Context, items []grader.EssayItem, dispatch DispatchFunc, agg *results.Aggregator) error {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Filename
	}
	if err := validate.SubmissionFiles(names); err != nil {
		return err
	}

	chunked := len(items) > s.Threshold
	var chunks [][]grader.EssayItem
	if chunked {
		chunks = Chunks(items, s.ChunkSize)
		logging.Info("Processing %d essays in %d batches of up to %d", len(items), len(chunks), s.ChunkSize)
	} else {
		chunks = [][]grader.EssayItem{items}
	}

	for chunkIdx, chunk := range chunks {
		for _, item := range chunk {
			if err := ctx.Err(); err != nil {
				return err
			}

			res, err := dispatch(ctx, item)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				logging.Warn("Dispatch failed for '%s': %v", item.Filename, err)
				agg.Append([]grader.EvaluationResult{grader.DispatchFailure(item, err)})
				continue
			}
			agg.Append(res)
		}

		if chunked {
			percent := int(math.Round(float64(chunkIdx+1) / float64(len(chunks)) * 100))
			if s.OnProgress != nil {
				s.OnProgress(percent)
			}
			logging.Info("Batch %d/%d complete (%d%%)", chunkIdx+1, len(chunks), percent)

			// Pause before the next chunk, never after the last one. The
			// randomized window keeps chunk submissions from landing on the
			// upstream rate limiter in lockstep.
			if chunkIdx < len(chunks)-1 {
				if err := s.Sleep(ctx, s.delay()); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// delay picks a uniform random duration within [DelayMin, DelayMax].
func (s *Scheduler) delay() time.Duration {
	window := s.DelayMax - s.DelayMin
	if window <= 0 {
		return s.DelayMin
	}
	return s.DelayMin + time.Duration(s.Rand.Int63n(int64(window)+1))
}

// sleepContext is the production SleepFunc: a timer that respects context
// cancellation so a canceled run does not sit out a multi-second pause.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
