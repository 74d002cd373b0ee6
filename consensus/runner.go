package consensus

import (
	"context"
	"fmt"
	"time"

	"github.com/tsawler/tablature/model"
)

// ErrDeadline is returned when a strategy fails to produce a result
// inside its time budget. The strategy's eventual result, if any, is
// discarded.
var ErrDeadline = fmt.Errorf("strategy deadline exceeded")

type strategyResult struct {
	candidates []*model.CandidateTable
	err        error
}

// RunWithTimeout executes a strategy with a hard time budget. The
// strategy runs on its own goroutine with the deadline propagated via
// context; if it does not finish in time the call returns ErrDeadline
// and any late result is dropped on the buffered channel. A strategy
// that overruns its budget never contributes candidates.
func RunWithTimeout(ctx context.Context, s Strategy, page *model.PageData, d time.Duration) ([]*model.CandidateTable, error) {
	if d <= 0 {
		return s.Extract(ctx, page)
	}

	runCtx, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	// Buffered so a late strategy can still send and exit instead of
	// leaking.
	done := make(chan strategyResult, 1)
	go func() {
		candidates, err := s.Extract(runCtx, page)
		done <- strategyResult{candidates: candidates, err: err}
	}()

	select {
	case res := <-done:
		return res.candidates, res.err
	case <-runCtx.Done():
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("strategy %q: %w", s.Name(), ErrDeadline)
	}
}
