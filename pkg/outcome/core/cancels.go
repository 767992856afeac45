package core

import (
	"context"
	"errors"

	"github.com/ib-77/outcome/pkg/outcome"
)

const (
	cancelledMessage = "pipeline cancelled before step could run"
	deadlineMessage  = "pipeline deadline exceeded before step could run"
)

// CancelRemaining drains inputCh, turning unprocessed successes into
// failures explaining the stop. Inputs that already failed keep their
// chains untouched and are only retyped.
func CancelRemaining[In, Out any](ctx context.Context,
	inputCh <-chan outcome.Outcome[In], outCh chan<- outcome.Outcome[Out]) {

	if !IsProcessRemainingEnabled(ctx, true) {
		return
	}

	for in := range inputCh {
		outCh <- cancelOne[In, Out](ctx, in)
	}
}

// CancelUnprocessed handles the single item a worker had taken but not
// yet run when the pipeline stopped.
func CancelUnprocessed[In, Out any](ctx context.Context, in outcome.Outcome[In],
	outCh chan<- outcome.Outcome[Out]) {

	if !IsProcessRemainingEnabled(ctx, true) {
		return
	}

	outCh <- cancelOne[In, Out](ctx, in)
}

// ForwardProcessed lets a result whose stage already completed pass
// through on cancellation; its annotations were applied when the stage
// ran and are not revisited.
func ForwardProcessed[In, Out any](ctx context.Context, in outcome.Outcome[In],
	processed outcome.Outcome[Out], outCh chan<- outcome.Outcome[Out]) {

	if !IsProcessRemainingEnabled(ctx, true) {
		return
	}

	outCh <- processed
}

func cancelOne[In, Out any](ctx context.Context, in outcome.Outcome[In]) outcome.Outcome[Out] {
	if in.IsFailure() {
		return outcome.FailFrom[In, Out](in)
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return outcome.FailMsg[Out](deadlineMessage)
	}
	return outcome.FailMsg[Out](cancelledMessage)
}
