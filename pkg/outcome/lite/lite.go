package lite

import (
	"context"
	"sync"

	"github.com/ib-77/outcome/pkg/fail"
	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/core"
	"github.com/ib-77/outcome/pkg/outcome/solo"
)

// Engine is a channel-lifted stage: one input outcome in, one outcome
// out. Stage builders below produce engines from solo primitives.
type Engine[In, Out any] func(ctx context.Context, input outcome.Outcome[In]) <-chan outcome.Outcome[Out]

// lift runs apply over a single outcome on its own goroutine, honoring
// ctx. Each item passes through a stage exactly once, so stage
// annotations are applied exactly once per failure.
func lift[In, Out any](apply func(ctx context.Context, in outcome.Outcome[In]) outcome.Outcome[Out]) Engine[In, Out] {
	return func(ctx context.Context, input outcome.Outcome[In]) <-chan outcome.Outcome[Out] {
		out := make(chan outcome.Outcome[Out], 1)

		go func() {
			defer close(out)

			if ctx.Err() != nil {
				return
			}
			out <- apply(ctx, input)
		}()

		return out
	}
}

// Then lifts an Outcome-returning step; failures skip the step body.
func Then[In, Out any](onSuccess func(ctx context.Context, r In) outcome.Outcome[Out]) Engine[In, Out] {
	return lift(func(ctx context.Context, in outcome.Outcome[In]) outcome.Outcome[Out] {
		return solo.AndThen(ctx, in, onSuccess)
	})
}

// Annotate lifts the annotation combinator; successes pass untouched.
func Annotate[T any](message string) Engine[T, T] {
	return lift(func(ctx context.Context, in outcome.Outcome[T]) outcome.Outcome[T] {
		return solo.Annotate(in, message)
	})
}

func Map[In, Out any](mapOnSuccess func(ctx context.Context, r In) Out) Engine[In, Out] {
	return lift(func(ctx context.Context, in outcome.Outcome[In]) outcome.Outcome[Out] {
		return solo.Map(ctx, in, mapOnSuccess)
	})
}

// Try lifts a (value, error) collaborator, capturing its error as the
// root fault under message.
func Try[In, Out any](message string,
	onTryExecute func(ctx context.Context, r In) (Out, error)) Engine[In, Out] {
	return lift(func(ctx context.Context, in outcome.Outcome[In]) outcome.Outcome[Out] {
		return solo.Try(ctx, in, message, onTryExecute)
	})
}

func Validate[T any](validate func(ctx context.Context, in T) (valid bool, errMsg string)) Engine[T, T] {
	return lift(func(ctx context.Context, in outcome.Outcome[T]) outcome.Outcome[T] {
		return solo.AndValidate(ctx, in, validate)
	})
}

func Tee[T any](sideEffect func(ctx context.Context, r outcome.Outcome[T])) Engine[T, T] {
	return lift(func(ctx context.Context, in outcome.Outcome[T]) outcome.Outcome[T] {
		return solo.Tee(ctx, in, sideEffect)
	})
}

// Run executes an engine over an input channel with a fixed number of
// worker lines, without custom cancellation handling.
func Run[T any](ctx context.Context, inputCh <-chan outcome.Outcome[T],
	engine Engine[T, T], lines int) <-chan outcome.Outcome[T] {
	return RunWith(ctx, inputCh, engine, core.CancellationHandlers[T, T]{}, nil, lines)
}

// Turnout composes a type-changing stage with configurable parallelism.
func Turnout[In, Out any](ctx context.Context, inputCh <-chan outcome.Outcome[In],
	engine Engine[In, Out], lines int) <-chan outcome.Outcome[Out] {
	return TurnoutWith(ctx, inputCh, engine, core.CancellationHandlers[In, Out]{}, nil, lines)
}

// RunWith is Run with explicit cancellation handlers and a success
// callback per forwarded outcome.
func RunWith[T any](ctx context.Context, inputCh <-chan outcome.Outcome[T],
	engine Engine[T, T], handlers core.CancellationHandlers[T, T],
	onSuccess func(ctx context.Context, in outcome.Outcome[T]), lines int) <-chan outcome.Outcome[T] {
	return TurnoutWith[T, T](ctx, inputCh, engine, handlers, onSuccess, lines)
}

func TurnoutWith[In, Out any](ctx context.Context, inputCh <-chan outcome.Outcome[In],
	engine Engine[In, Out], handlers core.CancellationHandlers[In, Out],
	onSuccess func(ctx context.Context, in outcome.Outcome[Out]), lines int) <-chan outcome.Outcome[Out] {

	out := make(chan outcome.Outcome[Out])
	wg := &sync.WaitGroup{}

	for i := 0; i < lines; i++ {
		wg.Add(1)
		go core.Locomotive[In, Out](ctx, inputCh, out, engine, handlers, onSuccess, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

type FinallyHandlers[In, Out any] struct {
	OnSuccess func(ctx context.Context, r In) Out
	OnFailure func(ctx context.Context, chain *fail.Chain) Out
}

// Finally collapses a channel of outcomes into concrete values via the
// handlers, stopping when ctx is done or the input closes.
func Finally[In, Out any](ctx context.Context, inputCh <-chan outcome.Outcome[In],
	handlers FinallyHandlers[In, Out]) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case in, ok := <-inputCh:
				if !ok {
					return
				}

				v := solo.Finally(ctx, in, handlers.OnSuccess, handlers.OnFailure)

				select {
				case out <- v:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}
