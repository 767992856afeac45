package flow

import (
	"context"

	"github.com/ib-77/outcome/pkg/fail"
	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/solo"
)

// Flow wraps an Outcome with context to enable fluent chaining
type Flow[T any] struct {
	ctx context.Context
	out outcome.Outcome[T]
}

// Start creates a new flow from an Outcome
func Start[T any](ctx context.Context, out outcome.Outcome[T]) *Flow[T] {
	return &Flow[T]{
		ctx: ctx,
		out: out,
	}
}

// FromValue creates a new flow from a successful value
func FromValue[T any](ctx context.Context, value T) *Flow[T] {
	return &Flow[T]{
		ctx: ctx,
		out: outcome.Succeed(value),
	}
}

// Outcome returns the underlying Outcome
func (f *Flow[T]) Outcome() outcome.Outcome[T] {
	return f.out
}

// Then chains a function that returns Outcome[U]
func Then[T, U any](f *Flow[T], onSuccess func(context.Context, T) outcome.Outcome[U]) *Flow[U] {
	return &Flow[U]{
		ctx: f.ctx,
		out: solo.AndThen[T, U](f.ctx, f.out, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error); a returned error
// is captured as a raw fault under message
func ThenTry[T, U any](f *Flow[T], message string, tryOnSuccess func(context.Context, T) (U, error)) *Flow[U] {
	return &Flow[U]{
		ctx: f.ctx,
		out: solo.Try[T, U](f.ctx, f.out, message, tryOnSuccess),
	}
}

// Map chains a pure transformation function
func Map[T, U any](f *Flow[T], onSuccess func(context.Context, T) U) *Flow[U] {
	return &Flow[U]{
		ctx: f.ctx,
		out: solo.Map[T, U](f.ctx, f.out, onSuccess),
	}
}

// Annotate adds outer context to a failed flow; a successful flow is
// returned unchanged
func (f *Flow[T]) Annotate(message string) *Flow[T] {
	return &Flow[T]{
		ctx: f.ctx,
		out: solo.Annotate(f.out, message),
	}
}

// OnError is a readability alias for Annotate, for call sites that read
// better as "and if that failed, note this"
func (f *Flow[T]) OnError(message string) *Flow[T] {
	return f.Annotate(message)
}

// Ensure performs a side effect without changing the result
func (f *Flow[T]) Ensure(onSuccess func(context.Context, T)) *Flow[T] {
	return &Flow[T]{
		ctx: f.ctx,
		out: solo.Tee[T](f.ctx, f.out,
			func(ctx context.Context, out outcome.Outcome[T]) {
				if out.IsSuccess() {
					onSuccess(ctx, out.Value())
				}
			}),
	}
}

// Finally collapses the flow into a final result using solo.Finally
func Finally[T, U any](f *Flow[T], onSuccess func(context.Context, T) U,
	onFailure func(context.Context, *fail.Chain) U) U {
	return solo.Finally[T, U](f.ctx, f.out, onSuccess, onFailure)
}
