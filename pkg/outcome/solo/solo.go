package solo

import (
	"context"

	"github.com/ib-77/outcome/pkg/fail"
	"github.com/ib-77/outcome/pkg/outcome"
)

func Succeed[T any](input T) outcome.Outcome[T] {
	return outcome.Succeed(input)
}

func Fail[T any](chain *fail.Chain) outcome.Outcome[T] {
	return outcome.Fail[T](chain)
}

func FailMsg[T any](message string) outcome.Outcome[T] {
	return outcome.FailMsg[T](message)
}

func FailFault[T any](message string, fault error) outcome.Outcome[T] {
	return outcome.FailFault[T](message, fault)
}

// AndThen is the composition primitive. On success the next step runs
// with the carried value; on failure the step is never invoked and the
// failure propagates unchanged through the type switch.
func AndThen[In any, Out any](ctx context.Context,
	input outcome.Outcome[In],
	onSuccess func(ctx context.Context, r In) outcome.Outcome[Out]) outcome.Outcome[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return outcome.FailFrom[In, Out](input)
}

// Annotate is the annotation combinator: a failed input gains message
// as outer context, a successful input passes through untouched.
func Annotate[T any](input outcome.Outcome[T], message string) outcome.Outcome[T] {
	if input.IsFailure() {
		return outcome.Fail[T](input.Chain().Wrap(message))
	}
	return input
}

func Map[In any, Out any](ctx context.Context,
	input outcome.Outcome[In],
	onSuccess func(ctx context.Context, r In) Out) outcome.Outcome[Out] {

	if input.IsSuccess() {
		return outcome.Succeed(onSuccess(ctx, input.Value()))
	}
	return outcome.FailFrom[In, Out](input)
}

// Try runs a conventional (value, error) collaborator. A returned error
// becomes the innermost fault, captured under message at the failure
// site; an error that already is a *fail.Chain gains message as outer
// context instead of being flattened.
func Try[In any, Out any](ctx context.Context, input outcome.Outcome[In], message string,
	onTryExecute func(ctx context.Context, r In) (Out, error)) outcome.Outcome[Out] {

	if input.IsSuccess() {

		out, err := onTryExecute(ctx, input.Value())
		if err != nil {
			if chain, ok := outcome.ChainOf(err); ok {
				return outcome.Fail[Out](chain.Wrap(message))
			}
			return outcome.FailFault[Out](message, err)
		}

		return outcome.Succeed(out)
	}

	return outcome.FailFrom[In, Out](input)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) outcome.Outcome[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input outcome.Outcome[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) outcome.Outcome[T] {

	if input.IsSuccess() {

		if isValid, errMsg := validate(ctx, input.Value()); isValid {
			return outcome.Succeed(input.Value())
		} else {
			return outcome.FailMsg[T](errMsg)
		}
	}
	return input
}

// FailOn turns a guard check into a failure, capturing the returned
// error as the root fault under message.
func FailOn[T any](ctx context.Context, input outcome.Outcome[T], message string,
	maybeErr func(ctx context.Context, in T) error) outcome.Outcome[T] {

	if input.IsSuccess() {
		if err := maybeErr(ctx, input.Value()); err != nil {
			return outcome.FailFault[T](message, err)
		}
	}
	return input
}

func Tee[T any](ctx context.Context,
	input outcome.Outcome[T],
	onSuccess func(ctx context.Context, r outcome.Outcome[T])) outcome.Outcome[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}

func DoubleTee[T any](ctx context.Context, input outcome.Outcome[T],
	onSuccess func(ctx context.Context, r T),
	onFailure func(ctx context.Context, chain *fail.Chain)) outcome.Outcome[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Value())
	} else {
		onFailure(ctx, input.Chain())
	}

	return input
}

func Finally[In, Out any](ctx context.Context, input outcome.Outcome[In],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, chain *fail.Chain) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return onFailure(ctx, input.Chain())
}

// Seq threads input through same-type steps, stopping on the first
// failure or once ctx is done. Later steps are never invoked after a
// failure.
func Seq[T any](ctx context.Context,
	input outcome.Outcome[T],
	steps ...func(ctx context.Context, in T) outcome.Outcome[T]) outcome.Outcome[T] {

	current := input
	for _, step := range steps {
		if current.IsFailure() || !outcome.IsNil(ctx.Err()) {
			return current
		}
		current = step(ctx, current.Value())
	}
	return current
}
