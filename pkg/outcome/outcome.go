package outcome

import (
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/outcome/pkg/fail"
)

// Outcome is the result of one fallible step: a success value or a
// failure chain, never both. Combinators return new values; an Outcome
// is never transitioned in place.
type Outcome[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	chain     *fail.Chain
	isSuccess bool
}

func Succeed[T any](v T) Outcome[T] {
	return Outcome[T]{
		value:     v,
		chain:     nil,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](chain *fail.Chain) Outcome[T] {
	return Outcome[T]{
		chain:     chain,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailMsg fails with a terminal leaf message and no underlying fault.
func FailMsg[T any](message string) Outcome[T] {
	return Fail[T](fail.Leaf(message))
}

// FailFault fails at the original failure site, capturing the raw fault
// as the innermost cause.
func FailFault[T any](message string, fault error) Outcome[T] {
	return Fail[T](fail.WrapFault(message, fault))
}

// FailFrom retypes a failed Outcome without touching its chain,
// identity or creation time. Used by combinators to propagate a failure
// through a type change.
func FailFrom[In, Out any](from Outcome[In]) Outcome[Out] {
	return Outcome[Out]{
		chain:     from.chain,
		isSuccess: from.isSuccess,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (o Outcome[T]) Value() T {
	return o.value
}

// Chain returns the failure chain, or nil on success.
func (o Outcome[T]) Chain() *fail.Chain {
	return o.chain
}

// Err returns the failure chain as a plain error, or nil on success.
func (o Outcome[T]) Err() error {
	if o.chain == nil {
		return nil
	}
	return o.chain
}

func (o Outcome[T]) IsSuccess() bool {
	return o.isSuccess
}

func (o Outcome[T]) IsFailure() bool {
	return !o.isSuccess && o.chain != nil
}

func (o Outcome[T]) CreatedAt() time.Time {
	return o.createdAt
}

func (o Outcome[T]) IsEmpty() bool {
	return o.chain == nil && !o.isSuccess
}

func (o Outcome[T]) Id() uuid.UUID {
	return o.id
}
