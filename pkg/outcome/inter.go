package outcome

import (
	"time"

	"github.com/ib-77/outcome/pkg/fail"
)

type ValueProvider[T any] interface {
	// Value returns the successful result value
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithFailure defines an interface for types that carry either a value
// or a failure chain
type WithFailure[T any] interface {
	ValueProvider[T]
	// Chain returns the failure chain if the operation failed
	Chain() *fail.Chain
	// Err returns the failure chain as a plain error
	Err() error
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}
