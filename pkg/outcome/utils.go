package outcome

import (
	"context"
	"errors"
	"reflect"

	"github.com/ib-77/outcome/pkg/fail"
)

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// ChainOf extracts a *fail.Chain from err when err is one, directly or
// wrapped. Combinators use it to extend an already-contextual failure
// instead of flattening it into an opaque fault.
func ChainOf(err error) (*fail.Chain, bool) {
	var c *fail.Chain
	if errors.As(err, &c) {
		return c, true
	}
	return nil, false
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
