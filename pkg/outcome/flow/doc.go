// Package flow provides a fluent wrapper around Outcome[T]
// for building synchronous annotated pipelines using solo primitives.
//
// It composes functions like AndThen, Map, Try, Tee, and Finally behind
// a convenient Flow[T] type. This enables ergonomic pipelines without
// dealing directly with branching outcomes at each step.
//
// Key operations:
// - Start/FromValue: begin a flow from an Outcome[T] or value
// - Then: switch to a new Outcome[U] via a function
// - ThenTry: call a function (U, error) and capture the error as a fault
// - Map: transform the successful value (T -> U)
// - Annotate/OnError: add outer context when the flow has failed
// - Ensure: run side effects on success without changing the result
// - Finally: collapse the flow into a final value via handlers
package flow
