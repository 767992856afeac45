// Package fail defines the immutable error chain carried by failed
// Outcomes: a message plus an optional cause, where the cause is either
// a deeper chain or a raw external fault.
//
// Key operations:
// - Leaf/WrapFault: construct a chain at the failure site
// - Wrap: add outer context without touching the wrapped chain
// - Messages/UserMessage: render contexts outermost-first
// - RootFault: recover the terminal raw fault for classification
//
// Chain also satisfies the error interface and implements Unwrap, so
// errors.Is and errors.As reach the captured fault.
package fail
