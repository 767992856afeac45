// Package lite provides channel-lifted stages that wrap solo
// primitives for concurrent pipelines. It is designed for simple
// fan-out/fan-in flows.
//
// Common usage:
// - Run: execute an engine over an input channel with a fixed number of lines
// - Then/Annotate/Map/Try/Validate/Tee: lift solo operations over channels
// - Turnout: compose type-changing stages with configurable parallelism
// - RunWith/TurnoutWith: add cancellation handlers and success callbacks
// - Finally: map Outcome[In] to Out on completion
//
// The synchronous contract survives lifting: dependent stages run in
// order per item, a failed item skips every later stage body, and a
// stage's annotation is applied exactly once, when the item passes
// that stage.
package lite
