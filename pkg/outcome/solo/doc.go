// Package solo contains single-value, synchronous primitives that
// operate on Outcome[T]. These functions form the core building blocks
// for context-annotated pipelines without channels.
//
// Highlights:
// - Succeed/Fail/FailMsg/FailFault: construct Outcome[T]
// - AndThen: move from Outcome[In] to Outcome[Out], short-circuiting failures
// - Annotate: add outer context to a failure, pass successes through
// - Validate/AndValidate: apply validation producing a leaf failure
// - Map: transform successful values
// - Try/FailOn: call (Out, error) collaborators and capture raw faults
// - Tee/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/failure handlers
// - Seq: run same-type steps in order until the first failure
package solo
