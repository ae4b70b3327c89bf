// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T]. They are the glue between a validation chain and the rest of a
// two-track pipeline.
//
// Highlights:
// - Succeed: construct a successful Result[T]
// - Validate/AndValidate: apply a predicate producing failure on invalid input
// - Switch: move from Result[In] to Result[Out]
// - Tee: run a side effect on success
// - Finally: reduce to a concrete value via success/error/cancel handlers
package solo
