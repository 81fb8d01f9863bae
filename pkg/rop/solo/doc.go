// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T]. These functions form the core building blocks for error-aware
// pipelines.
//
// Highlights:
// - Succeed: construct a successful Result[T]
// - Validate/AndValidate/ValidateAll: apply validation producing failure on invalid input
// - Switch: move from Result[In] to Result[Out]
// - Map/MapError: transform the successful value or the failure's error
// - Try: call a function (Out, error) and convert error to failure
// - DoubleTee: side-effect helper for both tracks
// - Finally/Recover: reduce to a concrete value via handlers
package solo
