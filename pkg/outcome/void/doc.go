// Package void provides entry points for results without a payload.
//
// A void Result is outcome.Result[outcome.Unit]; it shares every accessor and
// the Map/Bind machinery of the generic type. Lift turns a void failure into a
// Result[T] of any payload type.
package void
