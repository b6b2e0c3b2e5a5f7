// Package chain provides a fluent wrapper around outcome.Result[T]
// for building synchronous pipelines.
//
// Every step short-circuits on failure: once a step fails, later steps are
// not invoked and the failure's status, errors and validation errors are
// carried to the end of the chain.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or value
// - Then: switch to a new Result[U] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Ensure: run side effects on success without changing the result
// - Paged: finish with a PagedResult[T]
// - Finally: collapse the chain into a final value via handlers
package chain
