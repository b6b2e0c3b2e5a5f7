package void

import "github.com/ib-77/outcome/pkg/outcome"

// Result is the outcome of an operation that returns no value.
type Result = outcome.Result[outcome.Unit]

func Success() Result {
	return outcome.Success(outcome.Unit{})
}

func SuccessWithMessage(message string) Result {
	return outcome.SuccessWithMessage(outcome.Unit{}, message)
}

// SuccessOf builds a value-bearing result from the void entry point.
func SuccessOf[T any](value T) outcome.Result[T] {
	return outcome.Success(value)
}

func SuccessOfWithMessage[T any](value T, message string) outcome.Result[T] {
	return outcome.SuccessWithMessage(value, message)
}

func Error(messages ...string) Result {
	return outcome.Error[outcome.Unit](messages...)
}

func ErrorWithCorrelationID(correlationID string, messages ...string) Result {
	return outcome.ErrorWithCorrelationID[outcome.Unit](correlationID, messages...)
}

func Invalid(validationErrors ...outcome.ValidationError) Result {
	return outcome.Invalid[outcome.Unit](validationErrors...)
}

func NotFound(messages ...string) Result {
	return outcome.NotFound[outcome.Unit](messages...)
}

func Forbidden() Result {
	return outcome.Forbidden[outcome.Unit]()
}

func Unauthorized() Result {
	return outcome.Unauthorized[outcome.Unit]()
}

func Conflict(messages ...string) Result {
	return outcome.Conflict[outcome.Unit](messages...)
}

func CriticalError(messages ...string) Result {
	return outcome.CriticalError[outcome.Unit](messages...)
}

func Unavailable(messages ...string) Result {
	return outcome.Unavailable[outcome.Unit](messages...)
}

// Lift converts a void result into a Result[T] with the same status, errors
// and validation errors and no payload.
func Lift[T any](r Result) outcome.Result[T] {
	return outcome.Convert[T](r)
}
