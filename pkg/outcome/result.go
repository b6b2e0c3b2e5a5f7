package outcome

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"slices"

	"github.com/google/uuid"
)

// ErrNoValue is returned when the payload of a Result is read but there is none,
// which is always the case for a failure.
var ErrNoValue = errors.New("outcome: result has no value")

type Result[T any] struct {
	status           Status
	value            T
	hasValue         bool
	errors           []string
	validationErrors []ValidationError
	successMessage   string
	correlationID    string
}

var _ Outcome = Result[Unit]{}

func Success[T any](value T) Result[T] {
	return Result[T]{
		status:   StatusOk,
		value:    value,
		hasValue: true,
	}
}

func SuccessWithMessage[T any](value T, message string) Result[T] {
	r := Success(value)
	r.successMessage = message
	return r
}

func Error[T any](messages ...string) Result[T] {
	return failure[T](StatusError, messages)
}

func ErrorWithCorrelationID[T any](correlationID string, messages ...string) Result[T] {
	r := failure[T](StatusError, messages)
	r.correlationID = correlationID
	return r
}

// ErrorWithNewCorrelationID is ErrorWithCorrelationID with a freshly generated id.
func ErrorWithNewCorrelationID[T any](messages ...string) Result[T] {
	return ErrorWithCorrelationID[T](NewCorrelationID(), messages...)
}

func Invalid[T any](validationErrors ...ValidationError) Result[T] {
	return Result[T]{
		status:           StatusInvalid,
		validationErrors: slices.Clone(validationErrors),
	}
}

func NotFound[T any](messages ...string) Result[T] {
	return failure[T](StatusNotFound, messages)
}

func Forbidden[T any]() Result[T] {
	return Result[T]{status: StatusForbidden}
}

func Unauthorized[T any]() Result[T] {
	return Result[T]{status: StatusUnauthorized}
}

func Conflict[T any](messages ...string) Result[T] {
	return failure[T](StatusConflict, messages)
}

func CriticalError[T any](messages ...string) Result[T] {
	return failure[T](StatusCriticalError, messages)
}

func Unavailable[T any](messages ...string) Result[T] {
	return failure[T](StatusUnavailable, messages)
}

func failure[T any](status Status, messages []string) Result[T] {
	return Result[T]{
		status: status,
		errors: slices.Clone(messages),
	}
}

// Convert re-types a result to Result[Out]. Status, errors, validation errors
// and metadata are carried over; the payload is dropped.
func Convert[Out any, In any](from Result[In]) Result[Out] {
	return Result[Out]{
		status:           from.status,
		errors:           from.errors,
		validationErrors: from.validationErrors,
		successMessage:   from.successMessage,
		correlationID:    from.correlationID,
	}
}

// NewCorrelationID returns a random identifier suitable for WithCorrelationID.
func NewCorrelationID() string {
	return uuid.NewString()
}

// WithCorrelationID returns a copy of r carrying the given correlation id.
func (r Result[T]) WithCorrelationID(id string) Result[T] {
	r.correlationID = id
	return r
}

// WithErrors returns a copy of a failed r with messages appended to its
// errors. Successful results are returned unchanged.
func (r Result[T]) WithErrors(messages ...string) Result[T] {
	if r.IsSuccess() || len(messages) == 0 {
		return r
	}
	r.errors = append(slices.Clone(r.errors), messages...)
	return r
}

func (r Result[T]) Status() Status {
	return r.status
}

func (r Result[T]) IsSuccess() bool {
	return r.status.IsSuccess()
}

func (r Result[T]) HasValue() bool {
	return r.hasValue
}

func (r Result[T]) Errors() []string {
	if len(r.errors) == 0 {
		return []string{}
	}
	return slices.Clone(r.errors)
}

func (r Result[T]) ValidationErrors() []ValidationError {
	if len(r.validationErrors) == 0 {
		return []ValidationError{}
	}
	return slices.Clone(r.validationErrors)
}

func (r Result[T]) SuccessMessage() string {
	return r.successMessage
}

func (r Result[T]) CorrelationID() string {
	return r.correlationID
}

// Value returns the payload, or ErrNoValue if the result is not a successful
// one carrying a value.
func (r Result[T]) Value() (T, error) {
	if !r.IsSuccess() || !r.hasValue {
		var zero T
		return zero, fmt.Errorf("%w: status %s", ErrNoValue, r.status)
	}
	return r.value, nil
}

// MustValue is like Value but panics instead of returning an error.
func (r Result[T]) MustValue() T {
	v, err := r.Value()
	if err != nil {
		panic(err)
	}
	return v
}

func (r Result[T]) ValueOr(fallback T) T {
	if v, err := r.Value(); err == nil {
		return v
	}
	return fallback
}

func (r Result[T]) Get() (T, bool) {
	v, err := r.Value()
	return v, err == nil
}

func (r Result[T]) GetValue() any {
	if !r.hasValue {
		return nil
	}
	return r.value
}

func (r Result[T]) ValueType() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// LogValue renders the result for log/slog. The payload itself is not logged.
func (r Result[T]) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("status", r.status.String()),
		slog.Bool("success", r.IsSuccess()),
	}
	if r.successMessage != "" {
		attrs = append(attrs, slog.String("success_message", r.successMessage))
	}
	if r.correlationID != "" {
		attrs = append(attrs, slog.String("correlation_id", r.correlationID))
	}
	if len(r.errors) > 0 {
		attrs = append(attrs, slog.Any("errors", r.errors))
	}
	if len(r.validationErrors) > 0 {
		group := make([]any, 0, len(r.validationErrors))
		for i, ve := range r.validationErrors {
			group = append(group, slog.Any(fmt.Sprint(i), ve))
		}
		attrs = append(attrs, slog.Group("validation_errors", group...))
	}
	return slog.GroupValue(attrs...)
}
