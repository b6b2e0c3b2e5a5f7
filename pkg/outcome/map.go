package outcome

// Map applies onSuccess to the payload of a successful result. A failure is
// passed through with its status, errors and validation errors, and onSuccess
// is not called. An Ok result without a payload stays Ok without one.
func Map[In any, Out any](input Result[In], onSuccess func(r In) Out) Result[Out] {
	if !input.hasPayload() {
		return Convert[Out](input)
	}

	out := Success(onSuccess(input.value))
	out.successMessage = input.successMessage
	out.correlationID = input.correlationID
	return out
}

// Bind switches a successful result to the result returned by onSuccess.
func Bind[In any, Out any](input Result[In], onSuccess func(r In) Result[Out]) Result[Out] {
	if !input.hasPayload() {
		return Convert[Out](input)
	}
	return onSuccess(input.value)
}

// Try runs an (Out, error) returning function on the payload; a non-nil error
// becomes an Error result.
func Try[In any, Out any](input Result[In], onTryExecute func(r In) (Out, error)) Result[Out] {
	if !input.hasPayload() {
		return Convert[Out](input)
	}

	out, err := onTryExecute(input.value)
	if err != nil {
		return Error[Out](err.Error()).WithCorrelationID(input.correlationID)
	}

	res := Success(out)
	res.correlationID = input.correlationID
	return res
}

// Tee runs a side effect on the payload and returns the input unchanged.
func Tee[T any](input Result[T], onSuccess func(r T)) Result[T] {
	if input.hasPayload() {
		onSuccess(input.value)
	}
	return input
}

// Match collapses a result into a single value. onSuccess sees the payload;
// onFailure gets every result without one, including an empty Ok.
func Match[In any, Out any](input Result[In],
	onSuccess func(r In) Out,
	onFailure func(failed Outcome) Out) Out {

	if input.hasPayload() {
		return onSuccess(input.value)
	}
	return onFailure(input)
}

func (r Result[T]) hasPayload() bool {
	return r.IsSuccess() && r.hasValue
}
