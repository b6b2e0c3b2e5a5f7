// Package outcome provides Result[T], a status-tagged value that operations
// return instead of panicking or returning a bare value.
//
// A Result carries exactly one Status. StatusOk results carry a payload; every
// other status is a failure that may carry plain error messages, structured
// validation errors (StatusInvalid) and a correlation id.
//
// Key operations:
// - Success/SuccessWithMessage: build a successful Result[T]
// - Error/Invalid/NotFound/Forbidden/Unauthorized/Conflict/CriticalError/Unavailable: build failures
// - Map/Bind/Try/Tee/Match: compose results; failures short-circuit and keep their status and errors
// - Convert: re-type a failure without its payload
// - ToPagedResult/NewPagedResult: attach PagedInfo to a collection result
//
// Payload-less results live in package void, fluent chaining in package chain.
package outcome
