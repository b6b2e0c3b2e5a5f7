package chain

import "github.com/ib-77/outcome/pkg/outcome"

// Chain wraps an outcome.Result to enable fluent chaining
type Chain[T any] struct {
	result outcome.Result[T]
}

// Start creates a new chain from an outcome.Result
func Start[T any](result outcome.Result[T]) *Chain[T] {
	return &Chain[T]{result: result}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](value T) *Chain[T] {
	return &Chain[T]{result: outcome.Success(value)}
}

// Result returns the underlying outcome.Result
func (c *Chain[T]) Result() outcome.Result[T] {
	return c.result
}

// Then chains a function that returns outcome.Result[U]
func Then[T, U any](c *Chain[T], onSuccess func(T) outcome.Result[U]) *Chain[U] {
	return &Chain[U]{result: outcome.Bind(c.result, onSuccess)}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(T) (U, error)) *Chain[U] {
	return &Chain[U]{result: outcome.Try(c.result, tryOnSuccess)}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(T) U) *Chain[U] {
	return &Chain[U]{result: outcome.Map(c.result, onSuccess)}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(T)) *Chain[T] {
	return &Chain[T]{result: outcome.Tee(c.result, onSuccess)}
}

// Paged ends the chain in a paged result
func (c *Chain[T]) Paged(pagedInfo *outcome.PagedInfo) outcome.PagedResult[T] {
	return c.result.ToPagedResult(pagedInfo)
}

// Finally collapses the chain into a final value
func Finally[T, U any](c *Chain[T], onSuccess func(T) U, onFailure func(outcome.Outcome) U) U {
	return outcome.Match(c.result, onSuccess, onFailure)
}
