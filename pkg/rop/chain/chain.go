package chain

import (
	"context"

	"github.com/ib-77/ropatlas/pkg/rop"
	"github.com/ib-77/ropatlas/pkg/rop/solo"
)

// Chain wraps a rop.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result rop.Result[T]
}

// Start creates a new chain from a rop.Result
func Start[T any](ctx context.Context, result rop.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: rop.Success(value),
	}
}

// Result returns the underlying rop.Result
func (c *Chain[T]) Result() rop.Result[T] {
	return c.result
}

// Then chains a function that returns rop.Result[U]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) rop.Result[U]) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Switch[T, U](c.ctx, c.result, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Try[T, U](c.ctx, c.result, tryOnSuccess),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Map[T, U](c.ctx, c.result, onSuccess),
	}
}

// MapError rewrites the error of a failed chain
func (c *Chain[T]) MapError(onError func(context.Context, error) error) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: solo.MapError[T](c.ctx, c.result, onError),
	}
}

// Ensure performs side effects without changing the result. Either
// callback may be nil.
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, error)) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: solo.DoubleTee[T](c.ctx, c.result, onSuccess, onFailure),
	}
}

// Recover collapses the chain into its value, or the fallback produced
// from the error
func (c *Chain[T]) Recover(onFailure func(context.Context, error) T) T {
	return solo.Recover[T](c.ctx, c.result, onFailure)
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U) U {
	return solo.Finally[T, U](c.ctx, c.result, onSuccess, onFailure)
}
