// Package middleware implements cwist's reentrant middleware chain
// executor and its built-in middlewares: access logging, CORS,
// request IDs, and rate limiting.
package middleware

import "cwist/wire"

// Next advances the chain to the following middleware, or to the final
// handler once the chain is exhausted.
type Next func(req *wire.Request) *wire.Response

// Middleware may inspect/mutate the request before calling next, inspect/
// mutate the response it returns, or short-circuit by not calling next at
// all (e.g. a CORS preflight answering 204 directly).
type Middleware func(req *wire.Request, next Next) *wire.Response

// Chain is an ordered, append-only list of middlewares run ahead of the
// final route handler.
type Chain struct {
	middlewares []Middleware
}

// NewChain creates an empty chain.
func NewChain() *Chain {
	return &Chain{}
}

// Use appends middlewares to the chain, to run in the order given.
func (c *Chain) Use(mw ...Middleware) {
	c.middlewares = append(c.middlewares, mw...)
}

// Dispatch runs the chain against req, terminating at final if every
// middleware calls next. State for the walk lives entirely on this call's
// stack (the iteration index), never in package-level variables, so
// concurrent dispatches never interfere with one another.
func (c *Chain) Dispatch(req *wire.Request, final Next) *wire.Response {
	var step func(i int) Next
	step = func(i int) Next {
		return func(req *wire.Request) *wire.Response {
			if i >= len(c.middlewares) {
				return final(req)
			}
			return c.middlewares[i](req, step(i+1))
		}
	}
	return step(0)(req)
}
