package router

import (
	"context"
	"net/http"

	"github.com/batonhttp/baton/core/handler"
)

// Chain is an ordered list of handler steps registered against one route.
// The transient-state type parameter ties every step in the chain to the
// same per-request state type at compile time.
type Chain[S any, T handler.TransientState[T]] struct {
	steps []handler.HandlerFunc[S, T]
}

// NewChain composes steps into a chain. Steps execute in the given order.
func NewChain[S any, T handler.TransientState[T]](steps ...handler.HandlerFunc[S, T]) *Chain[S, T] {
	return &Chain[S, T]{steps: steps}
}

// Append returns a new chain with the extra steps added after the existing
// ones. The receiver is not modified.
func (c *Chain[S, T]) Append(steps ...handler.HandlerFunc[S, T]) *Chain[S, T] {
	combined := make([]handler.HandlerFunc[S, T], 0, len(c.steps)+len(steps))
	combined = append(combined, c.steps...)
	combined = append(combined, steps...)
	return &Chain[S, T]{steps: combined}
}

// Len returns the number of steps in the chain.
func (c *Chain[S, T]) Len() int { return len(c.steps) }

// Execute runs the chain against one request. The transient state starts at
// its Initial() value and the response starts nil; each successful step hands
// the (request, response, transient state) triple to the next. The previous
// step's response is visible to and may be overwritten by the next step. The
// first error aborts execution immediately: no step after an error ever
// runs, and the partially-built transient state is discarded with the chain.
// The context is checked between steps so a disconnected client cancels the
// chain at the next step boundary.
//
// Execution is strictly sequential within one chain; concurrency exists only
// across distinct requests.
func (c *Chain[S, T]) Execute(
	ctx context.Context,
	req *http.Request,
	params handler.Params,
	state *handler.State[S],
) (*handler.Response, error) {
	var zero T
	ts := zero.Initial()

	var (
		resp *handler.Response
		err  error
	)
	for _, step := range c.steps {
		if cerr := ctx.Err(); cerr != nil {
			return nil, cerr
		}
		req, resp, ts, err = step(ctx, req, resp, params, state, ts)
		if err != nil {
			return nil, err
		}
	}
	return resp, nil
}
