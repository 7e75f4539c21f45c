// Package handler defines the chain-step contract shared by the whole
// framework: the HandlerFunc signature, per-request transient state, captured
// path parameters, the in-memory Response under construction, HTTP error
// values, and the guarded shared application State.
//
// Every registered unit of request handling is a HandlerFunc. There is no
// separate middleware type: a step that passes the response through untouched
// is middleware, a step that sets it is a responder, and any step may be
// both. Steps run strictly in order; the first error aborts the chain.
//
// Basic usage:
//
//	func hello(ctx context.Context, req *http.Request, resp *handler.Response,
//		params handler.Params, state *handler.State[struct{}], ts handler.NoState,
//	) (*http.Request, *handler.Response, handler.NoState, error) {
//		return req, handler.Text(http.StatusOK, "hello "+params.Get("name")), ts, nil
//	}
//
// Chains that need per-request state declare a type implementing
// TransientState; a fresh Initial() value is created for every matched
// request and is never shared across requests.
package handler
