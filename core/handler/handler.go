package handler

import (
	"context"
	"net/http"
)

// WildcardKey is the Params key under which a trailing wildcard segment
// stores the remainder of the matched path.
const WildcardKey = "*"

// Params holds named path parameters captured during route matching.
// A fresh map is built for every matched request; handlers treat it as
// read-only.
type Params map[string]string

// Get returns the captured value for key, or "" if the key was not bound.
func (p Params) Get(key string) string {
	if p == nil {
		return ""
	}
	return p[key]
}

// Wildcard returns the path remainder captured by a trailing "*" segment.
func (p Params) Wildcard() string {
	return p.Get(WildcardKey)
}

// TransientState is the per-request state a chain threads between its steps.
// Initial is called on the zero value once per incoming request that matches
// the chain; the returned value is owned exclusively by that request and is
// never shared across requests.
type TransientState[T any] interface {
	Initial() T
}

// NoState is the TransientState for chains that carry no per-request state.
type NoState struct{}

// Initial implements TransientState.
func (NoState) Initial() NoState { return NoState{} }

// HandlerFunc is a single chain step. It receives the request, the response
// produced so far (nil until some step sets one), the captured path
// parameters, the shared application State (nil when the App carries none),
// and the chain's transient state. It returns the possibly-mutated request,
// the possibly-replaced response, and the transient state for the next step,
// or an error that aborts the chain immediately.
//
// The previous step's response is visible to and may be overwritten by the
// next step. This is what makes any handler usable as middleware: an
// upstream step may set a provisional response that a downstream step
// replaces, or leave it nil for a downstream step to supply.
type HandlerFunc[S any, T TransientState[T]] func(
	ctx context.Context,
	req *http.Request,
	resp *Response,
	params Params,
	state *State[S],
	ts T,
) (*http.Request, *Response, T, error)
