package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/batonhttp/baton/core/handler"
)

// requestIDContextKey is used as a key for storing the request ID in the
// request context.
type requestIDContextKey struct{}

// HeaderRequestID is the header carrying the request ID.
const HeaderRequestID = "X-Request-ID"

// RequestID returns a chain step that ensures every request carries an ID:
// an existing X-Request-ID header is kept, otherwise a new UUID v4 is
// generated. The ID is stored on the request header and in the request
// context. Place it at the front of a chain; pair with EchoRequestID to
// expose the ID to clients.
func RequestID[S any, T handler.TransientState[T]]() handler.HandlerFunc[S, T] {
	return func(
		ctx context.Context,
		req *http.Request,
		resp *handler.Response,
		params handler.Params,
		state *handler.State[S],
		ts T,
	) (*http.Request, *handler.Response, T, error) {
		id := req.Header.Get(HeaderRequestID)
		if id == "" {
			id = uuid.New().String()
			req.Header.Set(HeaderRequestID, id)
		}
		req = req.WithContext(context.WithValue(req.Context(), requestIDContextKey{}, id))
		return req, resp, ts, nil
	}
}

// EchoRequestID returns a chain step that copies the request ID onto the
// response so clients can correlate answers with requests. It does nothing
// when no response has been produced yet, so place it at the end of a chain.
func EchoRequestID[S any, T handler.TransientState[T]]() handler.HandlerFunc[S, T] {
	return func(
		ctx context.Context,
		req *http.Request,
		resp *handler.Response,
		params handler.Params,
		state *handler.State[S],
		ts T,
	) (*http.Request, *handler.Response, T, error) {
		if resp != nil {
			if id, ok := GetRequestID(req); ok {
				resp.SetHeader(HeaderRequestID, id)
			}
		}
		return req, resp, ts, nil
	}
}

// GetRequestID retrieves the request ID stored by RequestID.
// Returns the ID and whether it was found.
func GetRequestID(req *http.Request) (string, bool) {
	id, ok := req.Context().Value(requestIDContextKey{}).(string)
	return id, ok
}
