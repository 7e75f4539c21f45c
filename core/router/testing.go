package router

import (
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/batonhttp/baton/core/handler"
)

// TestApp dispatches requests against an App in memory, without standing up
// a listener. Useful in tests and anywhere dispatch needs to be exercised
// directly.
type TestApp[S any, T handler.TransientState[T]] struct {
	app     *App[S, T]
	headers http.Header
}

// NewTestApp wraps app for in-memory dispatch.
func NewTestApp[S any, T handler.TransientState[T]](app *App[S, T]) *TestApp[S, T] {
	return &TestApp[S, T]{app: app}
}

// WithHeaders returns a copy of the TestApp that applies headers to every
// following request.
func (ta *TestApp[S, T]) WithHeaders(headers http.Header) *TestApp[S, T] {
	return &TestApp[S, T]{app: ta.app, headers: headers.Clone()}
}

// Do dispatches a single request and returns the recorded response.
func (ta *TestApp[S, T]) Do(method, target string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	for key, values := range ta.headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	w := httptest.NewRecorder()
	ta.app.ServeHTTP(w, req)
	return w
}

// Get performs a GET request against target.
func (ta *TestApp[S, T]) Get(target string) *httptest.ResponseRecorder {
	return ta.Do(http.MethodGet, target, nil)
}

// Post performs a POST request against target.
func (ta *TestApp[S, T]) Post(target string, body io.Reader) *httptest.ResponseRecorder {
	return ta.Do(http.MethodPost, target, body)
}

// Put performs a PUT request against target.
func (ta *TestApp[S, T]) Put(target string, body io.Reader) *httptest.ResponseRecorder {
	return ta.Do(http.MethodPut, target, body)
}

// Patch performs a PATCH request against target.
func (ta *TestApp[S, T]) Patch(target string, body io.Reader) *httptest.ResponseRecorder {
	return ta.Do(http.MethodPatch, target, body)
}

// Delete performs a DELETE request against target.
func (ta *TestApp[S, T]) Delete(target string) *httptest.ResponseRecorder {
	return ta.Do(http.MethodDelete, target, nil)
}
