package handler

import (
	"encoding/json"
	"net/http"
)

// Response is an in-memory HTTP response under construction. It travels
// through a chain as a plain value so any step can inspect, amend, or replace
// it before the framework writes it out. A nil *Response means no step has
// produced a response yet.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// NewResponse creates an empty response with the given status code.
func NewResponse(status int) *Response {
	return &Response{
		StatusCode: status,
		Header:     make(http.Header),
	}
}

// SetHeader sets a header value, allocating the header map if needed.
// Returns the response for chaining.
func (r *Response) SetHeader(key, value string) *Response {
	if r.Header == nil {
		r.Header = make(http.Header)
	}
	r.Header.Set(key, value)
	return r
}

// Write renders the response to w: headers first, then status (defaulting to
// 200 when unset), then the body.
func (r *Response) Write(w http.ResponseWriter) error {
	for key, values := range r.Header {
		for _, v := range values {
			w.Header().Add(key, v)
		}
	}

	status := r.StatusCode
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)

	if len(r.Body) > 0 {
		_, err := w.Write(r.Body)
		return err
	}
	return nil
}

// Text creates a text/plain response.
func Text(status int, body string) *Response {
	r := NewResponse(status)
	r.Header.Set("Content-Type", "text/plain; charset=utf-8")
	r.Body = []byte(body)
	return r
}

// HTML creates a text/html response.
func HTML(status int, body string) *Response {
	r := NewResponse(status)
	r.Header.Set("Content-Type", "text/html; charset=utf-8")
	r.Body = []byte(body)
	return r
}

// Bytes creates a response with a custom content type.
func Bytes(status int, contentType string, body []byte) *Response {
	r := NewResponse(status)
	r.Header.Set("Content-Type", contentType)
	r.Body = body
	return r
}

// JSON creates an application/json response by encoding v eagerly, so the
// encoding error surfaces inside the chain instead of at write time.
func JSON(status int, v any) (*Response, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	r := NewResponse(status)
	r.Header.Set("Content-Type", "application/json; charset=utf-8")
	r.Body = body
	return r, nil
}

// StatusResponse creates an empty response with the given status code.
func StatusResponse(code int) *Response {
	return NewResponse(code)
}

// NoContent creates an empty 204 No Content response.
func NoContent() *Response {
	return NewResponse(http.StatusNoContent)
}
