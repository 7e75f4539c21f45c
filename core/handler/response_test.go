package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batonhttp/baton/core/handler"
)

func TestResponseWrite(t *testing.T) {
	t.Parallel()

	t.Run("text response", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		require.NoError(t, handler.Text(http.StatusOK, "hello").Write(w))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "hello", w.Body.String())
		assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	})

	t.Run("html response", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		require.NoError(t, handler.HTML(http.StatusOK, "<b>hi</b>").Write(w))

		assert.Equal(t, "<b>hi</b>", w.Body.String())
		assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	})

	t.Run("json response encodes eagerly", func(t *testing.T) {
		t.Parallel()

		resp, err := handler.JSON(http.StatusCreated, map[string]string{"name": "erik"})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		require.NoError(t, resp.Write(w))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"name":"erik"}`, w.Body.String())
		assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	})

	t.Run("json encoding errors surface in the chain", func(t *testing.T) {
		t.Parallel()

		_, err := handler.JSON(http.StatusOK, func() {})
		assert.Error(t, err)
	})

	t.Run("zero status defaults to 200", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		require.NoError(t, (&handler.Response{Body: []byte("x")}).Write(w))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("status-only response has no body", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		require.NoError(t, handler.StatusResponse(http.StatusTeapot).Write(w))
		assert.Equal(t, http.StatusTeapot, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("no content", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		require.NoError(t, handler.NoContent().Write(w))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("set header allocates on demand", func(t *testing.T) {
		t.Parallel()

		resp := &handler.Response{StatusCode: http.StatusOK}
		resp.SetHeader("X-Thing", "yes")

		w := httptest.NewRecorder()
		require.NoError(t, resp.Write(w))
		assert.Equal(t, "yes", w.Header().Get("X-Thing"))
	})

	t.Run("bytes with custom content type", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		require.NoError(t, handler.Bytes(http.StatusOK, "application/octet-stream", []byte{0x1, 0x2}).Write(w))
		assert.Equal(t, "application/octet-stream", w.Header().Get("Content-Type"))
		assert.Equal(t, []byte{0x1, 0x2}, w.Body.Bytes())
	})
}
