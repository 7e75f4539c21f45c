package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batonhttp/baton/core/handler"
	"github.com/batonhttp/baton/core/router"
	"github.com/batonhttp/baton/middleware"
)

func TestLogging(t *testing.T) {
	t.Parallel()

	t.Run("logs method and path", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))

		app := router.New[struct{}, handler.NoState]()
		chain := router.NewChain(
			middleware.Logging[struct{}, handler.NoState](log),
			respond(http.StatusOK, "ok"),
		)
		require.NoError(t, app.Get("/logged/:id", chain))

		w := router.NewTestApp(app).Get("/logged/7")
		require.Equal(t, http.StatusOK, w.Code)

		out := buf.String()
		assert.Contains(t, out, "request received")
		assert.Contains(t, out, "method=GET")
		assert.Contains(t, out, "path=/logged/7")
	})

	t.Run("nil logger passes through", func(t *testing.T) {
		t.Parallel()

		app := router.New[struct{}, handler.NoState]()
		chain := router.NewChain(
			middleware.Logging[struct{}, handler.NoState](nil),
			respond(http.StatusOK, "ok"),
		)
		require.NoError(t, app.Get("/", chain))

		w := router.NewTestApp(app).Get("/")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
