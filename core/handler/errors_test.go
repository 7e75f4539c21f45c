package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batonhttp/baton/core/handler"
)

func TestError(t *testing.T) {
	t.Parallel()

	t.Run("status-only error falls back to the status text", func(t *testing.T) {
		t.Parallel()

		err := handler.Status(http.StatusTeapot)
		assert.Equal(t, http.StatusTeapot, err.Status)
		assert.Empty(t, err.Message)
		assert.Equal(t, "I'm a teapot", err.Error())
	})

	t.Run("errorf formats a 500", func(t *testing.T) {
		t.Parallel()

		err := handler.Errorf("user %d missing", 7)
		assert.Equal(t, http.StatusInternalServerError, err.Status)
		assert.Equal(t, "user 7 missing", err.Error())
	})

	t.Run("with message copies", func(t *testing.T) {
		t.Parallel()

		base := handler.ErrNotFound
		custom := base.WithMessage("nothing here")
		assert.Equal(t, "nothing here", custom.Error())
		assert.Equal(t, http.StatusText(http.StatusNotFound), base.Error())
	})

	t.Run("errors.As recovers the typed error through wrapping", func(t *testing.T) {
		t.Parallel()

		wrapped := fmt.Errorf("handling profile: %w", handler.ErrForbidden)

		var herr handler.Error
		require.True(t, errors.As(wrapped, &herr))
		assert.Equal(t, http.StatusForbidden, herr.Status)
	})

	t.Run("predefined errors carry matching statuses", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, http.StatusBadRequest, handler.ErrBadRequest.Status)
		assert.Equal(t, http.StatusUnauthorized, handler.ErrUnauthorized.Status)
		assert.Equal(t, http.StatusTooManyRequests, handler.ErrTooManyRequests.Status)
		assert.Equal(t, http.StatusInternalServerError, handler.ErrInternalServerError.Status)
	})
}
