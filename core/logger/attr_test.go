package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/batonhttp/baton/core/logger"
)

func TestAttrs(t *testing.T) {
	t.Parallel()

	t.Run("error attr", func(t *testing.T) {
		t.Parallel()

		attr := logger.Error(errors.New("boom"))
		assert.Equal(t, "error", attr.Key)

		// Nil errors produce an empty attr that slog drops.
		assert.Equal(t, slog.Attr{}, logger.Error(nil))
	})

	t.Run("request id attr", func(t *testing.T) {
		t.Parallel()

		attr := logger.RequestID("abc")
		assert.Equal(t, "request_id", attr.Key)
		assert.Equal(t, "abc", attr.Value.String())

		assert.Equal(t, slog.Attr{}, logger.RequestID(""))
	})

	t.Run("http attrs", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "GET", logger.Method("GET").Value.String())
		assert.Equal(t, "/x", logger.Path("/x").Value.String())
		assert.Equal(t, int64(200), logger.Status(200).Value.Int64())
	})

	t.Run("timing attrs", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "duration", logger.Duration(time.Second).Key)
		assert.Equal(t, "elapsed", logger.Elapsed(time.Now()).Key)
	})

	t.Run("group", func(t *testing.T) {
		t.Parallel()

		attr := logger.Group("http", logger.Method("GET"), logger.Path("/"))
		assert.Equal(t, "http", attr.Key)
		assert.Len(t, attr.Value.Group(), 2)
	})
}
