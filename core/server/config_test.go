package server_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batonhttp/baton/core/server"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := server.DefaultConfig()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.WriteTimeout)
	assert.Equal(t, 60*time.Second, cfg.IdleTimeout)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 1<<20, cfg.MaxHeaderBytes)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("builds a server from config", func(t *testing.T) {
		t.Parallel()

		srv, err := server.NewFromConfig(server.DefaultConfig())
		require.NoError(t, err)
		assert.NotNil(t, srv)
	})

	t.Run("requires an address", func(t *testing.T) {
		t.Parallel()

		_, err := server.NewFromConfig(server.Config{})
		assert.ErrorIs(t, err, server.ErrMissingAddress)
	})

	t.Run("rejects unreadable TLS files", func(t *testing.T) {
		t.Parallel()

		cfg := server.DefaultConfig()
		cfg.TLSCertFile = "/does/not/exist.crt"
		cfg.TLSKeyFile = "/does/not/exist.key"

		_, err := server.NewFromConfig(cfg)
		assert.Error(t, err)
	})
}

func TestDefaultTLSConfig(t *testing.T) {
	t.Parallel()

	cfg := server.DefaultTLSConfig()
	assert.EqualValues(t, 0x0303, cfg.MinVersion) // TLS 1.2
	assert.NotEmpty(t, cfg.CipherSuites)
}
