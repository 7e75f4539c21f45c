package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batonhttp/baton/core/config"
)

func TestLoad(t *testing.T) {
	t.Run("parses environment variables", func(t *testing.T) {
		type parseConfig struct {
			Name    string        `env:"BATON_TEST_NAME" envDefault:"fallback"`
			Timeout time.Duration `env:"BATON_TEST_TIMEOUT" envDefault:"5s"`
		}

		t.Setenv("BATON_TEST_NAME", "from-env")

		var cfg parseConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "from-env", cfg.Name)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
	})

	t.Run("applies defaults when unset", func(t *testing.T) {
		type defaultsConfig struct {
			Addr string `env:"BATON_TEST_ADDR" envDefault:":8080"`
		}

		var cfg defaultsConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, ":8080", cfg.Addr)
	})

	t.Run("caches per type", func(t *testing.T) {
		type cachedConfig struct {
			Value string `env:"BATON_TEST_CACHED" envDefault:"none"`
		}

		t.Setenv("BATON_TEST_CACHED", "first")
		var a cachedConfig
		require.NoError(t, config.Load(&a))
		require.Equal(t, "first", a.Value)

		// Later environment changes do not affect the cached type.
		t.Setenv("BATON_TEST_CACHED", "second")
		var b cachedConfig
		require.NoError(t, config.Load(&b))
		assert.Equal(t, "first", b.Value)
	})

	t.Run("reports required variables", func(t *testing.T) {
		type requiredConfig struct {
			Secret string `env:"BATON_TEST_REQUIRED,required"`
		}

		var cfg requiredConfig
		err := config.Load(&cfg)
		assert.Error(t, err)
	})

	t.Run("must load panics on failure", func(t *testing.T) {
		type mustConfig struct {
			Secret string `env:"BATON_TEST_MUST,required"`
		}

		assert.Panics(t, func() {
			var cfg mustConfig
			config.MustLoad(&cfg)
		})
	})
}
