package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/broadcast/core/config"
)

// Each test uses its own config type: the cache is keyed by type and shared
// across the process.

func TestLoad(t *testing.T) {
	type hostConfig struct {
		PackageName string `env:"TEST_LOAD_PACKAGE" envDefault:"com.example.app"`
		APILevel    int    `env:"TEST_LOAD_API_LEVEL" envDefault:"33"`
	}

	t.Setenv("TEST_LOAD_API_LEVEL", "26")

	var cfg hostConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "com.example.app", cfg.PackageName)
	assert.Equal(t, 26, cfg.APILevel)
}

func TestLoad_CachesPerType(t *testing.T) {
	type cachedConfig struct {
		Value string `env:"TEST_CACHE_VALUE" envDefault:"first"`
	}

	var first cachedConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "first", first.Value)

	// Environment changes after the first load are not observed.
	t.Setenv("TEST_CACHE_VALUE", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value)
}

func TestLoad_RequiredMissing(t *testing.T) {
	type strictConfig struct {
		Value string `env:"TEST_REQUIRED_VALUE,required"`
	}

	var cfg strictConfig
	require.Error(t, config.Load(&cfg))
}

func TestMustLoad_PanicsOnFailure(t *testing.T) {
	type panicConfig struct {
		Value string `env:"TEST_MUST_LOAD_VALUE,required"`
	}

	assert.Panics(t, func() {
		var cfg panicConfig
		config.MustLoad(&cfg)
	})
}

func TestLoad_SliceSeparator(t *testing.T) {
	type permsConfig struct {
		Permissions []string `env:"TEST_PERMS" envSeparator:","`
	}

	t.Setenv("TEST_PERMS", "com.example.FIRST,com.example.SECOND")

	var cfg permsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, []string{"com.example.FIRST", "com.example.SECOND"}, cfg.Permissions)
}
