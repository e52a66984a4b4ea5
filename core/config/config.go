package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	mu    sync.RWMutex
	cache = make(map[reflect.Type]any)

	loadEnvOnce sync.Once
)

// Load parses environment variables into cfg based on its `env` struct tags.
// Each configuration type is loaded once per application lifetime; later
// calls for the same type return the cached value. A .env file in the
// working directory is loaded into the environment on first use, if present.
func Load[T any](cfg *T) error {
	loadEnvOnce.Do(func() {
		// Missing .env is fine; real environment variables still apply.
		_ = godotenv.Load()
	})

	typ := reflect.TypeOf(*cfg)

	mu.RLock()
	cached, ok := cache[typ]
	mu.RUnlock()
	if ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("failed to load config %s: %w", typ, err)
	}

	mu.Lock()
	cache[typ] = *cfg
	mu.Unlock()

	return nil
}

// MustLoad is like Load but panics on failure. Useful during application
// startup where a missing required variable should abort the process.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
