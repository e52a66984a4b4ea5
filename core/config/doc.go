// Package config provides type-safe environment variable loading with
// per-type caching using Go generics.
//
// The package loads a .env file on first use, if one exists, and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/broadcast/core/config"
//
//	type HostConfig struct {
//		PackageName string `env:"BROADCAST_HOST_PACKAGE,required"`
//		APILevel    int    `env:"BROADCAST_HOST_API_LEVEL" envDefault:"33"`
//	}
//
//	func main() {
//		var cfg HostConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// Each configuration type is loaded only once per application lifetime;
// subsequent calls for the same type return the cached value. Different
// types are cached independently.
package config
