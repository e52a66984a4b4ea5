package host

// Config declares a host identity suitable for loading from the environment
// with the core/config package.
//
// Example:
//
//	var cfg host.Config
//	config.MustLoad(&cfg)
//	h := host.NewFromConfig(cfg)
//	defer h.Close()
type Config struct {
	PackageName         string   `env:"BROADCAST_HOST_PACKAGE,required"`
	APILevel            int      `env:"BROADCAST_HOST_API_LEVEL" envDefault:"33"`
	ManifestPermissions []string `env:"BROADCAST_HOST_PERMISSIONS" envSeparator:","`
}

// NewFromConfig creates a MemoryHost from a Config. Options are applied
// after the config's manifest permissions.
func NewFromConfig(cfg Config, opts ...Option) *MemoryHost {
	opts = append([]Option{WithManifestPermissions(cfg.ManifestPermissions...)}, opts...)
	return NewMemoryHost(cfg.PackageName, cfg.APILevel, opts...)
}
