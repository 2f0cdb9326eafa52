package fitpair

import (
	"errors"
	"time"
)

// Config configures a [Client]. Zero value plus Validate is not enough to
// build; use [DefaultConfig] as the starting point.
type Config struct {
	Backend BackendConfig
	Store   StoreConfig
	Audit   AuditConfig
	Metrics MetricsConfig
}

// BackendConfig configures the HTTP auth backend client built by [Builder.Build]
// when no explicit backend is injected.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

// StoreConfig configures the persisted session store namespace.
type StoreConfig struct {
	RedisPrefix string
	Profile     string
}

// AuditConfig controls the audit dispatcher buffering behavior.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

// DefaultConfig returns the configuration a production client starts from:
// audit enabled with drop-if-full buffering, metrics enabled, the default
// store namespace, and a bounded backend timeout.
func DefaultConfig() Config {
	return Config{
		Backend: BackendConfig{
			Timeout: 15 * time.Second,
		},
		Store: StoreConfig{
			RedisPrefix: "fp",
			Profile:     "default",
		},
		Audit: AuditConfig{
			Enabled:    true,
			BufferSize: 64,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

// Validate rejects configurations that cannot produce a working client.
func (c Config) Validate() error {
	if c.Backend.Timeout < 0 {
		return errors.New("backend timeout must not be negative")
	}
	if c.Audit.Enabled && c.Audit.BufferSize < 0 {
		return errors.New("audit buffer size must not be negative")
	}
	return nil
}
