package fitpair

import (
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/fitpair/fitpair/authapi"
	"github.com/fitpair/fitpair/internal/state"
	"github.com/fitpair/fitpair/session"
)

// Builder assembles a [Client]. Construction is allocation-only; no I/O
// happens until the first Client method runs.
type Builder struct {
	config    Config
	redis     redis.UniversalClient
	backend   authapi.Backend
	auditSink AuditSink
	logger    *slog.Logger

	built bool
}

// New returns a Builder seeded with [DefaultConfig].
func New() *Builder {
	return &Builder{
		config: DefaultConfig(),
	}
}

// WithConfig replaces the whole configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cfg
	return b
}

// WithRedis sets the client backing the persisted session store.
func (b *Builder) WithRedis(client redis.UniversalClient) *Builder {
	b.redis = client
	return b
}

// WithBackend injects an auth backend, overriding Config.Backend. Tests and
// embedded deployments use this; production builds usually configure
// Config.Backend.BaseURL instead.
func (b *Builder) WithBackend(backend authapi.Backend) *Builder {
	b.backend = backend
	return b
}

// WithAuditSink sets the destination for session lifecycle events.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// WithMetricsEnabled toggles the in-process counters.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// WithLogger sets the logger for degraded-path warnings. Defaults to
// slog.Default.
func (b *Builder) WithLogger(logger *slog.Logger) *Builder {
	b.logger = logger
	return b
}

// Build validates the configuration and wires the Client. A Builder builds
// at most once.
func (b *Builder) Build() (*Client, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := b.config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if b.redis == nil {
		return nil, errors.New("redis client required for the persisted session store")
	}

	backend := b.backend
	if backend == nil {
		if cfg.Backend.BaseURL == "" {
			return nil, errors.New("auth backend required: set Config.Backend.BaseURL or use WithBackend")
		}
		httpBackend, err := authapi.NewClient(authapi.Config{
			BaseURL: cfg.Backend.BaseURL,
			Timeout: cfg.Backend.Timeout,
		})
		if err != nil {
			return nil, err
		}
		backend = httpBackend
	}

	logger := b.logger
	if logger == nil {
		logger = slog.Default()
	}

	client := &Client{
		config:  cfg,
		store:   session.NewStore(b.redis, cfg.Store.RedisPrefix, cfg.Store.Profile),
		state:   state.NewStore(),
		backend: backend,
		metrics: NewMetrics(cfg.Metrics),
		logger:  logger,
	}
	client.audit = newAuditDispatcher(cfg.Audit, b.auditSink, client.DeviceID)

	b.built = true

	return client, nil
}
