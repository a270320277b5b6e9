package core

import (
	"go.uber.org/zap"

	"github.com/cwbudde/algo-linmem/mem/alloc"
)

// DefaultTag labels buffers that were never given a name.
const DefaultTag = "undefined"

// Config defines buffer construction settings.
type Config struct {
	Tag       string
	Alignment int
	Allocator alloc.Allocator
	Logger    *zap.Logger
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns 32-byte aligned, GC-backed, silent settings.
func DefaultConfig() Config {
	return Config{
		Tag:       DefaultTag,
		Alignment: alloc.DefaultAlignment,
		Allocator: alloc.Default,
		Logger:    zap.NewNop(),
	}
}

// Resolved returns cfg with every unset field replaced by its default, so a
// zero Config behaves like DefaultConfig.
func (cfg Config) Resolved() Config {
	def := DefaultConfig()
	if cfg.Tag == "" {
		cfg.Tag = def.Tag
	}
	if cfg.Alignment == 0 {
		cfg.Alignment = def.Alignment
	}
	if cfg.Allocator == nil {
		cfg.Allocator = def.Allocator
	}
	if cfg.Logger == nil {
		cfg.Logger = def.Logger
	}
	return cfg
}

// WithTag sets the diagnostic label.
func WithTag(tag string) Option {
	return func(cfg *Config) {
		if tag != "" {
			cfg.Tag = tag
		}
	}
}

// WithAlignment raises the storage alignment. Values that are not a power of
// two or fall below alloc.DefaultAlignment are ignored.
func WithAlignment(alignment int) Option {
	return func(cfg *Config) {
		if alignment >= alloc.DefaultAlignment && alignment&(alignment-1) == 0 {
			cfg.Alignment = alignment
		}
	}
}

// WithAllocator sets the raw allocator.
func WithAllocator(a alloc.Allocator) Option {
	return func(cfg *Config) {
		if a != nil {
			cfg.Allocator = a
		}
	}
}

// WithLogger sets the lifecycle logger.
func WithLogger(l *zap.Logger) Option {
	return func(cfg *Config) {
		if l != nil {
			cfg.Logger = l
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
