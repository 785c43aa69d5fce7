package config

import (
	"sync/atomic"

	"tonysoft.com/echo/internal/config/client"
	"tonysoft.com/echo/internal/config/server"
)

type Config interface {
	client.Config | server.Config
}

type Configurable[T Config] interface {
	Config() T
	SetConfig(T)
}

// DefaultConfigurable holds a configuration snapshot. Config returns a copy,
// so a record handed out can never be mutated behind its owner.
type DefaultConfigurable[T Config] struct {
	_config atomic.Pointer[T]
}

func (c *DefaultConfigurable[T]) Config() T {
	cfg := c._config.Load()
	if cfg == nil {
		var zero T
		return zero
	}
	return *cfg
}

func (c *DefaultConfigurable[T]) SetConfig(cfg T) {
	c._config.Store(&cfg)
}
