// Package loader reads the echo server configuration from a YAML file.
//
// Loading is best effort: a missing, unreadable or malformed file yields the
// defaults (merged with whatever was read before the failure) and is never
// fatal. Unknown keys are ignored.
package loader

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml/parser"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	_server "tonysoft.com/echo/internal/config/server"
	"tonysoft.com/echo/internal/logging"
	"tonysoft.com/echo/pkg/comerr"
)

var logger = logging.New("loader")

// DefaultPath is the conventional configuration file name.
const DefaultPath = "config.yaml"

type options struct {
	strict bool
	logger *zap.Logger
}

type Option func(*options)

// WithStrict reports malformed numbers, out-of-range values and parse errors
// as an error instead of console warnings.
func WithStrict() Option {
	return func(o *options) { o.strict = true }
}

// WithLogger replaces the console logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

func Load(path string, opts ...Option) (_server.Config, error) {
	o := makeOptions(opts)

	data, err := os.ReadFile(path)
	if err != nil {
		o.logger.Warn(fmt.Sprintf("Cannot open configuration file %s. Using default settings.", path),
			zap.Error(fmt.Errorf("%w : %v", comerr.ErrConfigFileUnavailable, err)))
		return _server.NewConfig(), nil
	}

	return decode(data, o)
}

// LoadBytes applies a YAML document held in memory.
func LoadBytes(data []byte, opts ...Option) (_server.Config, error) {
	return decode(data, makeOptions(opts))
}

func makeOptions(opts []Option) options {
	o := options{logger: logger}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func decode(data []byte, o options) (_server.Config, error) {
	m := NewMachine(_server.NewConfig(), o.strict)

	var errs error
	file, err := parser.ParseBytes(data, 0)
	if err != nil {
		o.logger.Error("Parse error", zap.Error(err))
		errs = multierr.Append(errs, err)
	} else {
		for _, ev := range Events(file) {
			m.Feed(ev)
		}
	}

	cfg := m.Config()
	for _, line := range cfg.Summary() {
		o.logger.Info(line)
	}

	verr := cfg.Validate()
	if !o.strict {
		for _, e := range multierr.Errors(verr) {
			o.logger.Warn("Configuration value out of range", zap.Error(e))
		}
		return cfg, nil
	}

	errs = multierr.Combine(errs, m.Err(), verr)
	if errs != nil {
		return cfg, fmt.Errorf("%w: %w", comerr.ErrInvalidConfig, errs)
	}
	return cfg, nil
}
