package server

import (
	"context"
	"net"

	"go.uber.org/zap"
	"tonysoft.com/echo/internal/comerr"
	"tonysoft.com/echo/internal/comobj"
	"tonysoft.com/echo/internal/config"
	_config "tonysoft.com/echo/internal/config/server"
	"tonysoft.com/echo/internal/eventlog"
	_server "tonysoft.com/echo/internal/server"
)

// Server Public interface for working with instances of Server
// Thread-safe ✓ (Serve must only be called once per Start)
type Server interface {
	config.Configurable[_config.Config]
	Start(context.Context) error
	Serve(context.Context) error
	Run(context.Context) error
	Stop()
	LocalAddr() net.Addr
	comobj.Runnable
	comerr.Producer
}

type Option func(*_server.UdpServer)

// WithEventLog sets the structured log sink; the default discards entries.
func WithEventLog(events eventlog.Writer) Option {
	return func(s *_server.UdpServer) { s.SetEventLog(events) }
}

// WithLogger sets the operator console logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *_server.UdpServer) { s.SetLogger(l) }
}

// OpenEventLog opens the log file named by cfg, or returns a disabled log when
// logging is off or the file cannot be opened. Close it after the server stops.
func OpenEventLog(cfg _config.Config, l *zap.Logger) *eventlog.Log {
	return _server.OpenEventLog(cfg, l)
}

// New Create a new instance of Server
func New(cfg _config.Config, opts ...Option) Server {
	s := &_server.UdpServer{}
	s.SetConfig(cfg)
	for _, opt := range opts {
		opt(s)
	}
	return s
}
