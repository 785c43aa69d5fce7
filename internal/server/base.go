// Package server implements the UDP echo event loop.
package server

import (
	"fmt"

	"go.uber.org/zap"
	"tonysoft.com/echo/internal/comerr"
	"tonysoft.com/echo/internal/comobj"
	"tonysoft.com/echo/internal/config"
	_server "tonysoft.com/echo/internal/config/server"
	"tonysoft.com/echo/internal/eventlog"
	"tonysoft.com/echo/internal/logging"
)

var logger = logging.New("server")

const errorChanBufferSize = 100 // receive failures kept for Errors()

type BaseServer struct {
	config.DefaultConfigurable[_server.Config]
	comerr.DefaultProducer
	comobj.DefaultRunnable

	events eventlog.Writer
	logger *zap.Logger
}

// SetEventLog replaces the structured event sink; nil disables it.
func (s *BaseServer) SetEventLog(events eventlog.Writer) {
	if events == nil {
		events = eventlog.Disabled()
	}
	s.events = events
}

// SetLogger replaces the console logger; nil restores the package logger.
func (s *BaseServer) SetLogger(l *zap.Logger) {
	if l == nil {
		l = logger
	}
	s.logger = l
}

func (s *BaseServer) init() {
	if s.events == nil {
		s.SetEventLog(nil)
	}
	if s.logger == nil {
		s.SetLogger(nil)
	}
}

// OpenEventLog opens cfg.LogFile when logging is enabled. A file that cannot
// be opened disables logging instead of failing.
func OpenEventLog(cfg _server.Config, l *zap.Logger) *eventlog.Log {
	if l == nil {
		l = logger
	}
	if !cfg.LoggingEnabled {
		return eventlog.Disabled()
	}

	events, err := eventlog.Open(cfg.LogFile)
	if err != nil {
		l.Warn(fmt.Sprintf("Cannot open log file %s. Logging is disabled.", cfg.LogFile), zap.Error(err))
		return eventlog.Disabled()
	}
	return events
}
