package socket

import (
	"fmt"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sys/unix"
	_server "tonysoft.com/echo/internal/config/server"
	"tonysoft.com/echo/internal/eventlog"
	"tonysoft.com/echo/pkg/comerr"
)

// Setter applies socket-level options to one descriptor.
type Setter interface {
	SetsockoptInt(level, opt, value int) error
	SetsockoptTimeval(level, opt int, tv *unix.Timeval) error
}

type fdSetter int

func (fd fdSetter) SetsockoptInt(level, opt, value int) error {
	return unix.SetsockoptInt(int(fd), level, opt, value)
}

func (fd fdSetter) SetsockoptTimeval(level, opt int, tv *unix.Timeval) error {
	return unix.SetsockoptTimeval(int(fd), level, opt, tv)
}

// FdSetter returns a Setter operating on a raw descriptor.
func FdSetter(fd uintptr) Setter {
	return fdSetter(fd)
}

// Option is one entry of the ordered option list.
type Option struct {
	Name    string // console name, e.g. SO_RCVBUF
	Failure string // event log message written when Apply fails

	Enabled  func(cfg _server.Config) bool
	Apply    func(s Setter, cfg _server.Config) error
	Describe func(cfg _server.Config) string
}

func enabledText(_server.Config) string { return "enabled" }

var options = []Option{
	{
		Name:     "SO_REUSEADDR",
		Failure:  "Failed to set SO_REUSEADDR",
		Enabled:  func(cfg _server.Config) bool { return cfg.ReuseAddr },
		Apply:    func(s Setter, _ _server.Config) error { return s.SetsockoptInt(unix.SOL_SOCKET, unix.SO_REUSEADDR, 1) },
		Describe: enabledText,
	},
	{
		Name:    "SO_RCVBUF",
		Failure: "Failed to set receive buffer size",
		Enabled: func(cfg _server.Config) bool { return cfg.ReceiveBuffer > 0 },
		Apply: func(s Setter, cfg _server.Config) error {
			return s.SetsockoptInt(unix.SOL_SOCKET, unix.SO_RCVBUF, cfg.ReceiveBuffer)
		},
		Describe: func(cfg _server.Config) string { return fmt.Sprintf("%d bytes", cfg.ReceiveBuffer) },
	},
	{
		Name:    "SO_SNDBUF",
		Failure: "Failed to set send buffer size",
		Enabled: func(cfg _server.Config) bool { return cfg.SendBuffer > 0 },
		Apply: func(s Setter, cfg _server.Config) error {
			return s.SetsockoptInt(unix.SOL_SOCKET, unix.SO_SNDBUF, cfg.SendBuffer)
		},
		Describe: func(cfg _server.Config) string { return fmt.Sprintf("%d bytes", cfg.SendBuffer) },
	},
	{
		Name:     "SO_BROADCAST",
		Failure:  "Failed to enable broadcast",
		Enabled:  func(cfg _server.Config) bool { return cfg.Broadcast },
		Apply:    func(s Setter, _ _server.Config) error { return s.SetsockoptInt(unix.SOL_SOCKET, unix.SO_BROADCAST, 1) },
		Describe: enabledText,
	},
	{
		Name:    "IP_TTL",
		Failure: "Failed to set TTL",
		Enabled: func(cfg _server.Config) bool { return cfg.TTL > 0 },
		Apply: func(s Setter, cfg _server.Config) error {
			return s.SetsockoptInt(unix.IPPROTO_IP, unix.IP_TTL, cfg.TTL)
		},
		Describe: func(cfg _server.Config) string { return fmt.Sprintf("%d", cfg.TTL) },
	},
	{
		Name:    "SO_RCVTIMEO",
		Failure: "Failed to set receive timeout",
		Enabled: func(cfg _server.Config) bool { return cfg.ReceiveTimeout > 0 },
		Apply: func(s Setter, cfg _server.Config) error {
			tv := unix.NsecToTimeval(int64(ReceiveTimeout(cfg)))
			return s.SetsockoptTimeval(unix.SOL_SOCKET, unix.SO_RCVTIMEO, &tv)
		},
		Describe: func(cfg _server.Config) string { return fmt.Sprintf("%d seconds", cfg.ReceiveTimeout) },
	},
}

// Options returns the option list in application order.
func Options() []Option {
	return append([]Option(nil), options...)
}

// ReceiveTimeout converts the configured whole seconds; zero means blocking.
func ReceiveTimeout(cfg _server.Config) time.Duration {
	if cfg.ReceiveTimeout <= 0 {
		return 0
	}
	return time.Duration(cfg.ReceiveTimeout) * time.Second
}

// ApplyOptions attempts every enabled option in order. A failing option is
// reported and skipped; the returned error wraps comerr.ErrSocketOptions and
// every individual failure.
func ApplyOptions(s Setter, cfg _server.Config, events eventlog.Writer, logger *zap.Logger) error {
	var errs error
	for _, opt := range options {
		if !opt.Enabled(cfg) {
			continue
		}

		if err := opt.Apply(s, cfg); err != nil {
			logger.Error("Failed to set "+opt.Name, zap.Error(err))
			events.Write(eventlog.SocketError, opt.Failure, nil)
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", opt.Name, err))
			continue
		}

		logger.Info(fmt.Sprintf("Set %s: %s", opt.Name, opt.Describe(cfg)))
	}

	if errs != nil {
		return fmt.Errorf("%w: %w", comerr.ErrSocketOptions, errs)
	}
	return nil
}
