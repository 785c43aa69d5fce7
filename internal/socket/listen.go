package socket

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"syscall"

	"go.uber.org/zap"
	_server "tonysoft.com/echo/internal/config/server"
	"tonysoft.com/echo/internal/eventlog"
	"tonysoft.com/echo/internal/transport"
	"tonysoft.com/echo/pkg/comerr"
)

// Initializer creates the server socket: the runtime creates the descriptor,
// the Control hook applies the configured options, then the runtime binds.
type Initializer struct {
	Events eventlog.Writer
	Logger *zap.Logger

	// OptionsFailed, if set, runs after option application failed and before bind.
	OptionsFailed func(error)
}

func (in Initializer) Listen(ctx context.Context, cfg _server.Config) (*net.UDPConn, error) {
	lc := net.ListenConfig{
		Control: func(_, _ string, c syscall.RawConn) error {
			var optErr error
			err := c.Control(func(fd uintptr) {
				optErr = ApplyOptions(FdSetter(fd), cfg, in.Events, in.Logger)
			})
			if err != nil {
				return fmt.Errorf("%w : %v", comerr.ErrSocketControl, err)
			}

			if optErr != nil && in.OptionsFailed != nil {
				in.OptionsFailed(optErr)
			}
			return nil
		},
	}

	pc, err := lc.ListenPacket(ctx, transport.Network, transport.ListenAddress(cfg.Port))
	if err != nil {
		return nil, in.fail(err)
	}
	return pc.(*net.UDPConn), nil
}

func (in Initializer) fail(err error) error {
	var sysErr *os.SyscallError
	switch {
	case errors.Is(err, comerr.ErrSocketControl):
		in.Logger.Error("Socket descriptor unavailable", zap.Error(err))
		in.Events.Write(eventlog.SocketError, "Failed to access socket descriptor", nil)
		return err
	case errors.As(err, &sysErr) && sysErr.Syscall == "socket":
		in.Logger.Error("Socket creation failed", zap.Error(err))
		in.Events.Write(eventlog.SocketError, "Socket creation failed", nil)
		return fmt.Errorf("%w : %v", comerr.ErrSocketCreate, err)
	default:
		in.Logger.Error("Bind failed", zap.Error(err))
		in.Events.Write(eventlog.SocketError, "Socket bind failed", nil)
		return fmt.Errorf("%w : %v", comerr.ErrSocketBind, err)
	}
}
