package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"go.uber.org/zap"
	"tonysoft.com/echo/internal/eventlog"
	"tonysoft.com/echo/internal/socket"
	"tonysoft.com/echo/internal/transport"
	"tonysoft.com/echo/pkg/comerr"
)

// UdpServer answers every datagram with the configured response message.
// One goroutine runs the loop in Serve; Stop and context cancellation only
// interrupt the blocking receive.
type UdpServer struct {
	BaseServer

	conn     *net.UDPConn
	buffer   []byte
	response []byte
	timeout  time.Duration

	stateMutex sync.Mutex
	serving    bool
	stopping   bool
	stopped    bool // closed by Stop before Serve began
}

// Start writes server_start, then creates, configures and binds the socket.
func (s *UdpServer) Start(ctx context.Context) error {
	if s.IsRunning() {
		return comerr.ErrServerAlreadyRunning
	}
	s.init()

	cfg := s.Config()
	s.events.Write(eventlog.ServerStart, "Server started", nil)

	if cfg.BufferSize < 1 {
		s.logger.Error("Memory allocation failed", zap.Int("bufferSize", cfg.BufferSize))
		s.events.Write(eventlog.Error, "Memory allocation failed", nil)
		return fmt.Errorf("%w : have %d", comerr.ErrBufferSize, cfg.BufferSize)
	}

	in := socket.Initializer{
		Events: s.events,
		Logger: s.logger,
		OptionsFailed: func(err error) {
			s.logger.Warn("Failed to apply some socket options. Continuing with defaults.", zap.Error(err))
			s.events.Write(eventlog.Warning, "Failed to apply some socket options", nil)
		},
	}
	conn, err := in.Listen(ctx, cfg)
	if err != nil {
		return err
	}

	s.stateMutex.Lock()
	s.conn = conn
	s.serving, s.stopping, s.stopped = false, false, false
	s.stateMutex.Unlock()

	s.buffer = make([]byte, cfg.BufferSize)
	s.response = []byte(cfg.ResponseMessage)
	s.timeout = socket.ReceiveTimeout(cfg)

	s.ConfigureErrors(errorChanBufferSize)
	s.SetIsRunning(true)

	s.logger.Info(fmt.Sprintf("UDP server started. Listening on port %d...", cfg.Port))
	return nil
}

// Serve runs the receive/reply loop until ctx is canceled or Stop is called,
// then closes the socket and writes server_stop. It returns nil at once when
// Stop already shut the server down after Start.
func (s *UdpServer) Serve(ctx context.Context) error {
	s.stateMutex.Lock()
	if s.stopped {
		s.stopped = false
		s.stateMutex.Unlock()
		return nil
	}
	if s.conn == nil || s.serving || s.stopping {
		s.stateMutex.Unlock()
		return comerr.ErrServerNotRunning
	}
	s.serving = true
	s.stateMutex.Unlock()

	done := make(chan struct{})
	defer close(done)
	go s.handleCancel(ctx, done)

	for s.serveOne() {
	}

	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()
	return s.shutdown()
}

// Run is Start followed by Serve.
func (s *UdpServer) Run(ctx context.Context) error {
	if err := s.Start(ctx); err != nil {
		return err
	}
	return s.Serve(ctx)
}

// Stop interrupts Serve. A started server whose loop has not begun is closed
// directly, and a later Serve returns nil.
func (s *UdpServer) Stop() {
	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()

	if s.conn == nil || s.stopping {
		return
	}
	if s.serving {
		s.stopping = true
		_ = s.conn.SetReadDeadline(time.Now())
		return
	}
	s.stopped = true
	_ = s.shutdown()
}

// LocalAddr returns the bound address, or nil when not running.
func (s *UdpServer) LocalAddr() net.Addr {
	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()
	if s.conn == nil {
		return nil
	}
	return s.conn.LocalAddr()
}

func (s *UdpServer) handleCancel(ctx context.Context, done <-chan struct{}) {
	select {
	case <-ctx.Done():
		s.Stop()
	case <-done:
	}
}

// armDeadline applies the receive timeout; false means the loop must end.
func (s *UdpServer) armDeadline() bool {
	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()

	if s.stopping {
		return false
	}
	if s.timeout > 0 {
		_ = s.conn.SetReadDeadline(time.Now().Add(s.timeout))
	}
	return true
}

func (s *UdpServer) isStopping() bool {
	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()
	return s.stopping
}

func (s *UdpServer) serveOne() bool {
	if !s.armDeadline() {
		return false
	}

	count, remote, err := s.conn.ReadFromUDPAddrPort(s.buffer)
	if err != nil {
		switch {
		case s.isStopping(), errors.Is(err, net.ErrClosed):
			return false
		case socket.IsTimeout(err):
			s.logger.Info("Receive timeout occurred")
			s.events.Write(eventlog.Timeout, "Receive timeout occurred", nil)
		default:
			s.logger.Error("Receive error", zap.Error(err))
			s.events.Write(eventlog.Error, "Failed to receive message", nil)
			s.SendError(err)
		}
		return true
	}

	client := transport.EndpointOf(remote)
	message := string(s.buffer[:count])
	s.logger.Info(fmt.Sprintf("Message from client %s:%d: %s", client.IP, client.Port, message))
	s.events.Write(eventlog.MessageReceived, message, &client)

	if _, err := s.conn.WriteToUDPAddrPort(s.response, remote); err != nil {
		s.logger.Debug("Send error", zap.Error(err))
	}
	s.events.Write(eventlog.MessageSent, string(s.response), &client)
	return true
}

// shutdown closes the socket and writes server_stop; stateMutex must be held.
func (s *UdpServer) shutdown() error {
	conn := s.conn
	s.conn = nil
	s.serving, s.stopping = false, false

	if conn == nil {
		return nil
	}
	err := conn.Close()

	s.CloseErrors()
	s.SetIsRunning(false)

	s.logger.Info("Server stopped", zap.Duration("uptime", s.Uptime()))
	s.events.Write(eventlog.ServerStop, "Server stopped", nil)
	return err
}
