package client

import (
	"fmt"
	"net"
	"time"

	"tonysoft.com/echo/internal/transport"
	"tonysoft.com/echo/pkg/comerr"
)

type UdpClient struct {
	BaseClient
	conn *net.UDPConn
}

func (c *UdpClient) Start() error {
	if c.IsRunning() {
		return comerr.ErrClientAlreadyStarted
	}

	cfg := c.Config()
	if cfg.BufferSize < 2 {
		return fmt.Errorf("%w : have %d", comerr.ErrBufferSize, cfg.BufferSize)
	}

	server, err := transport.ResolveServer(cfg.ServerAddress, cfg.ServerPort)
	if err != nil {
		return err
	}

	conn, err := net.DialUDP(transport.Network, nil, net.UDPAddrFromAddrPort(server))
	if err != nil {
		return err
	}

	c.conn = conn
	c.SetIsRunning(true)
	return nil
}

func (c *UdpClient) Stop() error {
	defer c.SetIsRunning(false)
	if c.conn != nil {
		err := c.conn.Close()
		c.conn = nil
		return err
	}
	return nil
}

// SendAndReceive sends message as one datagram and returns the first reply,
// truncated to BufferSize-1 bytes. A missing reply yields an error for which
// socket.IsTimeout is true.
func (c *UdpClient) SendAndReceive(message string) (string, error) {
	if c.conn == nil {
		return "", comerr.ErrClientNotStarted
	}
	cfg := c.Config()

	if _, err := c.conn.Write([]byte(message)); err != nil {
		return "", err
	}

	if cfg.TimeoutSec > 0 {
		err := c.conn.SetReadDeadline(time.Now().Add(time.Duration(cfg.TimeoutSec) * time.Second))
		if err != nil {
			return "", fmt.Errorf("%w : %v", comerr.ErrSetReadTimeout, err)
		}
	}

	response := make([]byte, cfg.BufferSize-1)
	count, err := c.conn.Read(response)
	if err != nil {
		return "", err
	}
	return string(response[:count]), nil
}
