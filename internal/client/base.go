// Package client sends one datagram to an echo server and waits for the reply.
package client

import (
	"net"
	"strconv"

	"tonysoft.com/echo/internal/comobj"
	"tonysoft.com/echo/internal/config"
	_config "tonysoft.com/echo/internal/config/client"
)

type BaseClient struct {
	config.DefaultConfigurable[_config.Config]
	comobj.DefaultRunnable
}

func (c *BaseClient) RemoteAddress() string {
	cfg := c.Config()
	return net.JoinHostPort(cfg.ServerAddress, strconv.Itoa(cfg.ServerPort))
}
