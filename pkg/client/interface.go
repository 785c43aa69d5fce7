package client

import (
	_client "tonysoft.com/echo/internal/client"
	"tonysoft.com/echo/internal/comobj"
	"tonysoft.com/echo/internal/config"
	_config "tonysoft.com/echo/internal/config/client"
)

// Client Public interface for working with instances of Client
type Client interface {
	config.Configurable[_config.Config]
	RemoteAddress() string
	Start() error
	Stop() error
	SendAndReceive(message string) (string, error)
	comobj.Runnable
}

// New Create a new instance of Client
func New(cfg _config.Config) Client {
	c := &_client.UdpClient{}
	c.SetConfig(cfg)
	return c
}
