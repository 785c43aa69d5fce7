package client

import (
	"strings"

	"tonysoft.com/echo/pkg/comerr"
)

const (
	defaultServerAddress = "127.0.0.1" // where the echo server is expected
	defaultServerPort    = 8888
	defaultTimeoutSec    = 5    // how long to wait for the reply
	defaultBufferSize    = 1024 // byte count, one byte is reserved
)

type Config struct {
	ServerAddress string
	ServerPort    int
	TimeoutSec    int
	BufferSize    int
}

func NewConfig() Config {
	cfg := Config{
		ServerAddress: defaultServerAddress,
		ServerPort:    defaultServerPort,
		TimeoutSec:    defaultTimeoutSec,
		BufferSize:    defaultBufferSize,
	}
	return cfg
}

// SetServerAddress changes the target only when both values are usable.
func (c *Config) SetServerAddress(address string, port int) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return comerr.ErrAddressEmpty
	}
	if port <= 0 || port > 65535 {
		return comerr.ErrPortOutOfRange
	}

	c.ServerAddress = address
	c.ServerPort = port
	return nil
}
