package client

import _config "tonysoft.com/echo/internal/config/client"

// NewConfig targets address:port with the default timeout and buffer size.
func NewConfig(address string, port int) (_config.Config, error) {
	cfg := _config.NewConfig()
	err := cfg.SetServerAddress(address, port)
	return cfg, err
}
