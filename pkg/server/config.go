package server

import _config "tonysoft.com/echo/internal/config/server"

// NewConfig returns the default configuration, listening on port.
func NewConfig(port int, responseMessage ...string) _config.Config {
	cfg := _config.NewConfig()
	cfg.Port = port
	if len(responseMessage) > 0 {
		cfg.ResponseMessage = _config.Bound(responseMessage[0])
	}
	return cfg
}
