// Command echo-client sends one message to an echo server and prints the reply.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go4.org/must"
	_config "tonysoft.com/echo/internal/config/client"
	"tonysoft.com/echo/internal/logging"
	"tonysoft.com/echo/internal/socket"
	"tonysoft.com/echo/pkg/client"
)

var logger = logging.New("client")

const defaultMessage = "Hello, UDP Server!"

// parseArgs reads the optional positional ip, port and message.
func parseArgs(args cli.Args) (cfg _config.Config, message string) {
	cfg = _config.NewConfig()
	message = defaultMessage

	address := cfg.ServerAddress
	if args.Len() > 0 {
		address = args.Get(0)
	}
	port := cfg.ServerPort
	if args.Len() > 1 {
		p, e := strconv.Atoi(args.Get(1))
		if e != nil || p <= 0 || p > 65535 {
			logger.Warn(fmt.Sprintf("Invalid port number, using default %d", cfg.ServerPort))
		} else {
			port = p
		}
	}
	if args.Len() > 2 {
		message = args.Get(2)
	}

	if e := cfg.SetServerAddress(address, port); e != nil {
		logger.Warn("Invalid server address, using default", zap.Error(e))
	}
	return cfg, message
}

var app = &cli.App{
	Name:      "echo-client",
	Usage:     "Send one datagram to a UDP echo server.",
	ArgsUsage: "[ip] [port] [message]",
	Action: func(c *cli.Context) error {
		cfg, message := parseArgs(c.Args())

		cl := client.New(cfg)
		if e := cl.Start(); e != nil {
			return cli.Exit(fmt.Sprintf("Socket creation failed: %v", e), 1)
		}
		defer must.Close(closerFunc(cl.Stop))

		fmt.Printf("Sending message to %s: \"%s\"\n", cl.RemoteAddress(), message)
		response, e := cl.SendAndReceive(message)
		switch {
		case e == nil:
			fmt.Printf("Response from server: \"%s\"\n", response)
			return nil
		case socket.IsTimeout(e):
			return cli.Exit("Timeout waiting for response", 1)
		default:
			return cli.Exit(fmt.Sprintf("Receive failed: %v", e), 1)
		}
	},
}

type closerFunc func() error

func (f closerFunc) Close() error {
	return f()
}

func main() {
	e := app.Run(os.Args)
	if e != nil {
		os.Exit(1)
	}
}
