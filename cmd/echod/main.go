// Command echod answers every UDP datagram with a configured response message.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"tonysoft.com/echo/internal/config/loader"
	"tonysoft.com/echo/internal/logging"
	"tonysoft.com/echo/pkg/server"
)

var logger = logging.New("main")

var (
	configFile string
	strict     bool
)

var app = &cli.App{
	Name:  "echod",
	Usage: "UDP echo server.",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Value:       loader.DefaultPath,
			Usage:       "YAML configuration `file`",
			EnvVars:     []string{"ECHOD_CONFIG"},
			Destination: &configFile,
		},
		&cli.BoolFlag{
			Name:        "strict",
			Usage:       "refuse out-of-range configuration values instead of warning",
			Destination: &strict,
		},
	},
	Action: func(c *cli.Context) error {
		var opts []loader.Option
		if strict {
			opts = append(opts, loader.WithStrict())
		}
		cfg, e := loader.Load(configFile, opts...)
		if e != nil {
			return e
		}

		events := server.OpenEventLog(cfg, logger)
		defer events.Close()

		ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		srv := server.New(cfg, server.WithEventLog(events))
		return srv.Run(ctx)
	},
}

func main() {
	e := app.RunContext(context.Background(), os.Args)
	if e != nil {
		logger.Error("fatal", zap.Error(e))
		os.Exit(1)
	}
}
