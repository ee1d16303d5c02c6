package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/harshapalnati/raworc-mcpserver/internal/config"
	"github.com/harshapalnati/raworc-mcpserver/internal/logging"
	"github.com/harshapalnati/raworc-mcpserver/internal/transport"
	"github.com/harshapalnati/raworc-mcpserver/pkg/raworc"
	"github.com/harshapalnati/raworc-mcpserver/pkg/raworc/adapters/jsonrpc"
	"github.com/harshapalnati/raworc-mcpserver/pkg/raworc/tools"
)

const (
	flagAPIURL       = "api-url"
	flagAuthToken    = "auth-token"
	flagUsername     = "username"
	flagPassword     = "password"
	flagDefaultSpace = "default-space"
	flagTimeout      = "timeout"
	flagLogLevel     = "log-level"
	flagLogFormat    = "log-format"
	flagConfig       = "config"
)

func buildApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "raworc-mcp",
		Usage:     "serve the Raworc API as MCP tools over stdio",
		Version:   version,
		Reader:    stdin,
		Writer:    stderr,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagAPIURL,
				Usage:   "Raworc API root URL",
				EnvVars: []string{"RAWORC_API_URL"},
			},
			&cli.StringFlag{
				Name:    flagAuthToken,
				Usage:   "bearer token for API requests",
				EnvVars: []string{"RAWORC_AUTH_TOKEN"},
			},
			&cli.StringFlag{
				Name:    flagUsername,
				Usage:   "login username, enables re-authentication",
				EnvVars: []string{"RAWORC_USERNAME"},
			},
			&cli.StringFlag{
				Name:    flagPassword,
				Usage:   "login password",
				EnvVars: []string{"RAWORC_PASSWORD"},
			},
			&cli.StringFlag{
				Name:    flagDefaultSpace,
				Usage:   "space used when a tool call names none",
				EnvVars: []string{"RAWORC_DEFAULT_SPACE"},
			},
			&cli.IntFlag{
				Name:    flagTimeout,
				Usage:   "HTTP request timeout in seconds",
				EnvVars: []string{"RAWORC_TIMEOUT"},
			},
			&cli.StringFlag{
				Name:    flagLogLevel,
				Usage:   "debug, info, warn or error",
				EnvVars: []string{"RAWORC_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    flagLogFormat,
				Usage:   "json or text",
				EnvVars: []string{"RAWORC_LOG_FORMAT"},
			},
			&cli.StringFlag{
				Name:    flagConfig,
				Usage:   "path to a TOML config file",
				EnvVars: []string{"RAWORC_CONFIG"},
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.Load(c.String(flagConfig), flagValues(c))
			if err != nil {
				return err
			}

			return serve(c.Context, cfg, stdin, stdout, stderr)
		},
	}
}

// flagValues collects the flags that were set on the command line or
// through the environment.
func flagValues(c *cli.Context) config.Values {
	var v config.Values
	stringFlag := func(name string) *string {
		if !c.IsSet(name) {
			return nil
		}
		s := c.String(name)

		return &s
	}
	v.APIURL = stringFlag(flagAPIURL)
	v.AuthToken = stringFlag(flagAuthToken)
	v.Username = stringFlag(flagUsername)
	v.Password = stringFlag(flagPassword)
	v.DefaultSpace = stringFlag(flagDefaultSpace)
	v.LogLevel = stringFlag(flagLogLevel)
	v.LogFormat = stringFlag(flagLogFormat)
	if c.IsSet(flagTimeout) {
		n := c.Int(flagTimeout)
		v.TimeoutSeconds = &n
	}

	return v
}

// serve wires the client, dispatcher and JSON-RPC server and runs until
// stdin closes.
func serve(ctx context.Context, cfg config.Config, stdin io.Reader, stdout, stderr io.Writer) error {
	logger := logging.NewLogger(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Writer: stderr,
	})

	client, err := raworc.New(cfg.Client(),
		raworc.WithLogger(logging.Component(logger, "client")),
	)
	if err != nil {
		return err
	}

	if cfg.NeedsLogin() {
		if err := login(ctx, client, cfg, logger); err != nil {
			return err
		}
	}

	dispatcher := tools.NewDispatcher(client,
		tools.WithLogger(logging.Component(logger, "dispatcher")),
	)
	stdio := transport.NewStdioTransport(stdin, stdout)
	server := jsonrpc.NewServer(stdio, dispatcher,
		jsonrpc.WithLogger(logging.Component(logger, "server")),
		jsonrpc.WithServerInfo("raworc-mcp", version),
	)

	return server.Serve(ctx)
}

func login(ctx context.Context, client *raworc.Client, cfg config.Config, logger *slog.Logger) error {
	logger.InfoContext(ctx, "authenticating", "username", cfg.Username, "api_url", cfg.APIURL)
	if _, err := client.Authenticate(ctx, cfg.Username, cfg.Password); err != nil {
		logger.ErrorContext(ctx, "startup authentication failed", "error", err)

		return err
	}

	return nil
}
