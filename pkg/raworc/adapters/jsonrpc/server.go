// Package jsonrpc serves the tool dispatcher over newline-delimited
// JSON-RPC 2.0. Requests are handled strictly one at a time: read a line,
// dispatch it, write the response, read the next line.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"

	"github.com/harshapalnati/raworc-mcpserver/pkg/raworc/ports"
	"github.com/harshapalnati/raworc-mcpserver/pkg/raworcerrs"
)

const (
	defaultServerName    = "raworc-mcp"
	defaultServerVersion = "dev"
)

type (
	// Option configures a Server.
	Option func(*Server)

	// Server answers MCP requests read from a Transport.
	Server struct {
		transport  ports.Transport
		dispatcher ports.Dispatcher
		logger     *slog.Logger
		name       string
		version    string
	}
)

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithServerInfo sets the name and version reported by initialize.
func WithServerInfo(name, version string) Option {
	return func(s *Server) {
		if name != "" {
			s.name = name
		}
		if version != "" {
			s.version = version
		}
	}
}

// NewServer creates a server reading from transport and dispatching tool
// calls to dispatcher.
func NewServer(
	transport ports.Transport,
	dispatcher ports.Dispatcher,
	opts ...Option,
) *Server {
	s := &Server{
		transport:  transport,
		dispatcher: dispatcher,
		name:       defaultServerName,
		version:    defaultServerVersion,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	return s
}

// Serve processes requests until the peer closes the stream, in which case
// it returns nil. Request-level failures never stop the loop; a read or
// write failure, or ctx cancellation, does.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.InfoContext(ctx, "mcp server ready", "name", s.name, "version", s.version)

	for {
		line, err := s.transport.Read(ctx)
		if errors.Is(err, io.EOF) && len(bytes.TrimSpace(line)) == 0 {
			s.logger.InfoContext(ctx, "input closed, shutting down")

			return nil
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}

		if resp := s.handleLine(ctx, line); resp != nil {
			if werr := s.writeResponse(ctx, resp); werr != nil {
				return werr
			}
		}

		if errors.Is(err, io.EOF) {
			return nil
		}
	}
}

// handleLine decodes one line and returns the response to send, or nil.
func (s *Server) handleLine(ctx context.Context, line []byte) *Response {
	line = bytes.TrimSpace(line)
	if len(line) == 0 {
		return nil
	}

	var req Request
	if err := json.Unmarshal(line, &req); err != nil {
		s.logger.WarnContext(ctx, "dropping malformed message", "error", err)

		return nil
	}

	return s.handleRequest(ctx, &req)
}

func (s *Server) writeResponse(ctx context.Context, resp *Response) error {
	data, err := json.Marshal(resp)
	if err != nil {
		s.logger.ErrorContext(ctx, "encoding response", "error", err)
		data, err = json.Marshal(newErrorResponse(resp.ID, ToolErrorCode, err.Error()))
		if err != nil {
			return raworcerrs.NewSerializationError(
				raworcerrs.ErrCodeEncodeFailed,
				"encoding response",
				err,
			)
		}
	}
	if err := s.transport.Write(ctx, data); err != nil {
		return raworcerrs.NewTransportError(
			raworcerrs.ErrCodeWriteFailed,
			"writing response",
			err,
		)
	}

	return nil
}
