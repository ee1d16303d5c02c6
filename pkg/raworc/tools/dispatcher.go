// Package tools maps MCP tool calls onto Raworc REST operations.
//
// The dispatch table pairs each catalog entry with a pure argument parser,
// one client call and a result format: indented JSON, a fixed confirmation
// message, or raw text. Validation happens before any network call.
package tools

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harshapalnati/raworc-mcpserver/pkg/raworc/ports"
	"github.com/harshapalnati/raworc-mcpserver/pkg/raworcerrs"
)

type (
	// Option configures a Dispatcher.
	Option func(*Dispatcher)

	// Dispatcher routes tool calls to the REST API.
	Dispatcher struct {
		api    ports.API
		logger *slog.Logger
		tools  []mcp.Tool
		byName map[string]handler
	}
)

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// NewDispatcher builds a dispatcher over api with the full tool catalog.
func NewDispatcher(api ports.API, opts ...Option) *Dispatcher {
	entries := catalog()
	d := &Dispatcher{
		api:    api,
		tools:  make([]mcp.Tool, 0, len(entries)),
		byName: make(map[string]handler, len(entries)),
	}
	for _, e := range entries {
		d.tools = append(d.tools, e.tool)
		d.byName[e.tool.Name] = e.handle
	}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}

	return d
}

// Compile-time check that Dispatcher satisfies ports.Dispatcher.
var _ ports.Dispatcher = (*Dispatcher)(nil)

// Tools returns the tool catalog in registration order.
func (d *Dispatcher) Tools() []mcp.Tool {
	return append([]mcp.Tool(nil), d.tools...)
}

// Dispatch runs the named tool. A nil args map is treated as empty.
func (d *Dispatcher) Dispatch(
	ctx context.Context,
	name string,
	args map[string]any,
) (*mcpsdk.CallToolResult, error) {
	handle, ok := d.byName[name]
	if !ok {
		return nil, raworcerrs.UnknownTool(name)
	}
	if args == nil {
		args = map[string]any{}
	}

	d.logger.DebugContext(ctx, "dispatching tool", "tool", name)
	text, err := handle(ctx, d.api, args)
	if err != nil {
		d.logger.DebugContext(ctx, "tool failed", "tool", name, "error", err)

		return nil, err
	}

	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: text}},
	}, nil
}
