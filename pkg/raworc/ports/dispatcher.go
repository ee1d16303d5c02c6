package ports

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Dispatcher routes tool calls by name.
type Dispatcher interface {
	// Tools returns the tool catalog in registration order.
	Tools() []mcp.Tool

	// Dispatch validates args for the named tool, performs the call and
	// formats the result. Unknown names yield a protocol error.
	Dispatch(ctx context.Context, name string, args map[string]any) (*mcpsdk.CallToolResult, error)
}
