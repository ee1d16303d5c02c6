package jsonrpc

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

const notificationPrefix = "notifications/"

// handleRequest routes a decoded request. Notifications and unknown methods
// never get a reply.
func (s *Server) handleRequest(ctx context.Context, req *Request) *Response {
	if req.IsNotification() || strings.HasPrefix(req.Method, notificationPrefix) {
		s.logger.DebugContext(ctx, "ignoring notification", "method", req.Method)

		return nil
	}

	s.logger.DebugContext(ctx, "handling request", "method", req.Method)

	switch mcp.MCPMethod(req.Method) {
	case mcp.MethodInitialize:
		return newResponse(req.ID, s.initializeResult())
	case mcp.MethodToolsList:
		return newResponse(req.ID, mcp.ListToolsResult{Tools: s.dispatcher.Tools()})
	case mcp.MethodToolsCall:
		return s.handleToolCall(ctx, req)
	case mcp.MethodPing:
		return newResponse(req.ID, struct{}{})
	default:
		s.logger.WarnContext(ctx, "ignoring unknown method", "method", req.Method, "id", string(req.ID))

		return nil
	}
}

func (s *Server) initializeResult() *mcpsdk.InitializeResult {
	return &mcpsdk.InitializeResult{
		ProtocolVersion: ProtocolVersion,
		Capabilities: &mcpsdk.ServerCapabilities{
			Tools: &mcpsdk.ToolCapabilities{},
		},
		ServerInfo: &mcpsdk.Implementation{
			Name:    s.name,
			Version: s.version,
		},
	}
}

func (s *Server) handleToolCall(ctx context.Context, req *Request) *Response {
	var params toolCallParams
	if len(req.Params) > 0 {
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return newErrorResponse(req.ID, ToolErrorCode, "invalid tools/call params: "+err.Error())
		}
	}
	if params.Name == "" {
		return newErrorResponse(req.ID, ToolErrorCode, "missing tool name")
	}

	result, err := s.dispatcher.Dispatch(ctx, params.Name, params.Arguments)
	if err != nil {
		s.logger.InfoContext(ctx, "tool call failed", "tool", params.Name, "error", err)

		return newErrorResponse(req.ID, ToolErrorCode, err.Error())
	}

	return newResponse(req.ID, result)
}
