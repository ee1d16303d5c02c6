package tools_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshapalnati/raworc-mcpserver/pkg/raworc"
	"github.com/harshapalnati/raworc-mcpserver/pkg/raworc/internal/testutil"
	"github.com/harshapalnati/raworc-mcpserver/pkg/raworc/tools"
	"github.com/harshapalnati/raworc-mcpserver/pkg/raworcerrs"
)

func newDispatcher(t *testing.T, cfg raworc.Config) (*tools.Dispatcher, *testutil.FakeAPI) {
	t.Helper()
	api := testutil.NewFakeAPI(t)
	cfg.BaseURL = api.URL()
	client, err := raworc.New(cfg)
	require.NoError(t, err)

	return tools.NewDispatcher(client), api
}

func resultText(t *testing.T, result *mcpsdk.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(*mcpsdk.TextContent)
	require.True(t, ok, "content is %T", result.Content[0])

	return text.Text
}

func TestCatalog(t *testing.T) {
	d, _ := newDispatcher(t, raworc.Config{})
	catalog := d.Tools()

	require.Len(t, catalog, 56)
	seen := make(map[string]bool, len(catalog))
	for _, tool := range catalog {
		assert.False(t, seen[tool.Name], "duplicate tool %s", tool.Name)
		seen[tool.Name] = true
		assert.NotEmpty(t, tool.Description, tool.Name)
		assert.Equal(t, "object", tool.InputSchema.Type, tool.Name)
	}
	assert.Equal(t, "health_check", catalog[0].Name)
	assert.True(t, seen["set_secret"])
	assert.True(t, seen["get_user_info"])
}

// TestEveryToolIsRoutable dispatches each catalog entry with empty
// arguments. Nothing may come back as an unknown tool.
func TestEveryToolIsRoutable(t *testing.T) {
	d, _ := newDispatcher(t, raworc.Config{})

	for _, tool := range d.Tools() {
		_, err := d.Dispatch(context.Background(), tool.Name, nil)
		assert.False(t, raworcerrs.IsProtocol(err), "%s: %v", tool.Name, err)
	}
}

// TestRequiredFieldsMatchSchema drops each advertised required field in
// turn and expects a validation error naming it before any HTTP call.
func TestRequiredFieldsMatchSchema(t *testing.T) {
	d, api := newDispatcher(t, raworc.Config{})

	for _, tool := range d.Tools() {
		full := completeArgs(tool.InputSchema.Properties)
		for _, field := range tool.InputSchema.Required {
			args := make(map[string]any, len(full))
			for k, v := range full {
				if k != field {
					args[k] = v
				}
			}

			_, err := d.Dispatch(context.Background(), tool.Name, args)
			require.Error(t, err, "%s without %s", tool.Name, field)

			var vErr *raworcerrs.ValidationError
			require.ErrorAs(t, err, &vErr, "%s without %s", tool.Name, field)
			assert.Equal(t, field, vErr.Field(), tool.Name)
		}
	}

	assert.Empty(t, api.Calls())
}

// completeArgs builds a valid value for every property in a schema.
func completeArgs(properties map[string]any) map[string]any {
	args := make(map[string]any, len(properties))
	for name, raw := range properties {
		schema, _ := raw.(map[string]any)
		switch schema["type"] {
		case "array":
			args[name] = []any{}
		case "object":
			args[name] = map[string]any{}
		case "number":
			args[name] = 1.0
		case "boolean":
			args[name] = true
		default:
			args[name] = "x"
			if enum, ok := schema["enum"].([]string); ok && len(enum) > 0 {
				args[name] = enum[0]
			}
		}
	}

	return args
}

func TestUnknownTool(t *testing.T) {
	d, api := newDispatcher(t, raworc.Config{})

	_, err := d.Dispatch(context.Background(), "launch_rocket", map[string]any{})
	require.Error(t, err)
	assert.True(t, raworcerrs.IsProtocol(err))
	assert.False(t, raworcerrs.IsValidation(err))
	assert.Equal(t, "protocol: unknown tool: launch_rocket", err.Error())
	assert.Empty(t, api.Calls())
}

func TestMissingSessionIDNeverReachesNetwork(t *testing.T) {
	d, api := newDispatcher(t, raworc.Config{})

	_, err := d.Dispatch(context.Background(), "get_session", map[string]any{"space": "team"})
	require.Error(t, err)
	assert.Equal(t, "validation: session_id is required", err.Error())
	assert.Empty(t, api.Calls())
}

func TestInvalidSessionState(t *testing.T) {
	d, api := newDispatcher(t, raworc.Config{})

	_, err := d.Dispatch(context.Background(), "update_session_state", map[string]any{
		"session_id": "s1",
		"state":      "running",
	})
	require.Error(t, err)
	assert.True(t, raworcerrs.IsValidation(err))
	assert.Empty(t, api.Calls())
}

func TestConfirmationResults(t *testing.T) {
	tests := []struct {
		tool   string
		args   map[string]any
		method string
		path   string
		want   string
	}{
		{
			tool:   "pause_session",
			args:   map[string]any{"session_id": "s1"},
			method: http.MethodPost,
			path:   "spaces/{space}/sessions/{id}/pause",
			want:   "Session paused successfully",
		},
		{
			tool:   "resume_session",
			args:   map[string]any{"session_id": "s1"},
			method: http.MethodPost,
			path:   "spaces/{space}/sessions/{id}/resume",
			want:   "Session resumed successfully",
		},
		{
			tool:   "terminate_session",
			args:   map[string]any{"session_id": "s1", "space": "team"},
			method: http.MethodDelete,
			path:   "spaces/{space}/sessions/{id}",
			want:   "Session terminated successfully",
		},
		{
			tool:   "delete_secret",
			args:   map[string]any{"space": "team", "key": "API_KEY"},
			method: http.MethodDelete,
			path:   "spaces/{space}/secrets/{key}",
			want:   "Secret deleted successfully",
		},
		{
			tool:   "update_agent_status",
			args:   map[string]any{"space": "team", "agent_name": "a", "status": "running"},
			method: http.MethodPut,
			path:   "spaces/{space}/agents/{name}/status",
			want:   "Agent status updated successfully",
		},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			d, api := newDispatcher(t, raworc.Config{})
			api.Text(tt.method, tt.path, http.StatusNoContent, "")

			result, err := d.Dispatch(context.Background(), tt.tool, tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resultText(t, result))
		})
	}
}

func TestJSONResultIsIndented(t *testing.T) {
	d, api := newDispatcher(t, raworc.Config{})
	api.JSON(http.MethodGet, "spaces/{space}/sessions/{id}", http.StatusOK, testutil.SessionJSON)

	result, err := d.Dispatch(context.Background(), "get_session", map[string]any{"session_id": "sess-1"})
	require.NoError(t, err)

	var session raworc.Session
	require.NoError(t, json.Unmarshal([]byte(testutil.SessionJSON), &session))
	want, err := json.MarshalIndent(&session, "", "  ")
	require.NoError(t, err)

	text := resultText(t, result)
	assert.Equal(t, string(want), text)
	assert.JSONEq(t, testutil.SessionJSON, text)
}

func TestTextResultPassesThrough(t *testing.T) {
	d, api := newDispatcher(t, raworc.Config{})
	api.Text(http.MethodGet, "spaces/{space}/agents/{name}/logs", http.StatusOK, "booting\nready\n")
	api.Text(http.MethodGet, "health", http.StatusOK, "OK")

	result, err := d.Dispatch(context.Background(), "get_agent_logs", map[string]any{
		"space":      "team",
		"agent_name": "builder",
	})
	require.NoError(t, err)
	assert.Equal(t, "booting\nready\n", resultText(t, result))

	result, err = d.Dispatch(context.Background(), "health_check", nil)
	require.NoError(t, err)
	assert.Equal(t, "OK", resultText(t, result))
}

func TestListSessionsUsesDefaultSpace(t *testing.T) {
	d, api := newDispatcher(t, raworc.Config{DefaultSpace: "team"})
	api.JSON(http.MethodGet, "spaces/{space}/sessions", http.StatusOK, "["+testutil.SessionJSON+"]")

	result, err := d.Dispatch(context.Background(), "list_sessions", map[string]any{})
	require.NoError(t, err)
	assert.Contains(t, resultText(t, result), `"id": "sess-1"`)
	assert.Equal(t, 1, api.Count(http.MethodGet, "spaces/team/sessions"))
}

func TestGetMessagesForwardsLimit(t *testing.T) {
	d, api := newDispatcher(t, raworc.Config{})
	api.JSON(http.MethodGet, "spaces/{space}/sessions/{id}/messages", http.StatusOK, "["+testutil.MessageJSON+"]")

	_, err := d.Dispatch(context.Background(), "get_messages", map[string]any{
		"session_id": "sess-1",
		"limit":      20.0,
	})
	require.NoError(t, err)
	assert.Equal(t, "limit=20", api.Last().RawQuery)
}

func TestAPIErrorsPropagate(t *testing.T) {
	d, api := newDispatcher(t, raworc.Config{})
	api.Text(http.MethodGet, "spaces/{space}/secrets/{key}", http.StatusNotFound, "secret not found")

	_, err := d.Dispatch(context.Background(), "get_secret", map[string]any{
		"space": "team",
		"key":   "MISSING",
	})
	require.Error(t, err)
	assert.Equal(t, "not_found: secret not found", err.Error())
}

func TestCreateSecretBody(t *testing.T) {
	d, api := newDispatcher(t, raworc.Config{})
	api.JSON(http.MethodPost, "spaces/{space}/secrets", http.StatusCreated, testutil.SecretJSON)

	_, err := d.Dispatch(context.Background(), "create_secret", map[string]any{
		"space":    "team",
		"key_name": "API_KEY",
		"value":    "s3cr3t",
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"key_name":"API_KEY","value":"s3cr3t"}`, string(api.Last().Body))
	assert.Equal(t, 1, api.Count(http.MethodPost, "spaces/team/secrets"))
}
