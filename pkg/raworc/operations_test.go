package raworc_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshapalnati/raworc-mcpserver/pkg/raworc"
	"github.com/harshapalnati/raworc-mcpserver/pkg/raworc/internal/testutil"
)

// TestOperationRoutes checks the method and path each operation sends.
// The fake answers every request with a body that decodes into any model.
func TestOperationRoutes(t *testing.T) {
	ctx := context.Background()
	str := func(s string) *string { return &s }

	tests := []struct {
		name   string
		call   func(c *raworc.Client) error
		method string
		path   string
		body   string
	}{
		{"user info", func(c *raworc.Client) error { _, err := c.GetUserInfo(ctx); return err }, http.MethodGet, "auth/me", ""},
		{"get space", func(c *raworc.Client) error { _, err := c.GetSpace(ctx, "team"); return err }, http.MethodGet, "spaces/team", ""},
		{"update space", func(c *raworc.Client) error {
			_, err := c.UpdateSpace(ctx, "team", &raworc.UpdateSpaceRequest{Description: str("d")})
			return err
		}, http.MethodPut, "spaces/team", `{"description":"d"}`},
		{"delete space", func(c *raworc.Client) error { return c.DeleteSpace(ctx, "team") }, http.MethodDelete, "spaces/team", ""},
		{"create session", func(c *raworc.Client) error {
			_, err := c.CreateSession(ctx, "team", map[string]any{"k": "v"})
			return err
		}, http.MethodPost, "spaces/team/sessions", `{"metadata":{"k":"v"}}`},
		{"update session", func(c *raworc.Client) error {
			_, err := c.UpdateSession(ctx, "", "s1", nil)
			return err
		}, http.MethodPut, "spaces/default/sessions/s1", `{}`},
		{"update session state", func(c *raworc.Client) error {
			return c.UpdateSessionState(ctx, "", "s1", raworc.SessionStateIdle)
		}, http.MethodPut, "spaces/default/sessions/s1/state", `{"state":"IDLE"}`},
		{"resume session", func(c *raworc.Client) error { return c.ResumeSession(ctx, "", "s1") }, http.MethodPost, "spaces/default/sessions/s1/resume", ""},
		{"send message", func(c *raworc.Client) error {
			_, err := c.SendMessage(ctx, "", "s1", "hi")
			return err
		}, http.MethodPost, "spaces/default/sessions/s1/messages", `{"content":"hi"}`},
		{"message count", func(c *raworc.Client) error { _, err := c.GetMessageCount(ctx, "", "s1"); return err }, http.MethodGet, "spaces/default/sessions/s1/messages/count", ""},
		{"clear messages", func(c *raworc.Client) error { return c.ClearMessages(ctx, "", "s1") }, http.MethodDelete, "spaces/default/sessions/s1/messages", ""},
		{"list all sessions", func(c *raworc.Client) error { _, err := c.ListAllSessions(ctx); return err }, http.MethodGet, "sessions", ""},
		{"create global session", func(c *raworc.Client) error {
			_, err := c.CreateGlobalSession(ctx, &raworc.CreateSessionRequest{Space: str("team")})
			return err
		}, http.MethodPost, "sessions", `{"space":"team"}`},
		{"get global session", func(c *raworc.Client) error { _, err := c.GetGlobalSession(ctx, "s1"); return err }, http.MethodGet, "sessions/s1", ""},
		{"update global session", func(c *raworc.Client) error {
			_, err := c.UpdateGlobalSession(ctx, "s1", &raworc.UpdateSessionRequest{})
			return err
		}, http.MethodPut, "sessions/s1", `{}`},
		{"update global session state", func(c *raworc.Client) error {
			return c.UpdateGlobalSessionState(ctx, "s1", raworc.SessionStateClosed)
		}, http.MethodPut, "sessions/s1/state", `{"state":"CLOSED"}`},
		{"close session", func(c *raworc.Client) error { return c.CloseSession(ctx, "s1") }, http.MethodPost, "sessions/s1/close", ""},
		{"restore session", func(c *raworc.Client) error { return c.RestoreSession(ctx, "s1") }, http.MethodPost, "sessions/s1/restore", ""},
		{"remix session", func(c *raworc.Client) error { _, err := c.RemixSession(ctx, "s1", "team"); return err }, http.MethodPost, "sessions/s1/remix", `{"space":"team"}`},
		{"remix session without space", func(c *raworc.Client) error { _, err := c.RemixSession(ctx, "s1", ""); return err }, http.MethodPost, "sessions/s1/remix", `{}`},
		{"delete global session", func(c *raworc.Client) error { return c.DeleteGlobalSession(ctx, "s1") }, http.MethodDelete, "sessions/s1", ""},
		{"global messages", func(c *raworc.Client) error { _, err := c.GetGlobalMessages(ctx, "s1", nil); return err }, http.MethodGet, "sessions/s1/messages", ""},
		{"send global message", func(c *raworc.Client) error { _, err := c.SendGlobalMessage(ctx, "s1", "hi"); return err }, http.MethodPost, "sessions/s1/messages", `{"content":"hi"}`},
		{"global message count", func(c *raworc.Client) error { _, err := c.GetGlobalMessageCount(ctx, "s1"); return err }, http.MethodGet, "sessions/s1/messages/count", ""},
		{"clear global messages", func(c *raworc.Client) error { return c.ClearGlobalMessages(ctx, "s1") }, http.MethodDelete, "sessions/s1/messages", ""},
		{"list agents fallback", func(c *raworc.Client) error { _, err := c.ListAgents(ctx, ""); return err }, http.MethodGet, "spaces/default/agents", ""},
		{"list running agents", func(c *raworc.Client) error { _, err := c.ListRunningAgents(ctx, "team"); return err }, http.MethodGet, "spaces/team/agents/running", ""},
		{"create agent", func(c *raworc.Client) error {
			_, err := c.CreateAgent(ctx, "team", &raworc.CreateAgentRequest{Name: "a", Purpose: str("p")})
			return err
		}, http.MethodPost, "spaces/team/agents", `{"name":"a","purpose":"p"}`},
		{"update agent", func(c *raworc.Client) error {
			_, err := c.UpdateAgent(ctx, "team", "a", &raworc.UpdateAgentRequest{Description: str("d")})
			return err
		}, http.MethodPut, "spaces/team/agents/a", `{"description":"d"}`},
		{"delete agent", func(c *raworc.Client) error { return c.DeleteAgent(ctx, "team", "a") }, http.MethodDelete, "spaces/team/agents/a", ""},
		{"agent status", func(c *raworc.Client) error {
			return c.UpdateAgentStatus(ctx, "team", "a", raworc.AgentStatusStopped)
		}, http.MethodPut, "spaces/team/agents/a/status", `{"status":"stopped"}`},
		{"deploy agent", func(c *raworc.Client) error { return c.DeployAgent(ctx, "team", "a") }, http.MethodPost, "spaces/team/agents/a/deploy", ""},
		{"stop agent", func(c *raworc.Client) error { return c.StopAgent(ctx, "team", "a") }, http.MethodPost, "spaces/team/agents/a/stop", ""},
		{"list secrets fallback", func(c *raworc.Client) error { _, err := c.ListSecrets(ctx, ""); return err }, http.MethodGet, "spaces/default/secrets", ""},
		{"create secret", func(c *raworc.Client) error {
			_, err := c.CreateSecret(ctx, "team", &raworc.CreateSecretRequest{KeyName: "K", Value: "v"})
			return err
		}, http.MethodPost, "spaces/team/secrets", `{"key_name":"K","value":"v"}`},
		{"set secret", func(c *raworc.Client) error { _, err := c.SetSecret(ctx, "team", "K", "v"); return err }, http.MethodPost, "spaces/team/secrets/K", `{"value":"v"}`},
		{"update secret", func(c *raworc.Client) error {
			_, err := c.UpdateSecret(ctx, "team", "K", &raworc.UpdateSecretRequest{Description: str("d")})
			return err
		}, http.MethodPut, "spaces/team/secrets/K", `{"description":"d"}`},
		{"delete secret", func(c *raworc.Client) error { return c.DeleteSecret(ctx, "team", "K") }, http.MethodDelete, "spaces/team/secrets/K", ""},
		{"create build", func(c *raworc.Client) error {
			_, err := c.CreateBuild(ctx, "team", &raworc.CreateBuildRequest{Dockerfile: str("FROM scratch")})
			return err
		}, http.MethodPost, "spaces/team/build", `{"dockerfile":"FROM scratch"}`},
		{"latest build", func(c *raworc.Client) error { _, err := c.GetLatestBuild(ctx, "team"); return err }, http.MethodGet, "spaces/team/build/latest", ""},
		{"get build", func(c *raworc.Client) error { _, err := c.GetBuild(ctx, "team", "b1"); return err }, http.MethodGet, "spaces/team/build/b1", ""},
		{"list service accounts", func(c *raworc.Client) error { _, err := c.ListServiceAccounts(ctx); return err }, http.MethodGet, "service-accounts", ""},
		{"create service account", func(c *raworc.Client) error {
			_, err := c.CreateServiceAccount(ctx, &raworc.CreateServiceAccountRequest{User: "bot", Pass: "pw"})
			return err
		}, http.MethodPost, "service-accounts", `{"user":"bot","pass":"pw"}`},
		{"update service account", func(c *raworc.Client) error {
			active := false
			_, err := c.UpdateServiceAccount(ctx, "sa1", &raworc.UpdateServiceAccountRequest{Active: &active})
			return err
		}, http.MethodPut, "service-accounts/sa1", `{"active":false}`},
		{"service account password", func(c *raworc.Client) error {
			return c.UpdateServiceAccountPassword(ctx, "sa1", &raworc.UpdatePasswordRequest{CurrentPassword: "a", NewPassword: "b"})
		}, http.MethodPut, "service-accounts/sa1/password", `{"current_password":"a","new_password":"b"}`},
		{"create role", func(c *raworc.Client) error {
			_, err := c.CreateRole(ctx, &raworc.CreateRoleRequest{ID: "viewer", Rules: []raworc.RoleRule{{Resources: []string{"sessions"}, Verbs: []string{"get"}, Scope: "space"}}})
			return err
		}, http.MethodPost, "roles", `{"id":"viewer","rules":[{"resources":["sessions"],"verbs":["get"],"scope":"space"}]}`},
		{"delete role", func(c *raworc.Client) error { return c.DeleteRole(ctx, "viewer") }, http.MethodDelete, "roles/viewer", ""},
		{"create role binding", func(c *raworc.Client) error {
			_, err := c.CreateRoleBinding(ctx, &raworc.CreateRoleBindingRequest{Subject: "bot", RoleRef: "viewer"})
			return err
		}, http.MethodPost, "role-bindings", `{"subject":"bot","role_ref":"viewer"}`},
		{"get role binding", func(c *raworc.Client) error { _, err := c.GetRoleBinding(ctx, "rb1"); return err }, http.MethodGet, "role-bindings/rb1", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := testutil.NewFakeAPI(t)
			api.Handle(tt.method, tt.path, func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(responseFor(tt.method, tt.path)))
			})
			client := newClient(t, api, raworc.Config{})

			require.NoError(t, tt.call(client))
			assert.Equal(t, 1, api.Count(tt.method, tt.path))
			if tt.body != "" {
				assert.JSONEq(t, tt.body, string(api.Last().Body))
			}
		})
	}
}

// responseFor returns "[]" for list endpoints and "{}", which decodes into
// any model, for everything else.
func responseFor(method, path string) string {
	if method != http.MethodGet {
		return "{}"
	}
	switch path {
	case "sessions", "service-accounts", "spaces/default/agents",
		"spaces/team/agents/running", "spaces/default/secrets",
		"sessions/s1/messages":
		return "[]"
	}

	return "{}"
}
