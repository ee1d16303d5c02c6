package raworc_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshapalnati/raworc-mcpserver/pkg/raworc"
	"github.com/harshapalnati/raworc-mcpserver/pkg/raworc/internal/testutil"
	"github.com/harshapalnati/raworc-mcpserver/pkg/raworcerrs"
)

func newClient(t *testing.T, api *testutil.FakeAPI, cfg raworc.Config) *raworc.Client {
	t.Helper()
	cfg.BaseURL = api.URL()
	client, err := raworc.New(cfg)
	require.NoError(t, err)

	return client
}

func TestNewRejectsInvalidBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
	}{
		{name: "relative", baseURL: "api/v0"},
		{name: "unsupported scheme", baseURL: "ftp://example.com/api"},
		{name: "unparseable", baseURL: "http://[::1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := raworc.New(raworc.Config{BaseURL: tt.baseURL})
			require.Error(t, err)
			assert.True(t, raworcerrs.IsConfig(err))
		})
	}
}

func TestNewDefaults(t *testing.T) {
	client, err := raworc.New(raworc.Config{})
	require.NoError(t, err)
	assert.Equal(t, raworc.DefaultBaseURL, client.BaseURL())
	assert.Empty(t, client.Token())
	assert.False(t, client.HasCredentials())
}

// TestSpaceFallback verifies override > configured default > "default".
func TestSpaceFallback(t *testing.T) {
	tests := []struct {
		name         string
		defaultSpace string
		override     string
		wantPath     string
	}{
		{
			name:         "override wins",
			defaultSpace: "team",
			override:     "other",
			wantPath:     "spaces/other/sessions",
		},
		{
			name:         "configured default",
			defaultSpace: "team",
			wantPath:     "spaces/team/sessions",
		},
		{
			name:     "literal fallback",
			wantPath: "spaces/default/sessions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := testutil.NewFakeAPI(t)
			api.JSON(http.MethodGet, "spaces/{space}/sessions", http.StatusOK, "[]")
			client := newClient(t, api, raworc.Config{DefaultSpace: tt.defaultSpace})

			sessions, err := client.ListSessions(context.Background(), tt.override)
			require.NoError(t, err)
			assert.Empty(t, sessions)
			assert.Equal(t, 1, api.Count(http.MethodGet, tt.wantPath))
		})
	}
}

func TestRequestHeaders(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.JSON(http.MethodGet, "version", http.StatusOK, testutil.VersionJSON)

	client := newClient(t, api, raworc.Config{Token: "tok"})
	version, err := client.GetVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0.4.0", version.Version)

	hdr := api.Last().Header
	assert.Equal(t, "application/json", hdr.Get("Accept"))
	assert.Equal(t, "application/json", hdr.Get("Content-Type"))
	assert.Equal(t, "Bearer tok", hdr.Get("Authorization"))
	assert.NotEmpty(t, hdr.Get(raworc.HeaderRequestID))
}

func TestNoAuthorizationWithoutToken(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.JSON(http.MethodGet, "version", http.StatusOK, testutil.VersionJSON)

	client := newClient(t, api, raworc.Config{})
	_, err := client.GetVersion(context.Background())
	require.NoError(t, err)
	assert.Empty(t, api.Last().Header.Get("Authorization"))
}

func TestBaseURLTrailingSlash(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.JSON(http.MethodGet, "spaces", http.StatusOK, "[]")

	client, err := raworc.New(raworc.Config{BaseURL: api.URL() + "/"})
	require.NoError(t, err)
	_, err = client.ListSpaces(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, api.Count(http.MethodGet, "spaces"))
}

func TestAuthenticateStoresToken(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.Login("fresh")

	client := newClient(t, api, raworc.Config{})
	resp, err := client.Authenticate(context.Background(), "admin", "pw")
	require.NoError(t, err)
	assert.Equal(t, "fresh", resp.Token)
	assert.Equal(t, "fresh", client.Token())

	var body raworc.AuthRequest
	require.NoError(t, json.Unmarshal(api.Last().Body, &body))
	assert.Equal(t, raworc.AuthRequest{User: "admin", Pass: "pw"}, body)
}

func TestAuthenticateRejected(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.JSON(http.MethodPost, "auth/login", http.StatusUnauthorized,
		`{"error":{"message":"bad credentials"}}`)

	client := newClient(t, api, raworc.Config{Token: "old"})
	_, err := client.Authenticate(context.Background(), "admin", "wrong")
	require.Error(t, err)
	assert.True(t, raworcerrs.IsAuth(err))
	assert.Equal(t, "old", client.Token())
	assert.Equal(t, 1, api.Count(http.MethodPost, "auth/login"))
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		check      func(error) bool
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "not found keeps raw body",
			status:     http.StatusNotFound,
			body:       `{"error":{"message":"session missing"}}`,
			check:      raworcerrs.IsNotFound,
			wantStatus: 404,
			wantMsg:    `not_found: {"error":{"message":"session missing"}}`,
		},
		{
			name:       "structured api error",
			status:     http.StatusInternalServerError,
			body:       `{"error":{"message":"database unavailable"}}`,
			check:      raworcerrs.IsAPI,
			wantStatus: 500,
			wantMsg:    "api: status 500: database unavailable",
		},
		{
			name:       "unstructured api error",
			status:     http.StatusBadGateway,
			body:       "upstream down",
			check:      raworcerrs.IsAPI,
			wantStatus: 502,
			wantMsg:    "api: status 502: upstream down",
		},
		{
			name:       "unauthorized without credentials",
			status:     http.StatusUnauthorized,
			body:       "",
			check:      raworcerrs.IsAuth,
			wantStatus: 401,
			wantMsg:    "authentication: unauthorized",
		},
		{
			name:       "unauthorized keeps structured message",
			status:     http.StatusUnauthorized,
			body:       `{"error":{"message":"token expired"}}`,
			check:      raworcerrs.IsAuth,
			wantStatus: 401,
			wantMsg:    "authentication: token expired",
		},
		{
			name:       "unauthorized keeps raw body",
			status:     http.StatusUnauthorized,
			body:       "invalid signature",
			check:      raworcerrs.IsAuth,
			wantStatus: 401,
			wantMsg:    "authentication: invalid signature",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := testutil.NewFakeAPI(t)
			api.Text(http.MethodGet, "spaces/{space}/sessions/{id}", tt.status, tt.body)
			client := newClient(t, api, raworc.Config{})

			_, err := client.GetSession(context.Background(), "", "sess-1")
			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected category: %v", err)
			assert.Equal(t, tt.wantStatus, raworcerrs.StatusCode(err))
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestDecodeFailureIsSerializationError(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.Text(http.MethodGet, "spaces/{space}/sessions/{id}", http.StatusOK, "not json")
	client := newClient(t, api, raworc.Config{})

	_, err := client.GetSession(context.Background(), "", "sess-1")
	require.Error(t, err)
	assert.True(t, raworcerrs.IsSerialization(err))
}

func TestSessionRoundTrip(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.JSON(http.MethodGet, "spaces/{space}/sessions/{id}", http.StatusOK, testutil.SessionJSON)
	client := newClient(t, api, raworc.Config{})

	session, err := client.GetSession(context.Background(), "", "sess-1")
	require.NoError(t, err)
	assert.Equal(t, raworc.SessionStateRunning, session.State)
	assert.Nil(t, session.ContainerID)
	assert.Equal(t, time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC), session.CreatedAt)

	out, err := json.Marshal(session)
	require.NoError(t, err)
	assert.JSONEq(t, testutil.SessionJSON, string(out))
}

func TestConfirmationOperationsIgnoreBody(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.Text(http.MethodPost, "spaces/{space}/sessions/{id}/pause", http.StatusNoContent, "")
	api.Text(http.MethodDelete, "spaces/{space}/sessions/{id}", http.StatusOK, "not json")
	client := newClient(t, api, raworc.Config{})

	require.NoError(t, client.PauseSession(context.Background(), "", "sess-1"))
	require.NoError(t, client.TerminateSession(context.Background(), "", "sess-1"))
	assert.Equal(t, 1, api.Count(http.MethodDelete, "spaces/default/sessions/sess-1"))
}

func TestTextEndpoints(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.Text(http.MethodGet, "health", http.StatusOK, "OK")
	api.Text(http.MethodGet, "spaces/{space}/agents/{name}/logs", http.StatusOK, "line 1\nline 2\n")
	client := newClient(t, api, raworc.Config{})

	health, err := client.HealthCheck(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "OK", health)

	logs, err := client.GetAgentLogs(context.Background(), "team", "builder")
	require.NoError(t, err)
	assert.Equal(t, "line 1\nline 2\n", logs)
}

func TestTextEndpointMapsErrors(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.Text(http.MethodGet, "spaces/{space}/agents/{name}/logs", http.StatusNotFound, "no such agent")
	client := newClient(t, api, raworc.Config{})

	_, err := client.GetAgentLogs(context.Background(), "team", "ghost")
	require.Error(t, err)
	assert.True(t, raworcerrs.IsNotFound(err))
}

func TestGetMessagesLimit(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.JSON(http.MethodGet, "spaces/{space}/sessions/{id}/messages", http.StatusOK, "["+testutil.MessageJSON+"]")
	client := newClient(t, api, raworc.Config{})

	limit := 5
	messages, err := client.GetMessages(context.Background(), "", "sess-1", &limit)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, raworc.MessageRoleUser, messages[0].Role)
	assert.Equal(t, "limit=5", api.Last().RawQuery)

	_, err = client.GetMessages(context.Background(), "", "sess-1", nil)
	require.NoError(t, err)
	assert.Empty(t, api.Last().RawQuery)
}

func TestRequestTimeout(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })
	api.Handle(http.MethodGet, "health", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})

	client := newClient(t, api, raworc.Config{Timeout: 50 * time.Millisecond})
	_, err := client.HealthCheck(context.Background())
	require.Error(t, err)
	assert.True(t, raworcerrs.IsTimeout(err), "got %v", err)
}

func TestRequestBodiesOmitAbsentFields(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.JSON(http.MethodPost, "spaces", http.StatusOK, testutil.SpaceJSON)
	client := newClient(t, api, raworc.Config{})

	space, err := client.CreateSpace(context.Background(), &raworc.CreateSpaceRequest{Name: "default"})
	require.NoError(t, err)
	require.NotNil(t, space.Description)
	assert.Equal(t, "Default space", *space.Description)
	assert.JSONEq(t, `{"name":"default"}`, string(api.Last().Body))
}
