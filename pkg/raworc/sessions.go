package raworc

import (
	"context"
	"net/http"
)

func (c *Client) sessionsPath(space string) string {
	return "spaces/" + c.resolveSpace(space) + "/sessions"
}

func (c *Client) sessionPath(space, sessionID string) string {
	return c.sessionsPath(space) + "/" + sessionID
}

// ListSessions lists the sessions of a space.
func (c *Client) ListSessions(ctx context.Context, space string) ([]Session, error) {
	return getJSON[[]Session](ctx, c, c.sessionsPath(space), nil)
}

// CreateSession creates a session in a space.
func (c *Client) CreateSession(
	ctx context.Context,
	space string,
	metadata map[string]any,
) (*Session, error) {
	return postJSON[*Session](ctx, c, c.sessionsPath(space), &CreateSessionRequest{
		Metadata: metadata,
	})
}

// GetSession returns a session.
func (c *Client) GetSession(ctx context.Context, space, sessionID string) (*Session, error) {
	return getJSON[*Session](ctx, c, c.sessionPath(space, sessionID), nil)
}

// UpdateSession replaces a session's metadata.
func (c *Client) UpdateSession(
	ctx context.Context,
	space, sessionID string,
	metadata map[string]any,
) (*Session, error) {
	return putJSON[*Session](ctx, c, c.sessionPath(space, sessionID), &UpdateSessionRequest{
		Metadata: metadata,
	})
}

// UpdateSessionState requests a state transition. Legality is decided by
// the server.
func (c *Client) UpdateSessionState(
	ctx context.Context,
	space, sessionID string,
	state SessionState,
) error {
	return exec(ctx, c, http.MethodPut, c.sessionPath(space, sessionID)+"/state",
		&UpdateSessionStateRequest{State: state})
}

// PauseSession pauses a running session.
func (c *Client) PauseSession(ctx context.Context, space, sessionID string) error {
	return exec(ctx, c, http.MethodPost, c.sessionPath(space, sessionID)+"/pause", nil)
}

// ResumeSession resumes a paused session.
func (c *Client) ResumeSession(ctx context.Context, space, sessionID string) error {
	return exec(ctx, c, http.MethodPost, c.sessionPath(space, sessionID)+"/resume", nil)
}

// TerminateSession deletes a session.
func (c *Client) TerminateSession(ctx context.Context, space, sessionID string) error {
	return deleteReq(ctx, c, c.sessionPath(space, sessionID))
}

// Global sessions are addressed without a space.

// ListAllSessions lists sessions across all spaces.
func (c *Client) ListAllSessions(ctx context.Context) ([]Session, error) {
	return getJSON[[]Session](ctx, c, "sessions", nil)
}

// CreateGlobalSession creates a session in the space named by req.
func (c *Client) CreateGlobalSession(
	ctx context.Context,
	req *CreateSessionRequest,
) (*Session, error) {
	return postJSON[*Session](ctx, c, "sessions", req)
}

// GetGlobalSession returns a session by ID.
func (c *Client) GetGlobalSession(ctx context.Context, sessionID string) (*Session, error) {
	return getJSON[*Session](ctx, c, "sessions/"+sessionID, nil)
}

// UpdateGlobalSession updates a session by ID.
func (c *Client) UpdateGlobalSession(
	ctx context.Context,
	sessionID string,
	req *UpdateSessionRequest,
) (*Session, error) {
	return putJSON[*Session](ctx, c, "sessions/"+sessionID, req)
}

// UpdateGlobalSessionState requests a state transition by session ID.
func (c *Client) UpdateGlobalSessionState(
	ctx context.Context,
	sessionID string,
	state SessionState,
) error {
	return exec(ctx, c, http.MethodPut, "sessions/"+sessionID+"/state",
		&UpdateSessionStateRequest{State: state})
}

// CloseSession closes a session.
func (c *Client) CloseSession(ctx context.Context, sessionID string) error {
	return exec(ctx, c, http.MethodPost, "sessions/"+sessionID+"/close", nil)
}

// RestoreSession reopens a closed session.
func (c *Client) RestoreSession(ctx context.Context, sessionID string) error {
	return exec(ctx, c, http.MethodPost, "sessions/"+sessionID+"/restore", nil)
}

// RemixSession forks a session, optionally into another space. An empty
// space leaves the choice to the server.
func (c *Client) RemixSession(ctx context.Context, sessionID, space string) (*Session, error) {
	req := &CreateSessionRequest{}
	if space != "" {
		req.Space = &space
	}

	return postJSON[*Session](ctx, c, "sessions/"+sessionID+"/remix", req)
}

// DeleteGlobalSession deletes a session by ID.
func (c *Client) DeleteGlobalSession(ctx context.Context, sessionID string) error {
	return deleteReq(ctx, c, "sessions/"+sessionID)
}
