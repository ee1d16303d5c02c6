package raworc

import (
	"context"
	"net/http"
)

func agentsPath(space string) string {
	return "spaces/" + space + "/agents"
}

func agentPath(space, name string) string {
	return agentsPath(space) + "/" + name
}

// ListAgents lists the agents of a space, applying the space fallback.
func (c *Client) ListAgents(ctx context.Context, space string) ([]Agent, error) {
	return getJSON[[]Agent](ctx, c, agentsPath(c.resolveSpace(space)), nil)
}

// ListRunningAgents lists agents currently running in a space.
func (c *Client) ListRunningAgents(ctx context.Context, space string) ([]Agent, error) {
	return getJSON[[]Agent](ctx, c, agentsPath(space)+"/running", nil)
}

// CreateAgent creates an agent in a space.
func (c *Client) CreateAgent(
	ctx context.Context,
	space string,
	req *CreateAgentRequest,
) (*Agent, error) {
	return postJSON[*Agent](ctx, c, agentsPath(space), req)
}

// GetAgent returns an agent.
func (c *Client) GetAgent(ctx context.Context, space, name string) (*Agent, error) {
	return getJSON[*Agent](ctx, c, agentPath(space, name), nil)
}

// UpdateAgent updates an agent's description or purpose.
func (c *Client) UpdateAgent(
	ctx context.Context,
	space, name string,
	req *UpdateAgentRequest,
) (*Agent, error) {
	return putJSON[*Agent](ctx, c, agentPath(space, name), req)
}

// DeleteAgent deletes an agent.
func (c *Client) DeleteAgent(ctx context.Context, space, name string) error {
	return deleteReq(ctx, c, agentPath(space, name))
}

// UpdateAgentStatus sets an agent's status.
func (c *Client) UpdateAgentStatus(
	ctx context.Context,
	space, name string,
	status AgentStatus,
) error {
	return exec(ctx, c, http.MethodPut, agentPath(space, name)+"/status",
		&UpdateAgentStatusRequest{Status: status})
}

// DeployAgent deploys an agent.
func (c *Client) DeployAgent(ctx context.Context, space, name string) error {
	return exec(ctx, c, http.MethodPost, agentPath(space, name)+"/deploy", nil)
}

// StopAgent stops a running agent.
func (c *Client) StopAgent(ctx context.Context, space, name string) error {
	return exec(ctx, c, http.MethodPost, agentPath(space, name)+"/stop", nil)
}

// GetAgentLogs returns an agent's raw log text.
func (c *Client) GetAgentLogs(ctx context.Context, space, name string) (string, error) {
	return getText(ctx, c, agentPath(space, name)+"/logs")
}
