package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/harshapalnati/raworc-mcpserver/pkg/raworc"
	"github.com/harshapalnati/raworc-mcpserver/pkg/raworc/ports"
)

// entry pairs a catalog definition with the handler that serves it.
type entry struct {
	tool   mcp.Tool
	handle handler
}

// Shared property definitions.
var (
	withDefaultSpace = mcp.WithString(argSpace,
		mcp.Description("Space name (optional, uses default if not provided)"))
	withOptionalSpace = mcp.WithString(argSpace,
		mcp.Description("Space name (optional)"))
	withRequiredSpace = mcp.WithString(argSpace,
		mcp.Required(), mcp.Description("Space name"))
	withSessionID = mcp.WithString(argSessionID,
		mcp.Required(), mcp.Description("Session ID"))
	withAgentName = mcp.WithString(argAgentName,
		mcp.Required(), mcp.Description("Agent name"))
	withSecretKey = mcp.WithString(argKey,
		mcp.Required(), mcp.Description("Secret key"))
)

func withID(description string) mcp.ToolOption {
	return mcp.WithString(argID, mcp.Required(), mcp.Description(description))
}

// catalog returns every tool in registration order.
func catalog() []entry {
	var entries []entry
	entries = append(entries, systemTools()...)
	entries = append(entries, accountTools()...)
	entries = append(entries, spaceTools()...)
	entries = append(entries, sessionTools()...)
	entries = append(entries, messageTools()...)
	entries = append(entries, agentTools()...)
	entries = append(entries, secretTools()...)
	entries = append(entries, buildTools()...)

	return entries
}

func systemTools() []entry {
	return []entry{
		{
			tool: mcp.NewTool("health_check",
				mcp.WithDescription("Check Raworc API health")),
			handle: textTool(parseNone, func(ctx context.Context, api ports.API, _ noParams) (string, error) {
				return api.HealthCheck(ctx)
			}),
		},
		{
			tool: mcp.NewTool("get_version",
				mcp.WithDescription("Get API version")),
			handle: jsonTool(parseNone, func(ctx context.Context, api ports.API, _ noParams) (*raworc.VersionResponse, error) {
				return api.GetVersion(ctx)
			}),
		},
		{
			tool: mcp.NewTool("get_user_info",
				mcp.WithDescription("Get information about the authenticated user")),
			handle: jsonTool(parseNone, func(ctx context.Context, api ports.API, _ noParams) (*raworc.UserInfo, error) {
				return api.GetUserInfo(ctx)
			}),
		},
	}
}

func accountTools() []entry {
	return []entry{
		{
			tool: mcp.NewTool("list_service_accounts",
				mcp.WithDescription("List all service accounts")),
			handle: jsonTool(parseNone, func(ctx context.Context, api ports.API, _ noParams) ([]raworc.ServiceAccount, error) {
				return api.ListServiceAccounts(ctx)
			}),
		},
		{
			tool: mcp.NewTool("create_service_account",
				mcp.WithDescription("Create a new service account"),
				mcp.WithString(argUser, mcp.Required(), mcp.Description("Username for the service account")),
				mcp.WithString(argPass, mcp.Required(), mcp.Description("Password for the service account")),
				withOptionalSpace,
				mcp.WithString(argDescription, mcp.Description("Description of the service account"))),
			handle: jsonTool(parseCreateServiceAccount, func(ctx context.Context, api ports.API, p *raworc.CreateServiceAccountRequest) (*raworc.ServiceAccount, error) {
				return api.CreateServiceAccount(ctx, p)
			}),
		},
		{
			tool: mcp.NewTool("get_service_account",
				mcp.WithDescription("Get a specific service account"),
				withID("Service account ID")),
			handle: jsonTool(parseID, func(ctx context.Context, api ports.API, p idParams) (*raworc.ServiceAccount, error) {
				return api.GetServiceAccount(ctx, p.ID)
			}),
		},
		{
			tool: mcp.NewTool("update_service_account",
				mcp.WithDescription("Update a service account"),
				withID("Service account ID"),
				mcp.WithString(argSpace, mcp.Description("Space name")),
				mcp.WithString(argDescription, mcp.Description("Description")),
				mcp.WithBoolean(argActive, mcp.Description("Whether the account is active"))),
			handle: jsonTool(parseUpdateServiceAccount, func(ctx context.Context, api ports.API, p updateServiceAccountParams) (*raworc.ServiceAccount, error) {
				return api.UpdateServiceAccount(ctx, p.ID, &p.Req)
			}),
		},
		{
			tool: mcp.NewTool("delete_service_account",
				mcp.WithDescription("Delete a service account"),
				withID("Service account ID")),
			handle: confirmTool(parseID, func(ctx context.Context, api ports.API, p idParams) error {
				return api.DeleteServiceAccount(ctx, p.ID)
			}, "Service account deleted successfully"),
		},
		{
			tool: mcp.NewTool("update_service_account_password",
				mcp.WithDescription("Update service account password"),
				withID("Service account ID"),
				mcp.WithString(argCurrentPassword, mcp.Required(), mcp.Description("Current password")),
				mcp.WithString(argNewPassword, mcp.Required(), mcp.Description("New password"))),
			handle: confirmTool(parseUpdatePassword, func(ctx context.Context, api ports.API, p updatePasswordParams) error {
				return api.UpdateServiceAccountPassword(ctx, p.ID, &p.Req)
			}, "Service account password updated successfully"),
		},
		{
			tool: mcp.NewTool("list_roles",
				mcp.WithDescription("List all roles")),
			handle: jsonTool(parseNone, func(ctx context.Context, api ports.API, _ noParams) ([]raworc.Role, error) {
				return api.ListRoles(ctx)
			}),
		},
		{
			tool: mcp.NewTool("create_role",
				mcp.WithDescription("Create a new role"),
				withID("Role ID"),
				mcp.WithString(argDescription, mcp.Description("Role description")),
				mcp.WithArray(argRules,
					mcp.Required(),
					mcp.Description("Role rules"),
					mcp.Items(map[string]any{
						"type": "object",
						"properties": map[string]any{
							"resources": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
							"verbs":     map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
							"scope":     map[string]any{"type": "string"},
						},
					}))),
			handle: jsonTool(parseCreateRole, func(ctx context.Context, api ports.API, p *raworc.CreateRoleRequest) (*raworc.Role, error) {
				return api.CreateRole(ctx, p)
			}),
		},
		{
			tool: mcp.NewTool("get_role",
				mcp.WithDescription("Get a specific role"),
				withID("Role ID")),
			handle: jsonTool(parseID, func(ctx context.Context, api ports.API, p idParams) (*raworc.Role, error) {
				return api.GetRole(ctx, p.ID)
			}),
		},
		{
			tool: mcp.NewTool("delete_role",
				mcp.WithDescription("Delete a role"),
				withID("Role ID")),
			handle: confirmTool(parseID, func(ctx context.Context, api ports.API, p idParams) error {
				return api.DeleteRole(ctx, p.ID)
			}, "Role deleted successfully"),
		},
		{
			tool: mcp.NewTool("list_role_bindings",
				mcp.WithDescription("List all role bindings")),
			handle: jsonTool(parseNone, func(ctx context.Context, api ports.API, _ noParams) ([]raworc.RoleBinding, error) {
				return api.ListRoleBindings(ctx)
			}),
		},
		{
			tool: mcp.NewTool("create_role_binding",
				mcp.WithDescription("Create a new role binding"),
				mcp.WithString(argSubject, mcp.Required(), mcp.Description("Subject (user/service account)")),
				mcp.WithString(argRoleRef, mcp.Required(), mcp.Description("Role reference")),
				withOptionalSpace),
			handle: jsonTool(parseCreateRoleBinding, func(ctx context.Context, api ports.API, p *raworc.CreateRoleBindingRequest) (*raworc.RoleBinding, error) {
				return api.CreateRoleBinding(ctx, p)
			}),
		},
		{
			tool: mcp.NewTool("get_role_binding",
				mcp.WithDescription("Get a specific role binding"),
				withID("Role binding ID")),
			handle: jsonTool(parseID, func(ctx context.Context, api ports.API, p idParams) (*raworc.RoleBinding, error) {
				return api.GetRoleBinding(ctx, p.ID)
			}),
		},
		{
			tool: mcp.NewTool("delete_role_binding",
				mcp.WithDescription("Delete a role binding"),
				withID("Role binding ID")),
			handle: confirmTool(parseID, func(ctx context.Context, api ports.API, p idParams) error {
				return api.DeleteRoleBinding(ctx, p.ID)
			}, "Role binding deleted successfully"),
		},
	}
}

func spaceTools() []entry {
	withSpaceName := mcp.WithString(argName, mcp.Required(), mcp.Description("Space name"))
	withSpaceDescription := mcp.WithString(argDescription, mcp.Description("Space description"))
	withSettings := mcp.WithObject(argSettings, mcp.Description("Space settings"))

	return []entry{
		{
			tool: mcp.NewTool("list_spaces",
				mcp.WithDescription("List all spaces")),
			handle: jsonTool(parseNone, func(ctx context.Context, api ports.API, _ noParams) ([]raworc.Space, error) {
				return api.ListSpaces(ctx)
			}),
		},
		{
			tool: mcp.NewTool("create_space",
				mcp.WithDescription("Create a new space"),
				withSpaceName, withSpaceDescription, withSettings),
			handle: jsonTool(parseCreateSpace, func(ctx context.Context, api ports.API, p *raworc.CreateSpaceRequest) (*raworc.Space, error) {
				return api.CreateSpace(ctx, p)
			}),
		},
		{
			tool: mcp.NewTool("get_space",
				mcp.WithDescription("Get a specific space"),
				withSpaceName),
			handle: jsonTool(parseName, func(ctx context.Context, api ports.API, p nameParams) (*raworc.Space, error) {
				return api.GetSpace(ctx, p.Name)
			}),
		},
		{
			tool: mcp.NewTool("update_space",
				mcp.WithDescription("Update a space"),
				withSpaceName, withSpaceDescription, withSettings),
			handle: jsonTool(parseUpdateSpace, func(ctx context.Context, api ports.API, p updateSpaceParams) (*raworc.Space, error) {
				return api.UpdateSpace(ctx, p.Name, &p.Req)
			}),
		},
		{
			tool: mcp.NewTool("delete_space",
				mcp.WithDescription("Delete a space"),
				withSpaceName),
			handle: confirmTool(parseName, func(ctx context.Context, api ports.API, p nameParams) error {
				return api.DeleteSpace(ctx, p.Name)
			}, "Space deleted successfully"),
		},
	}
}

func sessionTools() []entry {
	withMetadata := mcp.WithObject(argMetadata, mcp.Description("Session metadata"))

	return []entry{
		{
			tool: mcp.NewTool("list_sessions",
				mcp.WithDescription("List all sessions in a space"),
				withDefaultSpace),
			handle: jsonTool(parseOptionalSpace, func(ctx context.Context, api ports.API, p spaceParams) ([]raworc.Session, error) {
				return api.ListSessions(ctx, p.Space)
			}),
		},
		{
			tool: mcp.NewTool("create_session",
				mcp.WithDescription("Create a new session"),
				withDefaultSpace,
				mcp.WithObject(argMetadata, mcp.Description("Additional metadata for the session"))),
			handle: jsonTool(parseCreateSession, func(ctx context.Context, api ports.API, p metadataParams) (*raworc.Session, error) {
				return api.CreateSession(ctx, p.Space, p.Metadata)
			}),
		},
		{
			tool: mcp.NewTool("get_session",
				mcp.WithDescription("Get session details"),
				withSessionID, withOptionalSpace),
			handle: jsonTool(parseSession, func(ctx context.Context, api ports.API, p sessionParams) (*raworc.Session, error) {
				return api.GetSession(ctx, p.Space, p.SessionID)
			}),
		},
		{
			tool: mcp.NewTool("update_session",
				mcp.WithDescription("Update session details"),
				withSessionID, withOptionalSpace, withMetadata),
			handle: jsonTool(parseUpdateSession, func(ctx context.Context, api ports.API, p updateSessionParams) (*raworc.Session, error) {
				return api.UpdateSession(ctx, p.Space, p.SessionID, p.Metadata)
			}),
		},
		{
			tool: mcp.NewTool("update_session_state",
				mcp.WithDescription("Update session state"),
				withSessionID, withOptionalSpace,
				mcp.WithString(argState,
					mcp.Required(),
					mcp.Description("New session state"),
					mcp.Enum(enumValues(raworc.SessionStates)...))),
			handle: confirmTool(parseSessionState, func(ctx context.Context, api ports.API, p sessionStateParams) error {
				return api.UpdateSessionState(ctx, p.Space, p.SessionID, p.State)
			}, "Session state updated successfully"),
		},
		{
			tool: mcp.NewTool("close_session",
				mcp.WithDescription("Close a session"),
				withSessionID),
			handle: confirmTool(parseSession, func(ctx context.Context, api ports.API, p sessionParams) error {
				return api.CloseSession(ctx, p.SessionID)
			}, "Session closed successfully"),
		},
		{
			tool: mcp.NewTool("restore_session",
				mcp.WithDescription("Restore a closed session"),
				withSessionID),
			handle: confirmTool(parseSession, func(ctx context.Context, api ports.API, p sessionParams) error {
				return api.RestoreSession(ctx, p.SessionID)
			}, "Session restored successfully"),
		},
		{
			tool: mcp.NewTool("remix_session",
				mcp.WithDescription("Fork a session"),
				mcp.WithString(argSessionID, mcp.Required(), mcp.Description("Session ID to fork")),
				mcp.WithString(argSpace, mcp.Description("Target space for the new session"))),
			handle: jsonTool(parseSession, func(ctx context.Context, api ports.API, p sessionParams) (*raworc.Session, error) {
				return api.RemixSession(ctx, p.SessionID, p.Space)
			}),
		},
		{
			tool: mcp.NewTool("pause_session",
				mcp.WithDescription("Pause a session"),
				withSessionID, withOptionalSpace),
			handle: confirmTool(parseSession, func(ctx context.Context, api ports.API, p sessionParams) error {
				return api.PauseSession(ctx, p.Space, p.SessionID)
			}, "Session paused successfully"),
		},
		{
			tool: mcp.NewTool("resume_session",
				mcp.WithDescription("Resume a session"),
				withSessionID, withOptionalSpace),
			handle: confirmTool(parseSession, func(ctx context.Context, api ports.API, p sessionParams) error {
				return api.ResumeSession(ctx, p.Space, p.SessionID)
			}, "Session resumed successfully"),
		},
		{
			tool: mcp.NewTool("terminate_session",
				mcp.WithDescription("Terminate a session"),
				withSessionID, withOptionalSpace),
			handle: confirmTool(parseSession, func(ctx context.Context, api ports.API, p sessionParams) error {
				return api.TerminateSession(ctx, p.Space, p.SessionID)
			}, "Session terminated successfully"),
		},
	}
}

func messageTools() []entry {
	return []entry{
		{
			tool: mcp.NewTool("send_message",
				mcp.WithDescription("Send a message to a session"),
				withSessionID,
				mcp.WithString(argContent, mcp.Required(), mcp.Description("Message content")),
				withOptionalSpace),
			handle: jsonTool(parseSendMessage, func(ctx context.Context, api ports.API, p sendMessageParams) (*raworc.Message, error) {
				return api.SendMessage(ctx, p.Space, p.SessionID, p.Content)
			}),
		},
		{
			tool: mcp.NewTool("get_messages",
				mcp.WithDescription("Get messages from a session"),
				withSessionID,
				mcp.WithNumber(argLimit, mcp.Description("Maximum number of messages to retrieve")),
				withOptionalSpace),
			handle: jsonTool(parseGetMessages, func(ctx context.Context, api ports.API, p getMessagesParams) ([]raworc.Message, error) {
				return api.GetMessages(ctx, p.Space, p.SessionID, p.Limit)
			}),
		},
		{
			tool: mcp.NewTool("get_message_count",
				mcp.WithDescription("Get message count for a session"),
				withSessionID, withOptionalSpace),
			handle: jsonTool(parseSession, func(ctx context.Context, api ports.API, p sessionParams) (*raworc.MessageCount, error) {
				return api.GetMessageCount(ctx, p.Space, p.SessionID)
			}),
		},
		{
			tool: mcp.NewTool("clear_messages",
				mcp.WithDescription("Clear all messages from a session"),
				withSessionID, withOptionalSpace),
			handle: confirmTool(parseSession, func(ctx context.Context, api ports.API, p sessionParams) error {
				return api.ClearMessages(ctx, p.Space, p.SessionID)
			}, "Messages cleared successfully"),
		},
	}
}

func agentTools() []entry {
	return []entry{
		{
			tool: mcp.NewTool("list_agents",
				mcp.WithDescription("List agents in a space"),
				withDefaultSpace),
			handle: jsonTool(parseOptionalSpace, func(ctx context.Context, api ports.API, p spaceParams) ([]raworc.Agent, error) {
				return api.ListAgents(ctx, p.Space)
			}),
		},
		{
			tool: mcp.NewTool("create_agent",
				mcp.WithDescription("Create a new agent"),
				withRequiredSpace,
				mcp.WithString(argName, mcp.Required(), mcp.Description("Agent name")),
				mcp.WithString(argDescription, mcp.Description("Agent description")),
				mcp.WithString(argPurpose, mcp.Description("Agent purpose")),
				mcp.WithString(argSourceRepo, mcp.Description("Source repository")),
				mcp.WithString(argSourceBranch, mcp.Description("Source branch"))),
			handle: jsonTool(parseCreateAgent, func(ctx context.Context, api ports.API, p createAgentParams) (*raworc.Agent, error) {
				return api.CreateAgent(ctx, p.Space, &p.Req)
			}),
		},
		{
			tool: mcp.NewTool("get_agent",
				mcp.WithDescription("Get a specific agent"),
				withRequiredSpace, withAgentName),
			handle: jsonTool(parseAgent, func(ctx context.Context, api ports.API, p agentParams) (*raworc.Agent, error) {
				return api.GetAgent(ctx, p.Space, p.Name)
			}),
		},
		{
			tool: mcp.NewTool("update_agent",
				mcp.WithDescription("Update an agent"),
				withRequiredSpace, withAgentName,
				mcp.WithString(argDescription, mcp.Description("Agent description")),
				mcp.WithString(argPurpose, mcp.Description("Agent purpose"))),
			handle: jsonTool(parseUpdateAgent, func(ctx context.Context, api ports.API, p updateAgentParams) (*raworc.Agent, error) {
				return api.UpdateAgent(ctx, p.Space, p.Name, &p.Req)
			}),
		},
		{
			tool: mcp.NewTool("delete_agent",
				mcp.WithDescription("Delete an agent"),
				withRequiredSpace, withAgentName),
			handle: confirmTool(parseAgent, func(ctx context.Context, api ports.API, p agentParams) error {
				return api.DeleteAgent(ctx, p.Space, p.Name)
			}, "Agent deleted successfully"),
		},
		{
			tool: mcp.NewTool("update_agent_status",
				mcp.WithDescription("Update agent status"),
				withRequiredSpace, withAgentName,
				mcp.WithString(argStatus,
					mcp.Required(),
					mcp.Description("New agent status"),
					mcp.Enum(enumValues(raworc.AgentStatuses)...))),
			handle: confirmTool(parseAgentStatus, func(ctx context.Context, api ports.API, p agentStatusParams) error {
				return api.UpdateAgentStatus(ctx, p.Space, p.Name, p.Status)
			}, "Agent status updated successfully"),
		},
		{
			tool: mcp.NewTool("deploy_agent",
				mcp.WithDescription("Deploy an agent"),
				withRequiredSpace, withAgentName),
			handle: confirmTool(parseAgent, func(ctx context.Context, api ports.API, p agentParams) error {
				return api.DeployAgent(ctx, p.Space, p.Name)
			}, "Agent deployed successfully"),
		},
		{
			tool: mcp.NewTool("stop_agent",
				mcp.WithDescription("Stop an agent"),
				withRequiredSpace, withAgentName),
			handle: confirmTool(parseAgent, func(ctx context.Context, api ports.API, p agentParams) error {
				return api.StopAgent(ctx, p.Space, p.Name)
			}, "Agent stopped successfully"),
		},
		{
			tool: mcp.NewTool("list_running_agents",
				mcp.WithDescription("List running agents in a space"),
				withRequiredSpace),
			handle: jsonTool(parseRequiredSpace, func(ctx context.Context, api ports.API, p spaceParams) ([]raworc.Agent, error) {
				return api.ListRunningAgents(ctx, p.Space)
			}),
		},
		{
			tool: mcp.NewTool("get_agent_logs",
				mcp.WithDescription("Get logs for an agent"),
				withRequiredSpace, withAgentName),
			handle: textTool(parseAgent, func(ctx context.Context, api ports.API, p agentParams) (string, error) {
				return api.GetAgentLogs(ctx, p.Space, p.Name)
			}),
		},
	}
}

func secretTools() []entry {
	return []entry{
		{
			tool: mcp.NewTool("list_secrets",
				mcp.WithDescription("List secrets in a space"),
				withDefaultSpace),
			handle: jsonTool(parseOptionalSpace, func(ctx context.Context, api ports.API, p spaceParams) ([]raworc.Secret, error) {
				return api.ListSecrets(ctx, p.Space)
			}),
		},
		{
			tool: mcp.NewTool("create_secret",
				mcp.WithDescription("Create a new secret"),
				withRequiredSpace,
				mcp.WithString(argKeyName, mcp.Required(), mcp.Description("Secret key name")),
				mcp.WithString(argValue, mcp.Required(), mcp.Description("Secret value")),
				mcp.WithString(argDescription, mcp.Description("Secret description"))),
			handle: jsonTool(parseCreateSecret, func(ctx context.Context, api ports.API, p createSecretParams) (*raworc.Secret, error) {
				return api.CreateSecret(ctx, p.Space, &p.Req)
			}),
		},
		{
			tool: mcp.NewTool("get_secret",
				mcp.WithDescription("Get a secret value"),
				withRequiredSpace, withSecretKey),
			handle: jsonTool(parseSecret, func(ctx context.Context, api ports.API, p secretParams) (*raworc.Secret, error) {
				return api.GetSecret(ctx, p.Space, p.Key)
			}),
		},
		{
			tool: mcp.NewTool("set_secret",
				mcp.WithDescription("Set a secret value"),
				withRequiredSpace, withSecretKey,
				mcp.WithString(argValue, mcp.Required(), mcp.Description("Secret value"))),
			handle: jsonTool(parseSetSecret, func(ctx context.Context, api ports.API, p setSecretParams) (*raworc.Secret, error) {
				return api.SetSecret(ctx, p.Space, p.Key, p.Value)
			}),
		},
		{
			tool: mcp.NewTool("update_secret",
				mcp.WithDescription("Update a secret value"),
				withRequiredSpace, withSecretKey,
				mcp.WithString(argValue, mcp.Description("New secret value")),
				mcp.WithString(argDescription, mcp.Description("Secret description"))),
			handle: jsonTool(parseUpdateSecret, func(ctx context.Context, api ports.API, p updateSecretParams) (*raworc.Secret, error) {
				return api.UpdateSecret(ctx, p.Space, p.Key, &p.Req)
			}),
		},
		{
			tool: mcp.NewTool("delete_secret",
				mcp.WithDescription("Delete a secret"),
				withRequiredSpace, withSecretKey),
			handle: confirmTool(parseSecret, func(ctx context.Context, api ports.API, p secretParams) error {
				return api.DeleteSecret(ctx, p.Space, p.Key)
			}, "Secret deleted successfully"),
		},
	}
}

func buildTools() []entry {
	return []entry{
		{
			tool: mcp.NewTool("create_build",
				mcp.WithDescription("Create a new build for a space"),
				withRequiredSpace,
				mcp.WithString(argDockerfile, mcp.Description("Dockerfile content")),
				mcp.WithString(argContext, mcp.Description("Build context"))),
			handle: jsonTool(parseCreateBuild, func(ctx context.Context, api ports.API, p createBuildParams) (*raworc.Build, error) {
				return api.CreateBuild(ctx, p.Space, &p.Req)
			}),
		},
		{
			tool: mcp.NewTool("get_latest_build",
				mcp.WithDescription("Get the latest build for a space"),
				withRequiredSpace),
			handle: jsonTool(parseRequiredSpace, func(ctx context.Context, api ports.API, p spaceParams) (*raworc.Build, error) {
				return api.GetLatestBuild(ctx, p.Space)
			}),
		},
		{
			tool: mcp.NewTool("get_build",
				mcp.WithDescription("Get a specific build"),
				withRequiredSpace,
				mcp.WithString(argBuildID, mcp.Required(), mcp.Description("Build ID"))),
			handle: jsonTool(parseBuild, func(ctx context.Context, api ports.API, p buildParams) (*raworc.Build, error) {
				return api.GetBuild(ctx, p.Space, p.BuildID)
			}),
		},
	}
}

func enumValues[S ~string](values []S) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}

	return out
}
