// Package ports defines the interfaces the tool dispatcher and the JSON-RPC
// server need from their collaborators. Concrete implementations live in
// pkg/raworc (API), internal/transport (Transport) and pkg/raworc/tools
// (Dispatcher).
package ports

import (
	"context"

	"github.com/harshapalnati/raworc-mcpserver/pkg/raworc"
)

// API is the subset of the Raworc REST client exercised by tools.
// Space arguments follow the client's fallback rules: "" means not given.
type API interface {
	HealthCheck(ctx context.Context) (string, error)
	GetVersion(ctx context.Context) (*raworc.VersionResponse, error)
	GetUserInfo(ctx context.Context) (*raworc.UserInfo, error)

	ServiceAccountAPI
	RoleAPI
	SpaceAPI
	SessionAPI
	AgentAPI
	SecretAPI
	BuildAPI
}

// ServiceAccountAPI manages service accounts.
type ServiceAccountAPI interface {
	ListServiceAccounts(ctx context.Context) ([]raworc.ServiceAccount, error)
	CreateServiceAccount(ctx context.Context, req *raworc.CreateServiceAccountRequest) (*raworc.ServiceAccount, error)
	GetServiceAccount(ctx context.Context, id string) (*raworc.ServiceAccount, error)
	UpdateServiceAccount(ctx context.Context, id string, req *raworc.UpdateServiceAccountRequest) (*raworc.ServiceAccount, error)
	DeleteServiceAccount(ctx context.Context, id string) error
	UpdateServiceAccountPassword(ctx context.Context, id string, req *raworc.UpdatePasswordRequest) error
}

// RoleAPI manages roles and role bindings.
type RoleAPI interface {
	ListRoles(ctx context.Context) ([]raworc.Role, error)
	CreateRole(ctx context.Context, req *raworc.CreateRoleRequest) (*raworc.Role, error)
	GetRole(ctx context.Context, id string) (*raworc.Role, error)
	DeleteRole(ctx context.Context, id string) error
	ListRoleBindings(ctx context.Context) ([]raworc.RoleBinding, error)
	CreateRoleBinding(ctx context.Context, req *raworc.CreateRoleBindingRequest) (*raworc.RoleBinding, error)
	GetRoleBinding(ctx context.Context, id string) (*raworc.RoleBinding, error)
	DeleteRoleBinding(ctx context.Context, id string) error
}

// SpaceAPI manages spaces.
type SpaceAPI interface {
	ListSpaces(ctx context.Context) ([]raworc.Space, error)
	CreateSpace(ctx context.Context, req *raworc.CreateSpaceRequest) (*raworc.Space, error)
	GetSpace(ctx context.Context, name string) (*raworc.Space, error)
	UpdateSpace(ctx context.Context, name string, req *raworc.UpdateSpaceRequest) (*raworc.Space, error)
	DeleteSpace(ctx context.Context, name string) error
}

// SessionAPI manages sessions and their messages.
type SessionAPI interface {
	ListSessions(ctx context.Context, space string) ([]raworc.Session, error)
	CreateSession(ctx context.Context, space string, metadata map[string]any) (*raworc.Session, error)
	GetSession(ctx context.Context, space, sessionID string) (*raworc.Session, error)
	UpdateSession(ctx context.Context, space, sessionID string, metadata map[string]any) (*raworc.Session, error)
	UpdateSessionState(ctx context.Context, space, sessionID string, state raworc.SessionState) error
	PauseSession(ctx context.Context, space, sessionID string) error
	ResumeSession(ctx context.Context, space, sessionID string) error
	TerminateSession(ctx context.Context, space, sessionID string) error
	CloseSession(ctx context.Context, sessionID string) error
	RestoreSession(ctx context.Context, sessionID string) error
	RemixSession(ctx context.Context, sessionID, space string) (*raworc.Session, error)

	GetMessages(ctx context.Context, space, sessionID string, limit *int) ([]raworc.Message, error)
	SendMessage(ctx context.Context, space, sessionID, content string) (*raworc.Message, error)
	GetMessageCount(ctx context.Context, space, sessionID string) (*raworc.MessageCount, error)
	ClearMessages(ctx context.Context, space, sessionID string) error
}

// GlobalSessionAPI addresses sessions by ID alone, without a space. No tool
// uses it; it is part of the client surface for embedders.
type GlobalSessionAPI interface {
	ListAllSessions(ctx context.Context) ([]raworc.Session, error)
	CreateGlobalSession(ctx context.Context, req *raworc.CreateSessionRequest) (*raworc.Session, error)
	GetGlobalSession(ctx context.Context, sessionID string) (*raworc.Session, error)
	UpdateGlobalSession(ctx context.Context, sessionID string, req *raworc.UpdateSessionRequest) (*raworc.Session, error)
	UpdateGlobalSessionState(ctx context.Context, sessionID string, state raworc.SessionState) error
	DeleteGlobalSession(ctx context.Context, sessionID string) error

	GetGlobalMessages(ctx context.Context, sessionID string, limit *int) ([]raworc.Message, error)
	SendGlobalMessage(ctx context.Context, sessionID, content string) (*raworc.Message, error)
	GetGlobalMessageCount(ctx context.Context, sessionID string) (*raworc.MessageCount, error)
	ClearGlobalMessages(ctx context.Context, sessionID string) error
}

// AgentAPI manages agents within a space.
type AgentAPI interface {
	ListAgents(ctx context.Context, space string) ([]raworc.Agent, error)
	ListRunningAgents(ctx context.Context, space string) ([]raworc.Agent, error)
	CreateAgent(ctx context.Context, space string, req *raworc.CreateAgentRequest) (*raworc.Agent, error)
	GetAgent(ctx context.Context, space, name string) (*raworc.Agent, error)
	UpdateAgent(ctx context.Context, space, name string, req *raworc.UpdateAgentRequest) (*raworc.Agent, error)
	DeleteAgent(ctx context.Context, space, name string) error
	UpdateAgentStatus(ctx context.Context, space, name string, status raworc.AgentStatus) error
	DeployAgent(ctx context.Context, space, name string) error
	StopAgent(ctx context.Context, space, name string) error
	GetAgentLogs(ctx context.Context, space, name string) (string, error)
}

// SecretAPI manages secrets within a space.
type SecretAPI interface {
	ListSecrets(ctx context.Context, space string) ([]raworc.Secret, error)
	CreateSecret(ctx context.Context, space string, req *raworc.CreateSecretRequest) (*raworc.Secret, error)
	GetSecret(ctx context.Context, space, key string) (*raworc.Secret, error)
	SetSecret(ctx context.Context, space, key, value string) (*raworc.Secret, error)
	UpdateSecret(ctx context.Context, space, key string, req *raworc.UpdateSecretRequest) (*raworc.Secret, error)
	DeleteSecret(ctx context.Context, space, key string) error
}

// BuildAPI manages space image builds.
type BuildAPI interface {
	CreateBuild(ctx context.Context, space string, req *raworc.CreateBuildRequest) (*raworc.Build, error)
	GetLatestBuild(ctx context.Context, space string) (*raworc.Build, error)
	GetBuild(ctx context.Context, space, buildID string) (*raworc.Build, error)
}

// Compile-time check that the REST client satisfies API.
var (
	_ API              = (*raworc.Client)(nil)
	_ GlobalSessionAPI = (*raworc.Client)(nil)
)
