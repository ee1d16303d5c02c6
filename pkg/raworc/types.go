package raworc

import "time"

// SessionState is the lifecycle state of a session as reported by the API.
type SessionState string

// Session states accepted by the state-update endpoint.
const (
	SessionStateInit       SessionState = "INIT"
	SessionStateRunning    SessionState = "RUNNING"
	SessionStatePaused     SessionState = "PAUSED"
	SessionStateSuspended  SessionState = "SUSPENDED"
	SessionStateTerminated SessionState = "TERMINATED"
	SessionStateIdle       SessionState = "IDLE"
	SessionStateClosed     SessionState = "CLOSED"
)

// SessionStates lists every accepted session state.
var SessionStates = []SessionState{
	SessionStateInit,
	SessionStateRunning,
	SessionStatePaused,
	SessionStateSuspended,
	SessionStateTerminated,
	SessionStateIdle,
	SessionStateClosed,
}

// AgentStatus is the deployment status of an agent.
type AgentStatus string

// Agent statuses accepted by the status-update endpoint.
const (
	AgentStatusActive   AgentStatus = "active"
	AgentStatusInactive AgentStatus = "inactive"
	AgentStatusRunning  AgentStatus = "running"
	AgentStatusStopped  AgentStatus = "stopped"
	AgentStatusError    AgentStatus = "error"
)

// AgentStatuses lists every accepted agent status.
var AgentStatuses = []AgentStatus{
	AgentStatusActive,
	AgentStatusInactive,
	AgentStatusRunning,
	AgentStatusStopped,
	AgentStatusError,
}

// BuildStatus is the state of a space image build.
type BuildStatus string

// Build statuses.
const (
	BuildStatusPending   BuildStatus = "pending"
	BuildStatusBuilding  BuildStatus = "building"
	BuildStatusCompleted BuildStatus = "completed"
	BuildStatusFailed    BuildStatus = "failed"
)

// MessageRole identifies the author of a session message.
type MessageRole string

// Message roles.
const (
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
	MessageRoleSystem    MessageRole = "system"
)

// Session is a unit of agent work scoped to a space.
type Session struct {
	ID                 string         `json:"id"`
	Space              string         `json:"space"`
	CreatedBy          string         `json:"created_by"`
	State              SessionState   `json:"state"`
	ContainerID        *string        `json:"container_id"`
	PersistentVolumeID *string        `json:"persistent_volume_id"`
	ParentSessionID    *string        `json:"parent_session_id"`
	CreatedAt          time.Time      `json:"created_at"`
	StartedAt          *time.Time     `json:"started_at"`
	LastActivityAt     *time.Time     `json:"last_activity_at"`
	TerminatedAt       *time.Time     `json:"terminated_at"`
	TerminationReason  *string        `json:"termination_reason"`
	Metadata           map[string]any `json:"metadata"`
}

// Message is a single entry in a session conversation.
type Message struct {
	ID        string      `json:"id"`
	SessionID string      `json:"session_id"`
	Role      MessageRole `json:"role"`
	Content   string      `json:"content"`
	CreatedAt time.Time   `json:"created_at"`
}

// MessageCount is the number of messages in a session.
type MessageCount struct {
	Count uint64 `json:"count"`
}

// Space is a named tenant that scopes sessions, agents and secrets.
type Space struct {
	Name        string         `json:"name"`
	Description *string        `json:"description"`
	Settings    map[string]any `json:"settings,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// AgentResources are the resource limits of an agent container.
type AgentResources struct {
	CPU    *string `json:"cpu"`
	Memory *string `json:"memory"`
	GPU    *string `json:"gpu"`
}

// Agent is a deployable agent definition inside a space.
type Agent struct {
	Name         string            `json:"name"`
	Description  *string           `json:"description"`
	Purpose      *string           `json:"purpose,omitempty"`
	SourceRepo   *string           `json:"source_repo,omitempty"`
	SourceBranch *string           `json:"source_branch,omitempty"`
	Image        string            `json:"image"`
	Command      []string          `json:"command"`
	Env          map[string]string `json:"env"`
	Resources    *AgentResources   `json:"resources"`
	Status       AgentStatus       `json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// Secret is a key/value credential stored in a space.
type Secret struct {
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ServiceAccount is a non-human principal.
type ServiceAccount struct {
	ID          string     `json:"id"`
	User        string     `json:"user"`
	Space       *string    `json:"space"`
	Description *string    `json:"description"`
	Active      bool       `json:"active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	LastLoginAt *time.Time `json:"last_login_at"`
}

// RoleRule grants verbs on resources within a scope.
type RoleRule struct {
	Resources []string `json:"resources"`
	Verbs     []string `json:"verbs"`
	Scope     string   `json:"scope"`
}

// Role is a named set of rules.
type Role struct {
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	Rules       []RoleRule `json:"rules"`
	CreatedAt   time.Time  `json:"created_at"`
}

// RoleBinding attaches a role to a subject, optionally within a space.
type RoleBinding struct {
	ID        string    `json:"id"`
	Subject   string    `json:"subject"`
	RoleRef   string    `json:"role_ref"`
	Space     *string   `json:"space"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Build is a container image build for a space.
type Build struct {
	ID          string      `json:"id"`
	Space       string      `json:"space"`
	Status      BuildStatus `json:"status"`
	Image       *string     `json:"image"`
	Logs        *string     `json:"logs"`
	CreatedAt   time.Time   `json:"created_at"`
	CompletedAt *time.Time  `json:"completed_at"`
}

// UserInfo describes the authenticated principal.
type UserInfo struct {
	User      string  `json:"user"`
	Namespace *string `json:"namespace"`
	Type      string  `json:"type"`
}

// VersionResponse is returned by the version endpoint.
type VersionResponse struct {
	Version string `json:"version"`
	API     string `json:"api"`
}

// AuthRequest is the login payload.
type AuthRequest struct {
	User string `json:"user"`
	Pass string `json:"pass"`
}

// AuthResponse is returned by a successful login. Only Token is guaranteed.
type AuthResponse struct {
	Token     string     `json:"token"`
	TokenType string     `json:"token_type,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// CreateSpaceRequest is the payload for creating a space.
type CreateSpaceRequest struct {
	Name        string         `json:"name"`
	Description *string        `json:"description,omitempty"`
	Settings    map[string]any `json:"settings,omitempty"`
}

// UpdateSpaceRequest is the payload for updating a space.
type UpdateSpaceRequest struct {
	Description *string        `json:"description,omitempty"`
	Settings    map[string]any `json:"settings,omitempty"`
}

// CreateSessionRequest is the payload for creating or remixing a session.
type CreateSessionRequest struct {
	Space    *string        `json:"space,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// UpdateSessionRequest is the payload for updating a session.
type UpdateSessionRequest struct {
	Space    *string        `json:"space,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// UpdateSessionStateRequest is the payload for a state transition.
type UpdateSessionStateRequest struct {
	State SessionState `json:"state"`
}

// CreateMessageRequest is the payload for sending a message.
type CreateMessageRequest struct {
	Content string `json:"content"`
}

// CreateAgentRequest is the payload for creating an agent.
type CreateAgentRequest struct {
	Name         string  `json:"name"`
	Description  *string `json:"description,omitempty"`
	Purpose      *string `json:"purpose,omitempty"`
	SourceRepo   *string `json:"source_repo,omitempty"`
	SourceBranch *string `json:"source_branch,omitempty"`
}

// UpdateAgentRequest is the payload for updating an agent.
type UpdateAgentRequest struct {
	Description *string `json:"description,omitempty"`
	Purpose     *string `json:"purpose,omitempty"`
}

// UpdateAgentStatusRequest is the payload for an agent status change.
type UpdateAgentStatusRequest struct {
	Status AgentStatus `json:"status"`
}

// CreateSecretRequest is the payload for creating a named secret.
type CreateSecretRequest struct {
	KeyName     string  `json:"key_name"`
	Value       string  `json:"value"`
	Description *string `json:"description,omitempty"`
}

// SetSecretRequest is the payload for writing a secret value by key.
type SetSecretRequest struct {
	Value string `json:"value"`
}

// UpdateSecretRequest is the payload for updating a secret.
type UpdateSecretRequest struct {
	Value       *string `json:"value,omitempty"`
	Description *string `json:"description,omitempty"`
}

// CreateBuildRequest is the payload for starting a build.
type CreateBuildRequest struct {
	Dockerfile *string `json:"dockerfile,omitempty"`
	Context    *string `json:"context,omitempty"`
}

// CreateServiceAccountRequest is the payload for creating a service account.
type CreateServiceAccountRequest struct {
	User        string  `json:"user"`
	Pass        string  `json:"pass"`
	Space       *string `json:"space,omitempty"`
	Description *string `json:"description,omitempty"`
}

// UpdateServiceAccountRequest is the payload for updating a service account.
type UpdateServiceAccountRequest struct {
	Space       *string `json:"space,omitempty"`
	Description *string `json:"description,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

// UpdatePasswordRequest is the payload for rotating a service account password.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// CreateRoleRequest is the payload for creating a role.
type CreateRoleRequest struct {
	ID          string     `json:"id"`
	Description *string    `json:"description,omitempty"`
	Rules       []RoleRule `json:"rules"`
}

// CreateRoleBindingRequest is the payload for creating a role binding.
type CreateRoleBindingRequest struct {
	Subject string  `json:"subject"`
	RoleRef string  `json:"role_ref"`
	Space   *string `json:"space,omitempty"`
}
