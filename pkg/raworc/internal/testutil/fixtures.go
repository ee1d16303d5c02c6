package testutil

// Fixture bodies shaped like real API responses.
const (
	SessionJSON = `{
  "id": "sess-1",
  "space": "default",
  "created_by": "admin",
  "state": "RUNNING",
  "container_id": null,
  "persistent_volume_id": null,
  "parent_session_id": null,
  "created_at": "2025-01-02T03:04:05Z",
  "started_at": null,
  "last_activity_at": null,
  "terminated_at": null,
  "termination_reason": null,
  "metadata": {"purpose": "demo"}
}`

	SpaceJSON = `{
  "name": "default",
  "description": "Default space",
  "created_at": "2025-01-02T03:04:05Z",
  "updated_at": "2025-01-02T03:04:05Z"
}`

	MessageJSON = `{
  "id": "msg-1",
  "session_id": "sess-1",
  "role": "user",
  "content": "hello",
  "created_at": "2025-01-02T03:04:05Z"
}`

	SecretJSON = `{
  "key": "API_KEY",
  "value": "s3cr3t",
  "created_at": "2025-01-02T03:04:05Z",
  "updated_at": "2025-01-02T03:04:05Z"
}`

	AgentJSON = `{
  "name": "builder",
  "description": null,
  "image": "raworc/agent:latest",
  "command": null,
  "env": null,
  "resources": null,
  "status": "running",
  "created_at": "2025-01-02T03:04:05Z",
  "updated_at": "2025-01-02T03:04:05Z"
}`

	BuildJSON = `{
  "id": "build-1",
  "space": "default",
  "status": "completed",
  "image": "registry/default:1",
  "logs": null,
  "created_at": "2025-01-02T03:04:05Z",
  "completed_at": "2025-01-02T03:14:05Z"
}`

	VersionJSON = `{"version": "0.4.0", "api": "v0"}`
)
