package tools

import "github.com/harshapalnati/raworc-mcpserver/pkg/raworc"

// Argument names shared across tools.
const (
	argID              = "id"
	argSpace           = "space"
	argName            = "name"
	argDescription     = "description"
	argSettings        = "settings"
	argMetadata        = "metadata"
	argSessionID       = "session_id"
	argState           = "state"
	argContent         = "content"
	argLimit           = "limit"
	argAgentName       = "agent_name"
	argStatus          = "status"
	argPurpose         = "purpose"
	argSourceRepo      = "source_repo"
	argSourceBranch    = "source_branch"
	argKey             = "key"
	argKeyName         = "key_name"
	argValue           = "value"
	argDockerfile      = "dockerfile"
	argContext         = "context"
	argBuildID         = "build_id"
	argUser            = "user"
	argPass            = "pass"
	argActive          = "active"
	argCurrentPassword = "current_password"
	argNewPassword     = "new_password"
	argRules           = "rules"
	argSubject         = "subject"
	argRoleRef         = "role_ref"
)

// Each parser is a pure function from the raw argument bag to a typed
// parameter struct. Required fields fail fast; optional ones are passed
// through as present or absent.

type noParams struct{}

func parseNone(map[string]any) (noParams, error) {
	return noParams{}, nil
}

type idParams struct {
	ID string
}

func parseID(args map[string]any) (idParams, error) {
	id, err := requiredString(args, argID)

	return idParams{ID: id}, err
}

type nameParams struct {
	Name string
}

func parseName(args map[string]any) (nameParams, error) {
	name, err := requiredString(args, argName)

	return nameParams{Name: name}, err
}

// spaceParams carries an optional space override.
type spaceParams struct {
	Space string
}

func parseOptionalSpace(args map[string]any) (spaceParams, error) {
	return spaceParams{Space: optionalSpace(args)}, nil
}

func parseRequiredSpace(args map[string]any) (spaceParams, error) {
	space, err := requiredString(args, argSpace)

	return spaceParams{Space: space}, err
}

type sessionParams struct {
	SessionID string
	Space     string
}

func parseSession(args map[string]any) (sessionParams, error) {
	id, err := requiredString(args, argSessionID)
	if err != nil {
		return sessionParams{}, err
	}

	return sessionParams{SessionID: id, Space: optionalSpace(args)}, nil
}

func parseCreateServiceAccount(args map[string]any) (*raworc.CreateServiceAccountRequest, error) {
	user, err := requiredString(args, argUser)
	if err != nil {
		return nil, err
	}
	pass, err := requiredString(args, argPass)
	if err != nil {
		return nil, err
	}

	return &raworc.CreateServiceAccountRequest{
		User:        user,
		Pass:        pass,
		Space:       optionalString(args, argSpace),
		Description: optionalString(args, argDescription),
	}, nil
}

type updateServiceAccountParams struct {
	ID  string
	Req raworc.UpdateServiceAccountRequest
}

func parseUpdateServiceAccount(args map[string]any) (updateServiceAccountParams, error) {
	id, err := requiredString(args, argID)
	if err != nil {
		return updateServiceAccountParams{}, err
	}

	return updateServiceAccountParams{
		ID: id,
		Req: raworc.UpdateServiceAccountRequest{
			Space:       optionalString(args, argSpace),
			Description: optionalString(args, argDescription),
			Active:      optionalBool(args, argActive),
		},
	}, nil
}

type updatePasswordParams struct {
	ID  string
	Req raworc.UpdatePasswordRequest
}

func parseUpdatePassword(args map[string]any) (updatePasswordParams, error) {
	id, err := requiredString(args, argID)
	if err != nil {
		return updatePasswordParams{}, err
	}
	current, err := requiredString(args, argCurrentPassword)
	if err != nil {
		return updatePasswordParams{}, err
	}
	next, err := requiredString(args, argNewPassword)
	if err != nil {
		return updatePasswordParams{}, err
	}

	return updatePasswordParams{
		ID: id,
		Req: raworc.UpdatePasswordRequest{
			CurrentPassword: current,
			NewPassword:     next,
		},
	}, nil
}

func parseCreateRole(args map[string]any) (*raworc.CreateRoleRequest, error) {
	id, err := requiredString(args, argID)
	if err != nil {
		return nil, err
	}
	rules, err := requiredRules(args, argRules)
	if err != nil {
		return nil, err
	}

	return &raworc.CreateRoleRequest{
		ID:          id,
		Description: optionalString(args, argDescription),
		Rules:       rules,
	}, nil
}

func parseCreateRoleBinding(args map[string]any) (*raworc.CreateRoleBindingRequest, error) {
	subject, err := requiredString(args, argSubject)
	if err != nil {
		return nil, err
	}
	roleRef, err := requiredString(args, argRoleRef)
	if err != nil {
		return nil, err
	}

	return &raworc.CreateRoleBindingRequest{
		Subject: subject,
		RoleRef: roleRef,
		Space:   optionalString(args, argSpace),
	}, nil
}

func parseCreateSpace(args map[string]any) (*raworc.CreateSpaceRequest, error) {
	name, err := requiredString(args, argName)
	if err != nil {
		return nil, err
	}

	return &raworc.CreateSpaceRequest{
		Name:        name,
		Description: optionalString(args, argDescription),
		Settings:    optionalObject(args, argSettings),
	}, nil
}

type updateSpaceParams struct {
	Name string
	Req  raworc.UpdateSpaceRequest
}

func parseUpdateSpace(args map[string]any) (updateSpaceParams, error) {
	name, err := requiredString(args, argName)
	if err != nil {
		return updateSpaceParams{}, err
	}

	return updateSpaceParams{
		Name: name,
		Req: raworc.UpdateSpaceRequest{
			Description: optionalString(args, argDescription),
			Settings:    optionalObject(args, argSettings),
		},
	}, nil
}

type metadataParams struct {
	Space    string
	Metadata map[string]any
}

func parseCreateSession(args map[string]any) (metadataParams, error) {
	return metadataParams{
		Space:    optionalSpace(args),
		Metadata: optionalObject(args, argMetadata),
	}, nil
}

type updateSessionParams struct {
	sessionParams
	Metadata map[string]any
}

func parseUpdateSession(args map[string]any) (updateSessionParams, error) {
	session, err := parseSession(args)
	if err != nil {
		return updateSessionParams{}, err
	}

	return updateSessionParams{
		sessionParams: session,
		Metadata:      optionalObject(args, argMetadata),
	}, nil
}

type sessionStateParams struct {
	sessionParams
	State raworc.SessionState
}

func parseSessionState(args map[string]any) (sessionStateParams, error) {
	session, err := parseSession(args)
	if err != nil {
		return sessionStateParams{}, err
	}
	state, err := sessionState(args)
	if err != nil {
		return sessionStateParams{}, err
	}

	return sessionStateParams{sessionParams: session, State: state}, nil
}

type sendMessageParams struct {
	sessionParams
	Content string
}

func parseSendMessage(args map[string]any) (sendMessageParams, error) {
	session, err := parseSession(args)
	if err != nil {
		return sendMessageParams{}, err
	}
	content, err := requiredString(args, argContent)
	if err != nil {
		return sendMessageParams{}, err
	}

	return sendMessageParams{sessionParams: session, Content: content}, nil
}

type getMessagesParams struct {
	sessionParams
	Limit *int
}

func parseGetMessages(args map[string]any) (getMessagesParams, error) {
	session, err := parseSession(args)
	if err != nil {
		return getMessagesParams{}, err
	}

	return getMessagesParams{
		sessionParams: session,
		Limit:         optionalLimit(args, argLimit),
	}, nil
}

type agentParams struct {
	Space string
	Name  string
}

func parseAgent(args map[string]any) (agentParams, error) {
	space, err := requiredString(args, argSpace)
	if err != nil {
		return agentParams{}, err
	}
	name, err := requiredString(args, argAgentName)
	if err != nil {
		return agentParams{}, err
	}

	return agentParams{Space: space, Name: name}, nil
}

type createAgentParams struct {
	Space string
	Req   raworc.CreateAgentRequest
}

func parseCreateAgent(args map[string]any) (createAgentParams, error) {
	space, err := requiredString(args, argSpace)
	if err != nil {
		return createAgentParams{}, err
	}
	name, err := requiredString(args, argName)
	if err != nil {
		return createAgentParams{}, err
	}

	return createAgentParams{
		Space: space,
		Req: raworc.CreateAgentRequest{
			Name:         name,
			Description:  optionalString(args, argDescription),
			Purpose:      optionalString(args, argPurpose),
			SourceRepo:   optionalString(args, argSourceRepo),
			SourceBranch: optionalString(args, argSourceBranch),
		},
	}, nil
}

type updateAgentParams struct {
	agentParams
	Req raworc.UpdateAgentRequest
}

func parseUpdateAgent(args map[string]any) (updateAgentParams, error) {
	agent, err := parseAgent(args)
	if err != nil {
		return updateAgentParams{}, err
	}

	return updateAgentParams{
		agentParams: agent,
		Req: raworc.UpdateAgentRequest{
			Description: optionalString(args, argDescription),
			Purpose:     optionalString(args, argPurpose),
		},
	}, nil
}

type agentStatusParams struct {
	agentParams
	Status raworc.AgentStatus
}

func parseAgentStatus(args map[string]any) (agentStatusParams, error) {
	agent, err := parseAgent(args)
	if err != nil {
		return agentStatusParams{}, err
	}
	status, err := agentStatus(args)
	if err != nil {
		return agentStatusParams{}, err
	}

	return agentStatusParams{agentParams: agent, Status: status}, nil
}

type secretParams struct {
	Space string
	Key   string
}

func parseSecret(args map[string]any) (secretParams, error) {
	space, err := requiredString(args, argSpace)
	if err != nil {
		return secretParams{}, err
	}
	key, err := requiredString(args, argKey)
	if err != nil {
		return secretParams{}, err
	}

	return secretParams{Space: space, Key: key}, nil
}

type createSecretParams struct {
	Space string
	Req   raworc.CreateSecretRequest
}

func parseCreateSecret(args map[string]any) (createSecretParams, error) {
	space, err := requiredString(args, argSpace)
	if err != nil {
		return createSecretParams{}, err
	}
	keyName, err := requiredString(args, argKeyName)
	if err != nil {
		return createSecretParams{}, err
	}
	value, err := requiredString(args, argValue)
	if err != nil {
		return createSecretParams{}, err
	}

	return createSecretParams{
		Space: space,
		Req: raworc.CreateSecretRequest{
			KeyName:     keyName,
			Value:       value,
			Description: optionalString(args, argDescription),
		},
	}, nil
}

type setSecretParams struct {
	secretParams
	Value string
}

func parseSetSecret(args map[string]any) (setSecretParams, error) {
	secret, err := parseSecret(args)
	if err != nil {
		return setSecretParams{}, err
	}
	value, err := requiredString(args, argValue)
	if err != nil {
		return setSecretParams{}, err
	}

	return setSecretParams{secretParams: secret, Value: value}, nil
}

type updateSecretParams struct {
	secretParams
	Req raworc.UpdateSecretRequest
}

func parseUpdateSecret(args map[string]any) (updateSecretParams, error) {
	secret, err := parseSecret(args)
	if err != nil {
		return updateSecretParams{}, err
	}

	return updateSecretParams{
		secretParams: secret,
		Req: raworc.UpdateSecretRequest{
			Value:       optionalString(args, argValue),
			Description: optionalString(args, argDescription),
		},
	}, nil
}

type createBuildParams struct {
	Space string
	Req   raworc.CreateBuildRequest
}

func parseCreateBuild(args map[string]any) (createBuildParams, error) {
	space, err := requiredString(args, argSpace)
	if err != nil {
		return createBuildParams{}, err
	}

	return createBuildParams{
		Space: space,
		Req: raworc.CreateBuildRequest{
			Dockerfile: optionalString(args, argDockerfile),
			Context:    optionalString(args, argContext),
		},
	}, nil
}

type buildParams struct {
	Space   string
	BuildID string
}

func parseBuild(args map[string]any) (buildParams, error) {
	space, err := requiredString(args, argSpace)
	if err != nil {
		return buildParams{}, err
	}
	id, err := requiredString(args, argBuildID)
	if err != nil {
		return buildParams{}, err
	}

	return buildParams{Space: space, BuildID: id}, nil
}
