package tools

import (
	"math"

	"github.com/harshapalnati/raworc-mcpserver/pkg/raworc"
	"github.com/harshapalnati/raworc-mcpserver/pkg/raworcerrs"
)

// requiredString extracts a required string argument. Absent, null and
// non-string values are all reported as missing.
func requiredString(args map[string]any, key string) (string, error) {
	str, ok := args[key].(string)
	if !ok {
		return "", raworcerrs.MissingField(key)
	}

	return str, nil
}

// optionalString extracts an optional string argument. Wrongly typed
// values count as absent.
func optionalString(args map[string]any, key string) *string {
	str, ok := args[key].(string)
	if !ok {
		return nil
	}

	return &str
}

// optionalSpace extracts the space override; "" means not given.
func optionalSpace(args map[string]any) string {
	str, _ := args[argSpace].(string)

	return str
}

// optionalBool extracts an optional boolean argument.
func optionalBool(args map[string]any, key string) *bool {
	b, ok := args[key].(bool)
	if !ok {
		return nil
	}

	return &b
}

// optionalObject extracts an optional object argument.
func optionalObject(args map[string]any, key string) map[string]any {
	obj, _ := args[key].(map[string]any)

	return obj
}

// maxLimit is the largest integer a JSON number decoded into float64 holds
// exactly.
const maxLimit = 1 << 53

// optionalLimit extracts a non-negative integral number. Fractions,
// negatives, numbers beyond maxLimit and non-numbers count as absent.
func optionalLimit(args map[string]any, key string) *int {
	var n int64
	switch v := args[key].(type) {
	case float64:
		if v != math.Trunc(v) || v < 0 || v > maxLimit {
			return nil
		}
		n = int64(v)
	case int:
		n = int64(v)
	case int64:
		n = v
	default:
		return nil
	}
	if n < 0 || n > maxLimit {
		return nil
	}
	limit := int(n)

	return &limit
}

// requiredRules extracts the rules array of a role definition.
func requiredRules(args map[string]any, key string) ([]raworc.RoleRule, error) {
	items, ok := args[key].([]any)
	if !ok {
		return nil, raworcerrs.MissingField(key)
	}

	rules := make([]raworc.RoleRule, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, raworcerrs.NewValidationError(
				raworcerrs.ErrCodeInvalidType,
				key+" must be an array of objects",
				key,
				item,
			)
		}
		scope, _ := obj["scope"].(string)
		rules = append(rules, raworc.RoleRule{
			Resources: stringList(obj["resources"]),
			Verbs:     stringList(obj["verbs"]),
			Scope:     scope,
		})
	}

	return rules, nil
}

// stringList keeps the string elements of an array value.
func stringList(v any) []string {
	items, _ := v.([]any)
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}

	return out
}

// sessionState matches state against the closed set, case-sensitively.
func sessionState(args map[string]any) (raworc.SessionState, error) {
	raw, err := requiredString(args, argState)
	if err != nil {
		return "", err
	}
	for _, s := range raworc.SessionStates {
		if string(s) == raw {
			return s, nil
		}
	}

	return "", raworcerrs.NewValidationError(
		raworcerrs.ErrCodeInvalidEnum,
		"Invalid session state: "+raw,
		argState,
		raw,
	)
}

// agentStatus matches status against the closed set, case-sensitively.
func agentStatus(args map[string]any) (raworc.AgentStatus, error) {
	raw, err := requiredString(args, argStatus)
	if err != nil {
		return "", err
	}
	for _, s := range raworc.AgentStatuses {
		if string(s) == raw {
			return s, nil
		}
	}

	return "", raworcerrs.NewValidationError(
		raworcerrs.ErrCodeInvalidEnum,
		"Invalid agent status: "+raw,
		argStatus,
		raw,
	)
}
