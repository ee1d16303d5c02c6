package tools

import (
	"context"
	"encoding/json"

	"github.com/harshapalnati/raworc-mcpserver/pkg/raworc/ports"
	"github.com/harshapalnati/raworc-mcpserver/pkg/raworcerrs"
)

// handler runs one tool call and returns the text to place in the single
// content item of the result.
type handler func(ctx context.Context, api ports.API, args map[string]any) (string, error)

// jsonTool builds a handler that renders the call result as indented JSON.
func jsonTool[P, R any](
	parse func(map[string]any) (P, error),
	call func(context.Context, ports.API, P) (R, error),
) handler {
	return func(ctx context.Context, api ports.API, args map[string]any) (string, error) {
		params, err := parse(args)
		if err != nil {
			return "", err
		}
		result, err := call(ctx, api, params)
		if err != nil {
			return "", err
		}

		return prettyJSON(result)
	}
}

// confirmTool builds a handler that answers with a fixed message on success.
func confirmTool[P any](
	parse func(map[string]any) (P, error),
	call func(context.Context, ports.API, P) error,
	message string,
) handler {
	return func(ctx context.Context, api ports.API, args map[string]any) (string, error) {
		params, err := parse(args)
		if err != nil {
			return "", err
		}
		if err := call(ctx, api, params); err != nil {
			return "", err
		}

		return message, nil
	}
}

// textTool builds a handler that passes the call's raw text through.
func textTool[P any](
	parse func(map[string]any) (P, error),
	call func(context.Context, ports.API, P) (string, error),
) handler {
	return func(ctx context.Context, api ports.API, args map[string]any) (string, error) {
		params, err := parse(args)
		if err != nil {
			return "", err
		}

		return call(ctx, api, params)
	}
}

func prettyJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", raworcerrs.NewSerializationError(
			raworcerrs.ErrCodeEncodeFailed,
			"encoding tool result",
			err,
		)
	}

	return string(data), nil
}
