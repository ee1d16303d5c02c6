package raworc

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/harshapalnati/raworc-mcpserver/pkg/raworcerrs"
)

// unknownErrorDetail is used when an error body cannot be read.
const unknownErrorDetail = "Unknown error"

// unauthorizedDetail stands in for an empty 401 body.
const unauthorizedDetail = "unauthorized"

// errorEnvelope is the structured error body the API returns.
type errorEnvelope struct {
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// mapStatus converts a non-2xx response into a typed error.
//
// 404 keeps the raw body verbatim, 401 becomes an authentication error, and
// anything else is an API error. Both of the latter prefer error.message from
// a structured body over the raw text.
func mapStatus(res *response) error {
	if res.status == http.StatusNotFound {
		if res.readErr != nil {
			return raworcerrs.NewNotFoundError(unknownErrorDetail)
		}

		return raworcerrs.NewNotFoundError(string(res.body))
	}

	detail := errorDetail(res)
	if res.status == http.StatusUnauthorized {
		if detail == "" {
			detail = unauthorizedDetail
		}
		authErr := raworcerrs.NewAuthError(raworcerrs.ErrCodeUnauthorized, detail, nil)
		_ = authErr.WithMetadata("request_id", res.requestID)

		return authErr
	}

	return raworcerrs.NewAPIError(res.status, detail).WithRequestID(res.requestID)
}

// errorDetail extracts the message of an error response.
func errorDetail(res *response) string {
	if res.readErr != nil {
		return unknownErrorDetail
	}
	var env errorEnvelope
	if err := json.Unmarshal(res.body, &env); err == nil && env.Error != nil {
		return env.Error.Message
	}

	return strings.TrimSpace(string(res.body))
}

// decodeJSON decodes a 2xx body into T.
func decodeJSON[T any](res *response) (T, error) {
	var out T
	if res.readErr != nil {
		return out, raworcerrs.NewNetworkError(
			raworcerrs.ErrCodeConnectionFailed,
			"reading response body",
			res.readErr,
		)
	}
	if err := json.Unmarshal(res.body, &out); err != nil {
		return out, raworcerrs.NewSerializationError(
			raworcerrs.ErrCodeDecodeFailed,
			"decoding response body",
			err,
		)
	}

	return out, nil
}
