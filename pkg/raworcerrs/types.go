package raworcerrs

import (
	"fmt"
	"net/http"
)

// ValidationError reports a tool argument that is missing, mistyped or
// outside its allowed set.
type ValidationError struct {
	*BaseError
	field string
	value any
}

// NewValidationError creates a new validation error.
func NewValidationError(
	code ErrorCode,
	message string,
	field string,
	value any,
) *ValidationError {
	err := &ValidationError{
		BaseError: NewBaseError(CategoryValidation, code, message, nil),
		field:     field,
		value:     value,
	}
	_ = err.WithMetadata("field", field)

	return err
}

// MissingField reports a required argument that is absent or not a string.
func MissingField(field string) *ValidationError {
	return NewValidationError(
		ErrCodeMissingField,
		field+" is required",
		field,
		nil,
	)
}

// Field returns the offending argument name.
func (e *ValidationError) Field() string {
	return e.field
}

// Value returns the rejected value, if any.
func (e *ValidationError) Value() any {
	return e.value
}

// AuthError represents a 401 response or a failed login.
type AuthError struct {
	*BaseError
}

// NewAuthError creates a new authentication error.
func NewAuthError(code ErrorCode, message string, cause error) *AuthError {
	return &AuthError{
		BaseError: NewBaseError(CategoryAuthentication, code, message, cause),
	}
}

// NotFoundError carries the raw body of a 404 response verbatim.
type NotFoundError struct {
	*BaseError
}

// NewNotFoundError creates a new not-found error from a response body.
func NewNotFoundError(body string) *NotFoundError {
	return &NotFoundError{
		BaseError: NewBaseError(CategoryNotFound, ErrCodeNotFound, body, nil),
	}
}

// Detail returns the raw response body.
func (e *NotFoundError) Detail() string {
	return e.message
}

// APIError represents any non-2xx response other than 401 and 404.
type APIError struct {
	*BaseError
	statusCode int
	detail     string
}

// NewAPIError creates a new API error for a response status.
func NewAPIError(statusCode int, detail string) *APIError {
	err := &APIError{
		BaseError: NewBaseError(
			CategoryAPI,
			codeForStatus(statusCode),
			fmt.Sprintf("status %d: %s", statusCode, detail),
			nil,
		),
		statusCode: statusCode,
		detail:     detail,
	}
	_ = err.WithMetadata("status_code", statusCode)

	return err
}

// StatusCode returns the HTTP status of the response.
func (e *APIError) StatusCode() int {
	return e.statusCode
}

// Detail returns the server message or raw body.
func (e *APIError) Detail() string {
	return e.detail
}

// WithRequestID adds request ID metadata to the error.
func (e *APIError) WithRequestID(requestID string) *APIError {
	_ = e.WithMetadata("request_id", requestID)

	return e
}

func codeForStatus(status int) ErrorCode {
	switch {
	case status == http.StatusBadRequest:
		return ErrCodeBadRequest
	case status == http.StatusForbidden:
		return ErrCodeForbidden
	case status >= http.StatusInternalServerError:
		return ErrCodeServerError
	default:
		return ErrCodeAPIStatus
	}
}

// NetworkError represents connection failures and timeouts.
type NetworkError struct {
	*BaseError
}

// NewNetworkError creates a new network error.
func NewNetworkError(code ErrorCode, message string, cause error) *NetworkError {
	return &NetworkError{
		BaseError: NewBaseError(CategoryNetwork, code, message, cause),
	}
}

// WithHost adds host metadata to the error.
func (e *NetworkError) WithHost(host string) *NetworkError {
	_ = e.WithMetadata("host", host)

	return e
}

// ProtocolError represents JSON-RPC and tool-routing failures.
type ProtocolError struct {
	*BaseError
}

// NewProtocolError creates a new protocol error.
func NewProtocolError(code ErrorCode, message string, cause error) *ProtocolError {
	return &ProtocolError{
		BaseError: NewBaseError(CategoryProtocol, code, message, cause),
	}
}

// UnknownTool reports a tools/call for a name outside the catalog.
func UnknownTool(name string) *ProtocolError {
	err := NewProtocolError(ErrCodeUnknownTool, "unknown tool: "+name, nil)
	_ = err.WithMetadata("tool", name)

	return err
}

// TransportError represents stdio read or write failures.
type TransportError struct {
	*BaseError
}

// NewTransportError creates a new transport error.
func NewTransportError(code ErrorCode, message string, cause error) *TransportError {
	return &TransportError{
		BaseError: NewBaseError(CategoryTransport, code, message, cause),
	}
}

// SerializationError represents a JSON encode or decode failure.
type SerializationError struct {
	*BaseError
}

// NewSerializationError creates a new serialization error.
func NewSerializationError(code ErrorCode, message string, cause error) *SerializationError {
	return &SerializationError{
		BaseError: NewBaseError(CategorySerialization, code, message, cause),
	}
}

// ConfigError represents an invalid configuration value.
type ConfigError struct {
	*BaseError
	key string
}

// NewConfigError creates a new configuration error for key.
func NewConfigError(key, message string, cause error) *ConfigError {
	err := &ConfigError{
		BaseError: NewBaseError(CategoryConfig, ErrCodeInvalidConfig, message, cause),
		key:       key,
	}
	_ = err.WithMetadata("key", key)

	return err
}

// Key returns the configuration key at fault.
func (e *ConfigError) Key() string {
	return e.key
}
