// Package raworcerrs provides the error taxonomy shared by the Raworc REST
// client, the tool dispatcher and the JSON-RPC server.
//
// Every error carries a category and a code so callers can classify failures
// with errors.As instead of matching on message text.
package raworcerrs

import (
	"fmt"
	"maps"
)

// ErrorCategory groups errors by the layer that produced them.
type ErrorCategory string

const (
	// CategoryTransport represents stdio transport failures.
	CategoryTransport ErrorCategory = "transport"
	// CategoryProtocol represents JSON-RPC or tool-routing errors.
	CategoryProtocol ErrorCategory = "protocol"
	// CategoryValidation represents malformed tool arguments.
	CategoryValidation ErrorCategory = "validation"
	// CategoryAuthentication represents 401s and failed logins.
	CategoryAuthentication ErrorCategory = "authentication"
	// CategoryNotFound represents 404 responses.
	CategoryNotFound ErrorCategory = "not_found"
	// CategoryAPI represents any other non-2xx response.
	CategoryAPI ErrorCategory = "api"
	// CategorySerialization represents JSON encode or decode failures.
	CategorySerialization ErrorCategory = "serialization"
	// CategoryConfig represents invalid configuration.
	CategoryConfig ErrorCategory = "configuration"
	// CategoryNetwork represents connection failures and timeouts.
	CategoryNetwork ErrorCategory = "network"
)

// ErrorCode identifies a specific failure within a category.
type ErrorCode string

// Validation error codes.
const (
	ErrCodeMissingField ErrorCode = "missing_field"
	ErrCodeInvalidType  ErrorCode = "invalid_type"
	ErrCodeInvalidEnum  ErrorCode = "invalid_enum"
)

// Protocol error codes.
const (
	ErrCodeUnknownTool    ErrorCode = "unknown_tool"
	ErrCodeInvalidMessage ErrorCode = "invalid_message"
	ErrCodeUnknownMethod  ErrorCode = "unknown_method"
)

// Authentication error codes.
const (
	ErrCodeUnauthorized ErrorCode = "unauthorized"
	ErrCodeLoginFailed  ErrorCode = "login_failed"
)

// API error codes.
const (
	ErrCodeNotFound    ErrorCode = "api_not_found"
	ErrCodeBadRequest  ErrorCode = "api_bad_request"
	ErrCodeForbidden   ErrorCode = "api_forbidden"
	ErrCodeServerError ErrorCode = "api_server_error"
	ErrCodeAPIStatus   ErrorCode = "api_status"
)

// Network error codes.
const (
	ErrCodeNetworkTimeout   ErrorCode = "network_timeout"
	ErrCodeConnectionFailed ErrorCode = "connection_failed"
)

// Transport, serialization and configuration error codes.
const (
	ErrCodeReadFailed    ErrorCode = "read_failed"
	ErrCodeWriteFailed   ErrorCode = "write_failed"
	ErrCodeEncodeFailed  ErrorCode = "encode_failed"
	ErrCodeDecodeFailed  ErrorCode = "decode_failed"
	ErrCodeInvalidConfig ErrorCode = "invalid_config"
)

// RaworcError is implemented by every error in this package.
type RaworcError interface {
	error
	// Code returns the error code.
	Code() ErrorCode
	// Category returns the error category.
	Category() ErrorCategory
	// Unwrap returns the underlying error.
	Unwrap() error
	// Metadata returns additional error metadata.
	Metadata() map[string]any
}

// BaseError provides the shared implementation for all typed errors.
type BaseError struct {
	code     ErrorCode
	category ErrorCategory
	message  string
	cause    error
	metadata map[string]any
}

// NewBaseError creates a new base error.
func NewBaseError(
	category ErrorCategory,
	code ErrorCode,
	message string,
	cause error,
) *BaseError {
	return &BaseError{
		code:     code,
		category: category,
		message:  message,
		cause:    cause,
		metadata: make(map[string]any),
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.category, e.message, e.cause)
	}

	return fmt.Sprintf("%s: %s", e.category, e.message)
}

// Message returns the message without category prefix or cause.
func (e *BaseError) Message() string {
	return e.message
}

// Code returns the error code.
func (e *BaseError) Code() ErrorCode {
	return e.code
}

// Category returns the error category.
func (e *BaseError) Category() ErrorCategory {
	return e.category
}

// Unwrap returns the underlying error.
func (e *BaseError) Unwrap() error {
	return e.cause
}

// Metadata returns the error metadata.
func (e *BaseError) Metadata() map[string]any {
	return e.metadata
}

// WithMetadata adds metadata to the error.
func (e *BaseError) WithMetadata(key string, value any) *BaseError {
	e.metadata[key] = value

	return e
}

// WithMetadataMap adds multiple metadata items to the error.
func (e *BaseError) WithMetadataMap(metadata map[string]any) *BaseError {
	maps.Copy(e.metadata, metadata)

	return e
}
