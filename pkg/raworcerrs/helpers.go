package raworcerrs

import "errors"

// AsError extracts a RaworcError from err's chain.
func AsError(err error) (RaworcError, bool) {
	var rErr RaworcError
	if errors.As(err, &rErr) {
		return rErr, true
	}

	return nil, false
}

// HasCategory reports whether the outermost RaworcError in err's chain
// belongs to category.
func HasCategory(err error, category ErrorCategory) bool {
	if rErr, ok := AsError(err); ok {
		return rErr.Category() == category
	}

	return false
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	return HasCategory(err, CategoryValidation)
}

// IsAuth reports whether err is an authentication error.
func IsAuth(err error) bool {
	return HasCategory(err, CategoryAuthentication)
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	return HasCategory(err, CategoryNotFound)
}

// IsAPI reports whether err is a non-2xx API error.
func IsAPI(err error) bool {
	return HasCategory(err, CategoryAPI)
}

// IsProtocol reports whether err is a protocol error.
func IsProtocol(err error) bool {
	return HasCategory(err, CategoryProtocol)
}

// IsTransport reports whether err is a transport error.
func IsTransport(err error) bool {
	return HasCategory(err, CategoryTransport)
}

// IsSerialization reports whether err is a serialization error.
func IsSerialization(err error) bool {
	return HasCategory(err, CategorySerialization)
}

// IsConfig reports whether err is a configuration error.
func IsConfig(err error) bool {
	return HasCategory(err, CategoryConfig)
}

// IsTimeout reports whether err is a network timeout.
func IsTimeout(err error) bool {
	if rErr, ok := AsError(err); ok {
		return rErr.Category() == CategoryNetwork &&
			rErr.Code() == ErrCodeNetworkTimeout
	}

	return false
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode()
	}
	if IsNotFound(err) {
		return 404
	}
	if rErr, ok := AsError(err); ok && rErr.Code() == ErrCodeUnauthorized {
		return 401
	}

	return 0
}
