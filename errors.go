package showcase

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error represents an API error response.
type Error struct {
	// StatusCode is the HTTP status code.
	StatusCode int `json:"-"`
	// Message is the server-supplied, human-readable error message.
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", http.StatusText(e.StatusCode), e.Message)
	}
	return http.StatusText(e.StatusCode)
}

// IsUnauthorized returns true if the error is an authorization error.
// Callers seeing this should treat the session as ended; the transport
// has already dropped the stored token.
func (e *Error) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// IsForbidden returns true if the error is a permission error.
func (e *Error) IsForbidden() bool {
	return e.StatusCode == http.StatusForbidden
}

// IsNotFound returns true if the error is a not found error.
func (e *Error) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsValidation returns true if the server rejected the request payload.
func (e *Error) IsValidation() bool {
	return e.StatusCode == http.StatusBadRequest
}

// parseError parses an error response from the API.
// The backend reports business errors as {"message": "..."}.
func parseError(statusCode int, body []byte) error {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}

	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return &Error{StatusCode: statusCode, Message: payload.Message}
		}
		if payload.Error != "" {
			return &Error{StatusCode: statusCode, Message: payload.Error}
		}
	}

	// Fallback to the raw body
	return &Error{StatusCode: statusCode, Message: string(body)}
}

// AsError checks if an error is an API error and returns it.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsUnauthorized reports whether err is an API authorization failure.
func IsUnauthorized(err error) bool {
	apiErr, ok := AsError(err)
	return ok && apiErr.IsUnauthorized()
}

// ErrorMessage extracts the server message from err, or a generic
// failure string for network and timeout errors.
func ErrorMessage(err error, fallback string) string {
	if apiErr, ok := AsError(err); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
