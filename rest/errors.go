package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is the normalized form of every failure reported by the EMC API
// or its transport. Code carries the application-level error code when the
// server provided one, falling back to the HTTP status.
type APIError struct {
	// Code is the application error code (ExtendedCode, then Code, then
	// the HTTP status code).
	Code int

	// Message is the human-readable error description (ExtendedMessage,
	// then Message, then the HTTP status text).
	Message string

	// err is the underlying transport error, if any.
	err error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("emc: API error %d: %s", e.Code, e.Message)
}

// Unwrap returns the underlying transport error, if any.
func (e *APIError) Unwrap() error {
	return e.err
}

// errorEnvelope is the wire shape of EMC error bodies. The server emits
// either the general Code/Message pair or the extended variants; some
// responses carry both.
type errorEnvelope struct {
	Code            int    `json:"Code"`
	Message         string `json:"Message"`
	ExtendedCode    int    `json:"ExtendedCode"`
	ExtendedMessage string `json:"ExtendedMessage"`
}

// normalize resolves the envelope against an HTTP status using the canonical
// precedence chain: extended fields first, general fields second, raw HTTP
// status last.
func (e *errorEnvelope) normalize(statusCode int, statusText string) *APIError {
	code := e.ExtendedCode
	if code == 0 {
		code = e.Code
	}
	if code == 0 {
		code = statusCode
	}

	message := e.ExtendedMessage
	if message == "" {
		message = e.Message
	}
	if message == "" {
		message = statusText
	}

	return &APIError{Code: code, Message: message}
}

// ParseAPIError normalizes a server error response into an APIError.
// The body need not be valid JSON; an unparseable body falls back to the
// HTTP status code and text.
func ParseAPIError(statusCode int, statusText string, body []byte) *APIError {
	var env errorEnvelope
	if len(body) > 0 {
		// Malformed bodies fall through to the HTTP status fallback.
		_ = json.Unmarshal(body, &env)
	}
	return env.normalize(statusCode, normalizeStatusText(statusCode, statusText))
}

// parseSoftError inspects a success-status body for an embedded error
// marker. Returns nil when the body is a legitimate payload.
func parseSoftError(body []byte) *APIError {
	if len(body) == 0 {
		return nil
	}
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		// Arrays and non-object payloads cannot carry the marker.
		return nil
	}
	if env.ExtendedMessage == "" && env.Message == "" {
		return nil
	}
	return env.normalize(http.StatusInternalServerError, "")
}

// normalizeStatusText strips the leading status code that http.Response.Status
// carries ("404 Not Found" -> "Not Found") and falls back to the stdlib
// status text when empty.
func normalizeStatusText(statusCode int, statusText string) string {
	text := strings.TrimSpace(strings.TrimPrefix(statusText, fmt.Sprintf("%d", statusCode)))
	if text == "" {
		text = http.StatusText(statusCode)
	}
	return text
}

// TransportError maps a failure with no server response to the generic
// APIError shape, preserving the cause for errors.Is/As inspection.
func TransportError(err error) *APIError {
	return &APIError{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
		err:     err,
	}
}

// AsAPIError returns the APIError carried by err, if any.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsNotFound returns true if the error indicates the resource was not found.
func IsNotFound(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Code == http.StatusNotFound
}

// IsUnauthorized returns true if the error indicates an authentication or
// authorization failure.
func IsUnauthorized(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Code == http.StatusUnauthorized
}
