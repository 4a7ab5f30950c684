package cloudiq

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is the JSON error body CloudIQ returns on failed requests.
type APIError struct {
	ErrorCode string `json:"ErrorCode,omitempty" yaml:"error_code,omitempty"`
	Message   string `json:"Message,omitempty"   yaml:"message,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.ErrorCode != "" {
		return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
	}

	return e.Message
}

// ResponseError represents a non-success response from the API. ErrorCode and
// Message are filled in when the body parses as a CloudIQ error; Body always
// carries the raw response text.
type ResponseError struct {
	StatusCode int    `json:"status_code" yaml:"status_code"`
	ErrorCode  string `json:"error_code"  yaml:"error_code"`
	Message    string `json:"message"     yaml:"message"`
	Body       string `json:"body"        yaml:"body"`
}

// Error implements the error interface for ResponseError.
func (e *ResponseError) Error() string {
	if e.Message != "" {
		if e.ErrorCode != "" {
			return fmt.Sprintf("%s: %s (status: %d)", e.ErrorCode, e.Message, e.StatusCode)
		}

		return fmt.Sprintf("%s (status: %d)", e.Message, e.StatusCode)
	}

	if e.Body != "" {
		return fmt.Sprintf("%s (status: %d)", e.Body, e.StatusCode)
	}

	return fmt.Sprintf("%s (status: %d)", http.StatusText(e.StatusCode), e.StatusCode)
}

// ParseResponseError builds a ResponseError from a failed response. The body
// is decoded as a CloudIQ error when possible and kept verbatim otherwise.
func ParseResponseError(statusCode int, body []byte) *ResponseError {
	respErr := &ResponseError{
		StatusCode: statusCode,
		Body:       strings.TrimSpace(string(body)),
	}

	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err == nil {
		respErr.ErrorCode = apiErr.ErrorCode
		respErr.Message = apiErr.Message
	}

	return respErr
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	respErr := &ResponseError{}
	if errors.As(err, &respErr) {
		return respErr.StatusCode == http.StatusNotFound
	}

	return false
}

// IsUnauthorized checks if the error is an authentication error.
func IsUnauthorized(err error) bool {
	respErr := &ResponseError{}
	if errors.As(err, &respErr) {
		return respErr.StatusCode == http.StatusUnauthorized
	}

	return false
}

// IsForbidden checks if the error is a forbidden error.
func IsForbidden(err error) bool {
	respErr := &ResponseError{}
	if errors.As(err, &respErr) {
		return respErr.StatusCode == http.StatusForbidden
	}

	return false
}

// IsBadRequest checks if the error is a bad request error.
func IsBadRequest(err error) bool {
	respErr := &ResponseError{}
	if errors.As(err, &respErr) {
		return respErr.StatusCode == http.StatusBadRequest
	}

	return false
}

// IsTooManyRequests checks if the error is a rate limit error.
func IsTooManyRequests(err error) bool {
	respErr := &ResponseError{}
	if errors.As(err, &respErr) {
		return respErr.StatusCode == http.StatusTooManyRequests
	}

	return false
}

// IsServerError checks if the error is a server side error.
func IsServerError(err error) bool {
	respErr := &ResponseError{}
	if errors.As(err, &respErr) {
		return respErr.StatusCode >= http.StatusInternalServerError
	}

	return false
}

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired           = errors.New("config is required")
	ErrAPIEndpointRequired      = errors.New("API endpoint is required")
	ErrNoHostInURL              = errors.New("no host specified in URL")
	ErrMissingCredentials       = errors.New("client credentials and user credentials are required")
	ErrStaticTokenCannotRefresh = errors.New("static token cannot be refreshed")
	ErrNoMoreItems              = errors.New("no more items")
)
