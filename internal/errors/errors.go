package errors

import (
	"errors"
	"fmt"
)

// Error code constants matching the tool-facing error taxonomy
const (
	CodeUnknownTool       = "UNKNOWN_TOOL"
	CodeMissingArgument   = "MISSING_ARGUMENT"
	CodeInvalidURL        = "INVALID_URL"
	CodeUpstreamHTTPError = "UPSTREAM_HTTP_ERROR"
	CodeFetchFailed       = "FETCH_FAILED"
	CodeLimitExceeded     = "LIMIT_EXCEEDED"
	CodeInternalError     = "INTERNAL_ERROR"
)

// Error represents a webfetch error with a code and message.
// It implements the error interface and supports error wrapping.
type Error struct {
	wrapped error
	Code    string
	Message string
	// Status carries the upstream HTTP status for UPSTREAM_HTTP_ERROR;
	// zero otherwise.
	Status int
}

// Error returns the error message, implementing the error interface.
func (e *Error) Error() string {
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.wrapped)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error, supporting errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.wrapped
}

// New creates a new webfetch error with the given code and message.
func New(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new webfetch error that wraps an underlying error.
func Wrap(code string, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		wrapped: err,
	}
}

// Code extracts the error code from an error.
// Returns an empty string if the error is not a webfetch error.
func Code(err error) string {
	if err == nil {
		return ""
	}
	var werr *Error
	if errors.As(err, &werr) {
		return werr.Code
	}
	return ""
}

// Is checks if an error has a specific error code.
func Is(err error, code string) bool {
	return Code(err) == code
}

// StatusCode extracts the upstream HTTP status from an error.
// Returns 0 if the error is not a webfetch error or carries no status.
func StatusCode(err error) int {
	if err == nil {
		return 0
	}
	var werr *Error
	if errors.As(err, &werr) {
		return werr.Status
	}
	return 0
}

// Convenience constructors for each error code

// UnknownTool creates an UNKNOWN_TOOL error.
func UnknownTool(name string) *Error {
	return New(CodeUnknownTool, fmt.Sprintf("unknown tool: %s", name))
}

// MissingArgument creates a MISSING_ARGUMENT error.
func MissingArgument(name string) *Error {
	return New(CodeMissingArgument, fmt.Sprintf("missing required argument %q", name))
}

// InvalidURL creates an INVALID_URL error.
func InvalidURL(url string, err error) *Error {
	return Wrap(CodeInvalidURL, fmt.Sprintf("invalid URL %q", url), err)
}

// UpstreamHTTP creates an UPSTREAM_HTTP_ERROR carrying the upstream status.
func UpstreamHTTP(status int, url string) *Error {
	e := New(CodeUpstreamHTTPError, fmt.Sprintf("upstream returned status %d for %q", status, url))
	e.Status = status
	return e
}

// FetchFailed creates a FETCH_FAILED error wrapping the underlying cause.
func FetchFailed(url string, err error) *Error {
	return Wrap(CodeFetchFailed, fmt.Sprintf("failed to fetch %q", url), err)
}

// LimitExceeded creates a LIMIT_EXCEEDED error.
func LimitExceeded(limit string) *Error {
	return New(CodeLimitExceeded, fmt.Sprintf("limit exceeded: %s", limit))
}
