// Package ecode defines standardized error codes for API responses.
//
// Built-in codes mirror HTTP statuses negated (e.g. -404 for not found),
// with 0 meaning success. Application-specific codes registered via
// Register should live in the -1000+ range.
package ecode

import (
	"net/http"
	"sync"
)

const (
	// OK indicates success.
	OK = 0

	// RequestErr indicates an invalid request.
	RequestErr = -400
	// ParamErr indicates invalid parameters.
	ParamErr = -401
	// NothingFound indicates the referenced resource does not exist.
	NothingFound = -404
	// Conflict indicates a resource conflict.
	Conflict = -409
	// UnprocessableErr indicates a payload that could not be processed.
	UnprocessableErr = -422

	// ServerErr indicates an internal server error.
	ServerErr = -500
	// ServiceUnavailable indicates an unavailable upstream or backing service.
	ServiceUnavailable = -503
	// Deadline indicates an exceeded deadline.
	Deadline = -504
)

var (
	messages = map[int]string{
		OK:                 "success",
		RequestErr:         "invalid request",
		ParamErr:           "invalid parameters",
		NothingFound:       "resource not found",
		Conflict:           "resource conflict",
		UnprocessableErr:   "unprocessable payload",
		ServerErr:          "internal server error",
		ServiceUnavailable: "service unavailable",
		Deadline:           "deadline exceeded",
	}

	statuses = map[int]int{
		OK:                 http.StatusOK,
		RequestErr:         http.StatusBadRequest,
		ParamErr:           http.StatusBadRequest,
		NothingFound:       http.StatusNotFound,
		Conflict:           http.StatusConflict,
		UnprocessableErr:   http.StatusUnprocessableEntity,
		ServerErr:          http.StatusInternalServerError,
		ServiceUnavailable: http.StatusServiceUnavailable,
		Deadline:           http.StatusGatewayTimeout,
	}

	mu sync.RWMutex
)

// Register registers a custom error code with its message.
// Application-specific codes should live in the -1000+ range.
func Register(code int, message string) {
	mu.Lock()
	defer mu.Unlock()
	messages[code] = message
}

// Text returns the human-readable message for a code.
func Text(code int) string {
	mu.RLock()
	defer mu.RUnlock()
	if msg, ok := messages[code]; ok {
		return msg
	}
	return messages[ServerErr]
}

// ToHTTPStatus maps a code to an HTTP status.
func ToHTTPStatus(code int) int {
	mu.RLock()
	defer mu.RUnlock()
	if status, ok := statuses[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
