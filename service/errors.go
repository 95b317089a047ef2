package service

import (
	"errors"
	"fmt"
)

// Kind classifies service failures so callers can render field-specific or
// action-specific messages. Every failure path carries exactly one kind;
// nothing is swallowed into a generic catch-all.
type Kind int

const (
	// KindInvalidInput means caller-supplied data failed a precondition.
	KindInvalidInput Kind = iota + 1
	// KindNotFound means the referenced record does not exist.
	KindNotFound
	// KindMalformedExtraction means the model output was not decodable.
	KindMalformedExtraction
	// KindUpstreamUnavailable means an external call failed or timed out.
	KindUpstreamUnavailable
)

// Error is a classified service failure, optionally naming the offending
// field.
type Error struct {
	Kind    Kind
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// NewInvalidInput creates an invalid-input error naming a field.
func NewInvalidInput(field, message string) *Error {
	return &Error{Kind: KindInvalidInput, Field: field, Message: message}
}

// NewNotFound creates a not-found error.
func NewNotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// NewMalformedExtraction creates a malformed-extraction error.
func NewMalformedExtraction(message string) *Error {
	return &Error{Kind: KindMalformedExtraction, Message: message}
}

// NewUpstreamUnavailable creates an upstream-unavailable error.
func NewUpstreamUnavailable(message string) *Error {
	return &Error{Kind: KindUpstreamUnavailable, Message: message}
}

// KindOf returns the kind of a service error, or 0 for other errors.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return 0
}
