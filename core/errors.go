package core

import (
	"errors"
	"fmt"
)

// ErrorKind is the closed set of outcomes a graph operation can fail with.
type ErrorKind int

const (
	StorageFailure ErrorKind = iota
	MalformedInput
	InvalidRequest
	StartNodeNotFound
	EndNodeNotFound
	InvalidPropertyValue
	NodeNotFound
	RelationshipNotFound
	PropertyNotFound
)

var kindNames = map[ErrorKind]string{
	StorageFailure:       "storage_failure",
	MalformedInput:       "malformed_input",
	InvalidRequest:       "invalid_request",
	StartNodeNotFound:    "start_node_not_found",
	EndNodeNotFound:      "end_node_not_found",
	InvalidPropertyValue: "invalid_property_value",
	NodeNotFound:         "node_not_found",
	RelationshipNotFound: "relationship_not_found",
	PropertyNotFound:     "property_not_found",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("error_kind(%d)", int(k))
}

// Error is a domain failure tagged with its kind.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError builds an *Error with a formatted message.
func NewError(kind ErrorKind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the kind carried by err. Errors that are not a *Error are
// unexpected lower-layer failures and report StorageFailure.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return StorageFailure
}

// MessageOf returns the client-facing message for err. Storage failures
// never leak their internal text.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != StorageFailure {
		return e.Message
	}
	return "internal storage failure"
}
