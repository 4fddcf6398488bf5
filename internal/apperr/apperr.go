// Package apperr defines the error kinds shared by all services. Every public
// operation maps its failures to one of these kinds so the HTTP layer can emit
// a stable machine-readable error envelope.
package apperr

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindValidation      Kind = "validation_error"
	KindInvalidArgument Kind = "invalid_argument"
	KindNotFound        Kind = "not_found"
	KindStorage         Kind = "storage_error"
	KindRender          Kind = "render_error"
)

// Error carries a kind, a user-facing message and, optionally, the offending
// input fields and a debug-only detail payload.
type Error struct {
	Kind    Kind
	Message string
	Fields  []string
	Detail  any

	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}

	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func Wrap(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, cause: cause}
}

// Validation reports malformed or missing required input. The field names are
// included in the response envelope.
func Validation(msg string, fields ...string) *Error {
	return &Error{Kind: KindValidation, Message: msg, Fields: fields}
}

func InvalidArgument(msg string) *Error {
	return &Error{Kind: KindInvalidArgument, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// WithDetail attaches a debug-only payload, e.g. the resolver's diagnostic
// sample of shareable links. Detail is never exposed in production responses.
func (e *Error) WithDetail(detail any) *Error {
	e.Detail = detail
	return e
}

// From extracts an *Error from err's chain.
func From(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}

	return nil, false
}

// KindOf returns the kind of err, defaulting to KindStorage for errors that
// were not classified at the boundary.
func KindOf(err error) Kind {
	if e, ok := From(err); ok {
		return e.Kind
	}

	return KindStorage
}
