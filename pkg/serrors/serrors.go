// Package serrors implements semantic errors: sentinel kinds that classify a
// failure, wrapped in an Error value carrying a human-readable message and an
// optional cause. Callers match kinds with errors.Is/As; the transport layer
// maps kinds to wire representations.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a sentinel identifying a semantic error category. Kinds are created
// with NewKind and matched with errors.Is through the Error wrapper.
type Kind interface {
	error
	isKind()
}

type kind struct{ name string }

func (k kind) Error() string { return k.name }
func (k kind) isKind()       {}

// NewKind creates a new comparable error kind. The name doubles as the wire
// code reported to callers, so it should be SCREAMING_SNAKE_CASE and stable.
func NewKind(name string) Kind { return kind{name: name} }

// Generic kinds shared across the application. Domain-specific kinds (for
// example invalid-timezone) are declared next to the code that raises them.
var (
	// ErrBadRequest indicates the caller supplied invalid data.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrUnauthorized indicates missing or invalid authentication.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrInternal indicates an unexpected server-side failure.
	ErrInternal = NewKind("INTERNAL")
)

// Error is a semantic error: a kind, a message, and an optional wrapped
// cause. errors.Is/As match against both the kind and the cause chain.
type Error struct {
	kind  Kind
	cause error
	msg   string
}

// With constructs a semantic error with the given kind and message.
func With(k Kind, format string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(format, args...)}
}

// Wrap constructs a semantic error that also records a concrete cause.
func Wrap(k Kind, cause error, format string, args ...any) *Error {
	return &Error{kind: k, cause: cause, msg: fmt.Sprintf(format, args...)}
}

// Error implements the error interface. The message comes first, then the
// cause; with neither set the kind name is used.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.cause != nil:
		return e.msg + ": " + e.cause.Error()
	case e.msg != "":
		return e.msg
	case e.cause != nil:
		return e.cause.Error()
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

// Unwrap exposes the cause so errors.Is/As can traverse the chain.
func (e *Error) Unwrap() error { return e.cause }

// Is matches target against the kind sentinel as well as the cause chain.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}

	return e.cause != nil && errors.Is(e.cause, target)
}

// As matches target against the kind sentinel as well as the cause chain.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}

	return e.cause != nil && errors.As(e.cause, target)
}

// Kind returns the kind sentinel attached to this error, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to this error.
func (e *Error) Message() string { return e.msg }

// KindOf extracts the semantic kind from anywhere in err's chain. It returns
// nil when err carries no kind, which callers should treat as internal.
func KindOf(err error) Kind {
	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return nil
}
