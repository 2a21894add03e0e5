// Package common defines the error taxonomy shared by the taskboard stores
// and the helpers both stores need. Callers should use errors.Is to match
// error kinds and well-known values.
package common

import "errors"

// Error kinds. Every *Error unwraps to exactly one of them.
var (
	// ErrValidation marks malformed or missing input: a blank required field,
	// an unknown status, a duplicate email or a failed password rule.
	ErrValidation = errors.New("validation error")

	// ErrAuth marks authentication failures: no session, wrong credentials,
	// wrong current password.
	ErrAuth = errors.New("authentication error")

	// ErrNotFound marks a reference to an entity that does not exist.
	ErrNotFound = errors.New("not found")
)

// Error is a store failure carrying a user-facing message and its kind.
// Error() returns the message verbatim so the UI can print it as is.
type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }

// Unwrap exposes the kind, so errors.Is(err, ErrValidation) works.
func (e *Error) Unwrap() error { return e.kind }

// Kind returns one of ErrValidation, ErrAuth or ErrNotFound.
func (e *Error) Kind() error { return e.kind }

// Validation returns a new ErrValidation-kind error.
func Validation(msg string) *Error { return &Error{kind: ErrValidation, msg: msg} }

// Auth returns a new ErrAuth-kind error.
func Auth(msg string) *Error { return &Error{kind: ErrAuth, msg: msg} }

// NotFound returns a new ErrNotFound-kind error.
func NotFound(msg string) *Error { return &Error{kind: ErrNotFound, msg: msg} }

// Well-known failures. They are shared values, so errors.Is matches them
// directly as well as through their kind.
var (
	ErrInvalidCredentials = Auth("invalid email or password")
	ErrNotAuthenticated   = Auth("not authenticated")
	ErrWrongPassword      = Auth("current password is incorrect")

	ErrEmailRegistered = Validation("email already registered")
	ErrEmailTaken      = Validation("email already taken by another user")

	ErrUserNotFound = NotFound("user not found")
	ErrTaskNotFound = NotFound("task not found")
)

// KindOf reports the kind of err, or nil when err is not a store error.
func KindOf(err error) error {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind()
	}
	return nil
}
