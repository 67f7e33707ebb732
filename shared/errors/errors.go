package errors

import (
	"errors"
	"net/http"
)

// Kind classifies a failure so the handler layer can pick a status code.
// Anything that is not an *Error is Internal.
type Kind int

const (
	Internal Kind = iota
	MissingField
	InvalidType
	InvalidValue
	NotFound
	Forbidden
	Unauthorized
	Conflict
	TooLarge
)

func (k Kind) String() string {
	switch k {
	case MissingField:
		return "missing_field"
	case InvalidType:
		return "invalid_type"
	case InvalidValue:
		return "invalid_value"
	case NotFound:
		return "not_found"
	case Forbidden:
		return "forbidden"
	case Unauthorized:
		return "unauthorized"
	case Conflict:
		return "conflict"
	case TooLarge:
		return "too_large"
	default:
		return "internal"
	}
}

// Error is a failure with a human readable message that is safe to return to clients.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) StatusCode() int {
	switch e.Kind {
	case MissingField, InvalidType, InvalidValue:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Forbidden:
		return http.StatusForbidden
	case Unauthorized:
		return http.StatusUnauthorized
	case Conflict:
		return http.StatusConflict
	case TooLarge:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

func New(kind Kind, message string) error {
	return &Error{Kind: kind, Message: message}
}

func NewNotFound(message string) error     { return New(NotFound, message) }
func NewForbidden(message string) error    { return New(Forbidden, message) }
func NewUnauthorized(message string) error { return New(Unauthorized, message) }
func NewConflict(message string) error     { return New(Conflict, message) }

// KindOf unwraps err looking for an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

func IsNotFound(err error) bool  { return KindOf(err) == NotFound }
func IsForbidden(err error) bool { return KindOf(err) == Forbidden }
func IsConflict(err error) bool  { return KindOf(err) == Conflict }

// Is reports whether err is an instance of T for custom error types.
func Is[T error](err error) bool {
	var target T
	return errors.As(err, &target)
}

// As is errors.As, re-exported so callers importing this package under the
// name errors keep access to it.
func As(err error, target any) bool {
	return errors.As(err, target)
}
