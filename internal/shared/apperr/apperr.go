// Package apperr defines the error taxonomy shared by the service and HTTP
// layers. Every failure a handler can surface maps to exactly one Kind, and
// every Kind maps to exactly one HTTP status.
package apperr

import (
	"errors"
	"net/http"

	"github.com/lib/pq"
)

type Kind string

const (
	KindValidation Kind = "validation"
	KindConflict   Kind = "conflict"
	KindAuth       Kind = "auth"
	KindNotFound   Kind = "not_found"
	KindForeignKey Kind = "foreign_key"
	KindInternal   Kind = "internal"
)

// Error is a client-safe error: Message is what the API responds with, Err
// (optional) is the underlying cause and is never exposed outside development.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func Auth(message string) *Error {
	return &Error{Kind: KindAuth, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf reports the Kind of err, or KindInternal for untyped errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Message returns the client-safe message for err. The wrapped cause is
// never included; untyped errors fall back to a generic message.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal Server Error"
}

// HTTPStatus maps an error to its response status code.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation, KindForeignKey:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindAuth:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Postgres error codes surfaced to clients with a stable message.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgInvalidTextRepr     = "22P02"
)

// FromPostgres translates driver errors into taxonomy errors. Errors that are
// already typed pass through; unknown errors become internal.
func FromPostgres(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pgUniqueViolation:
			return &Error{Kind: KindConflict, Message: "A record with this information already exists", Err: err}
		case pgForeignKeyViolation:
			return &Error{Kind: KindForeignKey, Message: "Invalid reference to related data", Err: err}
		case pgInvalidTextRepr:
			return &Error{Kind: KindValidation, Message: "Invalid data format", Err: err}
		}
	}
	return &Error{Kind: KindInternal, Message: "Internal Server Error", Err: err}
}
