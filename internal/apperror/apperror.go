// Package apperror defines the application's error taxonomy.
//
// Services return these errors; the HTTP layer maps them to status codes
// with errors.Is. The sentinel values are the contract:
//
//	ErrValidation         → 400 (missing/invalid request fields)
//	ErrInvalidCredentials → 400 (unknown email or wrong password)
//	ErrUnauthorized       → 401 (missing/malformed/unknown bearer token)
//	ErrNotFound           → 404
//	ErrConflict           → 409 (duplicate email/username/favorite/review)
//
// Anything else is an internal failure and surfaces as a generic 500.
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("validation error")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
)

// AppError pairs a sentinel (for errors.Is) with a human-readable message
// (what the client sees in the {"error": ...} body).
type AppError struct {
	Err     error  // sentinel error
	Message string // human-readable error message
	Field   string // optional: field causing the error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// MissingParameters reports a required request field that was absent.
// The message is the same for every field, matching the API contract.
func MissingParameters(field string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: "Missing parameters",
		Field:   field,
	}
}

// InvalidCredentials reports a failed login. One message for both the
// unknown-email and wrong-password cases so callers cannot probe which
// emails have accounts.
func InvalidCredentials() *AppError {
	return &AppError{
		Err:     ErrInvalidCredentials,
		Message: "invalid email or password",
	}
}

// Unauthorized reports a request whose bearer token is missing, malformed,
// or unknown.
func Unauthorized() *AppError {
	return &AppError{
		Err:     ErrUnauthorized,
		Message: "unauthorized",
	}
}

// Conflict reports a uniqueness violation with a caller-supplied message
// (e.g. "email already used").
func Conflict(message string) *AppError {
	return &AppError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NotFound reports a missing record.
func NotFound(resource, key string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found: %s", resource, key),
	}
}
