package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("already exists")
	ErrValidation        = errors.New("validation failed")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInvalidCredential = errors.New("invalid credential")
)

// Session token failures. All of them match ErrUnauthorized.
var (
	ErrMissingToken = fmt.Errorf("no token provided: %w", ErrUnauthorized)
	ErrInvalidToken = fmt.Errorf("invalid token: %w", ErrUnauthorized)
	ErrExpiredToken = fmt.Errorf("token expired: %w", ErrUnauthorized)
)

// DuplicateFieldError reports a unique constraint violation on one field
// (e.g. "username" or "email").
type DuplicateFieldError struct {
	Field string
}

// Error implements the error interface
func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("%s already exists", e.Field)
}

// Is allows errors.Is() to match against ErrConflict
func (e *DuplicateFieldError) Is(target error) bool {
	return target == ErrConflict
}

// ValidationError carries the client-facing message for a rejected input
// (e.g. "Folder name is required"). Err holds the underlying field errors.
type ValidationError struct {
	Message string
	Err     error
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap returns the underlying field errors
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is allows errors.Is() to match against ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
