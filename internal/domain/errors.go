package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrEmailInUse   = errors.New("email already in use")
	ErrWeakPassword = errors.New("weak password")
)

// ValidationError rejects bad input before any store call is attempted.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// PermissionError is the typed translation of a store-level permission
// failure. It carries the attempted path, operation kind and payload so the
// single centralized handler can present it; callers must not render a
// second message themselves.
type PermissionError struct {
	Path    string // collection/document, e.g. "products/prod-1"
	Op      string // "create" | "update" | "delete"
	Payload any
	Err     error
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied: %s %s", e.Op, e.Path)
}

func (e *PermissionError) Unwrap() error { return e.Err }
