package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
type HTTPError interface {
	error
	StatusCode() int
}

type (
	// NotFoundError indicates a resource was not found
	NotFoundError struct {
		Message string
	}

	// ValidationError indicates invalid input
	ValidationError struct {
		Message string
	}
)

func (e *NotFoundError) Error() string   { return e.Message }
func (e *ValidationError) Error() string { return e.Message }

func (e *NotFoundError) StatusCode() int   { return http.StatusNotFound }
func (e *ValidationError) StatusCode() int { return http.StatusBadRequest }

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("already exists")
	ErrValidation = errors.New("validation failed")
	ErrStale      = errors.New("stale update")
)

// ConflictError represents a resource conflict with details about the existing resource
type ConflictError struct {
	Message      string // Human-readable error message
	ResourceType string // Type of resource (document, folder, connection)
	ResourceID   string // ID of the existing/conflicting resource
}

func (e *ConflictError) Error() string { return e.Message }

func (e *ConflictError) StatusCode() int { return http.StatusConflict }

// Is allows errors.Is() to match against ErrConflict
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// CycleError reports a cyclic parent chain in the folder graph. Folder records
// never validate acyclicity on write from external stores, so the tree builder
// checks the whole parent graph up front and refuses to build from corrupt data.
type CycleError struct {
	FolderID string // a folder on the cycle
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("folder %s is part of a cyclic parent chain", e.FolderID)
}

func (e *CycleError) StatusCode() int { return http.StatusUnprocessableEntity }

// DanglingParentError reports a folder whose parent_id references no known folder.
type DanglingParentError struct {
	FolderID string
	ParentID string
}

func (e *DanglingParentError) Error() string {
	return fmt.Sprintf("folder %s references missing parent %s", e.FolderID, e.ParentID)
}

func (e *DanglingParentError) StatusCode() int { return http.StatusUnprocessableEntity }

// StaleUpdateError indicates an optimistic-concurrency failure: the record was
// modified since the caller read it.
type StaleUpdateError struct {
	ResourceType string
	ResourceID   string
}

func (e *StaleUpdateError) Error() string {
	return fmt.Sprintf("%s %s was modified by another writer", e.ResourceType, e.ResourceID)
}

func (e *StaleUpdateError) StatusCode() int { return http.StatusConflict }

// Is allows errors.Is() to match against ErrStale
func (e *StaleUpdateError) Is(target error) bool {
	return target == ErrStale
}
