package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the targeted job or candidate does not exist
// in the active backend.
var ErrNotFound = errors.New("record not found")

// TransportError wraps a failed remote call: network error, rejected
// statement or constraint violation. The canonical store is left unchanged
// when one is returned.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("remote %s failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ValidationError is raised at the operation boundary before any adapter
// call is attempted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ParseError marks a malformed local snapshot or imported JSON document.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed state document: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// AttachmentError reports a single failed upload during bulk intake. It never
// aborts sibling uploads.
type AttachmentError struct {
	Name string
	Err  error
}

func (e *AttachmentError) Error() string {
	return fmt.Sprintf("attachment %q: %v", e.Name, e.Err)
}

func (e *AttachmentError) Unwrap() error { return e.Err }
