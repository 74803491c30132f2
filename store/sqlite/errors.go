package sqlite

import (
	"errors"
	"fmt"
)

// ErrorKind classifies store failures so callers can decide between retrying
// (connection), fixing input (execution, decode), or aborting startup
// (migration).
type ErrorKind int

const (
	// KindUnknown is the zero kind, reported for errors that did not
	// originate in this package.
	KindUnknown ErrorKind = iota
	// KindConnection covers failures to open, probe, or lease a
	// connection.
	KindConnection
	// KindExecution covers statements the engine rejected or failed.
	KindExecution
	// KindDecode covers result rows that could not be mapped onto the
	// requested type.
	KindDecode
	// KindMigration covers schema script application failures.
	KindMigration
)

func (k ErrorKind) String() string {
	switch k {
	case KindConnection:
		return "connection"
	case KindExecution:
		return "execution"
	case KindDecode:
		return "decode"
	case KindMigration:
		return "migration"
	default:
		return "unknown"
	}
}

// Error is the structured error type for the SQLite backend.
type Error struct {
	Op   string    // operation that failed, e.g. "query" or "migrate"
	Kind ErrorKind // failure category
	Err  error     // underlying cause
}

func (e *Error) Error() string {
	return fmt.Sprintf("sqlite %s: %s: %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches errors by kind, so callers can test categories with errors.Is
// against a kind-only Error value.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// KindOf reports the category of an error produced by this package, or
// KindUnknown for foreign errors.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func wrapErr(op string, kind ErrorKind, err error) error {
	return &Error{Op: op, Kind: kind, Err: err}
}
