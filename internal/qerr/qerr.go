// Package qerr classifies resolver failures so the transport layer can map
// them to responses without matching on error strings.
package qerr

import (
	"errors"
	"fmt"
)

// Kind identifies the failure class of a resolver error.
type Kind int

const (
	// KindInvalidArgument marks caller mistakes: out-of-range pagination
	// values, unknown sort fields, malformed cursors. Never silently
	// corrected.
	KindInvalidArgument Kind = iota + 1
	// KindNotFound marks a single-entity lookup that matched nothing.
	// An empty filtered page is not a NotFound.
	KindNotFound
	// KindStoreUnavailable marks a failed store query. Retry policy is
	// owned by the caller, not this package.
	KindStoreUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindNotFound:
		return "not_found"
	case KindStoreUnavailable:
		return "store_unavailable"
	default:
		return "unknown"
	}
}

// Error is a classified resolver error. It wraps an underlying cause when
// one exists.
type Error struct {
	kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil && e.msg != "" {
		return e.msg + ": " + e.err.Error()
	}
	if e.err != nil {
		return e.err.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.err }

// Kind returns the failure class.
func (e *Error) Kind() Kind { return e.kind }

// InvalidArgumentf builds an InvalidArgument error.
func InvalidArgumentf(format string, args ...any) error {
	return &Error{kind: KindInvalidArgument, msg: fmt.Sprintf(format, args...)}
}

// InvalidArgument wraps an underlying cause as an InvalidArgument error.
func InvalidArgument(msg string, err error) error {
	return &Error{kind: KindInvalidArgument, msg: msg, err: err}
}

// NotFoundf builds a NotFound error.
func NotFoundf(format string, args ...any) error {
	return &Error{kind: KindNotFound, msg: fmt.Sprintf(format, args...)}
}

// StoreUnavailable wraps a failed store query.
func StoreUnavailable(msg string, err error) error {
	return &Error{kind: KindStoreUnavailable, msg: msg, err: err}
}

// KindOf reports the failure class of err, or 0 for unclassified errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return 0
}

// IsInvalidArgument reports whether err is classified as InvalidArgument.
func IsInvalidArgument(err error) bool { return KindOf(err) == KindInvalidArgument }

// IsNotFound reports whether err is classified as NotFound.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// IsStoreUnavailable reports whether err is classified as StoreUnavailable.
func IsStoreUnavailable(err error) bool { return KindOf(err) == KindStoreUnavailable }
