// Package langerr implements the four-kind error taxonomy of the frst
// evaluator: user errors, unrecoverable errors, internal errors, and the
// recoverable superset that try_call is allowed to catch.
package langerr

import "fmt"

// Kind classifies an evaluator error into one of the taxonomy's four buckets.
type Kind int

const (
	// KindUser marks an error raised by evaluating user code or a built-in
	// against user input. Caught by try_call.
	KindUser Kind = iota
	// KindUnrecoverable marks an error raised during program construction
	// (AST/lambda construction). Never caught by try_call.
	KindUnrecoverable
	// KindInternal marks a broken evaluator invariant. Always a bug.
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindUser:
		return "user"
	case KindUnrecoverable:
		return "unrecoverable"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Error is the single error type produced by this package. Its Kind
// determines how a caller (the top-level handler, or try_call) should
// react to it.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// User creates a recoverable, user-facing error. This is the general
// runtime-error class referred to as "recoverable" in spec.md §4.C.
func User(format string, args ...any) *Error {
	return &Error{Kind: KindUser, Message: fmt.Sprintf(format, args...)}
}

// Unrecoverable creates an error raised during AST/lambda construction.
// It always propagates to the top-level handler; try_call must not catch it.
func Unrecoverable(format string, args ...any) *Error {
	return &Error{Kind: KindUnrecoverable, Message: fmt.Sprintf(format, args...)}
}

// Internal creates an error representing a broken evaluator invariant.
func Internal(format string, args ...any) *Error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf(format, args...)}
}

// IsRecoverable reports whether err is catchable by try_call: user errors
// are, unrecoverable and internal errors are not.
func IsRecoverable(err error) bool {
	var e *Error
	if As(err, &e) {
		return e.Kind == KindUser
	}
	return false
}

// As is a thin wrapper around errors.As kept local so callers of this
// package don't need a second import for the common case.
func As(err error, target **Error) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			*target = e
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// Unreachable panics with the given message. It corresponds to the C++
// original's THROW_UNREACHABLE sites: a broken evaluator invariant that
// terminates evaluation with a diagnostic rather than bubbling as a
// catchable error.
func Unreachable(format string, args ...any) {
	panic(&Error{Kind: KindInternal, Message: fmt.Sprintf("INTERNAL ERROR: "+format, args...)})
}

// TopLevelFormat renders err the way the reference top-level handler does:
// "Error: <what>" for user/unrecoverable errors, "INTERNAL ERROR: <what>"
// for internal ones (see spec.md §7).
func TopLevelFormat(err error) string {
	var e *Error
	if As(err, &e) && e.Kind == KindInternal {
		return "INTERNAL ERROR: " + e.Message
	}
	return "Error: " + err.Error()
}
