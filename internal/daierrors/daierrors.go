// Package daierrors wraps filesystem- and flag-level errors encountered by
// cmd/dai with github.com/juju/errors, so -v can print a full cause chain.
// It never wraps anything the lexer or parser produce: those stay plain
// *diag.Diagnostic values, the wire format a future VM collaborator also
// needs to consume; juju/errors annotation is strictly a CLI-boundary
// concern.
package daierrors

import "github.com/juju/errors"

// Annotate attaches message to cause, preserving cause for errors.Cause and
// the stack trace errors.ErrorStack prints.
func Annotate(cause error, message string) error {
	return errors.Annotate(cause, message)
}

// Annotatef is Annotate with a formatted message.
func Annotatef(cause error, format string, args ...any) error {
	return errors.Annotatef(cause, format, args...)
}

// Trace records the call site without changing err's message, used when an
// error is only being propagated, not explained further.
func Trace(err error) error {
	if err == nil {
		return nil
	}
	return errors.Trace(err)
}

// Cause unwraps err down to its root cause, the way juju/errors tracks it.
func Cause(err error) error {
	return errors.Cause(err)
}

// Stack renders err's full annotation/trace chain, one frame per line, for
// -v output.
func Stack(err error) string {
	return errors.ErrorStack(err)
}

// NotFoundf builds a juju/errors "not found" error, which errors.IsNotFound
// recognizes — used for missing script/config files.
func NotFoundf(format string, args ...any) error {
	return errors.NotFoundf(format, args...)
}

// IsNotFound reports whether err (or something it wraps) is a NotFound
// error.
func IsNotFound(err error) bool {
	return errors.IsNotFound(err)
}
