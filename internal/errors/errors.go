// Package errors re-exports the stdlib errors API together with the
// stack-trace helpers from pkg/errors, so callers need only one import.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// New returns an error with the given message.
func New(text string) error {
	return stderrors.New(text)
}

// Is reports whether target appears in err's chain.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain matching target's type.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Unwrap returns err's wrapped error, or nil.
func Unwrap(err error) error {
	return stderrors.Unwrap(err)
}

// Join combines multiple errors into one.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// Wrap annotates err with a message and records the call stack.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Wrapf is Wrap with a format string.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack records the call stack without changing the message.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// WithMessage prefixes err with a message, without a stack trace.
func WithMessage(err error, message string) error {
	return pkgerrors.WithMessage(err, message)
}

// Errorf formats a new error and records the call stack.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

// Cause walks pkg/errors causer chains to the root error.
//
//nolint:wrapcheck // Compatibility passthrough to preserve pkg/errors semantics.
func Cause(err error) error {
	return pkgerrors.Cause(err)
}
