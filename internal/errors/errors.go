// Package errors is the single error import of the service. Construction and
// wrapping record a stack through pkg/errors; inspection uses the stdlib chain.
package errors

import (
	stderrors "errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

func New(text string) error { return stderrors.New(text) }

func Is(err, target error) bool { return stderrors.Is(err, target) }

func As(err error, target any) bool { return stderrors.As(err, target) }

func Join(errs ...error) error { return stderrors.Join(errs...) }

// Wrap annotates err with message and the caller's stack. A nil err stays nil.
func Wrap(err error, message string) error { return pkgerrors.Wrap(err, message) }

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

func WithStack(err error) error { return pkgerrors.WithStack(err) }

// Errorf is fmt.Errorf with a recorded stack.
func Errorf(format string, args ...any) error { return pkgerrors.Errorf(format, args...) }

// StackOf returns the innermost recorded stack of err formatted one frame per
// line, or "" when nothing in the chain carries one.
func StackOf(err error) string {
	var deepest stackTracer
	for cur := err; cur != nil; cur = stderrors.Unwrap(cur) {
		if st, ok := cur.(stackTracer); ok {
			deepest = st
		}
	}
	if deepest == nil {
		return ""
	}

	return fmt.Sprintf("%+v", deepest.StackTrace())
}
