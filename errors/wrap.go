package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Wrap extends given error with an additional information. If err is nil,
// Wrap returns nil.
//
// A stack trace is attached at the most inner wrap only. Wrapping an error
// that does not provide an ABCI code (ie. stdlib errors) does not change its
// kind, it is still reported as an internal error.
func Wrap(err error, description string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		parent: withStack(err),
		msg:    description,
	}
}

// Wrapf is Wrap with formatting capabilities.
func Wrapf(err error, format string, args ...interface{}) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

type wrappedError struct {
	msg    string
	parent error
}

func (e *wrappedError) Error() string {
	return fmt.Sprintf("%s: %s", e.msg, e.parent.Error())
}

func (e *wrappedError) Cause() error {
	return e.parent
}

// Recover captures a panic and stops its propagation. The panic is turned
// into an ErrPanic instance and assigned to given error. Call this function
// using defer.
func Recover(err *error) {
	if r := recover(); r != nil {
		*err = Wrapf(ErrPanic, "%v", r)
	}
}

type stackTracer interface {
	error
	StackTrace() errors.StackTrace
}

// withStack returns err with a stack trace attached, unless err or any error
// it wraps carries one already.
func withStack(err error) error {
	if stackTrace(err) != nil {
		return err
	}
	return errors.WithStack(err)
}

// stackTrace returns the first stack trace carried by given error or any
// wrapped error, or nil.
func stackTrace(err error) errors.StackTrace {
	st, ok := Find(err, func(e error) bool {
		_, ok := e.(stackTracer)
		return ok
	}).(stackTracer)
	if !ok {
		return nil
	}
	return st.StackTrace()
}
