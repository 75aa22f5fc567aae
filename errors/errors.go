package errors

import (
	"fmt"
	"reflect"
)

// Root errors shared by all extensions. Codes below 100 are reserved for
// this package.
var (
	// ErrUnauthorized is returned when the call is missing the required
	// authorization, for example the signer is not the account owner.
	ErrUnauthorized = Register(2, "unauthorized")

	// ErrNotFound is returned when the requested entity does not exist.
	ErrNotFound = Register(3, "not found")

	// ErrMsg is returned when a message cannot be decoded or handled.
	ErrMsg = Register(4, "invalid message")

	// ErrModel is returned when an entity is invalid and cannot be
	// persisted.
	ErrModel = Register(5, "invalid model")

	// ErrHuman is returned when a code path that must never be reached
	// was reached.
	ErrHuman = Register(7, "coding error")

	// ErrEmpty is returned when a value fails a not empty assertion.
	ErrEmpty = Register(9, "value is empty")

	// ErrState is returned when an entity or the application is in a
	// state that does not allow the operation.
	ErrState = Register(10, "invalid state")

	// ErrType is returned when a value is not of the expected type.
	ErrType = Register(11, "invalid type")

	// ErrAmount is returned for invalid amounts, including insufficient
	// funds.
	ErrAmount = Register(13, "invalid amount")

	// ErrInput is returned for malformed input data.
	ErrInput = Register(14, "invalid input")

	// ErrOverflow is returned when the result of a computation exceeds
	// its type.
	ErrOverflow = Register(16, "an operation cannot be completed due to value overflow")

	// ErrOutOfGas is returned when an operation consumed more gas than
	// it was granted.
	ErrOutOfGas = Register(17, "out of gas")

	// ErrDatabase is returned when the underlying storage failed.
	ErrDatabase = Register(18, "database")

	// ErrPanic is set when a panic was recovered. Its message is hidden
	// from clients.
	ErrPanic = Register(111222, "panic")
)

// usedCodes keeps track of registered codes. Code 1 is reserved for
// internal errors.
var usedCodes = map[uint32]*Error{
	internalABCICode: {code: internalABCICode, desc: internalABCILog},
}

// Register returns a root error with the given code. Extensions declare their
// own root errors with it, for example
//
//   var ErrTransferFailed = errors.Register(110, "transfer failed")
//
// Registering the same code twice panics. Use this function only during the
// program startup.
func Register(code uint32, description string) *Error {
	if e, ok := usedCodes[code]; ok {
		panic(fmt.Sprintf("error with code %d is already registered: %q", code, e.desc))
	}
	e := &Error{code: code, desc: description}
	usedCodes[code] = e
	return e
}

// Error is a root error. Every error returned at runtime should wrap one of
// the registered root errors so that it can be categorized with Is and
// reported to the client with its code.
type Error struct {
	code uint32
	desc string
}

func (e Error) Error() string {
	return e.desc
}

// ABCICode returns the code this error was registered with.
func (e Error) ABCICode() uint32 {
	return e.code
}

// New returns a new error of this kind. It is the same as
//   Wrap(e, description)
func (e *Error) New(description string) error {
	return Wrap(e, description)
}

// Newf is New with formatting capabilities.
func (e *Error) Newf(description string, args ...interface{}) error {
	return e.New(fmt.Sprintf(description, args...))
}

// Is returns true if given error is of this kind. Wrapped errors are
// unwrapped using the Cause method. For a collection of errors (see Append)
// Is returns true if any of them is of this kind.
//
// A nil kind matches only nil errors, including typed nil pointers.
func (e *Error) Is(err error) bool {
	if e == nil {
		return isNilErr(err)
	}
	return Find(err, func(other error) bool { return other == e }) != nil
}

// isNilErr returns true if the value represented by the given error is nil.
func isNilErr(err error) bool {
	if err == nil {
		return true
	}
	if val := reflect.ValueOf(err); val.Kind() == reflect.Ptr {
		return val.IsNil()
	}
	return false
}
