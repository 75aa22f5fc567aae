package errors

import (
	"fmt"
)

const (
	// SuccessABCICode is the code of a successful response.
	SuccessABCICode = 0

	// Errors without an ABCI code are reported with the internal code
	// and a generic message.
	internalABCICode uint32 = 1
	internalABCILog         = "internal error"
)

type coder interface {
	ABCICode() uint32
}

// ABCIInfo returns the code and the log message that describe the error to
// a client. A nil error is a success.
//
// Outside of debug mode the message of an internal error, that is an error
// without a registered code or a recovered panic, is replaced with a generic
// one. In debug mode the full message with the stack trace is returned.
func ABCIInfo(err error, debug bool) (uint32, string) {
	if isNilErr(err) {
		return SuccessABCICode, ""
	}
	code := abciCode(err)
	if debug {
		return code, fmt.Sprintf("%+v", err)
	}
	if code == internalABCICode || ErrPanic.Is(err) {
		return code, internalABCILog
	}
	return code, err.Error()
}

// abciCode returns the code of the first error in the chain that provides
// one. Collections report the code of their first member.
func abciCode(err error) uint32 {
	if isNilErr(err) {
		return SuccessABCICode
	}
	c, ok := Find(err, func(e error) bool {
		_, ok := e.(coder)
		return ok
	}).(coder)
	if !ok {
		return internalABCICode
	}
	return c.ABCICode()
}
