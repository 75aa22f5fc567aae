/*
Package errors implements custom error interfaces for splitter.

The idea is to reuse as many errors from this package as possible and define
custom package errors when absolutely necessary. Extensions declare their own
root errors using Register(code, description), for example x/distributor
declares ErrEmptyRecipients and ErrInvalidRecipientGroup.

Code stands for ABCI error code, which allows to distinguish types of errors
on the client side and act accordingly.

There is also support for stacktraces. Please ensure you create the custom
error using ErrXyz.New("...") or errors.Wrap(err, "...") at the point of
creation to ensure we attach a stacktrace. If you wrap multiple times, we only
record the first wrap with the stacktrace. (And don't do this as a global
`var ErrFoo = errors.ErrInternal.New("foo")` or you will get a useless
stacktrace).

Once you have an error, you can use `fmt.Printf/Sprintf` to get more context
for the error
	%s is just the error message
	%+v is the full stack trace
	%v appends a compressed [filename:line] where the error was created
*/
package errors
