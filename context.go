/*
Values shared between the runner, handlers and controllers are passed in the
context.Context of every call: block height, chain id, logger, the signer of
the call and the gas meter the call is charged to.

Each value T has a pair of functions:

  WithXYZ(Context, T) Context
  GetXYZ(Context) (val T, ok bool)

Height and chain id are set once by the runner and WithXYZ panics if they are
already set. The signer and the gas meter can be replaced: a receiver is
executed unsigned and with a gas meter of its own.
*/
package splitter

import (
	"context"
	"regexp"

	"github.com/tendermint/tendermint/libs/log"
)

// Context is an alias for the standard implementation.
type Context = context.Context

type contextKey int

const (
	contextKeyHeight contextKey = iota
	contextKeyChainID
	contextKeyLogger
	contextKeySigner
	contextKeyGasMeter
)

var (
	// DefaultLogger is returned by GetLogger if no logger was set.
	DefaultLogger = log.NewNopLogger()

	// IsValidChainID returns true if the chain id is 6 to 20 alphanumeric,
	// underscore or dash characters.
	IsValidChainID = regexp.MustCompile(`^[a-zA-Z0-9_\-]{6,20}$`).MatchString
)

// WithHeight sets the height of the block the call is executed in. It panics
// if the height is already set.
func WithHeight(ctx Context, height int64) Context {
	if _, ok := GetHeight(ctx); ok {
		panic("Height already set")
	}
	return context.WithValue(ctx, contextKeyHeight, height)
}

// GetHeight returns the current block height, if set.
func GetHeight(ctx Context) (int64, bool) {
	val, ok := ctx.Value(contextKeyHeight).(int64)
	return val, ok
}

// WithChainID sets the chain id. It panics if the chain id is already set
// or invalid.
func WithChainID(ctx Context, chainID string) Context {
	if ctx.Value(contextKeyChainID) != nil {
		panic("Chain ID already set")
	}
	if !IsValidChainID(chainID) {
		panic("Invalid chain ID")
	}
	return context.WithValue(ctx, contextKeyChainID, chainID)
}

// GetChainID returns the chain id. The runner always sets it, so a missing
// chain id is a programming error and GetChainID panics.
func GetChainID(ctx Context) string {
	if x := ctx.Value(contextKeyChainID); x == nil {
		panic("Chain id is not in context")
	}
	return ctx.Value(contextKeyChainID).(string)
}

// WithLogger sets the logger handlers and controllers should use.
func WithLogger(ctx Context, logger log.Logger) Context {
	return context.WithValue(ctx, contextKeyLogger, logger)
}

// WithLogInfo returns a context with a logger that adds given key value
// pairs to every entry.
func WithLogInfo(ctx Context, keyvals ...interface{}) Context {
	logger := GetLogger(ctx).With(keyvals...)
	return WithLogger(ctx, logger)
}

// GetLogger returns the logger of the context or DefaultLogger.
func GetLogger(ctx Context) log.Logger {
	val, ok := ctx.Value(contextKeyLogger).(log.Logger)
	if !ok {
		return DefaultLogger
	}
	return val
}

// WithSigner sets the address that authorized the current call.
func WithSigner(ctx Context, signer Address) Context {
	return context.WithValue(ctx, contextKeySigner, signer)
}

// GetSigner returns who signed the current Context. Returned address is nil
// if the call was not signed.
func GetSigner(ctx Context) Address {
	val, _ := ctx.Value(contextKeySigner).(Address)
	return val
}

// WithGasMeter sets the meter that all computation and storage access within
// the current call is charged to.
func WithGasMeter(ctx Context, meter GasMeter) Context {
	return context.WithValue(ctx, contextKeyGasMeter, meter)
}

// GetGasMeter returns the gas meter of the current call if set.
func GetGasMeter(ctx Context) (GasMeter, bool) {
	val, ok := ctx.Value(contextKeyGasMeter).(GasMeter)
	return val, ok
}
