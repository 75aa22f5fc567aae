package ledger

import (
	"fmt"

	"github.com/iov-one/splitter"
	"github.com/iov-one/splitter/errors"
)

var (
	// ErrTransferFailed is returned when the receiver of a transfer rejected
	// the payment.
	ErrTransferFailed = errors.Register(110, "transfer failed")

	// ErrNotPayable is returned by receivers that cannot accept value
	// transfers.
	ErrNotPayable = errors.Register(111, "not payable")
)

// TransferError describes a transfer that was rejected by the receiver. The
// reason is kept for inspection but it does not define the kind of this
// error: the failure of the receiver code is always ErrTransferFailed.
type TransferError struct {
	Destination splitter.Address
	Amount      uint64
	Reason      error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("transfer of %d to %s failed: %s", e.Amount, e.Destination, e.Reason)
}

// Cause returns ErrTransferFailed.
func (e *TransferError) Cause() error {
	return ErrTransferFailed
}

// AsTransferError returns the TransferError carried by the given error, if
// any.
func AsTransferError(err error) (*TransferError, bool) {
	te, ok := errors.Find(err, func(e error) bool {
		_, ok := e.(*TransferError)
		return ok
	}).(*TransferError)
	return te, ok
}
