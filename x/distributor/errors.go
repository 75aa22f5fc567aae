package distributor

import (
	"fmt"

	"github.com/iov-one/splitter"
	"github.com/iov-one/splitter/errors"
)

var (
	// ErrEmptyRecipients is returned when a recipient list has no elements.
	ErrEmptyRecipients = errors.Register(100, "empty recipients")

	// ErrInvalidRecipientGroup is returned when a recipient list does not
	// match the commitment of the distributor.
	ErrInvalidRecipientGroup = errors.Register(101, "invalid recipient group")

	// ErrOwnerFailedReceive is returned when the failed payments cannot be
	// refunded to the owner.
	ErrOwnerFailedReceive = errors.Register(102, "owner failed receive")

	// ErrTooManyRecipients is returned when a recipient list is longer than
	// MaxRecipients.
	ErrTooManyRecipients = errors.Register(103, "too many recipients")
)

// InvalidRecipientGroupError carries both the stored and the computed
// commitment.
type InvalidRecipientGroupError struct {
	Expected []byte
	Actual   []byte
}

func (e *InvalidRecipientGroupError) Error() string {
	return fmt.Sprintf("invalid recipient group: expected %X, got %X", e.Expected, e.Actual)
}

// Cause returns ErrInvalidRecipientGroup.
func (e *InvalidRecipientGroupError) Cause() error {
	return ErrInvalidRecipientGroup
}

// OwnerFailedReceiveError describes a distribution that was aborted because
// the owner rejected the refund.
//
// Recipient is the last recipient whose payment failed and Amount is the
// total of all failed payments, that is the refund amount. When a single
// payment failed, those are the failing recipient and its share. Failures
// holds the error of every failed payment, in order.
type OwnerFailedReceiveError struct {
	Owner     splitter.Address
	Recipient splitter.Address
	Amount    uint64
	Reason    error
	Failures  error
}

func (e *OwnerFailedReceiveError) Error() string {
	return fmt.Sprintf("refund of %d to owner %s failed, last failed recipient %s: %s",
		e.Amount, e.Owner, e.Recipient, e.Reason)
}

// Cause returns ErrOwnerFailedReceive.
func (e *OwnerFailedReceiveError) Cause() error {
	return ErrOwnerFailedReceive
}

// AsInvalidRecipientGroup returns the InvalidRecipientGroupError carried by
// the given error, if any.
func AsInvalidRecipientGroup(err error) (*InvalidRecipientGroupError, bool) {
	e, ok := errors.Find(err, func(e error) bool {
		_, ok := e.(*InvalidRecipientGroupError)
		return ok
	}).(*InvalidRecipientGroupError)
	return e, ok
}

// AsOwnerFailedReceive returns the OwnerFailedReceiveError carried by the
// given error, if any.
func AsOwnerFailedReceive(err error) (*OwnerFailedReceiveError, bool) {
	e, ok := errors.Find(err, func(e error) bool {
		_, ok := e.(*OwnerFailedReceiveError)
		return ok
	}).(*OwnerFailedReceiveError)
	return e, ok
}
