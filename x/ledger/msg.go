package ledger

import (
	"github.com/iov-one/splitter"
	"github.com/iov-one/splitter/errors"
)

// SendMsg moves value from the source account, that must authorize the
// call, to the destination.
type SendMsg struct {
	Source      splitter.Address `json:"source"`
	Destination splitter.Address `json:"destination"`
	Amount      uint64           `json:"amount"`
}

var _ splitter.Msg = (*SendMsg)(nil)

// Path returns the routing path for this message
func (SendMsg) Path() string {
	return "ledger/send"
}

// Validate makes sure that this is sensible
func (m *SendMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Source", m.Source.Validate())
	errs = errors.AppendField(errs, "Destination", m.Destination.Validate())
	if m.Amount == 0 {
		errs = errors.AppendField(errs, "Amount", errors.ErrAmount)
	}
	return errs
}
