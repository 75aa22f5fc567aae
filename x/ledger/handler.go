package ledger

import (
	"github.com/iov-one/splitter"
	"github.com/iov-one/splitter/errors"
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r splitter.Registry, ctrl Controller) {
	r.Handle(SendMsg{}.Path(), NewSendHandler(ctrl))
}

// SendHandler will handle sending coins
type SendHandler struct {
	ctrl Controller
}

var _ splitter.Handler = SendHandler{}

// NewSendHandler creates a handler for SendMsg
func NewSendHandler(ctrl Controller) SendHandler {
	return SendHandler{ctrl: ctrl}
}

// Check just verifies it is properly formed and returns
// the cost of executing it
func (h SendHandler) Check(ctx splitter.Context, db splitter.KVStore, tx splitter.Tx) (*splitter.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	conf, err := LoadConfiguration(db)
	if err != nil {
		return nil, err
	}
	return &splitter.CheckResult{GasAllocated: conf.TransferCost}, nil
}

// Deliver moves the value from the source to the destination. The receiver
// of the destination is granted all the remaining gas.
func (h SendHandler) Deliver(ctx splitter.Context, db splitter.KVStore, tx splitter.Tx) (*splitter.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.Transfer(ctx, db, msg.Source, msg.Destination, msg.Amount, AllGas); err != nil {
		return nil, err
	}
	return &splitter.DeliverResult{}, nil
}

func (h SendHandler) validate(ctx splitter.Context, tx splitter.Tx) (*SendMsg, error) {
	var msg SendMsg
	if err := splitter.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !msg.Source.Equals(splitter.GetSigner(ctx)) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "source account signature missing")
	}
	return &msg, nil
}
