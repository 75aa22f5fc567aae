package distributor

import (
	"bytes"

	"github.com/iov-one/splitter"
	"github.com/iov-one/splitter/errors"
	"github.com/iov-one/splitter/x/ledger"
)

// RegisterRoutes registers handlers for distributor message processing.
func RegisterRoutes(r splitter.Registry, ctrl Controller) {
	r.Handle(pathCreateMsg, &createHandler{ctrl: ctrl})
	r.Handle(pathDistributeMsg, &distributeHandler{ctrl: ctrl})
}

type createHandler struct {
	ctrl Controller
}

var _ splitter.Handler = (*createHandler)(nil)

func (h *createHandler) Check(ctx splitter.Context, db splitter.KVStore, tx splitter.Tx) (*splitter.CheckResult, error) {
	if _, _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &splitter.CheckResult{}, nil
}

// Deliver creates the distributor and returns its ID.
func (h *createHandler) Deliver(ctx splitter.Context, db splitter.KVStore, tx splitter.Tx) (*splitter.DeliverResult, error) {
	msg, owner, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	id, err := h.ctrl.Create(ctx, db, owner, msg.Recipients)
	if err != nil {
		return nil, err
	}
	return &splitter.DeliverResult{Data: id}, nil
}

func (h *createHandler) validate(ctx splitter.Context, tx splitter.Tx) (*CreateMsg, splitter.Address, error) {
	var msg CreateMsg
	if err := splitter.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	owner := splitter.GetSigner(ctx)
	if owner == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "owner signature missing")
	}
	return &msg, owner, nil
}

type distributeHandler struct {
	ctrl Controller
}

var _ splitter.Handler = (*distributeHandler)(nil)

// Check allocates enough gas to pay every recipient, forward each of them
// the per recipient gas and refund the owner.
func (h *distributeHandler) Check(ctx splitter.Context, db splitter.KVStore, tx splitter.Tx) (*splitter.CheckResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	conf, err := ledger.LoadConfiguration(db)
	if err != nil {
		return nil, err
	}
	res := splitter.CheckResult{
		GasAllocated: uint64(len(msg.Recipients))*(conf.TransferCost+PerRecipientGas) + conf.TransferCost,
	}
	return &res, nil
}

func (h *distributeHandler) Deliver(ctx splitter.Context, db splitter.KVStore, tx splitter.Tx) (*splitter.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.Distribute(ctx, db, msg.DistributorID, msg.Recipients); err != nil {
		return nil, errors.Wrap(err, "cannot distribute")
	}
	return &splitter.DeliverResult{}, nil
}

func (h *distributeHandler) validate(ctx splitter.Context, db splitter.KVStore, tx splitter.Tx) (*DistributeMsg, error) {
	var msg DistributeMsg
	if err := splitter.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	group, err := h.ctrl.RecipientGroup(db, msg.DistributorID)
	if err != nil {
		return nil, errors.Wrap(err, "cannot get distributor")
	}
	if provided := Commitment(msg.Recipients); !bytes.Equal(provided, group) {
		return nil, &InvalidRecipientGroupError{Expected: group, Actual: provided}
	}
	return &msg, nil
}
