package splittertest

import (
	"sync"

	"github.com/iov-one/splitter"
	"github.com/iov-one/splitter/errors"
)

// The receivers below satisfy the ledger.Receiver interface.

// Accept is a receiver that accepts every payment and does nothing else.
type Accept struct{}

func (Accept) OnReceive(splitter.Context, splitter.KVStore, splitter.Address, uint64) error {
	return nil
}

// Reject is a receiver that rejects every payment with the given error.
type Reject struct {
	Err error
}

func (r Reject) OnReceive(splitter.Context, splitter.KVStore, splitter.Address, uint64) error {
	if r.Err == nil {
		return errors.Wrap(errors.ErrState, "payment rejected")
	}
	return r.Err
}

// BurnGas is a receiver that consumes the given amount of gas before
// accepting the payment. A zero amount burns all the gas it was granted, so
// the payment always fails.
type BurnGas struct {
	Amount uint64
}

func (b BurnGas) OnReceive(ctx splitter.Context, db splitter.KVStore, from splitter.Address, amount uint64) error {
	meter, ok := splitter.GetGasMeter(ctx)
	if !ok {
		return errors.Wrap(errors.ErrHuman, "no gas meter")
	}
	if b.Amount != 0 {
		return meter.ConsumeGas(b.Amount, "burn")
	}
	if err := meter.ConsumeGas(meter.GasRemaining(), "burn"); err != nil {
		return err
	}
	return errors.Wrap(errors.ErrOutOfGas, "all gas burned")
}

// Payment is a single payment seen by a Recorder.
type Payment struct {
	From   splitter.Address
	Amount uint64
}

// Recorder is a receiver that accepts and records every payment. It also
// writes the number of payments received to the store under Key, if set, so
// that rolled back payments can be told apart.
type Recorder struct {
	Key []byte

	mu       sync.Mutex
	payments []Payment
}

func (r *Recorder) OnReceive(ctx splitter.Context, db splitter.KVStore, from splitter.Address, amount uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Key != nil {
		if err := db.Set(r.Key, SequenceID(uint64(len(r.payments)+1))); err != nil {
			return err
		}
	}
	r.payments = append(r.payments, Payment{From: from, Amount: amount})
	return nil
}

// Payments returns all recorded payments.
func (r *Recorder) Payments() []Payment {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Payment(nil), r.payments...)
}
