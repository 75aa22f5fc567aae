package ledger

import (
	"sync"

	"github.com/iov-one/splitter"
	"github.com/iov-one/splitter/errors"
)

// Receiver is code attached to an address, executed whenever value is
// transferred to it. Returning an error rejects the payment and rolls back
// all changes made by the receiver.
//
// The context carries a gas meter limited to the gas forwarded with the
// transfer and the store charges every access to that meter. The signer is
// not set.
type Receiver interface {
	OnReceive(ctx splitter.Context, db splitter.KVStore, from splitter.Address, amount uint64) error
}

// ReceiverFunc allows to use a function as a Receiver.
type ReceiverFunc func(ctx splitter.Context, db splitter.KVStore, from splitter.Address, amount uint64) error

// OnReceive calls f.
func (f ReceiverFunc) OnReceive(ctx splitter.Context, db splitter.KVStore, from splitter.Address, amount uint64) error {
	return f(ctx, db, from, amount)
}

// NotPayable is a receiver that rejects all payments.
var NotPayable Receiver = ReceiverFunc(func(splitter.Context, splitter.KVStore, splitter.Address, uint64) error {
	return errors.Wrap(ErrNotPayable, "address does not accept value transfers")
})

// Receivers is a registry of the code attached to addresses. Code is not
// state, it must be registered the same way every time the application
// starts.
type Receivers struct {
	mu    sync.RWMutex
	hooks map[string]Receiver
}

// NewReceivers returns an empty registry.
func NewReceivers() *Receivers {
	return &Receivers{hooks: make(map[string]Receiver)}
}

// Register attaches the receiver to the address, replacing any previously
// registered one.
func (r *Receivers) Register(addr splitter.Address, rcv Receiver) {
	r.mu.Lock()
	r.hooks[string(addr)] = rcv
	r.mu.Unlock()
}

// Unregister removes the receiver attached to the address.
func (r *Receivers) Unregister(addr splitter.Address) {
	r.mu.Lock()
	delete(r.hooks, string(addr))
	r.mu.Unlock()
}

// Get returns the receiver attached to the address or nil.
func (r *Receivers) Get(addr splitter.Address) Receiver {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.hooks[string(addr)]
}
