package ledger

import (
	"math"

	"github.com/iov-one/splitter"
	"github.com/iov-one/splitter/errors"
	"github.com/iov-one/splitter/store"
)

// AllGas passed as the gas limit forwards all the remaining gas to the
// receiver.
const AllGas = math.MaxUint64

// Controller is the functionality needed by other extensions to move value.
type Controller struct {
	receivers *Receivers
}

// NewController returns a controller that executes the given receivers on
// transfer. Receivers may be nil.
func NewController(receivers *Receivers) Controller {
	return Controller{receivers: receivers}
}

// Balance returns the balance of the given address.
func (c Controller) Balance(db splitter.ReadOnlyKVStore, addr splitter.Address) (uint64, error) {
	return loadBalance(db, addr)
}

// IssueCoins adds the given amount to the destination balance. It fails if
// the balance would overflow.
func (c Controller) IssueCoins(db splitter.KVStore, dst splitter.Address, amount uint64) error {
	balance, err := loadBalance(db, dst)
	if err != nil {
		return err
	}
	balance, err = add(balance, amount)
	if err != nil {
		return errors.Wrap(err, "destination balance")
	}
	return saveBalance(db, dst, balance)
}

// MoveCoins moves the given amount from src to dst. It fails if the amount is
// zero or src does not hold enough funds. No receiver code is executed.
func (c Controller) MoveCoins(db splitter.KVStore, src, dst splitter.Address, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrAmount, "non positive amount")
	}
	srcBalance, err := loadBalance(db, src)
	if err != nil {
		return err
	}
	if srcBalance < amount {
		return errors.Wrapf(errors.ErrAmount, "insufficient funds: %d < %d", srcBalance, amount)
	}
	if err := saveBalance(db, src, srcBalance-amount); err != nil {
		return err
	}
	return c.IssueCoins(db, dst, amount)
}

// Transfer moves the given amount from src to dst and executes the receiver
// attached to dst, if any. The receiver is granted at most gasLimit gas.
//
// The transfer cost is charged to the gas meter of the context. If the
// receiver rejects the payment, all changes are rolled back and a
// TransferError is returned. Any other error, for example running out of the
// caller's gas, is returned as it is.
func (c Controller) Transfer(
	ctx splitter.Context,
	db splitter.KVStore,
	src, dst splitter.Address,
	amount uint64,
	gasLimit uint64,
) error {
	meter, ok := splitter.GetGasMeter(ctx)
	if !ok {
		meter = splitter.NewInfiniteGasMeter()
	}
	conf, err := LoadConfiguration(db)
	if err != nil {
		return err
	}
	if err := meter.ConsumeGas(conf.TransferCost, "transfer"); err != nil {
		return err
	}

	cache := store.Cacheable(db).CacheWrap()
	if err := c.MoveCoins(cache, src, dst, amount); err != nil {
		cache.Discard()
		return err
	}

	if rcv := c.receivers.Get(dst); rcv != nil {
		err := receive(ctx, meter, conf, cache, rcv, src, amount, gasLimit)
		if err != nil {
			cache.Discard()
			splitter.GetLogger(ctx).Debug("Transfer rejected",
				"destination", dst, "amount", amount, "err", err)
			return errors.Wrap(&TransferError{Destination: dst, Amount: amount, Reason: err}, "receiver")
		}
	}
	return cache.Write()
}

// receive executes the receiver with a gas meter of its own. The gas the
// receiver used is charged to the caller meter, also when it failed.
func receive(
	ctx splitter.Context,
	meter splitter.GasMeter,
	conf *Configuration,
	cache splitter.CacheableKVStore,
	rcv Receiver,
	src splitter.Address,
	amount uint64,
	gasLimit uint64,
) (err error) {
	limit := gasLimit
	if remaining := meter.GasRemaining(); remaining < limit {
		limit = remaining
	}
	rmeter := splitter.NewGasMeter(limit)
	defer func() {
		if cerr := meter.ConsumeGas(rmeter.GasConsumed(), "receiver"); cerr != nil && err == nil {
			err = cerr
		}
	}()
	defer errors.Recover(&err)

	rctx := splitter.WithGasMeter(ctx, rmeter)
	rctx = splitter.WithSigner(rctx, nil)
	rdb := store.WithGas(store.WithoutGas(cache), rmeter, conf.GasCosts())
	return rcv.OnReceive(rctx, rdb, src, amount)
}
