package distributor

import (
	"bytes"
	"fmt"

	"github.com/iov-one/splitter"
	"github.com/iov-one/splitter/errors"
	"github.com/iov-one/splitter/store"
	"github.com/iov-one/splitter/x/ledger"
)

// LedgerController is the value transfer functionality required by the
// distributor. It is implemented by the x/ledger extension.
type LedgerController interface {
	Balance(db splitter.ReadOnlyKVStore, addr splitter.Address) (uint64, error)
	Transfer(ctx splitter.Context, db splitter.KVStore, src, dst splitter.Address, amount uint64, gasLimit uint64) error
}

// Controller creates distributors and distributes their funds.
type Controller struct {
	ledger LedgerController
}

// NewController returns a controller that moves value using the given
// ledger.
func NewController(ledger LedgerController) Controller {
	return Controller{ledger: ledger}
}

// Create stores a new distributor owned by the given address, committing to
// the ordered recipient list. It returns the ID of the new distributor.
func (c Controller) Create(ctx splitter.Context, db splitter.KVStore, owner splitter.Address, recipients []splitter.Address) ([]byte, error) {
	if err := validateRecipients(recipients); err != nil {
		return nil, err
	}
	if err := owner.Validate(); err != nil {
		return nil, errors.Field("Owner", err, "invalid owner")
	}
	id, err := distributorSeq.NextVal(db)
	if err != nil {
		return nil, err
	}
	d := Distributor{
		Owner:          owner.Clone(),
		RecipientGroup: Commitment(recipients),
		Address:        DistributorAccount(id),
	}
	if err := saveDistributor(db, id, &d); err != nil {
		return nil, err
	}
	splitter.GetLogger(ctx).Info("Distributor created",
		"id", id, "owner", owner, "recipients", len(recipients))
	return id, nil
}

// Get returns the distributor with the given ID.
func (c Controller) Get(db splitter.ReadOnlyKVStore, id []byte) (*Distributor, error) {
	return loadDistributor(db, id)
}

// Owner returns the owner of the distributor with the given ID.
func (c Controller) Owner(db splitter.ReadOnlyKVStore, id []byte) (splitter.Address, error) {
	d, err := loadDistributor(db, id)
	if err != nil {
		return nil, err
	}
	return splitter.Address(d.Owner), nil
}

// RecipientGroup returns the recipient group commitment of the distributor
// with the given ID.
func (c Controller) RecipientGroup(db splitter.ReadOnlyKVStore, id []byte) ([]byte, error) {
	d, err := loadDistributor(db, id)
	if err != nil {
		return nil, err
	}
	return d.RecipientGroup, nil
}

// Distribute splits the whole balance of the distributor between the given
// recipients, which must match the recipient group commitment.
//
// Every recipient is paid with a separate transfer forwarding
// PerRecipientGas. Failed payments do not stop the distribution, their
// total is refunded to the owner at the end. If that refund fails, an
// OwnerFailedReceiveError is returned and no changes are made to the store.
func (c Controller) Distribute(ctx splitter.Context, db splitter.KVStore, id []byte, recipients []splitter.Address) error {
	if len(recipients) == 0 {
		return errors.Wrap(ErrEmptyRecipients, "nothing to distribute to")
	}
	d, err := loadDistributor(db, id)
	if err != nil {
		return err
	}
	if provided := Commitment(recipients); !bytes.Equal(provided, d.RecipientGroup) {
		return &InvalidRecipientGroupError{Expected: d.RecipientGroup, Actual: provided}
	}

	ctx = splitter.WithLogInfo(ctx, "distributor", fmt.Sprintf("%X", id))
	cache := store.Cacheable(db).CacheWrap()
	if err := c.distribute(ctx, cache, d, recipients); err != nil {
		cache.Discard()
		return err
	}
	return cache.Write()
}

func (c Controller) distribute(ctx splitter.Context, db splitter.KVStore, d *Distributor, recipients []splitter.Address) error {
	log := splitter.GetLogger(ctx)
	source := splitter.Address(d.Address)

	balance, err := c.ledger.Balance(db, source)
	if err != nil {
		return errors.Wrap(err, "cannot acquire distributor balance")
	}

	var (
		failedTotal uint64
		lastFailed  splitter.Address
		failures    error
	)
	for _, p := range Schedule(balance, recipients) {
		// Nothing to move, the recipient code is not executed.
		if p.Amount == 0 {
			continue
		}
		switch err := c.ledger.Transfer(ctx, db, source, p.Recipient, p.Amount, PerRecipientGas); {
		case err == nil:
		case ledger.ErrTransferFailed.Is(err):
			failedTotal += p.Amount
			lastFailed = p.Recipient
			failures = errors.Append(failures, err)
			log.Debug("Payment failed", "recipient", p.Recipient, "amount", p.Amount, "err", err)
		default:
			return errors.Wrapf(err, "payment to %s", p.Recipient)
		}
	}
	if failedTotal == 0 {
		return nil
	}

	owner := splitter.Address(d.Owner)
	switch err := c.ledger.Transfer(ctx, db, source, owner, failedTotal, ledger.AllGas); {
	case err == nil:
		log.Info("Failed payments refunded", "owner", owner, "amount", failedTotal)
		return nil
	case ledger.ErrTransferFailed.Is(err):
		return &OwnerFailedReceiveError{
			Owner:     owner,
			Recipient: lastFailed,
			Amount:    failedTotal,
			Reason:    err,
			Failures:  failures,
		}
	default:
		return errors.Wrap(err, "owner refund")
	}
}

// Payment is a single transfer of a distribution.
type Payment struct {
	Recipient splitter.Address
	Amount    uint64
}

// Schedule splits the balance between the recipients. Every recipient gets
// the same share, the last one gets the remainder of the division on top of
// it. The total of all payments is always equal to the balance.
func Schedule(balance uint64, recipients []splitter.Address) []Payment {
	n := uint64(len(recipients))
	if n == 0 {
		return nil
	}
	share, rem := balance/n, balance%n
	payments := make([]Payment, n)
	for i, r := range recipients {
		payments[i] = Payment{Recipient: r, Amount: share}
	}
	payments[n-1].Amount += rem
	return payments
}

// CheckGasBounds returns an error if distributing to MaxRecipients
// recipients, all of them consuming the whole PerRecipientGas, followed by
// the owner refund, may not fit into the call gas limit.
func CheckGasBounds(conf *ledger.Configuration) error {
	worst := MaxRecipients*(conf.TransferCost+PerRecipientGas) + conf.TransferCost
	if worst >= conf.CallGasLimit {
		return errors.Wrapf(errors.ErrState,
			"call gas limit %d cannot cover a distribution to %d recipients (%d)",
			conf.CallGasLimit, MaxRecipients, worst)
	}
	return nil
}

func validateRecipients(recipients []splitter.Address) error {
	switch n := len(recipients); {
	case n == 0:
		return errors.Field("Recipients", ErrEmptyRecipients, "at least one recipient required")
	case n > MaxRecipients:
		return errors.Field("Recipients", ErrTooManyRecipients, "%d > %d", n, MaxRecipients)
	}
	var errs error
	for i, r := range recipients {
		errs = errors.AppendField(errs, fmt.Sprintf("Recipients.%d", i), r.Validate())
	}
	return errs
}
