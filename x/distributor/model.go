package distributor

import (
	"encoding/binary"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/splitter"
	"github.com/iov-one/splitter/errors"
)

const (
	// MaxRecipients is the maximum size of a recipient group. Distributing
	// to MaxRecipients recipients that all fail must fit into the call gas
	// limit, see CheckGasBounds.
	MaxRecipients = 200

	// PerRecipientGas is the amount of gas forwarded to the code of every
	// recipient.
	PerRecipientGas = 2300
)

const bucketPrefix = "distributor:"

var distributorSeq = newSequence("distributor")

// Validate returns an error if the distributor is not consistent.
func (d *Distributor) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Owner", splitter.Address(d.Owner).Validate())
	if len(d.RecipientGroup) != CommitmentSize {
		errs = errors.AppendField(errs, "RecipientGroup",
			errors.Wrapf(errors.ErrModel, "commitment must be %d bytes", CommitmentSize))
	}
	errs = errors.AppendField(errs, "Address", splitter.Address(d.Address).Validate())
	return errs
}

// DistributorAccount returns the address of the account holding the funds of
// the distributor with the given ID.
func DistributorAccount(id []byte) splitter.Address {
	return splitter.NewCondition("dist", "payout", id).Address()
}

func distributorKey(id []byte) []byte {
	return append([]byte(bucketPrefix), id...)
}

func loadDistributor(db splitter.ReadOnlyKVStore, id []byte) (*Distributor, error) {
	raw, err := db.Get(distributorKey(id))
	if err != nil {
		return nil, errors.Wrap(err, "load distributor")
	}
	if raw == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "distributor %X", id)
	}
	var d Distributor
	if err := proto.Unmarshal(raw, &d); err != nil {
		return nil, errors.Wrapf(errors.ErrModel, "cannot unmarshal distributor: %s", err)
	}
	return &d, nil
}

func saveDistributor(db splitter.KVStore, id []byte, d *Distributor) error {
	if err := d.Validate(); err != nil {
		return errors.Wrap(err, "invalid distributor")
	}
	raw, err := proto.Marshal(d)
	if err != nil {
		return errors.Wrapf(errors.ErrModel, "cannot marshal distributor: %s", err)
	}
	return db.Set(distributorKey(id), raw)
}

// sequence is a counter stored in the database that generates increasing,
// 8 byte big endian IDs.
type sequence struct {
	key []byte
}

func newSequence(name string) sequence {
	return sequence{key: []byte("_s:" + name)}
}

// NextVal increments the counter and returns its new value.
func (s sequence) NextVal(db splitter.KVStore) ([]byte, error) {
	raw, err := db.Get(s.key)
	if err != nil {
		return nil, errors.Wrap(err, "load sequence")
	}
	var val uint64
	if raw != nil {
		if len(raw) != 8 {
			return nil, errors.Wrapf(errors.ErrState, "malformed sequence %q", s.key)
		}
		val = binary.BigEndian.Uint64(raw)
	}
	next := make([]byte, 8)
	binary.BigEndian.PutUint64(next, val+1)
	if err := db.Set(s.key, next); err != nil {
		return nil, errors.Wrap(err, "save sequence")
	}
	return next, nil
}
