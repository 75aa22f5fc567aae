package ledger

import (
	"math"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/splitter"
	"github.com/iov-one/splitter/errors"
)

// accountPrefix is prepended to the address to build the account key.
const accountPrefix = "cash:"

func accountKey(addr splitter.Address) []byte {
	return append([]byte(accountPrefix), addr...)
}

// loadBalance returns the balance of the given address. An address without an
// account has a zero balance.
func loadBalance(db splitter.ReadOnlyKVStore, addr splitter.Address) (uint64, error) {
	if err := addr.Validate(); err != nil {
		return 0, errors.Wrap(err, "account address")
	}
	raw, err := db.Get(accountKey(addr))
	if err != nil {
		return 0, errors.Wrap(err, "load account")
	}
	if raw == nil {
		return 0, nil
	}
	var acc Account
	if err := proto.Unmarshal(raw, &acc); err != nil {
		return 0, errors.Wrapf(errors.ErrModel, "cannot unmarshal account: %s", err)
	}
	return acc.Balance, nil
}

// saveBalance stores the balance of the given address. Empty accounts are
// removed.
func saveBalance(db splitter.KVStore, addr splitter.Address, balance uint64) error {
	if balance == 0 {
		return db.Delete(accountKey(addr))
	}
	raw, err := proto.Marshal(&Account{Balance: balance})
	if err != nil {
		return errors.Wrapf(errors.ErrModel, "cannot marshal account: %s", err)
	}
	return db.Set(accountKey(addr), raw)
}

// add returns the sum or ErrOverflow.
func add(a, b uint64) (uint64, error) {
	if a > math.MaxUint64-b {
		return 0, errors.Wrapf(errors.ErrOverflow, "%d + %d", a, b)
	}
	return a + b, nil
}
