package distributor

import (
	"context"

	"github.com/iov-one/splitter"
	"github.com/iov-one/splitter/errors"
	"github.com/iov-one/splitter/x/ledger"
)

const optKey = "distributor"

// GenesisDistributor is a distributor declared in the genesis file.
type GenesisDistributor struct {
	Owner      splitter.Address   `json:"owner"`
	Recipients []splitter.Address `json:"recipients"`
}

// Initializer fulfils the Initializer interface to load data from the genesis
// file
type Initializer struct{}

var _ splitter.Initializer = Initializer{}

// FromGenesis ensures that the ledger configuration allows a full size
// distribution and creates all declared distributors. It must run after the
// ledger initializer.
func (Initializer) FromGenesis(opts splitter.Options, db splitter.KVStore) error {
	conf, err := ledger.LoadConfiguration(db)
	if err != nil {
		return err
	}
	if err := CheckGasBounds(conf); err != nil {
		return errors.Wrap(err, "ledger configuration")
	}

	var distributors []GenesisDistributor
	if err := opts.ReadOptions(optKey, &distributors); err != nil {
		return errors.Wrap(err, "cannot load distributors")
	}
	ctrl := NewController(ledger.NewController(nil))
	for i, d := range distributors {
		if _, err := ctrl.Create(context.Background(), db, d.Owner, d.Recipients); err != nil {
			return errors.Wrapf(err, "cannot store #%d distributor", i)
		}
	}
	return nil
}
