package ledger

import (
	"github.com/iov-one/splitter"
	"github.com/iov-one/splitter/errors"
	"github.com/iov-one/splitter/gconf"
)

const optKey = "cash"

// GenesisAccount is used to parse the json from genesis file
// use splitter.Address, so address in hex, not base64
type GenesisAccount struct {
	Address splitter.Address `json:"address"`
	Balance uint64           `json:"balance"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ splitter.Initializer = Initializer{}

// FromGenesis saves the ledger configuration, falling back to the default
// one, and funds the initial accounts.
func (Initializer) FromGenesis(opts splitter.Options, db splitter.KVStore) error {
	var conf Configuration
	switch err := gconf.InitConfig(db, opts, PkgName, &conf); {
	case err == nil:
	case errors.ErrNotFound.Is(err):
		conf = DefaultConfiguration()
		if err := gconf.Save(db, PkgName, &conf); err != nil {
			return errors.Wrap(err, "save default configuration")
		}
	default:
		return err
	}

	var accounts []GenesisAccount
	if err := opts.ReadOptions(optKey, &accounts); err != nil {
		return err
	}
	ctrl := NewController(nil)
	for i, acc := range accounts {
		if err := ctrl.IssueCoins(db, acc.Address, acc.Balance); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
	}
	return nil
}
