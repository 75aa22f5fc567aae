package ledger

import (
	"github.com/iov-one/splitter"
	"github.com/iov-one/splitter/errors"
	"github.com/iov-one/splitter/gconf"
	"github.com/iov-one/splitter/store"
)

// PkgName is the name the configuration is stored under.
const PkgName = "ledger"

// DefaultConfiguration returns the configuration used when none was provided
// in the genesis file.
func DefaultConfiguration() Configuration {
	return Configuration{
		CallGasLimit:     5000000,
		TransferCost:     9000,
		ReadCostFlat:     200,
		ReadCostPerByte:  3,
		WriteCostFlat:    500,
		WriteCostPerByte: 30,
		DeleteCost:       500,
	}
}

// Validate ensures the configuration is consistent.
func (c *Configuration) Validate() error {
	var errs error
	if c.CallGasLimit <= c.TransferCost {
		errs = errors.AppendField(errs, "CallGasLimit",
			errors.Wrap(errors.ErrAmount, "must be greater than the transfer cost"))
	}
	if c.TransferCost == 0 {
		errs = errors.AppendField(errs, "TransferCost", errors.ErrEmpty)
	}
	if c.ReadCostFlat == 0 {
		errs = errors.AppendField(errs, "ReadCostFlat", errors.ErrEmpty)
	}
	if c.WriteCostFlat == 0 {
		errs = errors.AppendField(errs, "WriteCostFlat", errors.ErrEmpty)
	}
	if c.DeleteCost == 0 {
		errs = errors.AppendField(errs, "DeleteCost", errors.ErrEmpty)
	}
	return errs
}

// GasCosts returns the storage access costs.
func (c *Configuration) GasCosts() store.GasCosts {
	return store.GasCosts{
		ReadFlat:     c.ReadCostFlat,
		ReadPerByte:  c.ReadCostPerByte,
		WriteFlat:    c.WriteCostFlat,
		WritePerByte: c.WriteCostPerByte,
		Delete:       c.DeleteCost,
	}
}

// LoadConfiguration returns the configuration stored in the database. If
// none is stored, the default configuration is returned.
func LoadConfiguration(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	switch err := gconf.Load(db, PkgName, &conf); {
	case err == nil:
		return &conf, nil
	case errors.ErrNotFound.Is(err):
		conf = DefaultConfiguration()
		return &conf, nil
	default:
		return nil, errors.Wrap(err, "load configuration")
	}
}

// GasPolicy grants every call the amount of gas declared by the ledger
// configuration.
type GasPolicy struct{}

// CallGas implements app.GasPolicy.
func (GasPolicy) CallGas(db splitter.ReadOnlyKVStore) (uint64, store.GasCosts, error) {
	conf, err := LoadConfiguration(db)
	if err != nil {
		return 0, store.GasCosts{}, err
	}
	return conf.CallGasLimit, conf.GasCosts(), nil
}
