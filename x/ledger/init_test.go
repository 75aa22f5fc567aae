package ledger

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/splitter"
	"github.com/iov-one/splitter/errors"
	"github.com/iov-one/splitter/splittertest/assert"
	"github.com/iov-one/splitter/store"
)

func TestGenesis(t *testing.T) {
	const genesis = `
	{
		"conf": {
			"ledger": {
				"call_gas_limit": 1000000,
				"transfer_cost": 5000,
				"read_cost_flat": 10,
				"write_cost_flat": 20,
				"delete_cost": 30
			}
		},
		"cash": [
			{"address": "0102030405060708090A0B0C0D0E0F1011121314", "balance": 1000},
			{"address": "1112131415161718191A1B1C1D1E1F2021222324", "balance": 5}
		]
	}`
	var opts splitter.Options
	assert.Nil(t, json.Unmarshal([]byte(genesis), &opts))

	db := store.MemStore()
	assert.Nil(t, Initializer{}.FromGenesis(opts, db))

	conf, err := LoadConfiguration(db)
	assert.Nil(t, err)
	assert.Equal(t, uint64(1000000), conf.CallGasLimit)
	assert.Equal(t, uint64(5000), conf.TransferCost)

	first, _ := splitter.ParseAddress("0102030405060708090A0B0C0D0E0F1011121314")
	second, _ := splitter.ParseAddress("1112131415161718191A1B1C1D1E1F2021222324")
	assertBalance(t, db, first, 1000)
	assertBalance(t, db, second, 5)
}

func TestGenesisDefaultConfiguration(t *testing.T) {
	var opts splitter.Options
	assert.Nil(t, json.Unmarshal([]byte(`{}`), &opts))

	db := store.MemStore()
	assert.Nil(t, Initializer{}.FromGenesis(opts, db))

	conf, err := LoadConfiguration(db)
	assert.Nil(t, err)
	assert.Equal(t, DefaultConfiguration(), *conf)
}

func TestGenesisInvalid(t *testing.T) {
	cases := map[string]struct {
		genesis string
		wantErr *errors.Error
	}{
		"invalid configuration": {
			genesis: `{"conf": {"ledger": {"call_gas_limit": 100, "transfer_cost": 9000}}}`,
			wantErr: errors.ErrAmount,
		},
		"invalid address": {
			genesis: `{"cash": [{"address": "0102", "balance": 1}]}`,
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var opts splitter.Options
			assert.Nil(t, json.Unmarshal([]byte(tc.genesis), &opts))
			err := Initializer{}.FromGenesis(opts, store.MemStore())
			assert.IsErr(t, tc.wantErr, err)
		})
	}
}

func TestConfigurationValidate(t *testing.T) {
	valid := DefaultConfiguration()
	assert.Nil(t, valid.Validate())

	conf := DefaultConfiguration()
	conf.CallGasLimit = conf.TransferCost
	conf.ReadCostFlat = 0
	err := conf.Validate()
	assert.FieldError(t, err, "CallGasLimit", errors.ErrAmount)
	assert.FieldError(t, err, "ReadCostFlat", errors.ErrEmpty)
	assert.FieldError(t, err, "TransferCost", nil)
}
