package app

import (
	"encoding/json"
	"io/ioutil"

	"github.com/iov-one/splitter"
	"github.com/iov-one/splitter/errors"
)

// Genesis file format
type Genesis struct {
	ChainID  string           `json:"chain_id"`
	AppState splitter.Options `json:"app_state"`
}

// LoadGenesis tries to load a given file into a Genesis struct
func LoadGenesis(filePath string) (*Genesis, error) {
	raw, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "read genesis file: %s", err)
	}
	var gen Genesis
	if err := json.Unmarshal(raw, &gen); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "unmarshal genesis file: %s", err)
	}
	if len(gen.AppState) == 0 {
		return nil, errors.Wrap(errors.ErrEmpty, "app_state not set in genesis file")
	}
	return &gen, nil
}
