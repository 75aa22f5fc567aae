package gconf

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/splitter"
	"github.com/iov-one/splitter/errors"
)

// ReadStore is the part of splitter.ReadOnlyKVStore needed to load a
// configuration.
type ReadStore interface {
	Get([]byte) ([]byte, error)
}

// Store is the part of splitter.KVStore needed to save a configuration.
type Store interface {
	ReadStore
	Set([]byte, []byte) error
}

// Configuration is a protobuf message that can validate itself.
type Configuration interface {
	proto.Message
	Validate() error
}

// Key returns the key the configuration of the given package is stored under.
func Key(pkg string) []byte {
	return []byte("_c:" + pkg)
}

// Save stores the configuration of the given package. Only a valid
// configuration can be saved.
func Save(db Store, pkg string, src Configuration) error {
	if err := src.Validate(); err != nil {
		return errors.Wrapf(err, "%s configuration", pkg)
	}
	raw, err := proto.Marshal(src)
	if err != nil {
		return errors.Wrapf(errors.ErrState, "marshal %s configuration: %s", pkg, err)
	}
	return db.Set(Key(pkg), raw)
}

// Load reads the configuration of the given package into dst. ErrNotFound is
// returned if the package has no configuration.
func Load(db ReadStore, pkg string, dst proto.Message) error {
	raw, err := db.Get(Key(pkg))
	switch {
	case err != nil:
		return errors.Wrapf(err, "load %s configuration", pkg)
	case raw == nil:
		return errors.Wrapf(errors.ErrNotFound, "%s configuration", pkg)
	}
	if err := proto.Unmarshal(raw, dst); err != nil {
		return errors.Wrapf(errors.ErrState, "unmarshal %s configuration: %s", pkg, err)
	}
	return nil
}

// InitConfig reads the configuration of the given package from the genesis
// options, found under opts["conf"][pkg], and saves it. ErrNotFound is
// returned if the genesis does not declare it.
func InitConfig(db Store, opts splitter.Options, pkg string, conf Configuration) error {
	var all splitter.Options
	if err := opts.ReadOptions("conf", &all); err != nil {
		return errors.Wrap(err, "read conf")
	}
	if _, ok := all[pkg]; !ok {
		return errors.Wrapf(errors.ErrNotFound, "no genesis configuration for %q", pkg)
	}
	if err := all.ReadOptions(pkg, conf); err != nil {
		return err
	}
	return Save(db, pkg, conf)
}
