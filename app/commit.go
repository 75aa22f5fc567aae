package app

import (
	"github.com/iov-one/splitter"
	"github.com/iov-one/splitter/errors"
)

// CommitStore keeps two independent cache wraps over the committed state.
// The deliver cache accumulates all delivered transactions until the next
// commit. The check cache is used to validate transactions and is dropped on
// every commit, so checks never see uncommitted deliveries.
type CommitStore struct {
	committed splitter.CommitKVStore
	deliver   splitter.KVCacheWrap
	check     splitter.KVCacheWrap
}

// NewCommitStore loads the latest committed version of the store.
func NewCommitStore(store splitter.CommitKVStore) (*CommitStore, error) {
	if err := store.LoadLatestVersion(); err != nil {
		return nil, errors.Wrap(err, "load latest version")
	}
	cs := &CommitStore{committed: store}
	cs.reset()
	return cs, nil
}

// CommitInfo returns the height and the hash of the last commit.
func (cs *CommitStore) CommitInfo() (splitter.CommitID, error) {
	return cs.committed.LatestVersion()
}

// Commit writes all delivered changes and persists them as a new version.
func (cs *CommitStore) Commit() (splitter.CommitID, error) {
	if err := cs.deliver.Write(); err != nil {
		return splitter.CommitID{}, errors.Wrap(err, "flush deliver cache")
	}
	id, err := cs.committed.Commit()
	if err != nil {
		return id, errors.Wrap(err, "commit")
	}
	cs.check.Discard()
	cs.reset()
	return id, nil
}

func (cs *CommitStore) reset() {
	cs.deliver = cs.committed.CacheWrap()
	cs.check = cs.committed.CacheWrap()
}

// CheckStore returns the store transactions are checked against.
func (cs *CommitStore) CheckStore() splitter.CacheableKVStore {
	return cs.check
}

// DeliverStore returns the store transactions are delivered to.
func (cs *CommitStore) DeliverStore() splitter.CacheableKVStore {
	return cs.deliver
}

// chainIDKey is where the chain id is kept. Keys starting with an underscore
// are never used by extensions.
var chainIDKey = []byte("_app:chain_id")

// loadChainID returns the stored chain id or an empty string if the chain was
// not initialized.
func loadChainID(db splitter.ReadOnlyKVStore) (string, error) {
	raw, err := db.Get(chainIDKey)
	if err != nil {
		return "", errors.Wrap(err, "load chain id")
	}
	return string(raw), nil
}

// saveChainID stores the chain id. It can be done only once.
func saveChainID(db splitter.KVStore, chainID string) error {
	if !splitter.IsValidChainID(chainID) {
		return errors.Wrapf(errors.ErrInput, "chain id: %q", chainID)
	}
	switch exists, err := db.Has(chainIDKey); {
	case err != nil:
		return errors.Wrap(err, "load chain id")
	case exists:
		return errors.Wrap(errors.ErrState, "chain id cannot be changed")
	}
	if err := db.Set(chainIDKey, []byte(chainID)); err != nil {
		return errors.Wrap(err, "save chain id")
	}
	return nil
}
