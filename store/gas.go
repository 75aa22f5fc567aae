package store

import (
	"github.com/iov-one/splitter"
)

// GasCosts declares how much gas each storage access is charged.
type GasCosts struct {
	ReadFlat     uint64
	ReadPerByte  uint64
	WriteFlat    uint64
	WritePerByte uint64
	Delete       uint64
}

// WithGas returns a store that charges every access to the given meter
// according to the costs. An access that cannot be paid for fails with
// errors.ErrOutOfGas and is not performed.
//
// Cache wraps created from the returned store are metered as well. Writing a
// cache wrap does not charge again, the writes are paid for when made.
func WithGas(kv CacheableKVStore, meter splitter.GasMeter, costs GasCosts) CacheableKVStore {
	return &gasStore{kv: kv, meter: meter, costs: costs}
}

// WithoutGas strips all gas metering layers from the store. Use it to meter
// access to the same data with a different meter.
func WithoutGas(kv CacheableKVStore) CacheableKVStore {
	for {
		switch s := kv.(type) {
		case *gasStore:
			kv = s.kv
		case *gasCacheWrap:
			kv = s.cache
		default:
			return kv
		}
	}
}

type gasStore struct {
	kv    CacheableKVStore
	meter splitter.GasMeter
	costs GasCosts
}

var _ CacheableKVStore = (*gasStore)(nil)

func (s *gasStore) Get(key []byte) ([]byte, error) {
	return meteredGet(s.kv, s.meter, s.costs, key)
}

func (s *gasStore) Has(key []byte) (bool, error) {
	if err := s.meter.ConsumeGas(s.costs.ReadFlat, "has"); err != nil {
		return false, err
	}
	return s.kv.Has(key)
}

func (s *gasStore) Set(key, value []byte) error {
	return meteredSet(s.kv, s.meter, s.costs, key, value)
}

func (s *gasStore) Delete(key []byte) error {
	return meteredDelete(s.kv, s.meter, s.costs, key)
}

func (s *gasStore) NewBatch() Batch {
	return &gasBatch{batch: s.kv.NewBatch(), meter: s.meter, costs: s.costs}
}

func (s *gasStore) CacheWrap() KVCacheWrap {
	cache := s.kv.CacheWrap()
	return &gasCacheWrap{
		gasStore: gasStore{kv: cache, meter: s.meter, costs: s.costs},
		cache:    cache,
	}
}

type gasCacheWrap struct {
	gasStore
	cache KVCacheWrap
}

var _ KVCacheWrap = (*gasCacheWrap)(nil)

func (c *gasCacheWrap) Write() error {
	return c.cache.Write()
}

func (c *gasCacheWrap) Discard() {
	c.cache.Discard()
}

type gasBatch struct {
	batch Batch
	meter splitter.GasMeter
	costs GasCosts
}

var _ Batch = (*gasBatch)(nil)

func (b *gasBatch) Set(key, value []byte) error {
	return meteredSet(b.batch, b.meter, b.costs, key, value)
}

func (b *gasBatch) Delete(key []byte) error {
	return meteredDelete(b.batch, b.meter, b.costs, key)
}

func (b *gasBatch) Write() error {
	return b.batch.Write()
}

func meteredGet(kv ReadOnlyKVStore, meter splitter.GasMeter, costs GasCosts, key []byte) ([]byte, error) {
	if err := meter.ConsumeGas(costs.ReadFlat, "read"); err != nil {
		return nil, err
	}
	value, err := kv.Get(key)
	if err != nil {
		return nil, err
	}
	if err := meter.ConsumeGas(perByte(costs.ReadPerByte, len(value)), "read bytes"); err != nil {
		return nil, err
	}
	return value, nil
}

func meteredSet(kv SetDeleter, meter splitter.GasMeter, costs GasCosts, key, value []byte) error {
	cost := costs.WriteFlat + perByte(costs.WritePerByte, len(key)+len(value))
	if err := meter.ConsumeGas(cost, "write"); err != nil {
		return err
	}
	return kv.Set(key, value)
}

func meteredDelete(kv SetDeleter, meter splitter.GasMeter, costs GasCosts, key []byte) error {
	if err := meter.ConsumeGas(costs.Delete, "delete"); err != nil {
		return err
	}
	return kv.Delete(key)
}

func perByte(cost uint64, n int) uint64 {
	return cost * uint64(n)
}
