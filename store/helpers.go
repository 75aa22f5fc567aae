package store

// MemStore returns an in-memory store. Nothing is persisted.
func MemStore() CacheableKVStore {
	e := EmptyKVStore{}
	return NewBTreeCacheWrap(e, e.NewBatch(), nil)
}

// EmptyKVStore never holds any data. It is the base layer of MemStore.
type EmptyKVStore struct{}

var _ KVStore = EmptyKVStore{}

func (EmptyKVStore) Get(key []byte) ([]byte, error) { return nil, nil }
func (EmptyKVStore) Has(key []byte) (bool, error)   { return false, nil }
func (EmptyKVStore) Set(key, value []byte) error    { return nil }
func (EmptyKVStore) Delete(key []byte) error        { return nil }

func (e EmptyKVStore) NewBatch() Batch {
	return NewNonAtomicBatch(e)
}

// NonAtomicBatch collects operations and applies them, in order, to the
// underlying store on Write. A failing operation leaves the already applied
// ones in place, so use it only on top of in-memory stores.
type NonAtomicBatch struct {
	out SetDeleter
	ops []op
}

var _ Batch = (*NonAtomicBatch)(nil)

// op is a single set or, if deleted is true, delete operation.
type op struct {
	key     []byte
	value   []byte
	deleted bool
}

// NewNonAtomicBatch returns an empty batch writing to out.
func NewNonAtomicBatch(out SetDeleter) *NonAtomicBatch {
	return &NonAtomicBatch{out: out}
}

func (b *NonAtomicBatch) Set(key, value []byte) error {
	b.ops = append(b.ops, op{key: key, value: value})
	return nil
}

func (b *NonAtomicBatch) Delete(key []byte) error {
	b.ops = append(b.ops, op{key: key, deleted: true})
	return nil
}

// Write applies all collected operations and empties the batch.
func (b *NonAtomicBatch) Write() error {
	for _, o := range b.ops {
		var err error
		if o.deleted {
			err = b.out.Delete(o.key)
		} else {
			err = b.out.Set(o.key, o.value)
		}
		if err != nil {
			return err
		}
	}
	b.ops = nil
	return nil
}

// Reset drops all collected operations.
func (b *NonAtomicBatch) Reset() {
	b.ops = nil
}
