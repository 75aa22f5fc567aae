package store

import (
	"bytes"

	"github.com/google/btree"
)

// btreeDegree is the degree of every cache btree. Cache wraps hold at most a
// few hundred changes, a low degree keeps them small.
const btreeDegree = 2

// BTreeCacheable adds a btree based cache wrap to a KVStore.
type BTreeCacheable struct {
	KVStore
}

var _ CacheableKVStore = BTreeCacheable{}

// CacheWrap returns a cache wrap that can be later written to this store, or
// discarded.
func (b BTreeCacheable) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(b.KVStore, b.NewBatch(), nil)
}

// Cacheable returns given store if it already supports cache wrapping.
// Otherwise the store is wrapped with a btree cache.
func Cacheable(kv KVStore) CacheableKVStore {
	if c, ok := kv.(CacheableKVStore); ok {
		return c
	}
	return BTreeCacheable{kv}
}

// BTreeCacheWrap places a btree cache over a KVStore. All changes are
// visible to the reads done through the cache wrap but do not reach the
// backing store until Write is called.
//
// Cache wraps nest. A cache wrap created from another cache wrap is a
// savepoint: discarding it rolls back to the state of its parent.
type BTreeCacheWrap struct {
	changes *btree.BTree
	free    *btree.FreeList
	back    ReadOnlyKVStore
	batch   Batch
}

var _ KVCacheWrap = BTreeCacheWrap{}

// NewBTreeCacheWrap returns a cache wrap reading from kv. All writes go
// through the batch that is flushed on Write. Nodes are allocated from the
// given free list, which may be nil.
func NewBTreeCacheWrap(kv ReadOnlyKVStore, batch Batch, free *btree.FreeList) BTreeCacheWrap {
	if free == nil {
		free = btree.NewFreeList(btree.DefaultFreeListSize)
	}
	return BTreeCacheWrap{
		changes: btree.NewWithFreeList(btreeDegree, free),
		free:    free,
		back:    kv,
		batch:   batch,
	}
}

// CacheWrap returns a cache wrap on top of this one. Nested cache wraps share
// the free list.
func (b BTreeCacheWrap) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(b, b.NewBatch(), b.free)
}

// NewBatch returns a batch writing to this cache wrap.
func (b BTreeCacheWrap) NewBatch() Batch {
	return NewNonAtomicBatch(b)
}

// Write flushes all changes to the backing store and empties the cache.
func (b BTreeCacheWrap) Write() error {
	err := b.batch.Write()
	b.Discard()
	return err
}

// Discard drops all changes. The backing store is not modified.
func (b BTreeCacheWrap) Discard() {
	// Return all nodes to the free list.
	for b.changes.DeleteMin() != nil {
	}
	if r, ok := b.batch.(resetter); ok {
		r.Reset()
	}
}

// resetter is implemented by batches that can drop all collected operations.
type resetter interface {
	Reset()
}

func (b BTreeCacheWrap) Set(key, value []byte) error {
	b.changes.ReplaceOrInsert(entry{key: key, value: value})
	return b.batch.Set(key, value)
}

func (b BTreeCacheWrap) Delete(key []byte) error {
	b.changes.ReplaceOrInsert(entry{key: key, deleted: true})
	return b.batch.Delete(key)
}

// Get returns the cached value, falling back to the backing store for keys
// not modified within this cache wrap.
func (b BTreeCacheWrap) Get(key []byte) ([]byte, error) {
	e, ok := b.lookup(key)
	if !ok {
		return b.back.Get(key)
	}
	if e.deleted {
		return nil, nil
	}
	return e.value, nil
}

func (b BTreeCacheWrap) Has(key []byte) (bool, error) {
	e, ok := b.lookup(key)
	if !ok {
		return b.back.Has(key)
	}
	return !e.deleted, nil
}

func (b BTreeCacheWrap) lookup(key []byte) (entry, bool) {
	item := b.changes.Get(entry{key: key})
	if item == nil {
		return entry{}, false
	}
	return item.(entry), true
}

// entry is a single change recorded by a cache wrap. A deleted entry hides
// the value kept by the backing store.
type entry struct {
	key     []byte
	value   []byte
	deleted bool
}

var _ btree.Item = entry{}

func (e entry) Less(than btree.Item) bool {
	return bytes.Compare(e.key, than.(entry).key) < 0
}
