package splitter

// ReadOnlyKVStore gives read access to the state.
type ReadOnlyKVStore interface {
	// Get returns nil if the key does not exist.
	Get(key []byte) ([]byte, error)
	Has(key []byte) (bool, error)
}

// SetDeleter is the write access shared by KVStore and Batch.
type SetDeleter interface {
	Set(key, value []byte) error
	Delete(key []byte) error
}

// KVStore is the store handlers and controllers operate on.
type KVStore interface {
	ReadOnlyKVStore
	SetDeleter

	// NewBatch returns a batch that writes to this store.
	NewBatch() Batch
}

// Batch collects write operations that are applied on Write.
type Batch interface {
	SetDeleter
	Write() error
}

// CacheableKVStore is a KVStore that supports savepoints. Changes done
// through a cache wrap are applied with Write, or rolled back with Discard,
// together.
type CacheableKVStore interface {
	KVStore
	CacheWrap() KVCacheWrap
}

// KVCacheWrap is a scratch pad of uncommitted changes. All reads done
// through the cache wrap see those changes. Cache wraps can be nested.
type KVCacheWrap interface {
	CacheableKVStore

	// Write applies all changes to the parent store.
	Write() error

	// Discard drops all changes. The parent store is not modified.
	Discard()
}

// CommitKVStore is the persistent root store. It is modified through a
// cache wrap and every Commit persists a new version.
type CommitKVStore interface {
	// Get returns the value at the last committed version.
	Get(key []byte) ([]byte, error)

	CacheWrap() KVCacheWrap

	// Commit persists all written changes as the next version.
	Commit() (CommitID, error)

	// LoadLatestVersion loads the latest persisted version. After a crash
	// during a commit the last stable version is loaded.
	LoadLatestVersion() error

	// LatestVersion returns the last persisted version.
	LatestVersion() (CommitID, error)
}

// CommitID identifies a committed version of the state.
type CommitID struct {
	Version int64
	Hash    []byte
}
