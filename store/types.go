package store

import "github.com/iov-one/splitter"

// Aliases of the storage interfaces declared in the root package, for
// shorter names within store implementations.
type (
	ReadOnlyKVStore  = splitter.ReadOnlyKVStore
	SetDeleter       = splitter.SetDeleter
	KVStore          = splitter.KVStore
	Batch            = splitter.Batch
	CacheableKVStore = splitter.CacheableKVStore
	KVCacheWrap      = splitter.KVCacheWrap
	CommitKVStore    = splitter.CommitKVStore
	CommitID         = splitter.CommitID
)
