//nolint
package store

import "github.com/iov-one/splitter"

// Move references for all storage types into this package
// for shorter names everywhere

type ReadOnlyKVStore = splitter.ReadOnlyKVStore
type SetDeleter = splitter.SetDeleter
type KVStore = splitter.KVStore
type Batch = splitter.Batch
type CacheableKVStore = splitter.CacheableKVStore
type KVCacheWrap = splitter.KVCacheWrap
type CommitKVStore = splitter.CommitKVStore
type CommitID = splitter.CommitID
