package types

import (
	"encoding/binary"

	dbm "github.com/tendermint/tm-db"
)

// StoreKey names an isolated keyspace inside the MultiStore.
type StoreKey interface {
	Name() string
	String() string
}

// KVStoreKey is the only StoreKey implementation. The MultiStore partitions
// keyspaces by name, so two keys carrying the same name address the same
// keyspace.
type KVStoreKey struct {
	name string
}

func NewKVStoreKey(name string) *KVStoreKey {
	return &KVStoreKey{name: name}
}

func (k *KVStoreKey) Name() string   { return k.name }
func (k *KVStoreKey) String() string { return "KVStoreKey(" + k.name + ")" }

// Iterator matches the tm-db iterator contract: Close must be called, keys
// are returned in byte order within [start, end).
type Iterator = dbm.Iterator

// KVStore is the minimal store surface keepers program against.
type KVStore interface {
	Get(key []byte) []byte
	Set(key, value []byte)
	Delete(key []byte)
	Has(key []byte) bool
	Iterator(start, end []byte) Iterator
	ReverseIterator(start, end []byte) Iterator
}

// MultiStore hands out a KVStore per store key, all above one database.
type MultiStore interface {
	KVStore(key StoreKey) KVStore
	CacheMultiStore() CacheMultiStore
}

// CacheMultiStore buffers every write until Write flushes them to the
// parent. Discarding one without calling Write drops the buffered writes.
type CacheMultiStore interface {
	MultiStore
	Write()
}

// PrefixEndBytes returns the end key for iterating over all keys with the
// given prefix, or nil when the prefix is all 0xff.
func PrefixEndBytes(prefix []byte) []byte {
	if len(prefix) == 0 {
		return nil
	}
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] != 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}

func Uint64ToBigEndian(n uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, n)
	return bz
}

func BigEndianToUint64(bz []byte) uint64 {
	return binary.BigEndian.Uint64(bz)
}

func Int64ToBigEndian(n int64) []byte {
	return Uint64ToBigEndian(uint64(n))
}

func BigEndianToInt64(bz []byte) int64 {
	return int64(binary.BigEndian.Uint64(bz))
}
