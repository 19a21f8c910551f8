// Package store provides the MultiStore used by all keepers: one tm-db
// database partitioned into per-module keyspaces by key prefix.
package store

import (
	dbm "github.com/tendermint/tm-db"

	sdk "github.com/plexfi/plexlock/types"
)

type multiStore struct {
	db dbm.DB
}

// NewMultiStore partitions db by store-key name. The same database may back
// any number of store keys.
func NewMultiStore(db dbm.DB) sdk.MultiStore {
	return multiStore{db: db}
}

func (ms multiStore) KVStore(key sdk.StoreKey) sdk.KVStore {
	return kvStore{
		db:     ms.db,
		prefix: []byte("s/" + key.Name() + "/"),
	}
}

type kvStore struct {
	db     dbm.DB
	prefix []byte
}

func (s kvStore) key(k []byte) []byte {
	return append(append([]byte{}, s.prefix...), k...)
}

func (s kvStore) Get(key []byte) []byte {
	return s.db.Get(s.key(key))
}

func (s kvStore) Set(key, value []byte) {
	if len(key) == 0 {
		panic("empty store key")
	}
	s.db.Set(s.key(key), value)
}

func (s kvStore) Delete(key []byte) {
	s.db.Delete(s.key(key))
}

func (s kvStore) Has(key []byte) bool {
	return s.db.Has(s.key(key))
}

func (s kvStore) Iterator(start, end []byte) sdk.Iterator {
	lo, hi := s.bounds(start, end)
	return prefixIterator{parent: s.db.Iterator(lo, hi), prefixLen: len(s.prefix)}
}

func (s kvStore) ReverseIterator(start, end []byte) sdk.Iterator {
	lo, hi := s.bounds(start, end)
	return prefixIterator{parent: s.db.ReverseIterator(lo, hi), prefixLen: len(s.prefix)}
}

func (s kvStore) bounds(start, end []byte) ([]byte, []byte) {
	lo := s.key(start)
	var hi []byte
	if end == nil {
		hi = sdk.PrefixEndBytes(s.prefix)
	} else {
		hi = s.key(end)
	}
	return lo, hi
}

// prefixIterator strips the keyspace prefix so callers see module-relative
// keys.
type prefixIterator struct {
	parent    dbm.Iterator
	prefixLen int
}

func (it prefixIterator) Domain() ([]byte, []byte) {
	start, end := it.parent.Domain()
	if len(start) >= it.prefixLen {
		start = start[it.prefixLen:]
	}
	if len(end) >= it.prefixLen {
		end = end[it.prefixLen:]
	}
	return start, end
}

func (it prefixIterator) Valid() bool { return it.parent.Valid() }
func (it prefixIterator) Next()       { it.parent.Next() }

func (it prefixIterator) Key() []byte {
	return it.parent.Key()[it.prefixLen:]
}

func (it prefixIterator) Value() []byte { return it.parent.Value() }
func (it prefixIterator) Close()        { it.parent.Close() }
