package store

import (
	"bytes"
	"sort"

	sdk "github.com/plexfi/plexlock/types"
)

func (ms multiStore) CacheMultiStore() sdk.CacheMultiStore {
	return newCacheMultiStore(ms)
}

// cacheMultiStore buffers writes above a parent MultiStore until Write.
// Keeper entry points run against one so a failing operation leaves no
// state behind.
type cacheMultiStore struct {
	parent sdk.MultiStore
	stores map[string]*cacheKVStore
}

func newCacheMultiStore(parent sdk.MultiStore) *cacheMultiStore {
	return &cacheMultiStore{
		parent: parent,
		stores: make(map[string]*cacheKVStore),
	}
}

func (cms *cacheMultiStore) KVStore(key sdk.StoreKey) sdk.KVStore {
	if s, ok := cms.stores[key.Name()]; ok {
		return s
	}
	s := &cacheKVStore{
		parent: cms.parent.KVStore(key),
		writes: make(map[string][]byte),
	}
	cms.stores[key.Name()] = s
	return s
}

func (cms *cacheMultiStore) CacheMultiStore() sdk.CacheMultiStore {
	return newCacheMultiStore(cms)
}

func (cms *cacheMultiStore) Write() {
	for _, s := range cms.stores {
		s.write()
	}
}

// cacheKVStore overlays buffered writes on a parent store. A nil value in
// writes marks a deletion.
type cacheKVStore struct {
	parent sdk.KVStore
	writes map[string][]byte
}

func (s *cacheKVStore) Get(key []byte) []byte {
	if v, ok := s.writes[string(key)]; ok {
		return v
	}
	return s.parent.Get(key)
}

func (s *cacheKVStore) Set(key, value []byte) {
	if len(key) == 0 {
		panic("empty store key")
	}
	s.writes[string(key)] = value
}

func (s *cacheKVStore) Delete(key []byte) {
	s.writes[string(key)] = nil
}

func (s *cacheKVStore) Has(key []byte) bool {
	if v, ok := s.writes[string(key)]; ok {
		return v != nil
	}
	return s.parent.Has(key)
}

func (s *cacheKVStore) Iterator(start, end []byte) sdk.Iterator {
	return s.iterator(start, end, true)
}

func (s *cacheKVStore) ReverseIterator(start, end []byte) sdk.Iterator {
	return s.iterator(start, end, false)
}

func (s *cacheKVStore) iterator(start, end []byte, ascending bool) sdk.Iterator {
	var parent sdk.Iterator
	if ascending {
		parent = s.parent.Iterator(start, end)
	} else {
		parent = s.parent.ReverseIterator(start, end)
	}

	var dirty []cacheEntry
	for key, value := range s.writes {
		k := []byte(key)
		if afterStart(k, start) && beforeEnd(k, end) {
			dirty = append(dirty, cacheEntry{key: k, value: value})
		}
	}
	sort.Slice(dirty, func(i, j int) bool {
		c := bytes.Compare(dirty[i].key, dirty[j].key)
		if ascending {
			return c < 0
		}
		return c > 0
	})

	it := &cacheMergeIterator{
		parent:    parent,
		dirty:     dirty,
		ascending: ascending,
		start:     start,
		end:       end,
	}
	it.settle()
	return it
}

// write flushes in sorted key order so the parent sees a deterministic
// sequence.
func (s *cacheKVStore) write() {
	keys := make([]string, 0, len(s.writes))
	for k := range s.writes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if v := s.writes[k]; v == nil {
			s.parent.Delete([]byte(k))
		} else {
			s.parent.Set([]byte(k), v)
		}
	}
	s.writes = make(map[string][]byte)
}

func afterStart(key, start []byte) bool {
	return start == nil || bytes.Compare(key, start) >= 0
}

func beforeEnd(key, end []byte) bool {
	return end == nil || bytes.Compare(key, end) < 0
}

type cacheEntry struct {
	key   []byte
	value []byte
}

// cacheMergeIterator walks the parent iterator and the sorted dirty entries
// together. A dirty entry shadows the parent entry with the same key; a nil
// dirty value hides it entirely.
type cacheMergeIterator struct {
	parent    sdk.Iterator
	dirty     []cacheEntry
	ascending bool
	start     []byte
	end       []byte
}

func (it *cacheMergeIterator) Domain() ([]byte, []byte) {
	return it.start, it.end
}

func (it *cacheMergeIterator) Valid() bool {
	return it.parent.Valid() || len(it.dirty) > 0
}

func (it *cacheMergeIterator) Next() {
	if it.parentFirst() {
		it.parent.Next()
	} else {
		it.dirty = it.dirty[1:]
	}
	it.settle()
}

func (it *cacheMergeIterator) Key() []byte {
	if it.parentFirst() {
		return it.parent.Key()
	}
	return it.dirty[0].key
}

func (it *cacheMergeIterator) Value() []byte {
	if it.parentFirst() {
		return it.parent.Value()
	}
	return it.dirty[0].value
}

func (it *cacheMergeIterator) Close() {
	it.parent.Close()
}

func (it *cacheMergeIterator) parentFirst() bool {
	if !it.parent.Valid() {
		return false
	}
	if len(it.dirty) == 0 {
		return true
	}
	return it.cmp(it.parent.Key(), it.dirty[0].key) < 0
}

// settle drops deletions and shadowed parent entries until the current
// position is a live entry. Every position change runs through here, so
// Key/Value never observe a shadowed or deleted entry.
func (it *cacheMergeIterator) settle() {
	for len(it.dirty) > 0 {
		d := it.dirty[0]
		if it.parent.Valid() {
			c := it.cmp(it.parent.Key(), d.key)
			if c < 0 {
				return
			}
			if c == 0 {
				it.parent.Next()
				continue
			}
		}
		if d.value != nil {
			return
		}
		it.dirty = it.dirty[1:]
	}
}

func (it *cacheMergeIterator) cmp(a, b []byte) int {
	c := bytes.Compare(a, b)
	if !it.ascending {
		c = -c
	}
	return c
}
