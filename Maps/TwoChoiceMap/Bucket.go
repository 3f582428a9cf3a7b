package TwoChoiceMap

import (
	"fmt"

	"github.com/emirpasic/gods/lists/singlylinkedlist"
	"github.com/mgreen42/SER222-HashMaps/Maps"
)

type entry[K Maps.Hashable[K], V any] struct {
	key  K
	val  V
	hash uint //folded hash of key.
}

func (e *entry[K, V]) String() string {
	return fmt.Sprintf("key: %v; val: %v; hash: %d", e.key, e.val, e.hash)
}

// bucket is an unordered list of *entry. A key appears at most once across both of its candidate buckets.
type bucket[K Maps.Hashable[K], V any] struct {
	*singlylinkedlist.List
}

func newBucket[K Maps.Hashable[K], V any]() bucket[K, V] {
	return bucket[K, V]{singlylinkedlist.New()}
}

// search returns the position and entry of key, or -1 and nil.
func (b bucket[K, V]) search(key K, hash uint) (int, *entry[K, V]) {
	for it := b.Iterator(); it.Next(); {
		if e := it.Value().(*entry[K, V]); e.hash == hash && e.key.Equal(key) {
			return it.Index(), e
		}
	}
	return -1, nil
}

func (b bucket[K, V]) add(key K, hash uint, val V) {
	b.Add(&entry[K, V]{key, val, hash})
}

// rmv removes key and reports whether it was there.
func (b bucket[K, V]) rmv(key K, hash uint) bool {
	if i, _ := b.search(key, hash); i >= 0 {
		b.Remove(i)
		return true
	}
	return false
}
