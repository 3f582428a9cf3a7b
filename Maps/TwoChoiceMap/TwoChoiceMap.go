// Package TwoChoiceMap implements a fixed-capacity chained hash map where each key picks the shorter of two buckets.
//
// A key k has candidate buckets h1 = H(k) mod M and h2 = h1*31 mod M. New keys are appended to
// whichever candidate is shorter at the time, preferring h1 on ties. Which candidate won isn't
// recorded, so lookups and removals check both.
package TwoChoiceMap

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/lists/singlylinkedlist"
	"github.com/mgreen42/SER222-HashMaps/Maps"
)

type TwoChoiceMap[K Maps.Hashable[K], V any] struct {
	buckets []bucket[K, V]
	size    uint
}

// New creates a TwoChoiceMap with Maps.DefaultCapacity buckets.
func New[K Maps.Hashable[K], V any]() *TwoChoiceMap[K, V] {
	return NewSize[K, V](Maps.DefaultCapacity)
}

// NewSize creates a TwoChoiceMap with m buckets. m should be a prime; 0 means Maps.DefaultCapacity.
func NewSize[K Maps.Hashable[K], V any](m uint) *TwoChoiceMap[K, V] {
	t := &TwoChoiceMap[K, V]{buckets: make([]bucket[K, V], Maps.Capacity(m))}
	for i := range t.buckets {
		t.buckets[i] = newBucket[K, V]()
	}
	return t
}

func (u *TwoChoiceMap[K, V]) index(hash uint) (uint, uint) {
	m := uint(len(u.buckets))
	h1 := hash % m
	return h1, h1 * 31 % m
}

// choose returns the folded hash of key, the shorter candidate bucket and the other one.
func (u *TwoChoiceMap[K, V]) choose(key K) (hash, chosen, other uint) {
	hash = Maps.Fold(key.Hash())
	h1, h2 := u.index(hash)
	if u.buckets[h1].Size() <= u.buckets[h2].Size() {
		return hash, h1, h2
	}
	return hash, h2, h1
}

// Candidates returns the two buckets key may live in, h1 first. They can be the same bucket.
func (u *TwoChoiceMap[K, V]) Candidates(key K) (uint, uint) {
	return u.index(Maps.Fold(key.Hash()))
}

func (u *TwoChoiceMap[K, V]) lookup(key K) *entry[K, V] {
	hash, c, o := u.choose(key)
	if _, e := u.buckets[c].search(key, hash); e != nil {
		return e
	}
	if o != c {
		_, e := u.buckets[o].search(key, hash)
		return e
	}
	return nil
}

// Put associates val with key. A new key goes to the shorter candidate bucket; an existing key is updated where it is.
func (u *TwoChoiceMap[K, V]) Put(key K, val V) {
	if Maps.IsNil(key) {
		return
	}
	if e := u.lookup(key); e != nil {
		e.val = val
		return
	}
	hash, c, _ := u.choose(key)
	u.buckets[c].add(key, hash, val)
	u.size++
}

func (u *TwoChoiceMap[K, V]) Get(key K) (V, bool) {
	if Maps.IsNil(key) {
		return *new(V), false
	}
	if e := u.lookup(key); e != nil {
		return e.val, true
	}
	return *new(V), false
}

func (u *TwoChoiceMap[K, V]) Contains(key K) bool {
	_, ok := u.Get(key)
	return ok
}

// Remove key from whichever candidate bucket holds it, checking the shorter one first.
func (u *TwoChoiceMap[K, V]) Remove(key K) {
	if Maps.IsNil(key) {
		return
	}
	hash, c, o := u.choose(key)
	if u.buckets[c].rmv(key, hash) {
		u.size--
		return
	}
	if o != c && u.buckets[o].rmv(key, hash) {
		u.size--
	}
}

func (u *TwoChoiceMap[K, V]) Size() uint {
	return u.size
}

func (u *TwoChoiceMap[K, V]) IsEmpty() bool {
	return u.size == 0
}

func (u *TwoChoiceMap[K, V]) Capacity() uint {
	return uint(len(u.buckets))
}

// BucketLen is the number of entries in bucket i.
func (u *TwoChoiceMap[K, V]) BucketLen(i uint) int {
	return u.buckets[i].Size()
}

// MaxBucketLen is the length of the longest bucket.
func (u *TwoChoiceMap[K, V]) MaxBucketLen() (l int) {
	for _, b := range u.buckets {
		l = max(l, b.Size())
	}
	return
}

// Keys iterates the live keys bucket by bucket, in bucket index order.
func (u *TwoChoiceMap[K, V]) Keys() func() (K, bool) {
	i := 0
	var it *singlylinkedlist.Iterator
	return func() (k K, b bool) {
		for ; i < len(u.buckets); i++ {
			if it == nil {
				t := u.buckets[i].Iterator()
				it = &t
			}
			if it.Next() {
				return it.Value().(*entry[K, V]).key, true
			}
			it = nil
		}
		return
	}
}

func (u *TwoChoiceMap[K, V]) String() string {
	var sb strings.Builder
	for i, b := range u.buckets {
		if b.Empty() {
			continue
		}
		fmt.Fprintf(&sb, "%d: [", i)
		for it := b.Iterator(); it.Next(); {
			if it.Index() > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(it.Value().(*entry[K, V]).String())
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}

var _ Maps.Map[Maps.Str, any] = (*TwoChoiceMap[Maps.Str, any])(nil)
