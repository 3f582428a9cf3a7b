// Package ProbeMap implements a fixed-capacity hash map using open addressing with linear probing.
//
// The i-th probe of a key with folded hash h is slot (h+i) mod M. Removal leaves a tombstone so
// keys further down the same probe chain stay reachable; tombstones are reused by later insertions.
// The table never grows: once every slot is occupied, inserting a new key fails.
package ProbeMap

import (
	"strings"

	"github.com/mgreen42/SER222-HashMaps/Maps"
)

type ProbeMap[K Maps.Hashable[K], V any] struct {
	slots      []slot[K, V]
	size, dead uint //number of occupied and tombstone slots.
}

// New creates a ProbeMap with Maps.DefaultCapacity slots.
func New[K Maps.Hashable[K], V any]() *ProbeMap[K, V] {
	return NewSize[K, V](Maps.DefaultCapacity)
}

// NewSize creates a ProbeMap with m slots. m should be a prime; 0 means Maps.DefaultCapacity.
func NewSize[K Maps.Hashable[K], V any](m uint) *ProbeMap[K, V] {
	return &ProbeMap[K, V]{slots: make([]slot[K, V], Maps.Capacity(m))}
}

func (u *ProbeMap[K, V]) probe(hash, i uint) uint {
	return (hash + i) % uint(len(u.slots))
}

// find the slot holding key, walking the probe chain until the first empty slot.
func (u *ProbeMap[K, V]) find(key K) (uint, bool) {
	hash := Maps.Fold(key.Hash())
	for i := range uint(len(u.slots)) {
		j := u.probe(hash, i)
		switch s := &u.slots[j]; s.st {
		case empty:
			return 0, false
		case occupied:
			if s.hash == hash && s.key.Equal(key) {
				return j, true
			}
		}
	}
	return 0, false
}

func (u *ProbeMap[K, V]) Get(key K) (V, bool) {
	if Maps.IsNil(key) {
		return *new(V), false
	}
	if j, ok := u.find(key); ok {
		return u.slots[j].val, true
	}
	return *new(V), false
}

func (u *ProbeMap[K, V]) Contains(key K) bool {
	_, ok := u.Get(key)
	return ok
}

// TryPut is Put that reports why nothing was stored: Maps.ErrNilKey for a nil key, or a *CapacityError
// (errors.Is(err, ErrFull)) when the key is new and no empty or tombstone slot is left.
func (u *ProbeMap[K, V]) TryPut(key K, val V) error {
	if Maps.IsNil(key) {
		return Maps.ErrNilKey
	}
	hash, free, found := Maps.Fold(key.Hash()), uint(0), false
	//the key may live past a tombstone, so the whole chain is checked before a tombstone is reused.
walk:
	for i := range uint(len(u.slots)) {
		j := u.probe(hash, i)
		switch s := &u.slots[j]; s.st {
		case occupied:
			if s.hash == hash && s.key.Equal(key) {
				s.val = val
				return nil
			}
		case tombstone:
			if !found {
				free, found = j, true
			}
		case empty:
			if !found {
				free, found = j, true
			}
			break walk
		}
	}
	if !found {
		return &CapacityError{Capacity: uint(len(u.slots))}
	}
	if u.slots[free].st == tombstone {
		u.dead--
	}
	u.slots[free].use(hash, key, val)
	u.size++
	return nil
}

// Put associates val with key. A nil key is ignored, and so is a new key when the map is full; use TryPut to detect that.
func (u *ProbeMap[K, V]) Put(key K, val V) {
	_ = u.TryPut(key, val)
}

func (u *ProbeMap[K, V]) Remove(key K) {
	if Maps.IsNil(key) {
		return
	}
	if j, ok := u.find(key); ok {
		u.slots[j].bury()
		u.size--
		u.dead++
	}
}

func (u *ProbeMap[K, V]) Size() uint {
	return u.size
}

func (u *ProbeMap[K, V]) IsEmpty() bool {
	return u.size == 0
}

func (u *ProbeMap[K, V]) Capacity() uint {
	return uint(len(u.slots))
}

// Tombstones is the number of slots holding a tombstone.
func (u *ProbeMap[K, V]) Tombstones() uint {
	return u.dead
}

// LoadFactor is Size()/Capacity().
func (u *ProbeMap[K, V]) LoadFactor() float64 {
	return float64(u.size) / float64(len(u.slots))
}

// Keys iterates the live keys in slot order.
func (u *ProbeMap[K, V]) Keys() func() (K, bool) {
	i := 0
	return func() (k K, b bool) {
		for ; i < len(u.slots); i++ {
			if u.slots[i].st == occupied {
				k, b = u.slots[i].key, true
				i++
				return
			}
		}
		return
	}
}

func (u *ProbeMap[K, V]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := range u.slots {
		sb.WriteString(u.slots[i].String())
	}
	sb.WriteByte(']')
	return sb.String()
}

var _ Maps.Map[Maps.Str, any] = (*ProbeMap[Maps.Str, any])(nil)
