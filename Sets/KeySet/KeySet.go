// Package KeySet implements Sets.Set on top of any Maps.Map, so a set can use either collision strategy.
package KeySet

import (
	"github.com/mgreen42/SER222-HashMaps/Maps"
	"github.com/mgreen42/SER222-HashMaps/Sets"
)

type KeySet[K Maps.Hashable[K]] struct {
	m Maps.Map[K, struct{}]
}

// New set backed by m. m should be empty and must not be used directly afterwards.
func New[K Maps.Hashable[K]](m Maps.Map[K, struct{}]) *KeySet[K] {
	return &KeySet[K]{m}
}

// Put k into the set. It returns false if k is nil, already present, or couldn't be stored because the backing map is full.
func (u *KeySet[K]) Put(k K) bool {
	if Maps.IsNil(k) || u.m.Contains(k) {
		return false
	}
	n := u.m.Size()
	u.m.Put(k, struct{}{})
	return u.m.Size() > n
}

func (u *KeySet[K]) Has(k K) bool {
	return u.m.Contains(k)
}

func (u *KeySet[K]) Remove(k K) bool {
	if !u.m.Contains(k) {
		return false
	}
	u.m.Remove(k)
	return true
}

func (u *KeySet[K]) Size() uint {
	return u.m.Size()
}

func (u *KeySet[K]) Range(f func(K) bool) {
	next := u.m.Keys()
	for k, ok := next(); ok; k, ok = next() {
		if !f(k) {
			return
		}
	}
}

var _ Sets.Set[Maps.Str] = (*KeySet[Maps.Str])(nil)
