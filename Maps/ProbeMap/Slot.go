package ProbeMap

import "fmt"

type state byte

const (
	empty     state = iota //never written. ends every probe chain.
	occupied               //holds a live key.
	tombstone              //held a key that was removed. probe chains pass through it.
)

type slot[K any, V any] struct {
	key  K
	val  V
	hash uint //folded hash of key, valid when occupied.
	st   state
}

func (s *slot[K, V]) use(hash uint, key K, val V) {
	s.key, s.val, s.hash, s.st = key, val, hash, occupied
}

// bury turns an occupied slot into a tombstone and drops its references.
func (s *slot[K, V]) bury() {
	s.key, s.val, s.hash, s.st = *new(K), *new(V), 0, tombstone
}

func (s *slot[K, V]) String() string {
	switch s.st {
	case occupied:
		return fmt.Sprintf("{k: %v; v: %v; h: %d}", s.key, s.val, s.hash)
	case tombstone:
		return "{tombstone}"
	}
	return "{}"
}
