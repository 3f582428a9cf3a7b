package Maps

// Hashable is the key contract of every map in this module. Hash may return any
// int64; maps fold it into a non-negative value with Fold. Two keys match when
// their folded hashes are equal and Equal reports true.
type Hashable[K any] interface {
	Hash() int64
	Equal(other K) bool
}

// Map is the operation set shared by ProbeMap and TwoChoiceMap.
// None of the implementations are safe for concurrent use.
type Map[K Hashable[K], V any] interface {
	//Put associates val with key, replacing the old value if key is present.
	//A nil key is ignored.
	Put(key K, val V)
	//Get the value of key. The bool is false if key is absent or nil.
	Get(key K) (V, bool)
	Contains(key K) bool
	//Remove key if present. Removing an absent or nil key does nothing.
	Remove(key K)
	Size() uint
	IsEmpty() bool
	//Keys returns a closure f acting like an iterator over the live keys,
	//k, valid = f(); k is meaningful only when valid is true. Every call to
	//Keys starts over from the beginning of the table. The map must not be
	//modified while f is in use.
	Keys() func() (K, bool)
	//Capacity is the fixed number of slots or buckets, M.
	Capacity() uint
}
