/*
Package Maps holds the shared parts of the fixed-capacity hash maps in this module.

# Collision Resolution
Two strategies are offered, each in its own package:
  - ProbeMap: open addressing with linear probing. Deleted entries leave a tombstone behind so the probe chains of other keys stay intact.
  - TwoChoiceMap: closed addressing. Each key has two candidate buckets and new keys are appended to the shorter one, the "power of two choices".

# Usage
Keys implement Hashable. Str, Bytes and Int cover the common cases; other types supply their own Hash and Equal.
A map never grows. Pick the capacity up front, ideally a prime; DefaultCapacity is used otherwise.
None of the maps are safe for concurrent use.
*/
package Maps

// DefaultCapacity is the number of slots or buckets a map gets when none is given. It's a prime.
const DefaultCapacity uint = 997

// hashMask clears the sign bit of a 32-bit hash.
const hashMask int64 = 0x7fffffff

// Fold maps any hash into the non-negative range [0, 2^31).
func Fold(hash int64) uint {
	return uint(hash & hashMask)
}

// Capacity returns m, or DefaultCapacity when m is 0.
func Capacity(m uint) uint {
	if m == 0 {
		return DefaultCapacity
	}
	return m
}

// Match reports whether a and b are the same key: equal folded hashes and Equal.
func Match[K Hashable[K]](a, b K) bool {
	return Fold(a.Hash()) == Fold(b.Hash()) && a.Equal(b)
}

// NilKeyError is returned by operations that report errors when given a null key.
type NilKeyError struct {
}

func (e *NilKeyError) Error() string {
	return "nil key: ignored"
}

// ErrNilKey is the NilKeyError instance returned by this module.
var ErrNilKey error = &NilKeyError{}
