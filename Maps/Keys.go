package Maps

import (
	"bytes"

	"github.com/cespare/xxhash"
	"golang.org/x/exp/constraints"
)

// Str is a string key hashed with xxhash.
type Str string

func (s Str) Hash() int64 {
	return int64(xxhash.Sum64String(string(s)))
}

func (s Str) Equal(other Str) bool {
	return s == other
}

// Bytes is a byte slice key hashed with xxhash. A nil Bytes is a null key; an empty, non-nil one isn't.
type Bytes []byte

func (b Bytes) Hash() int64 {
	return int64(xxhash.Sum64(b))
}

func (b Bytes) Equal(other Bytes) bool {
	return bytes.Equal(b, other)
}

// Int is an integer key whose hash is the value itself.
type Int int64

// IntOf converts any integer to an Int key.
func IntOf[T constraints.Integer](v T) Int {
	return Int(v)
}

func (i Int) Hash() int64 {
	return int64(i)
}

func (i Int) Equal(other Int) bool {
	return i == other
}
