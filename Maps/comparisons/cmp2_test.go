package comparisons

import (
	"math/rand"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/google/btree"
	"github.com/mgreen42/SER222-HashMaps/Maps"
	"github.com/mgreen42/SER222-HashMaps/Maps/ProbeMap"
	"github.com/mgreen42/SER222-HashMaps/Maps/TwoChoiceMap"
)

const (
	diffOps      = 1 << 14
	diffKeyRange = 700 //fits in a ProbeMap of 997 slots
	btreeDegree  = 8
)

// sorted returns the keys of f in ascending order.
func sorted(f func() (Maps.Int, bool)) (*btree.BTreeG[Maps.Int], int) {
	tr, n := btree.NewOrderedG[Maps.Int](btreeDegree), 0
	for k, ok := f(); ok; k, ok = f() {
		tr.ReplaceOrInsert(k)
		n++
	}
	return tr, n
}

func sameKeys(a, b *btree.BTreeG[Maps.Int]) bool {
	if a.Len() != b.Len() {
		return false
	}
	as := make([]Maps.Int, 0, a.Len())
	a.Ascend(func(k Maps.Int) bool {
		as = append(as, k)
		return true
	})
	i := 0
	b.Ascend(func(k Maps.Int) bool {
		if as[i] != k {
			return false
		}
		i++
		return true
	})
	return i == len(as)
}

// TestDifferential runs the same random operations on both maps and on a haxmap and compares what they hold.
func TestDifferential(t *testing.T) {
	rg := rand.New(rand.NewSource(1))
	ref := haxmap.New[int, int]()
	maps := map[string]Maps.Map[Maps.Int, int]{
		"ProbeMap":     ProbeMap.New[Maps.Int, int](),
		"TwoChoiceMap": TwoChoiceMap.New[Maps.Int, int](),
	}
	for i := range diffOps {
		k := rg.Intn(diffKeyRange)
		switch rg.Intn(3) {
		case 0, 1:
			ref.Set(k, i)
			for _, m := range maps {
				m.Put(Maps.IntOf(k), i)
			}
		case 2:
			ref.Del(k)
			for _, m := range maps {
				m.Remove(Maps.IntOf(k))
			}
		}
	}
	want := btree.NewOrderedG[Maps.Int](btreeDegree)
	ref.ForEach(func(k, _ int) bool {
		want.ReplaceOrInsert(Maps.IntOf(k))
		return true
	})
	for name, m := range maps {
		if m.Size() != uint(ref.Len()) {
			t.Errorf("%s: size is %d, want %d", name, m.Size(), ref.Len())
		}
		ref.ForEach(func(k, v int) bool {
			if got, ok := m.Get(Maps.IntOf(k)); !ok || got != v {
				t.Errorf("%s: get %d is %d %t, want %d", name, k, got, ok, v)
			}
			return true
		})
		got, n := sorted(m.Keys())
		if n != got.Len() {
			t.Errorf("%s: keys repeat, %d keys but %d distinct", name, n, got.Len())
		}
		if !sameKeys(got, want) {
			t.Errorf("%s: keys differ from the reference", name)
		}
	}
}
