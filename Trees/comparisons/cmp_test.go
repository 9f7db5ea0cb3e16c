package comparisons

import (
	"math/rand"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/trees/avltree"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/g-m-twostay/go-trees/Trees"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
	"github.com/puzpuzpuz/xsync/v3"
)

// compares the two engines with other ordered containers on inserts and
// ordered queries, and with concurrent hash maps on membership queries.

const (
	itemCount = 1 << 14
	keyRange  = itemCount * 2
)

var (
	sideEff bool
	keys    = rand.New(rand.NewSource(0)).Perm(keyRange)[:itemCount]
)

// set is what every contender is reduced to.
type set struct {
	put  func(int)
	has  func(int) bool
	drop func(int)
}

var ordered = map[string]func() set{
	"AVL": func() set {
		t := Trees.NewAVL[uint32](itemCount)
		return set{func(v int) { t.Insert(v) }, t.Has, func(v int) { t.Discard(v) }}
	},
	"RB": func() set {
		t := Trees.NewRB[uint32](itemCount)
		return set{func(v int) { t.Insert(v) }, t.Has, func(v int) { t.Discard(v) }}
	},
	"gods/redblacktree": func() set {
		t := redblacktree.NewWithIntComparator()
		return set{func(v int) { t.Put(v, nil) }, func(v int) bool { _, has := t.Get(v); return has }, func(v int) { t.Remove(v) }}
	},
	"gods/avltree": func() set {
		t := avltree.NewWithIntComparator()
		return set{func(v int) { t.Put(v, nil) }, func(v int) bool { _, has := t.Get(v); return has }, func(v int) { t.Remove(v) }}
	},
	"btree": func() set {
		t := btree.NewOrderedG[int](32)
		return set{func(v int) { t.ReplaceOrInsert(v) }, t.Has, func(v int) { t.Delete(v) }}
	},
	"GoLLRB": func() set {
		t := llrb.New()
		return set{func(v int) { t.ReplaceOrInsert(llrb.Int(v)) }, func(v int) bool { return t.Has(llrb.Int(v)) }, func(v int) { t.Delete(llrb.Int(v)) }}
	},
}

var hashed = map[string]func() set{
	"haxmap": func() set {
		m := haxmap.New[int, struct{}]()
		return set{func(v int) { m.Set(v, struct{}{}) }, func(v int) bool { _, has := m.Get(v); return has }, func(v int) { m.Del(v) }}
	},
	"cornelk/hashmap": func() set {
		m := hashmap.New[int, struct{}]()
		return set{func(v int) { m.Set(v, struct{}{}) }, func(v int) bool { _, has := m.Get(v); return has }, func(v int) { m.Del(v) }}
	},
	"xsync": func() set {
		m := xsync.NewMapOf[int, struct{}]()
		return set{func(v int) { m.Store(v, struct{}{}) }, func(v int) bool { _, has := m.Load(v); return has }, func(v int) { m.Delete(v) }}
	},
}

func fill(b *testing.B, mk func() set) set {
	b.Helper()
	s := mk()
	for _, k := range keys {
		s.put(k)
	}
	return s
}

func BenchmarkPut(b *testing.B) {
	for name, mk := range ordered {
		b.Run(name, func(b *testing.B) {
			for range b.N {
				fill(b, mk)
			}
		})
	}
}

func BenchmarkPutDrop(b *testing.B) {
	for name, mk := range ordered {
		b.Run(name, func(b *testing.B) {
			for range b.N {
				s := fill(b, mk)
				for _, k := range keys {
					s.drop(k)
				}
			}
		})
	}
}

func BenchmarkHas(b *testing.B) {
	for _, group := range []map[string]func() set{ordered, hashed} {
		for name, mk := range group {
			b.Run(name, func(b *testing.B) {
				s := fill(b, mk)
				b.ResetTimer()
				for i := range b.N {
					sideEff = s.has(i % keyRange)
				}
			})
		}
	}
}

func BenchmarkFloor(b *testing.B) {
	avl, rb := Trees.NewAVL[uint32](itemCount), Trees.NewRB[uint32](itemCount)
	gods := redblacktree.NewWithIntComparator()
	bt := btree.NewOrderedG[int](32)
	for _, k := range keys {
		avl.Insert(k)
		rb.Insert(k)
		gods.Put(k, nil)
		bt.ReplaceOrInsert(k)
	}
	b.Run("AVL", func(b *testing.B) {
		for i := range b.N {
			_, sideEff = avl.Floor(i % keyRange)
		}
	})
	b.Run("RB", func(b *testing.B) {
		for i := range b.N {
			_, sideEff = rb.Floor(i % keyRange)
		}
	})
	b.Run("gods/redblacktree", func(b *testing.B) {
		for i := range b.N {
			_, sideEff = gods.Floor(i % keyRange)
		}
	})
	b.Run("btree", func(b *testing.B) {
		for i := range b.N {
			bt.DescendLessOrEqual(i%keyRange, func(int) bool {
				sideEff = true
				return false
			})
		}
	})
}

// TestAgree checks that all contenders hold the same set after the same operations.
func TestAgree(t *testing.T) {
	rg := rand.New(rand.NewSource(1))
	all := map[string]set{}
	for _, group := range []map[string]func() set{ordered, hashed} {
		for name, mk := range group {
			all[name] = mk()
		}
	}
	for range itemCount {
		k, drop := rg.Intn(keyRange), rg.Intn(3) == 0
		for _, s := range all {
			if drop {
				s.drop(k)
			} else {
				s.put(k)
			}
		}
	}
	for k := range keyRange {
		want := all["btree"].has(k)
		for name, s := range all {
			if s.has(k) != want {
				t.Fatalf("%s has %d: %v, want %v", name, k, !want, want)
			}
		}
	}
}
