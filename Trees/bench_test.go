package Trees

import (
	"slices"
	"testing"
)

var (
	bAddN uint32 = 1 << 17
	bQryN uint32 = bAddN / 2
)

var engineMakers = []struct {
	name string
	make func(hint uint32) Tree[uint32]
}{
	{"AVL", func(h uint32) Tree[uint32] { return NewAVL[uint32](h) }},
	{"RB", func(h uint32) Tree[uint32] { return NewRB[uint32](h) }},
}

func BenchmarkInsert(b *testing.B) {
	for _, e := range engineMakers {
		b.Run(e.name, func(b *testing.B) {
			for range b.N {
				tree := e.make(bAddN)
				for range bAddN {
					tree.Insert(rg.Int())
				}
			}
		})
	}
}

func BenchmarkDiscard(b *testing.B) {
	all := make([]int, bAddN)
	for _, e := range engineMakers {
		b.Run(e.name, func(b *testing.B) {
			for range b.N {
				b.StopTimer()
				tree := e.make(bAddN)
				for i := range all {
					all[i] = rg.Int()
					tree.Insert(all[i])
				}
				b.StartTimer()
				for _, v := range all {
					tree.Discard(v)
				}
			}
		})
	}
}

var sideEff bool

func BenchmarkHas(b *testing.B) {
	all := make([]int, bAddN)
	for i := range all {
		all[i] = rg.Int()
	}
	slices.Sort(all)
	all = slices.Compact(all)
	for name, tree := range map[string]Tree[uint32]{"AVL": AVLFrom[uint32](all, false), "RB": RBFrom[uint32](all, false)} {
		b.Run(name, func(b *testing.B) {
			for range b.N {
				for _, v := range all[:bQryN] {
					sideEff = tree.Has(v)
				}
				for range bAddN - bQryN {
					sideEff = tree.Has(rg.Int())
				}
			}
		})
	}
}
