// measure runs a mixed discard/query workload on both engines with growing
// shares of discards, printing the mean and standard deviation of the runs,
// then prints the traversals of a small tree of each kind.
package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"slices"
	"testing"

	"github.com/g-m-twostay/go-trees/Trees"
)

var (
	bAddN uint32 = 1 << 18
	bRmvN uint32
	bQryN uint32
)
var _R = rand.New(rand.NewSource(0))

func create(b *testing.B, all []int) []int {
	b.Helper()
	all = all[:0]
	for range bAddN {
		all = append(all, _R.Int())
	}
	return all
}

var __r1 bool

func delQry(mk func(uint32) Trees.Tree[uint32]) func(*testing.B) {
	all := make([]int, 0, bAddN)
	return func(b *testing.B) {
		for range b.N {
			b.StopTimer()
			all = create(b, all)
			tree := mk(bAddN)
			for _, v := range all {
				tree.Insert(v)
			}
			m := slices.Max(all[bRmvN:])
			b.StartTimer()
			for _, v := range all[:bRmvN] {
				tree.Discard(v)
			}
			for _, v := range all[bRmvN:] {
				__r1 = tree.Has(v)
			}
			for range bQryN {
				__r1 = tree.Has(_R.Intn(m))
			}
		}
	}
}

const bNumSteps uint32 = 20

func measure(name string, mk func(uint32) Trees.Tree[uint32]) {
	var cs []float64
	var N int
	for i := uint32(1); i < bNumSteps; i++ {
		bRmvN = bAddN / bNumSteps * i
		bQryN = bRmvN
		br := testing.Benchmark(delQry(mk))
		cs = append(cs, float64(br.T.Milliseconds()))
		N += br.N
	}
	var sum float64 = 0
	for _, v := range cs {
		sum += v
	}
	avg := sum / float64(N)
	sum = 0
	for _, v := range cs {
		a := v - avg
		sum += a * a
	}
	fmt.Printf("%s average: %fms/op, stddev: %fms/op\n", name, avg, math.Sqrt(sum/float64(N)))
}

func show(tree Trees.Tree[uint32]) {
	for _, v := range []int{10, 20, 30, 15, 5, 1, 25, 35} {
		tree.Insert(v)
	}
	for _, o := range []Trees.Order{Trees.PreOrder, Trees.InOrder, Trees.PostOrder, Trees.LevelOrder} {
		fmt.Printf("%-12s", o.String()+":")
		tree.Fprint(os.Stdout, o)
		fmt.Println()
	}
}

func main() {
	testing.Init()
	engines := []struct {
		name string
		mk   func(uint32) Trees.Tree[uint32]
	}{
		{"AVL", func(h uint32) Trees.Tree[uint32] { return Trees.NewAVL[uint32](h) }},
		{"RB", func(h uint32) Trees.Tree[uint32] { return Trees.NewRB[uint32](h) }},
	}
	for _, e := range engines {
		measure(e.name, e.mk)
	}
	for _, e := range engines {
		fmt.Println(e.name)
		show(e.mk(0))
	}
}
