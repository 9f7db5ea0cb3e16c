package Trees_test

import (
	"fmt"
	"strings"

	"github.com/g-m-twostay/go-trees/Trees"
)

func sprint(t Trees.Tree[uint16], o Trees.Order) string {
	var b strings.Builder
	t.Fprint(&b, o)
	return strings.TrimSpace(b.String())
}

func ExampleAVL() {
	tree := Trees.NewAVL[uint16](8)
	for _, v := range []int{10, 20, 30, 40, 50, 60} {
		tree.Insert(v)
	}
	fmt.Println(sprint(tree, Trees.LevelOrder))
	fmt.Println(tree.Height(), tree.Size())
	tree.Discard(50)
	tree.Discard(60)
	fmt.Println(sprint(tree, Trees.InOrder))
	// Output:
	// 40 20 50 10 30 60
	// 2 6
	// 10 20 30 40
}

func ExampleRB() {
	tree := Trees.NewRB[uint16](8)
	for _, v := range []int{10, 20, 30, 15, 5, 1, 25, 35} {
		tree.Insert(v)
	}
	fmt.Println(sprint(tree, Trees.PreOrder))
	succ, _ := tree.Successor(15)
	floor, _ := Trees.FloorOf(tree, 12.5)
	fmt.Println(succ, floor)
	// Output:
	// 20|K 10|R 5|K 1|R 15|K 30|K 25|R 35|R
	// 20 10
}
