package Trees

import (
	"fmt"
	"io"
	"math"

	"golang.org/x/exp/constraints"
)

// Navigator answers ordered queries relative to a probe that needn't be in the tree.
type Navigator interface {
	//Ceiling returns the smallest element >= v.
	Ceiling(v int) (int, bool)
	//Floor returns the greatest element <= v.
	Floor(v int) (int, bool)
}

// Tree is a set of distinct ints kept in a balanced binary search tree.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined, e.g. calling Minimum on an empty tree
// returns (0, false).
// Mutating receivers keep the tree's root up to date; no method returns a node.
// Trees aren't safe for concurrent use, all calls must be serialized by the caller.
type Tree[S constraints.Unsigned] interface {
	Navigator
	//Insert v. Returns false if v is already in the tree, in which case
	//nothing changes.
	Insert(v int) bool
	//Discard v. Returns false if v isn't in the tree, in which case nothing
	//changes.
	Discard(v int) bool
	Has(v int) bool
	Minimum() (int, bool)
	Maximum() (int, bool)
	//Successor returns the element following v in order. Not found if v isn't
	//in the tree or v is the maximum.
	Successor(v int) (int, bool)
	//Predecessor returns the element preceding v in order. Not found if v isn't
	//in the tree or v is the minimum.
	Predecessor(v int) (int, bool)
	//Parent of v. Not found if v isn't in the tree or v is the root.
	Parent(v int) (int, bool)
	//Sibling of v, the other child of v's parent.
	Sibling(v int) (int, bool)
	Size() S
	//Height of the tree, -1 when empty and 0 for a single node.
	Height() int
	//Depth of v, 0 for the root, -1 if v isn't in the tree.
	Depth(v int) int
	//Degree of v is its number of children, -1 if v isn't in the tree.
	Degree(v int) int
	//Internal is the number of nodes that have at least one child.
	Internal() S
	//External is the number of leaves.
	External() S
	//PreOrder, InOrder, PostOrder and LevelOrder call f on every element in the
	//corresponding order until f returns false.
	PreOrder(f func(int) bool)
	InOrder(f func(int) bool)
	PostOrder(f func(int) bool)
	LevelOrder(f func(int) bool)
	//Fprint writes "<value> " for every element in order o. Only meant for debugging.
	Fprint(w io.Writer, o Order) error
	//IsPerfect is true if all levels are full.
	IsPerfect() bool
	//IsComplete is true if all levels except possibly the last are full and
	//the last is filled from the left.
	IsComplete() bool
	//IsFull is true if every node has 0 or 2 children.
	IsFull() bool
	//IsSymmetric is true if the shape of the left subtree mirrors the right.
	IsSymmetric() bool
	//Clear removes all elements. If reset is true the underlying arrays are
	//released as well.
	Clear(reset bool)
	//Corrupt returns whether the tree violates the ordering or the balancing
	//properties of its implementation.
	Corrupt() bool
}

// Order of a traversal.
type Order byte

const (
	PreOrder Order = iota
	InOrder
	PostOrder
	LevelOrder
)

func (o Order) String() string {
	switch o {
	case PreOrder:
		return "pre-order"
	case InOrder:
		return "in-order"
	case PostOrder:
		return "post-order"
	case LevelOrder:
		return "level-order"
	}
	return fmt.Sprintf("Order(%d)", byte(o))
}

// InvalidSliceError is the panic value of AVLFrom and RBFrom when the given slice
// isn't strictly ascending.
type InvalidSliceError struct {
	Index      int // sli[Index-1]>=sli[Index]
	Prev, Next int
}

func (e InvalidSliceError) Error() string {
	return fmt.Sprintf("slice isn't strictly ascending at %d: %d >= %d", e.Index, e.Prev, e.Next)
}

// CapacityError is the panic value when a tree needs more nodes than its index type can address.
// It's raised before any node is linked, so the tree is left unchanged.
type CapacityError struct {
	Limit uint64
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("tree can't hold more than %d elements", e.Limit)
}

// bounds of int as float64. Both are exact powers of two.
var (
	lowInt  = float64(math.MinInt)
	highInt = -float64(math.MinInt)
)

// CeilingOf returns the smallest element >= p. It allows probing between two ints.
func CeilingOf[P constraints.Float](t Navigator, p P) (int, bool) {
	f := math.Ceil(float64(p))
	if math.IsNaN(f) || f >= highInt {
		return 0, false
	} else if f < lowInt {
		return t.Ceiling(math.MinInt)
	}
	return t.Ceiling(int(f))
}

// FloorOf returns the greatest element <= p. It allows probing between two ints.
func FloorOf[P constraints.Float](t Navigator, p P) (int, bool) {
	f := math.Floor(float64(p))
	if math.IsNaN(f) || f < lowInt {
		return 0, false
	} else if f >= highInt {
		return t.Floor(math.MaxInt)
	}
	return t.Floor(int(f))
}
