package Trees

import (
	"io"

	"golang.org/x/exp/constraints"
)

// AVL is a binary search tree with no repeated values. It maintains
// balance through rotations by keeping the heights of the two subtrees
// of every node within 1 of each other.
// S is the type of the indexes into the node arena, it bounds the number
// of elements the tree can hold.
// The height of the tree is less than 1.44*log2(n+2)-0.328.
type AVL[S constraints.Unsigned] struct {
	arena[S]
	hs []int8 //hs[i] is the height of the subtree at i. hs[0]=-1 for the sentinel.
}

// NewAVL returns an empty tree with room for hint elements.
func NewAVL[S constraints.Unsigned](hint S) *AVL[S] {
	hs := make([]int8, 1, uint64(hint)+1)
	hs[0] = -1
	return &AVL[S]{makeArena(hint), hs}
}

// AVLFrom builds a tree from the given slice in O(n), which is faster than
// repeatedly calling Insert. sorted must be strictly ascending. If safe is
// true, this is checked first and AVLFrom panics with InvalidSliceError if
// it isn't. Otherwise it's up to the caller, a bad slice gives a corrupt tree.
func AVLFrom[S constraints.Unsigned](sorted []int, safe bool) *AVL[S] {
	if safe {
		checkAscending(sorted)
	}
	if uint64(len(sorted)) > uint64(^S(0)) {
		panic(CapacityError{uint64(^S(0))})
	}
	u := NewAVL[S](S(len(sorted)))
	var build func([]int) S
	build = func(s []int) S {
		if len(s) == 0 {
			return 0
		}
		mid := len(s) >> 1
		i := u.newNode(s[mid])
		l, r := build(s[:mid]), build(s[mid+1:])
		u.ifs[i] = info[S]{l, r}
		u.update(i)
		return i
	}
	u.root = build(sorted)
	return u
}

func checkAscending(s []int) {
	for i := 1; i < len(s); i++ {
		if s[i-1] >= s[i] {
			panic(InvalidSliceError{i, s[i-1], s[i]})
		}
	}
}

func (u *AVL[S]) newNode(v int) S {
	i := u.alloc(v)
	if int(i) == len(u.hs) {
		u.hs = append(u.hs, 0)
	} else {
		u.hs[i] = 0
	}
	return i
}

// update the cached height of i from its children.
func (u *AVL[S]) update(i S) {
	u.hs[i] = 1 + max(u.hs[u.ifs[i].l], u.hs[u.ifs[i].r])
}

// balance factor of i, positive when the left subtree is higher. 0 for the sentinel.
func (u *AVL[S]) balance(i S) int {
	return int(u.hs[u.ifs[i].l]) - int(u.hs[u.ifs[i].r])
}

// rotateLeft performs a left rotation on the node *ni. ni is passed by reference in order
// to modify its content.
// Time: O(1); Space: O(1)
func (u *AVL[S]) rotateLeft(ni *S) {
	n := *ni
	rci := u.ifs[n].r
	u.ifs[n].r = u.ifs[rci].l
	u.ifs[rci].l = n
	u.update(n)
	u.update(rci)
	*ni = rci
}

// rotateRight performs a right rotation on the node *ni.
// Time: O(1); Space: O(1)
func (u *AVL[S]) rotateRight(ni *S) {
	n := *ni
	lci := u.ifs[n].l
	u.ifs[n].l = u.ifs[lci].r
	u.ifs[lci].r = n
	u.update(n)
	u.update(lci)
	*ni = lci
}

// rebalance the node *ni after one of its subtrees changed height by at most 1.
// Time: O(1)
func (u *AVL[S]) rebalance(ni *S) {
	cur := *ni
	u.update(cur)
	if b := u.balance(cur); b > 1 {
		if u.balance(u.ifs[cur].l) < 0 {
			u.rotateLeft(&u.ifs[cur].l)
		}
		u.rotateRight(ni)
	} else if b < -1 {
		if u.balance(u.ifs[cur].r) > 0 {
			u.rotateRight(&u.ifs[cur].r)
		}
		u.rotateLeft(ni)
	}
}

// insert v to the subtree at curI recursively, returning the new root of
// the subtree and whether v was added. The new node is allocated before
// any rotation happens.
func (u *AVL[S]) insert(curI S, v int) (S, bool) {
	if curI == 0 {
		return u.newNode(v), true
	}
	var c S
	inserted := false
	if k := u.vs[curI]; v < k {
		c, inserted = u.insert(u.ifs[curI].l, v)
		u.ifs[curI].l = c
	} else if v > k {
		c, inserted = u.insert(u.ifs[curI].r, v)
		u.ifs[curI].r = c
	} else {
		return curI, false
	}
	if inserted {
		u.rebalance(&curI)
	}
	return curI, inserted
}

// Insert [Tree.Insert]. Recursive.
// Time: O(D)
func (u *AVL[S]) Insert(v int) bool {
	var inserted bool
	u.root, inserted = u.insert(u.root, v)
	return inserted
}

// discard v from the subtree at curI recursively, returning the new root of
// the subtree and whether v was removed. A node with two children takes the
// value of its successor, which is then removed from the right subtree.
func (u *AVL[S]) discard(curI S, v int) (S, bool) {
	if curI == 0 {
		return 0, false
	}
	var c S
	deleted := false
	if k := u.vs[curI]; v < k {
		c, deleted = u.discard(u.ifs[curI].l, v)
		u.ifs[curI].l = c
	} else if v > k {
		c, deleted = u.discard(u.ifs[curI].r, v)
		u.ifs[curI].r = c
	} else {
		if cur := u.ifs[curI]; cur.l == 0 || cur.r == 0 {
			u.release(curI)
			return cur.l | cur.r, true
		}
		s := u.vs[u.leftmost(u.ifs[curI].r)]
		u.vs[curI] = s
		c, deleted = u.discard(u.ifs[curI].r, s)
		u.ifs[curI].r = c
	}
	if deleted {
		u.rebalance(&curI)
	}
	return curI, deleted
}

// Discard [Tree.Discard]. Recursive.
// Time: O(D)
func (u *AVL[S]) Discard(v int) bool {
	var deleted bool
	u.root, deleted = u.discard(u.root, v)
	return deleted
}

// Height [Tree.Height]
// Time: O(1)
func (u *AVL[S]) Height() int {
	return int(u.hs[u.root])
}

// Fprint [Tree.Fprint]
func (u *AVL[S]) Fprint(w io.Writer, o Order) error {
	return u.fprint(w, o, func(S) string { return "" })
}

// Clone returns a deep copy of the tree. The copy shares nothing with u and
// its arena has no holes.
// Time: O(n)
func (u *AVL[S]) Clone() *AVL[S] {
	c := NewAVL[S](u.n)
	c.root = u.cloneTo(&c.arena, u.root, 0, func(src, _, _ S) {
		c.hs = append(c.hs, u.hs[src])
	})
	return c
}

// Clear [Tree.Clear]
func (u *AVL[S]) Clear(reset bool) {
	u.clear(reset)
	if reset {
		u.hs = []int8{-1}
	} else {
		u.hs = u.hs[:1]
	}
}

// Corrupt [Tree.Corrupt]. Checks the ordering, the cached heights and the balance factors.
// Time: O(n log n)
func (u *AVL[S]) Corrupt() bool {
	if u.corrupt() || u.hs[0] != -1 {
		return true
	}
	return !u.postOrder(u.root, func(i S) bool {
		b := u.balance(i)
		return int(u.hs[i]) == u.height(i) && -1 <= b && b <= 1
	})
}

var _ Tree[uint] = (*AVL[uint])(nil)
