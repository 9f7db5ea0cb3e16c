package Trees

import (
	"io"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Colour and parent of a node in RB. The sentinel's is the zero value: black
// with itself as parent.
type rbInfo[S constraints.Unsigned] struct {
	p   S
	red bool
}

// RB is a red-black tree with no repeated values:
//  1. the root is black;
//  2. the sentinel is black;
//  3. a red node has no red child;
//  4. every path from a node to a descendant sentinel has the same number of black nodes.
//
// Every tree has its own sentinel at index 0, and no operation writes to it,
// so independent trees never share state.
// The height of the tree is at most 2*log2(n+1).
type RB[S constraints.Unsigned] struct {
	arena[S]
	ext []rbInfo[S] //ext[i] is the colour and parent of node i.
}

// NewRB returns an empty tree with room for hint elements.
func NewRB[S constraints.Unsigned](hint S) *RB[S] {
	return &RB[S]{makeArena(hint), make([]rbInfo[S], 1, uint64(hint)+1)}
}

// RBFrom is the RB equivalence of AVLFrom. Nodes on the deepest level of an
// imperfect tree are red, all others are black.
func RBFrom[S constraints.Unsigned](sorted []int, safe bool) *RB[S] {
	if safe {
		checkAscending(sorted)
	}
	if uint64(len(sorted)) > uint64(^S(0)) {
		panic(CapacityError{uint64(^S(0))})
	}
	u := NewRB[S](S(len(sorted)))
	//every sentinel is at depth redD or redD+1.
	redD := bits.Len(uint(len(sorted))+1) - 1
	var build func(s []int, p S, d int) S
	build = func(s []int, p S, d int) S {
		if len(s) == 0 {
			return 0
		}
		mid := len(s) >> 1
		i := u.newNode(s[mid], p)
		u.ext[i].red = d == redD
		l := build(s[:mid], i, d+1)
		r := build(s[mid+1:], i, d+1)
		u.ifs[i] = info[S]{l, r}
		return i
	}
	u.root = build(sorted, 0, 0)
	return u
}

// newNode allocates a red node with parent p.
func (u *RB[S]) newNode(v int, p S) S {
	i := u.alloc(v)
	if int(i) == len(u.ext) {
		u.ext = append(u.ext, rbInfo[S]{p, true})
	} else {
		u.ext[i] = rbInfo[S]{p, true}
	}
	return i
}

func (u *RB[S]) isRed(i S) bool {
	return u.ext[i].red
}

// replace the child old of p with c, or the root if p is the sentinel.
func (u *RB[S]) replace(p, old, c S) {
	if p == 0 {
		u.root = c
	} else if u.ifs[p].l == old {
		u.ifs[p].l = c
	} else {
		u.ifs[p].r = c
	}
}

// rotateLeft around x. Colours are left as is.
// Time: O(1); Space: O(1)
func (u *RB[S]) rotateLeft(x S) {
	y := u.ifs[x].r
	b := u.ifs[y].l
	if u.ifs[x].r = b; b != 0 {
		u.ext[b].p = x
	}
	p := u.ext[x].p
	u.ext[y].p = p
	u.replace(p, x, y)
	u.ifs[y].l = x
	u.ext[x].p = y
}

// rotateRight around x.
// Time: O(1); Space: O(1)
func (u *RB[S]) rotateRight(x S) {
	y := u.ifs[x].l
	b := u.ifs[y].r
	if u.ifs[x].l = b; b != 0 {
		u.ext[b].p = x
	}
	p := u.ext[x].p
	u.ext[y].p = p
	u.replace(p, x, y)
	u.ifs[y].r = x
	u.ext[x].p = y
}

// Insert [Tree.Insert]
// Time: O(log n)
func (u *RB[S]) Insert(v int) bool {
	var p S
	for curI := u.root; curI != 0; {
		p = curI
		if k := u.vs[curI]; v < k {
			curI = u.ifs[curI].l
		} else if v > k {
			curI = u.ifs[curI].r
		} else {
			return false
		}
	}
	z := u.newNode(v, p)
	if p == 0 {
		u.root = z
	} else if v < u.vs[p] {
		u.ifs[p].l = z
	} else {
		u.ifs[p].r = z
	}
	u.insertFix(z)
	return true
}

// insertFix restores the colour properties after the red node z was linked in.
// The only possible violation is z and its parent both being red.
func (u *RB[S]) insertFix(z S) {
	for u.isRed(u.ext[z].p) {
		p := u.ext[z].p
		g := u.ext[p].p //p is red so it isn't the root and g exists.
		if p == u.ifs[g].l {
			if y := u.ifs[g].r; u.isRed(y) {
				u.ext[p].red, u.ext[y].red, u.ext[g].red = false, false, true
				z = g
				continue
			}
			if z == u.ifs[p].r {
				z, p = p, z
				u.rotateLeft(z)
			}
			u.ext[p].red, u.ext[g].red = false, true
			u.rotateRight(g)
		} else {
			if y := u.ifs[g].l; u.isRed(y) {
				u.ext[p].red, u.ext[y].red, u.ext[g].red = false, false, true
				z = g
				continue
			}
			if z == u.ifs[p].l {
				z, p = p, z
				u.rotateRight(z)
			}
			u.ext[p].red, u.ext[g].red = false, true
			u.rotateLeft(g)
		}
	}
	u.ext[u.root].red = false
}

// Discard [Tree.Discard]. A node with two children takes the value of its
// successor, which is then the node unlinked, so the unlinked node never has
// more than one child.
// Time: O(log n)
func (u *RB[S]) Discard(v int) bool {
	z := u.find(v)
	if z == 0 {
		return false
	}
	if cur := u.ifs[z]; cur.l != 0 && cur.r != 0 {
		s := u.leftmost(cur.r)
		u.vs[z] = u.vs[s]
		z = s
	}
	x := u.ifs[z].l
	if x == 0 {
		x = u.ifs[z].r
	}
	xp := u.ext[z].p
	u.replace(xp, z, x)
	if x != 0 {
		u.ext[x].p = xp
	}
	black := !u.ext[z].red
	u.release(z)
	u.ext[z] = rbInfo[S]{}
	if black {
		u.discardFix(x, xp)
	}
	return true
}

// discardFix restores the colour properties after a black node was unlinked
// and x took its place, x carrying an extra black. x may be the sentinel, so
// its parent is tracked in xp instead of being read from or written to x.
func (u *RB[S]) discardFix(x, xp S) {
	for x != u.root && !u.isRed(x) {
		//x isn't the root so xp exists. The sibling w is a real node because the
		//path through x is short by one black.
		if x == u.ifs[xp].l {
			w := u.ifs[xp].r
			if u.isRed(w) {
				u.ext[w].red, u.ext[xp].red = false, true
				u.rotateLeft(xp)
				w = u.ifs[xp].r
			}
			if !u.isRed(u.ifs[w].l) && !u.isRed(u.ifs[w].r) {
				u.ext[w].red = true
				x, xp = xp, u.ext[xp].p
				continue
			}
			if !u.isRed(u.ifs[w].r) {
				u.ext[u.ifs[w].l].red, u.ext[w].red = false, true
				u.rotateRight(w)
				w = u.ifs[xp].r
			}
			u.ext[w].red, u.ext[xp].red = u.ext[xp].red, false
			u.ext[u.ifs[w].r].red = false
			u.rotateLeft(xp)
		} else {
			w := u.ifs[xp].l
			if u.isRed(w) {
				u.ext[w].red, u.ext[xp].red = false, true
				u.rotateRight(xp)
				w = u.ifs[xp].l
			}
			if !u.isRed(u.ifs[w].l) && !u.isRed(u.ifs[w].r) {
				u.ext[w].red = true
				x, xp = xp, u.ext[xp].p
				continue
			}
			if !u.isRed(u.ifs[w].l) {
				u.ext[u.ifs[w].r].red, u.ext[w].red = false, true
				u.rotateLeft(w)
				w = u.ifs[xp].l
			}
			u.ext[w].red, u.ext[xp].red = u.ext[xp].red, false
			u.ext[u.ifs[w].l].red = false
			u.rotateRight(xp)
		}
		x = u.root
	}
	if x != 0 {
		u.ext[x].red = false
	}
}

// Successor [Tree.Successor]. Walks up the parent links when v has no right subtree.
// Time: O(log n); Space: O(1)
func (u *RB[S]) Successor(v int) (int, bool) {
	x := u.find(v)
	if x == 0 {
		return 0, false
	} else if r := u.ifs[x].r; r != 0 {
		return u.vs[u.leftmost(r)], true
	}
	p := u.ext[x].p
	for p != 0 && x == u.ifs[p].r {
		x, p = p, u.ext[p].p
	}
	return u.vs[p], p != 0
}

// Predecessor [Tree.Predecessor]. Walks up the parent links when v has no left subtree.
// Time: O(log n); Space: O(1)
func (u *RB[S]) Predecessor(v int) (int, bool) {
	x := u.find(v)
	if x == 0 {
		return 0, false
	} else if l := u.ifs[x].l; l != 0 {
		return u.vs[u.rightmost(l)], true
	}
	p := u.ext[x].p
	for p != 0 && x == u.ifs[p].l {
		x, p = p, u.ext[p].p
	}
	return u.vs[p], p != 0
}

// Parent [Tree.Parent]
// Time: O(log n); Space: O(1)
func (u *RB[S]) Parent(v int) (int, bool) {
	p := u.ext[u.find(v)].p
	return u.vs[p], p != 0
}

// Height [Tree.Height]. Recursive.
// Time: O(n)
func (u *RB[S]) Height() int {
	return u.height(u.root)
}

// Fprint [Tree.Fprint]. Red nodes are tagged with "|R" and black ones with "|K".
func (u *RB[S]) Fprint(w io.Writer, o Order) error {
	return u.fprint(w, o, func(i S) string {
		if u.isRed(i) {
			return "|R"
		}
		return "|K"
	})
}

// Clone returns a deep copy of the tree with colours kept and parents pointing
// into the copy.
// Time: O(n)
func (u *RB[S]) Clone() *RB[S] {
	c := NewRB[S](u.n)
	c.root = u.cloneTo(&c.arena, u.root, 0, func(src, _, cpp S) {
		c.ext = append(c.ext, rbInfo[S]{cpp, u.ext[src].red})
	})
	return c
}

// Clear [Tree.Clear]
func (u *RB[S]) Clear(reset bool) {
	u.clear(reset)
	if reset {
		u.ext = make([]rbInfo[S], 1)
	} else {
		u.ext = u.ext[:1]
	}
}

// blackHeight of the subtree at i counting the sentinel, or -1 if the subtree
// breaks any of the properties below its root. p is the expected parent of i.
func (u *RB[S]) blackHeight(i, p S) int {
	if i == 0 {
		return 1
	}
	cur := u.ifs[i]
	if u.ext[i].p != p || u.isRed(i) && (u.isRed(cur.l) || u.isRed(cur.r)) {
		return -1
	}
	lh, rh := u.blackHeight(cur.l, i), u.blackHeight(cur.r, i)
	if lh < 0 || lh != rh {
		return -1
	} else if u.isRed(i) {
		return lh
	}
	return lh + 1
}

// Corrupt [Tree.Corrupt]. Checks the ordering, the parent links and all 4 colour properties.
// Time: O(n)
func (u *RB[S]) Corrupt() bool {
	return u.corrupt() || u.ext[0] != rbInfo[S]{} || u.isRed(u.root) || u.blackHeight(u.root, 0) < 0
}

var _ Tree[uint] = (*RB[uint])(nil)
