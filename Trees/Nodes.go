package Trees

import "golang.org/x/exp/constraints"

// Links of a node in the arena.
// Index 0 is the sentinel standing for every missing child or parent. Its
// links point to itself and it's never written after the arena is made.
type info[S constraints.Unsigned] struct {
	l, r S
}

// arena owns all nodes of a tree. ifs[i] and vs[i] are the links and the
// value of node i. Engines keep their own per-node fields in slices parallel
// to ifs.
type arena[S constraints.Unsigned] struct {
	root, free S //free is the beginning of the linked list that contains all the free indexes; info[S]::l represents next.
	n          S //number of live nodes.
	ifs        []info[S]
	vs         []int
}

func makeArena[S constraints.Unsigned](hint S) arena[S] {
	ifs := make([]info[S], 1, uint64(hint)+1)
	vs := make([]int, 1, uint64(hint)+1)
	return arena[S]{ifs: ifs, vs: vs}
}

// alloc a node holding v with no children. Free indexes are reused first.
// Panics with CapacityError when S can't address another node.
func (u *arena[S]) alloc(v int) (i S) {
	if i = u.free; i != 0 {
		u.free = u.ifs[i].l
		u.ifs[i], u.vs[i] = info[S]{}, v
	} else {
		if uint64(len(u.ifs)) > uint64(^S(0)) {
			panic(CapacityError{uint64(^S(0))})
		}
		i = S(len(u.ifs))
		u.ifs, u.vs = append(u.ifs, info[S]{}), append(u.vs, v)
	}
	u.n++
	return
}

// release index i once.
func (u *arena[S]) release(i S) {
	u.ifs[i] = info[S]{l: u.free}
	u.vs[i] = 0
	u.free = i
	u.n--
}

// clear drops every node but the sentinel.
func (u *arena[S]) clear(reset bool) {
	if reset {
		*u = makeArena[S](0)
		return
	}
	u.ifs, u.vs = u.ifs[:1], u.vs[:1]
	u.root, u.free, u.n = 0, 0, 0
}

// cloneTo copies the subtree at i into dst and returns the index of the copy.
// visit is called on every copied node with its index in u, its index in dst
// and the index of its parent in dst, before the node's children are copied.
// dst must have an empty free list so that indexes are handed out in order.
func (u *arena[S]) cloneTo(dst *arena[S], i, p S, visit func(src, cp, cpp S)) S {
	if i == 0 {
		return 0
	}
	c := dst.alloc(u.vs[i])
	visit(i, c, p)
	l := u.cloneTo(dst, u.ifs[i].l, c, visit)
	r := u.cloneTo(dst, u.ifs[i].r, c, visit)
	dst.ifs[c] = info[S]{l, r}
	return c
}
