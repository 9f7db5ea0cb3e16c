package Trees

import (
	"fmt"
	"io"

	"github.com/g-m-twostay/go-trees/Queues"
)

// preOrder visits the subtree at i recursively, returning false once f did.
func (u *arena[S]) preOrder(i S, f func(S) bool) bool {
	return i == 0 || f(i) && u.preOrder(u.ifs[i].l, f) && u.preOrder(u.ifs[i].r, f)
}

func (u *arena[S]) inOrder(i S, f func(S) bool) bool {
	return i == 0 || u.inOrder(u.ifs[i].l, f) && f(i) && u.inOrder(u.ifs[i].r, f)
}

func (u *arena[S]) postOrder(i S, f func(S) bool) bool {
	return i == 0 || u.postOrder(u.ifs[i].l, f) && u.postOrder(u.ifs[i].r, f) && f(i)
}

// levelOrder visits the tree breadth first using a queue sized to the tree.
func (u *arena[S]) levelOrder(f func(S) bool) {
	if u.root == 0 {
		return
	}
	q := Queues.MakeArrayQueue[S](uint(u.n))
	for q.Push(u.root); !q.Empty(); {
		curI, _ := q.Pop()
		if !f(curI) {
			return
		}
		if cur := u.ifs[curI]; cur.l != 0 {
			q.Push(cur.l)
		}
		if cur := u.ifs[curI]; cur.r != 0 {
			q.Push(cur.r)
		}
	}
}

func (u *arena[S]) walk(o Order, f func(S) bool) {
	switch o {
	case PreOrder:
		u.preOrder(u.root, f)
	case InOrder:
		u.inOrder(u.root, f)
	case PostOrder:
		u.postOrder(u.root, f)
	case LevelOrder:
		u.levelOrder(f)
	}
}

func (u *arena[S]) values(f func(int) bool) func(S) bool {
	return func(i S) bool {
		return f(u.vs[i])
	}
}

// PreOrder [Tree.PreOrder]. Recursive.
func (u *arena[S]) PreOrder(f func(int) bool) {
	u.preOrder(u.root, u.values(f))
}

// InOrder [Tree.InOrder]. Recursive.
func (u *arena[S]) InOrder(f func(int) bool) {
	u.inOrder(u.root, u.values(f))
}

// PostOrder [Tree.PostOrder]. Recursive.
func (u *arena[S]) PostOrder(f func(int) bool) {
	u.postOrder(u.root, u.values(f))
}

// LevelOrder [Tree.LevelOrder]
// Space: O(n)
func (u *arena[S]) LevelOrder(f func(int) bool) {
	u.levelOrder(u.values(f))
}

// fprint writes every node in order o followed by tag(node).
func (u *arena[S]) fprint(w io.Writer, o Order, tag func(S) string) (err error) {
	u.walk(o, func(i S) bool {
		_, err = fmt.Fprintf(w, "%d%s ", u.vs[i], tag(i))
		return err == nil
	})
	return
}

// IsPerfect [Tree.IsPerfect]
// Time: O(n)
func (u *arena[S]) IsPerfect() bool {
	h := u.height(u.root)
	return uint64(u.n) == 1<<(h+1)-1
}

// IsComplete [Tree.IsComplete]. No node may have a child after the first missing
// child in level order.
// Time: O(n); Space: O(n)
func (u *arena[S]) IsComplete() bool {
	gap, complete := false, true
	u.levelOrder(func(i S) bool {
		for _, c := range [2]S{u.ifs[i].l, u.ifs[i].r} {
			if c == 0 {
				gap = true
			} else if gap {
				complete = false
			}
		}
		return complete
	})
	return complete
}

// IsFull [Tree.IsFull]
// Time: O(n)
func (u *arena[S]) IsFull() bool {
	return u.preOrder(u.root, func(i S) bool {
		return (u.ifs[i].l == 0) == (u.ifs[i].r == 0)
	})
}

// IsSymmetric [Tree.IsSymmetric]. Recursive.
// Time: O(n)
func (u *arena[S]) IsSymmetric() bool {
	var mirror func(a, b S) bool
	mirror = func(a, b S) bool {
		if a == 0 || b == 0 {
			return a == b
		}
		return mirror(u.ifs[a].l, u.ifs[b].r) && mirror(u.ifs[a].r, u.ifs[b].l)
	}
	return mirror(u.ifs[u.root].l, u.ifs[u.root].r)
}

// ascending reports whether the in-order sequence is strictly ascending, that is
// whether the tree is a binary search tree.
func (u *arena[S]) ascending() bool {
	first, last := true, 0
	return u.inOrder(u.root, func(i S) bool {
		ok := first || last < u.vs[i]
		first, last = false, u.vs[i]
		return ok
	})
}

// corrupt checks what's common to every engine: the sentinel, the ordering and the node count.
func (u *arena[S]) corrupt() bool {
	return u.ifs[0] != info[S]{} || !u.ascending() || u.count(u.root) != u.n
}
