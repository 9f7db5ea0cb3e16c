package Trees

// Queries every engine answers the same way: by descending from the root,
// which only relies on the ordering of the tree.

// find the index holding v, 0 if there's none.
func (u *arena[S]) find(v int) S {
	curI := u.root
	for curI != 0 {
		if k := u.vs[curI]; v < k {
			curI = u.ifs[curI].l
		} else if v > k {
			curI = u.ifs[curI].r
		} else {
			break
		}
	}
	return curI
}

func (u *arena[S]) leftmost(i S) S {
	for u.ifs[i].l != 0 {
		i = u.ifs[i].l
	}
	return i
}

func (u *arena[S]) rightmost(i S) S {
	for u.ifs[i].r != 0 {
		i = u.ifs[i].r
	}
	return i
}

// Size [Tree.Size]
// Time: O(1)
func (u *arena[S]) Size() S {
	return u.n
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *arena[S]) Has(v int) bool {
	return u.find(v) != 0
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *arena[S]) Minimum() (int, bool) {
	if u.root == 0 {
		return 0, false
	}
	return u.vs[u.leftmost(u.root)], true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *arena[S]) Maximum() (int, bool) {
	if u.root == 0 {
		return 0, false
	}
	return u.vs[u.rightmost(u.root)], true
}

// Successor [Tree.Successor]. The last ancestor where the descent turned left
// is the successor unless v has a right subtree.
// Time: O(D); Space: O(1)
func (u *arena[S]) Successor(v int) (int, bool) {
	var p S
	for curI := u.root; curI != 0; {
		if k := u.vs[curI]; v < k {
			p = curI
			curI = u.ifs[curI].l
		} else if v > k {
			curI = u.ifs[curI].r
		} else {
			if r := u.ifs[curI].r; r != 0 {
				return u.vs[u.leftmost(r)], true
			}
			return u.vs[p], p != 0
		}
	}
	return 0, false
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *arena[S]) Predecessor(v int) (int, bool) {
	var p S
	for curI := u.root; curI != 0; {
		if k := u.vs[curI]; v < k {
			curI = u.ifs[curI].l
		} else if v > k {
			p = curI
			curI = u.ifs[curI].r
		} else {
			if l := u.ifs[curI].l; l != 0 {
				return u.vs[u.rightmost(l)], true
			}
			return u.vs[p], p != 0
		}
	}
	return 0, false
}

// Ceiling [Navigator.Ceiling]
// Time: O(D); Space: O(1)
func (u *arena[S]) Ceiling(v int) (int, bool) {
	var p S
	for curI := u.root; curI != 0; {
		if k := u.vs[curI]; v < k {
			p = curI
			curI = u.ifs[curI].l
		} else if v > k {
			curI = u.ifs[curI].r
		} else {
			return k, true
		}
	}
	return u.vs[p], p != 0
}

// Floor [Navigator.Floor]
// Time: O(D); Space: O(1)
func (u *arena[S]) Floor(v int) (int, bool) {
	var p S
	for curI := u.root; curI != 0; {
		if k := u.vs[curI]; v < k {
			curI = u.ifs[curI].l
		} else if v > k {
			p = curI
			curI = u.ifs[curI].r
		} else {
			return k, true
		}
	}
	return u.vs[p], p != 0
}

// locate v, also returning its parent and depth. i is 0 if v isn't found.
func (u *arena[S]) locate(v int) (i, p S, d int) {
	for i = u.root; i != 0; d++ {
		if k := u.vs[i]; v == k {
			return
		} else if p = i; v < k {
			i = u.ifs[i].l
		} else {
			i = u.ifs[i].r
		}
	}
	return 0, 0, -1
}

// Parent [Tree.Parent]
// Time: O(D); Space: O(1)
func (u *arena[S]) Parent(v int) (int, bool) {
	if i, p, _ := u.locate(v); i != 0 && p != 0 {
		return u.vs[p], true
	}
	return 0, false
}

// Sibling [Tree.Sibling]
// Time: O(D); Space: O(1)
func (u *arena[S]) Sibling(v int) (int, bool) {
	i, p, _ := u.locate(v)
	if i == 0 || p == 0 {
		return 0, false
	}
	s := u.ifs[p].l
	if s == i {
		s = u.ifs[p].r
	}
	return u.vs[s], s != 0
}

// Depth [Tree.Depth]
// Time: O(D); Space: O(1)
func (u *arena[S]) Depth(v int) int {
	_, _, d := u.locate(v)
	return d
}

// Degree [Tree.Degree]
// Time: O(D); Space: O(1)
func (u *arena[S]) Degree(v int) int {
	i := u.find(v)
	if i == 0 {
		return -1
	}
	d := 0
	if u.ifs[i].l != 0 {
		d++
	}
	if u.ifs[i].r != 0 {
		d++
	}
	return d
}

// height of the subtree at i computed recursively.
func (u *arena[S]) height(i S) int {
	if i == 0 {
		return -1
	}
	return 1 + max(u.height(u.ifs[i].l), u.height(u.ifs[i].r))
}

// count the nodes of the subtree at i recursively.
func (u *arena[S]) count(i S) S {
	if i == 0 {
		return 0
	}
	return u.count(u.ifs[i].l) + u.count(u.ifs[i].r) + 1
}

// Internal [Tree.Internal]
// Time: O(n)
func (u *arena[S]) Internal() S {
	return u.n - u.External()
}

// External [Tree.External]. Recursive.
// Time: O(n)
func (u *arena[S]) External() S {
	var leaves func(S) S
	leaves = func(i S) S {
		if i == 0 {
			return 0
		} else if cur := u.ifs[i]; cur.l == 0 && cur.r == 0 {
			return 1
		} else {
			return leaves(cur.l) + leaves(cur.r)
		}
	}
	return leaves(u.root)
}
