package Queues

// circArrQ stores its items in content[head], content[(head+1)%len(content)], ... for sz items.
type circArrQ[T any] struct {
	sz, head uint
	content  []T
}

// MakeArrayQueue with room for initCap items before the first growth.
func MakeArrayQueue[T any](initCap uint) ArrayQueue[T] {
	return &circArrQ[T]{content: make([]T, max(initCap, 1))}
}

func (u *circArrQ[T]) Empty() bool {
	return u.sz == 0
}

// resize moves the items to a new array of length newLen>=sz, unwrapping them so that head becomes 0.
func (u *circArrQ[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if n := copy(nc, u.content[u.head:min(u.head+u.sz, uint(len(u.content)))]); uint(n) < u.sz {
		copy(nc[n:], u.content[:u.sz-uint(n)])
	}
	u.content, u.head = nc, 0
}

func (u *circArrQ[T]) Shrink() {
	u.resize(max(u.sz, 1))
}

func (u *circArrQ[T]) Clear() {
	clear(u.content)
	u.head, u.sz = 0, 0
}

func (u *circArrQ[T]) Size() uint {
	return u.sz
}

func (u *circArrQ[T]) Push(item T) {
	if u.sz == uint(len(u.content)) {
		u.resize(u.sz + u.sz>>1 + 1)
	}
	u.content[(u.head+u.sz)%uint(len(u.content))] = item
	u.sz++
}

func (u *circArrQ[T]) Pop() (item T, e error) {
	if u.Empty() {
		return item, &EmptyQueueError{}
	}
	item = u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % uint(len(u.content))
	u.sz--
	return item, nil
}

func (u *circArrQ[T]) Peek() (item T, has bool) {
	if u.Empty() {
		return
	}
	return u.content[u.head], true
}
